package recgo

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/recgo/value"
)

func TestDefine(t *testing.T) {
	s, err := Define("Point", []string{"x", "y"})
	require.NoError(t, err)

	assert.Equal(t, "Point", s.Name())
	assert.Equal(t, []string{"x", "y"}, s.Fields())
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Indexable())
	assert.True(t, s.HasField("x"))
	assert.False(t, s.HasField("z"))
	assert.Equal(t, "Point(x, y)", s.String())
}

func TestDefineSplitsWhitespaceFieldList(t *testing.T) {
	split, err := Define("Options", []string{"maxcolors shape zoom restore"})
	require.NoError(t, err)

	listed, err := Define("Options", []string{"maxcolors", "shape", "zoom", "restore"})
	require.NoError(t, err)

	assert.Equal(t, listed.Fields(), split.Fields())
	assert.Equal(t, listed.Fingerprint(), split.Fingerprint())
}

func TestDefineErrors(t *testing.T) {
	tests := []struct {
		name    string
		defName string
		fields  []string
		opts    []Option
		wantErr error
	}{
		{"EmptyName", "", []string{"x"}, nil, ErrEmptyName},
		{"NoFields", "P", nil, nil, ErrNoFields},
		{"EmptyFieldName", "P", []string{"x", ""}, nil, ErrEmptyFieldName},
		{"DuplicateField", "P", []string{"x", "y", "x"}, nil, &ErrDuplicateField{Field: "x"}},
		{
			"TooManyDefaults", "P", []string{"x"},
			[]Option{WithDefaults(value.Int(0), value.Int(0))},
			&ErrArityExceeded{Schema: "P", Max: 1, Got: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Define(tt.defName, tt.fields, tt.opts...)
			assert.Nil(t, s)
			assert.EqualError(t, err, tt.wantErr.Error())
		})
	}
}

func TestDefineImmutableAccessors(t *testing.T) {
	s, err := Define("Point", []string{"x", "y"})
	require.NoError(t, err)

	// Mutating the returned field slice must not affect the schema.
	fields := s.Fields()
	fields[0] = "mutated"
	assert.Equal(t, []string{"x", "y"}, s.Fields())
}

func TestFingerprint(t *testing.T) {
	a, err := Define("Point", []string{"x", "y"})
	require.NoError(t, err)

	b, err := Define("Point", []string{"x", "y"})
	require.NoError(t, err)

	sameNameOtherFields, err := Define("Point", []string{"x", "y", "z"})
	require.NoError(t, err)

	otherName, err := Define("Punt", []string{"x", "y"})
	require.NoError(t, err)

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), sameNameOtherFields.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), otherName.Fingerprint())
}

func TestMustDefine(t *testing.T) {
	assert.NotPanics(t, func() {
		MustDefine("Point", []string{"x", "y"})
	})
	assert.Panics(t, func() {
		MustDefine("", []string{"x"})
	})
}

func TestWithLogger(t *testing.T) {
	// Nil falls back to the noop logger; Define must not crash either way.
	s, err := Define("Point", []string{"x", "y"}, WithLogger(nil))
	require.NoError(t, err)
	require.NotNil(t, s)

	s, err = Define("Point", []string{"x", "y"}, WithLogger(NewTextLogger(slog.LevelError)))
	require.NoError(t, err)
	require.NotNil(t, s)
}
