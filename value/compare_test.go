package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"NullNull", Null(), Null(), true},
		{"NullInt", Null(), Int(0), false},
		{"IntInt", Int(10), Int(10), true},
		{"IntIntDiff", Int(10), Int(11), false},
		{"IntFloatNumeric", Int(1), Float(1.0), true},
		{"FloatFloat", Float(2.5), Float(2.5), true},
		{"StringString", String("a"), String("a"), true},
		{"StringStringDiff", String("a"), String("b"), false},
		{"StringInt", String("1"), Int(1), false},
		{"BoolBool", Bool(true), Bool(true), true},
		{"BoolBoolDiff", Bool(true), Bool(false), false},
		{"ArrayEqual", Array(Int(1), Int(2)), Array(Int(1), Int(2)), true},
		{"ArrayLenDiff", Array(Int(1)), Array(Int(1), Int(2)), false},
		{"ArrayElemDiff", Array(Int(1)), Array(Int(2)), false},
		{"ArrayNumericElems", Array(Int(1)), Array(Float(1.0)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
			assert.Equal(t, tt.want, Equal(tt.b, tt.a))
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want int
	}{
		{"IntLess", Int(1), Int(2), -1},
		{"IntGreater", Int(3), Int(2), 1},
		{"IntEqual", Int(2), Int(2), 0},
		{"IntFloatNumeric", Int(1), Float(1.5), -1},
		{"FloatIntNumeric", Float(2.5), Int(2), 1},
		{"IntFloatEqual", Int(2), Float(2.0), 0},
		{"StringOrder", String("apple"), String("banana"), -1},
		{"StringEqual", String("a"), String("a"), 0},
		{"BoolOrder", Bool(false), Bool(true), -1},
		{"NullFirst", Null(), Int(-100), -1},
		{"KindRank", Int(999), String("a"), -1},
		{"ArrayLex", Array(Int(1), Int(2)), Array(Int(1), Int(3)), -1},
		{"ArrayPrefixShorter", Array(Int(1)), Array(Int(1), Int(0)), -1},
		{"ArrayEqual", Array(String("x")), Array(String("x")), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.a, tt.b))
			assert.Equal(t, -tt.want, Compare(tt.b, tt.a))
		})
	}
}

func TestLess(t *testing.T) {
	assert.True(t, Less(Int(3), Int(4)))
	assert.False(t, Less(Int(4), Int(3)))
	assert.False(t, Less(Int(3), Int(3)))
}
