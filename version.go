package recgo

// Version is the recgo release identifier, read by packaging tooling.
const Version = "1.3.1"
