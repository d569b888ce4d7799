package uid

// StringID generates string identifiers (correlation IDs, request IDs).
type StringID interface {
	Generate() string
}

// NumberID generates int64 identifiers (event IDs).
type NumberID interface {
	Generate() int64
}
