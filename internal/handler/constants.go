package handler

// Pagination defaults for the article listing and feed. Offsets and
// limits outside the allowed range are clamped, never rejected.
const (
	DefaultLimit  = 20
	MaxLimit      = 100
	DefaultOffset = 0
)
