package validatorjs

// Version is the library release.
const Version = "1.0.0"

// Limits enforced by the JSON adapter.
const (
	MaxInputBytes = 8 << 20 // 8 MiB of raw JSON
	MaxDepth      = 128     // max nesting of arrays/objects
)
