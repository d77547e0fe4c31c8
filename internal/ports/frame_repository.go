package ports

import "context"

// FrameRepository reads the extracted path geometry of a single frame.
// Implementations must be safe for concurrent sessions; the underlying
// assets are read-only.
type FrameRepository interface {
	// PathData returns the path block of the asset at index (1-based).
	// A readable asset without the expected markers yields an empty
	// string and a nil error.
	PathData(ctx context.Context, index int) (string, error)
}
