// Package vision defines the boundary to generative vision models and the
// parsing of their free-form text responses into structured body-composition
// analyses.
package vision

import "context"

// Image is a decoded photo payload forwarded to a vision model.
type Image struct {
	MimeType string
	Data     []byte
}

// Analyzer is the outbound boundary to a vision-capable text model. The
// response is opaque free-form text; callers parse it with ParseAnalysis.
type Analyzer interface {
	Generate(ctx context.Context, prompt string, images []Image) (string, error)
}
