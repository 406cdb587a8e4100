package port

import "io"

// TextExtractor yields the plain text of an uploaded document. Extraction
// is layout-blind: the result is a flat stream of lines for the structure
// extractor to interpret.
type TextExtractor interface {
	ExtractText(r io.ReadSeeker) (string, error)
}
