package render

// Options describe per-request data renderers can use to customise their
// output without mutating the document pipeline.
type Options struct {
	// Author is stamped into output metadata where the format supports it
	// (the PDF renderer sets the document author).
	Author string
	// Footer is printed below the document rows when non-empty, e.g. bank
	// coordinates or a payment reference.
	Footer string
}
