package render

import "strings"

// ExtensionFor maps a renderer content type to an output file extension.
// Matching is by media-type prefix so charset parameters do not matter.
func ExtensionFor(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "application/pdf"):
		return ".pdf"
	case strings.HasPrefix(contentType, "text/html"):
		return ".html"
	default:
		return ".bin"
	}
}
