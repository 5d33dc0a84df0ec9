// Public interface

package blockdown

// Render converts a document to an HTML fragment using CommonExtensions
// and the default HTML renderer. Lines that are not part of a heading,
// table or list are returned as bare text; wrapping them in paragraphs is
// left to the caller.
//
// Content is inserted as is. Use RenderSafe, or a renderer created with the
// EscapeContent flag, when the document does not come from a trusted source.
func Render(document string) string {
	return string(Run([]byte(document)))
}

// RenderSafe is Render with the document escaped before any tag is added.
func RenderSafe(document string) string {
	return string(Run([]byte(document), WithRenderer(NewHTMLRenderer(EscapeContent, "", ""))))
}

// RenderMode renders a document in the given mode: preview returns the
// markup of Render, raw returns the document escaped and otherwise
// unchanged.
func RenderMode(document string, mode Mode) string {
	if mode == ModeRaw {
		return Escape(document)
	}
	return Render(document)
}
