package config

type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns the default configuration options and their meanings.
// This is the single source of truth for default values and generator output.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		// Rendering
		{Key: "mode", Default: "preview", Comment: "Output form: preview (HTML markup) or raw (escaped text)"},
		{Key: "escape_content", Default: false, Comment: "Escape document content before tags are added; leave off for trusted templates"},
		{Key: "heading_ids", Default: false, Comment: "Add an id attribute derived from the heading text to every heading"},
		{Key: "no_classes", Default: false, Comment: "Omit CSS class attributes from the generated markup"},
		{Key: "table_alignment", Default: false, Comment: "Honor ':' alignment markers in table separator lines"},

		// Sections (dotted keys for generator convenience)
		{Key: "page.enabled", Default: false, Comment: "Wrap output in a complete HTML page"},
		{Key: "page.title", Default: "", Comment: "Title of the generated page"},
		{Key: "page.css", Default: "", Comment: "Stylesheet URL linked from the page (implies page.enabled)"},
		{Key: "heading_id.prefix", Default: "", Comment: "Text added in front of every heading id"},
		{Key: "heading_id.suffix", Default: "", Comment: "Text added after every heading id"},
		{Key: "serve.addr", Default: "127.0.0.1:8080", Comment: "HTTP listen address of the preview server"},
		{Key: "serve.root", Default: ".", Comment: "Directory served under /doc/"},
		{Key: "serve.max_body", Default: 1 << 20, Comment: "Largest accepted POST /render body in bytes"},
	}
}
