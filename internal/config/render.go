package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// sectionComments introduce the TOML tables of the generated config.
var sectionComments = map[string]string{
	"page":       "Standalone page output (--page, --title, --css)",
	"heading_id": "Affixes around generated heading ids (used with heading_ids = true)",
	"serve":      "HTTP preview server (blockdown serve)",
}

// RenderDefaultTOML renders every option of GetConfigOptions with its
// default. Keys keep their declared order, except that top-level keys come
// first: in TOML a bare key after a [table] header belongs to that table.
// Options of one section must be declared next to each other.
func RenderDefaultTOML() string {
	opts := GetConfigOptions()
	sort.SliceStable(opts, func(i, j int) bool {
		return !strings.Contains(opts[i].Key, ".") && strings.Contains(opts[j].Key, ".")
	})

	var b strings.Builder
	b.WriteString("# blockdown configuration (TOML)\n")
	b.WriteString("# BLOCKDOWN_<KEY> environment variables override these values,\n")
	b.WriteString("# with dots written as underscores (BLOCKDOWN_SERVE_ADDR).\n")

	table := ""
	for _, o := range opts {
		section, key, nested := strings.Cut(o.Key, ".")
		if !nested {
			section, key = "", o.Key
		}
		if section != table {
			table = section
			b.WriteString("\n")
			if c := sectionComments[section]; c != "" {
				fmt.Fprintf(&b, "# %s\n", c)
			}
			fmt.Fprintf(&b, "[%s]\n", section)
		}
		b.WriteString("\n")
		writeTOMLOption(&b, key, o.Default, o.Comment)
	}
	return b.String()
}

func writeTOMLOption(b *strings.Builder, key string, value any, comment string) {
	if comment != "" {
		fmt.Fprintf(b, "# %s\n", comment)
	}
	if err := toml.NewEncoder(b).Encode(map[string]any{key: value}); err != nil {
		fmt.Fprintf(b, "# %s: %v\n", key, err)
	}
}
