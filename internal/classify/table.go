package classify

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// FallbackCategory receives every file whose extension is not in the table.
const FallbackCategory = "Others"

// Table holds the effective extension-to-category mapping for one run.
// Each extension maps to at most one category.
type Table struct {
	categories map[string][]string // category -> extensions as configured
	byExt      map[string]string   // lower-cased extension -> category
}

// defaultCategories returns the built-in category mapping.
func defaultCategories() map[string][]string {
	return map[string][]string{
		"Images":    {".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff", ".webp"},
		"Videos":    {".mp4", ".mkv", ".avi", ".mov", ".wmv", ".flv"},
		"Documents": {".pdf", ".docx", ".doc", ".txt", ".pptx", ".xlsx", ".odt"},
		"Audio":     {".mp3", ".wav", ".aac", ".ogg", ".flac"},
		"Archives":  {".zip", ".rar", ".7z", ".tar", ".gz"},
		"Scripts":   {".py", ".js", ".sh", ".bat", ".php", ".rb"},
		"Programs":  {".exe"},
		"Others":    {},
	}
}

// DefaultTable returns a table containing only the built-in categories.
func DefaultTable() *Table {
	return newTable(defaultCategories(), nil)
}

// LoadOverride reads a JSON override file and merges it over the built-in
// defaults. Override categories replace same-named built-in categories
// wholesale; extensions mentioned by the override win over built-in
// assignments. Malformed files fail here, before any file is touched.
func LoadOverride(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mapping file: %w", err)
	}

	override, err := ParseMapping(data)
	if err != nil {
		return nil, fmt.Errorf("mapping file %s: %w", path, err)
	}

	return newTable(defaultCategories(), override), nil
}

// ParseMapping decodes and validates a category mapping: a JSON object from
// category name to an array of extension strings, each with a leading dot.
func ParseMapping(data []byte) (map[string][]string, error) {
	var mapping map[string][]string
	if err := json.Unmarshal(data, &mapping); err != nil {
		return nil, fmt.Errorf("expected an object of category name to extension list: %w", err)
	}

	for category, exts := range mapping {
		if strings.TrimSpace(category) == "" {
			return nil, fmt.Errorf("category name must not be empty")
		}
		for _, ext := range exts {
			if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
				return nil, fmt.Errorf("extension %q in category %q must start with a dot", ext, category)
			}
		}
	}

	return mapping, nil
}

// newTable merges an optional override over the defaults and builds the
// reverse index. Override entries win for any extension mentioned twice;
// within one layer duplicate extensions resolve by category name order so
// the result is deterministic.
func newTable(defaults, override map[string][]string) *Table {
	merged := make(map[string][]string, len(defaults))
	for category, exts := range defaults {
		merged[category] = exts
	}
	for category, exts := range override {
		merged[category] = exts
	}

	t := &Table{
		categories: merged,
		byExt:      make(map[string]string),
	}

	for _, category := range sortedKeys(merged) {
		if _, fromOverride := override[category]; fromOverride {
			continue
		}
		for _, ext := range merged[category] {
			t.byExt[strings.ToLower(ext)] = category
		}
	}
	for _, category := range sortedKeys(override) {
		for _, ext := range override[category] {
			t.byExt[strings.ToLower(ext)] = category
		}
	}

	return t
}

// Category returns the category for an extension, or FallbackCategory when
// the extension is unknown. Lookup is case-insensitive.
func (t *Table) Category(ext string) string {
	if category, found := t.byExt[strings.ToLower(ext)]; found {
		return category
	}
	return FallbackCategory
}

// Categories returns all category names in sorted order.
func (t *Table) Categories() []string {
	return sortedKeys(t.categories)
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
