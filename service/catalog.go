package service

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"

	"calculator-api/domain"
)

//go:embed catalog.yaml
var defaultCatalog []byte

var duplicateSlashes = regexp.MustCompile(`/{2,}`)

// LoadCatalogFile reads a YAML tool catalog; an empty path selects the built-in one.
func LoadCatalogFile(path, baseURL string) ([]domain.Tool, error) {
	data := defaultCatalog
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("reading catalog %s: %w", path, err)
		}
	}
	return ParseCatalog(data, baseURL)
}

// ParseCatalog decodes a catalog and normalises every tool's href and URL.
// Entries without an id or category are skipped.
func ParseCatalog(data []byte, baseURL string) ([]domain.Tool, error) {
	var catalog domain.Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	base := strings.TrimRight(baseURL, "/")
	tools := make([]domain.Tool, 0, len(catalog.Tools))
	for _, t := range catalog.Tools {
		if t.ID == "" || t.Category == "" {
			continue
		}
		t.Category = strings.ToLower(t.Category)
		t.Href = normalizeHref(t.ID, t.Href)
		t.URL = base + t.Href
		tools = append(tools, t)
	}
	return tools, nil
}

// normalizeHref forces hrefs under /tools/, lowercases them, collapses
// repeated slashes and drops a trailing slash.
func normalizeHref(id, href string) string {
	if !strings.HasPrefix(strings.ToLower(href), "/tools/") {
		href = "/tools/" + id
	}
	href = strings.ToLower(href)
	href = duplicateSlashes.ReplaceAllString(href, "/")
	return strings.TrimRight(href, "/")
}

// GroupByCategory groups tools by category, each group sorted by name.
func GroupByCategory(tools []domain.Tool) map[string][]domain.Tool {
	grouped := make(map[string][]domain.Tool)
	for _, t := range tools {
		grouped[t.Category] = append(grouped[t.Category], t)
	}
	for _, group := range grouped {
		sort.SliceStable(group, func(i, j int) bool { return group[i].Name < group[j].Name })
	}
	return grouped
}
