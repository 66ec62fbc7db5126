package service

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "https://example.com/"

func newTestSitemapService(t *testing.T) *SitemapService {
	t.Helper()
	tools, err := LoadCatalogFile("", testBaseURL)
	require.NoError(t, err)
	s := NewSitemapService(testBaseURL, tools)
	s.now = func() time.Time { return time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestParseCatalog_NormalizesHrefs(t *testing.T) {
	tools, err := LoadCatalogFile("", testBaseURL)
	require.NoError(t, err)
	require.Len(t, tools, 8)

	byID := map[string]string{}
	for _, tool := range tools {
		byID[tool.ID] = tool.Href
		assert.Equal(t, "https://example.com"+tool.Href, tool.URL)
	}
	assert.Equal(t, "/tools/crypto-converter", byID["crypto-converter"])
	assert.Equal(t, "/tools/text-cipher", byID["text-cipher"])
	assert.Equal(t, "/tools/case-converter", byID["case-converter"])
}

func TestParseCatalog_SkipsIncompleteEntries(t *testing.T) {
	data := []byte(`
tools:
  - id: one
    name: One
    category: Finance
    href: /tools//one//
  - id: two
    name: Two
  - name: Three
    category: text
`)
	tools, err := ParseCatalog(data, "https://example.com")
	require.NoError(t, err)
	require.Len(t, tools, 1)
	assert.Equal(t, "finance", tools[0].Category)
	assert.Equal(t, "/tools/one", tools[0].Href)
}

func TestParseCatalog_InvalidYAML(t *testing.T) {
	_, err := ParseCatalog([]byte("tools: [oops"), "")
	assert.Error(t, err)
}

func TestLoadCatalogFile_Missing(t *testing.T) {
	_, err := LoadCatalogFile(filepath.Join(t.TempDir(), "missing.yaml"), "")
	assert.Error(t, err)
}

func TestGroupByCategory(t *testing.T) {
	tools, err := LoadCatalogFile("", testBaseURL)
	require.NoError(t, err)

	grouped := GroupByCategory(tools)
	require.Len(t, grouped["finance"], 4)
	assert.Equal(t, "Break-Even Calculator", grouped["finance"][0].Name)
	assert.Len(t, grouped["health"], 2)
	assert.Len(t, grouped["text"], 2)
}

func TestSitemapService_Categories(t *testing.T) {
	s := newTestSitemapService(t)
	assert.Equal(t, []string{"finance", "health", "text"}, s.Categories())
}

func TestSitemapService_Sitemap(t *testing.T) {
	s := newTestSitemapService(t)

	data, err := s.Sitemap("finance")
	require.NoError(t, err)
	xml := string(data)

	assert.Contains(t, xml, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, xml, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, xml, "<loc>https://example.com/tools/break-even-calculator</loc>")
	assert.Contains(t, xml, "<loc>https://example.com/tools/crypto-converter</loc>")
	assert.Contains(t, xml, "<lastmod>2026-03-14</lastmod>")
	assert.Contains(t, xml, "<changefreq>weekly</changefreq>")
	assert.Contains(t, xml, "<priority>0.8</priority>")
	assert.NotContains(t, xml, "case-converter")
}

func TestSitemapService_MainSitemap(t *testing.T) {
	s := newTestSitemapService(t)

	urls, err := s.CategoryURLs("main")
	require.NoError(t, err)
	require.Len(t, urls, len(mainPages))
	assert.Equal(t, "https://example.com/", urls[0].Loc)
	assert.Equal(t, "daily", urls[0].ChangeFreq)
	assert.Equal(t, "1.0", urls[0].Priority)
}

func TestSitemapService_UnknownCategory(t *testing.T) {
	s := newTestSitemapService(t)

	_, err := s.Sitemap("sports")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestSitemapService_Index(t *testing.T) {
	s := newTestSitemapService(t)

	data, err := s.Index()
	require.NoError(t, err)
	xml := string(data)

	assert.Contains(t, xml, "<sitemapindex")
	for _, name := range []string{"main", "finance", "health", "text"} {
		assert.Contains(t, xml, "<loc>https://example.com/sitemap-"+name+".xml</loc>")
	}
}

func TestSitemapService_WriteAll(t *testing.T) {
	s := newTestSitemapService(t)
	dir := filepath.Join(t.TempDir(), "out")

	files, err := s.WriteAll(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"sitemap-main.xml",
		"sitemap-finance.xml",
		"sitemap-health.xml",
		"sitemap-text.xml",
		"sitemap.xml",
	}, files)

	for _, f := range files {
		info, err := os.Stat(filepath.Join(dir, f))
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestSitemapService_Categorize(t *testing.T) {
	s := newTestSitemapService(t)

	tests := []struct {
		url  string
		want string
	}{
		{"https://example.com/tools/case-converter", "text"},
		{"https://example.com/tools/inflation-calculator/", "finance"},
		{"/tools/ideal-weight-calculator", "health"},
		{"/tools/unknown-tool", "main"},
		{"https://example.com/finance-tools", "finance"},
		{"/health", "health"},
		{"https://example.com/about-us", "main"},
		{"https://example.com/", "main"},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Categorize(tt.url))
		})
	}
}

const existingSitemap = `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url>
    <loc>https://example.com/</loc>
    <lastmod>2025-12-01</lastmod>
    <changefreq>daily</changefreq>
    <priority>1.0</priority>
  </url>
  <url><loc>https://example.com/tools/break-even-calculator</loc></url>
  <url><loc> https://example.com/tools/case-converter </loc></url>
  <url><loc>https://example.com/finance-tools</loc></url>
  <url><loc></loc></url>
</urlset>`

func TestSitemapService_ParseSitemap(t *testing.T) {
	s := newTestSitemapService(t)

	urls, err := s.ParseSitemap([]byte(existingSitemap))
	require.NoError(t, err)
	require.Len(t, urls, 4)

	assert.Equal(t, "https://example.com/", urls[0].Loc)
	assert.Equal(t, "2025-12-01", urls[0].LastMod)
	assert.Equal(t, "daily", urls[0].ChangeFreq)
	assert.Equal(t, "1.0", urls[0].Priority)

	assert.Equal(t, "https://example.com/tools/case-converter", urls[2].Loc)
	assert.Equal(t, "2026-03-14", urls[1].LastMod)
	assert.Equal(t, "weekly", urls[1].ChangeFreq)
	assert.Equal(t, "0.8", urls[1].Priority)
}

func TestSitemapService_ParseSitemapMalformed(t *testing.T) {
	s := newTestSitemapService(t)

	_, err := s.ParseSitemap([]byte("<urlset><url><loc>"))
	assert.ErrorIs(t, err, ErrMalformedEncoding)

	_, err = s.ParseSitemap([]byte(`<sitemapindex><sitemap><loc>x</loc></sitemap></sitemapindex>`))
	assert.ErrorIs(t, err, ErrMalformedEncoding)
}

func TestSitemapService_Split(t *testing.T) {
	s := newTestSitemapService(t)
	urls, err := s.ParseSitemap([]byte(existingSitemap))
	require.NoError(t, err)

	buckets := s.Split(urls)
	require.Len(t, buckets, 3)
	require.Len(t, buckets["finance"], 2)
	assert.Equal(t, "https://example.com/tools/break-even-calculator", buckets["finance"][0].Loc)
	assert.Equal(t, "https://example.com/finance-tools", buckets["finance"][1].Loc)
	assert.Len(t, buckets["main"], 1)
	assert.Len(t, buckets["text"], 1)
	assert.NotContains(t, buckets, "health")
}

func TestSitemapService_WriteSplit(t *testing.T) {
	s := newTestSitemapService(t)
	dir := filepath.Join(t.TempDir(), "split")

	files, err := s.WriteSplit(dir, []byte(existingSitemap))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"sitemap-main.xml",
		"sitemap-finance.xml",
		"sitemap-text.xml",
		"sitemap.xml",
	}, files)

	_, err = os.Stat(filepath.Join(dir, "sitemap-health.xml"))
	assert.True(t, os.IsNotExist(err))

	finance, err := os.ReadFile(filepath.Join(dir, "sitemap-finance.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(finance), "<loc>https://example.com/tools/break-even-calculator</loc>")
	assert.Contains(t, string(finance), "<loc>https://example.com/finance-tools</loc>")
	assert.NotContains(t, string(finance), "case-converter")

	index, err := os.ReadFile(filepath.Join(dir, "sitemap.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "<loc>https://example.com/sitemap-text.xml</loc>")
	assert.NotContains(t, string(index), "sitemap-health.xml")

	reparsed, err := s.ParseSitemap(finance)
	require.NoError(t, err)
	assert.Len(t, reparsed, 2)
}

func TestSitemapService_WriteSplitEmpty(t *testing.T) {
	s := newTestSitemapService(t)
	dir := filepath.Join(t.TempDir(), "split")

	_, err := s.WriteSplit(dir, []byte(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"></urlset>`))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}
