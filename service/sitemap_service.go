package service

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"calculator-api/domain"
)

const (
	sitemapNamespace  = "http://www.sitemaps.org/schemas/sitemap/0.9"
	mainSitemapName   = "main"
	toolChangeFreq    = "weekly"
	toolPriority      = "0.8"
	sitemapIndexFile  = "sitemap.xml"
	sitemapDateLayout = "2006-01-02"
)

type staticPage struct {
	path, changeFreq, priority string
}

var mainPages = []staticPage{
	{"/", "daily", "1.0"},
	{"/about-us", "monthly", "0.8"},
	{"/contact-us", "monthly", "0.8"},
	{"/privacy-policy", "yearly", "0.5"},
	{"/terms-of-service", "yearly", "0.5"},
	{"/help-center", "monthly", "0.7"},
	{"/all-tools", "weekly", "0.9"},
	{"/finance-tools", "weekly", "0.9"},
	{"/health-tools", "weekly", "0.9"},
	{"/text-tools", "weekly", "0.9"},
}

type xmlURLSet struct {
	XMLName xml.Name    `xml:"urlset"`
	Xmlns   string      `xml:"xmlns,attr"`
	URLs    []xmlURLRef `xml:"url"`
}

type xmlURLRef struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type xmlSitemapIndex struct {
	XMLName  xml.Name        `xml:"sitemapindex"`
	Xmlns    string          `xml:"xmlns,attr"`
	Sitemaps []xmlSitemapRef `xml:"sitemap"`
}

type xmlSitemapRef struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod"`
}

// SitemapService renders the sitemap index, the main sitemap and one sitemap
// per tool category.
type SitemapService struct {
	baseURL string
	tools   []domain.Tool
	byID    map[string]domain.Tool
	grouped map[string][]domain.Tool
	now     func() time.Time
}

func NewSitemapService(baseURL string, tools []domain.Tool) *SitemapService {
	byID := make(map[string]domain.Tool, len(tools))
	for _, t := range tools {
		byID[t.ID] = t
	}
	return &SitemapService{
		baseURL: strings.TrimRight(baseURL, "/"),
		tools:   tools,
		byID:    byID,
		grouped: GroupByCategory(tools),
		now:     time.Now,
	}
}

func (s *SitemapService) Tools() []domain.Tool {
	return s.tools
}

// Categories returns the tool categories in alphabetical order.
func (s *SitemapService) Categories() []string {
	out := make([]string, 0, len(s.grouped))
	for c := range s.grouped {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func (s *SitemapService) today() string {
	return s.now().Format(sitemapDateLayout)
}

// CategoryURLs lists the sitemap entries for one category ("main" for the static pages).
func (s *SitemapService) CategoryURLs(category string) ([]domain.SitemapURL, error) {
	lastMod := s.today()
	if category == mainSitemapName {
		urls := make([]domain.SitemapURL, 0, len(mainPages))
		for _, p := range mainPages {
			urls = append(urls, domain.SitemapURL{
				Loc: s.baseURL + p.path, LastMod: lastMod, ChangeFreq: p.changeFreq, Priority: p.priority,
			})
		}
		return urls, nil
	}

	tools, ok := s.grouped[category]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	urls := make([]domain.SitemapURL, 0, len(tools))
	for _, t := range tools {
		urls = append(urls, domain.SitemapURL{
			Loc: t.URL, LastMod: lastMod, ChangeFreq: toolChangeFreq, Priority: toolPriority,
		})
	}
	return urls, nil
}

// Sitemap renders sitemap-<category>.xml.
func (s *SitemapService) Sitemap(category string) ([]byte, error) {
	urls, err := s.CategoryURLs(category)
	if err != nil {
		return nil, err
	}
	return renderURLSet(urls)
}

// Index renders sitemap.xml referencing the main sitemap and every category.
func (s *SitemapService) Index() ([]byte, error) {
	return s.renderIndex(append([]string{mainSitemapName}, s.Categories()...))
}

func renderURLSet(urls []domain.SitemapURL) ([]byte, error) {
	set := xmlURLSet{Xmlns: sitemapNamespace}
	for _, u := range urls {
		set.URLs = append(set.URLs, xmlURLRef(u))
	}
	return marshalXML(set)
}

func (s *SitemapService) renderIndex(names []string) ([]byte, error) {
	lastMod := s.today()
	index := xmlSitemapIndex{Xmlns: sitemapNamespace}
	for _, name := range names {
		index.Sitemaps = append(index.Sitemaps, xmlSitemapRef{
			Loc:     s.baseURL + "/" + SitemapFileName(name),
			LastMod: lastMod,
		})
	}
	return marshalXML(index)
}

// ParseSitemap reads the entries of an existing urlset. Missing lastmod,
// changefreq and priority fall back to today, weekly and 0.8.
func (s *SitemapService) ParseSitemap(data []byte) ([]domain.SitemapURL, error) {
	var set xmlURLSet
	if err := xml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("%w: parsing sitemap: %v", ErrMalformedEncoding, err)
	}

	lastMod := s.today()
	urls := make([]domain.SitemapURL, 0, len(set.URLs))
	for _, ref := range set.URLs {
		u := domain.SitemapURL(ref)
		u.Loc = strings.TrimSpace(u.Loc)
		if u.Loc == "" {
			continue
		}
		if u.LastMod == "" {
			u.LastMod = lastMod
		}
		if u.ChangeFreq == "" {
			u.ChangeFreq = toolChangeFreq
		}
		if u.Priority == "" {
			u.Priority = toolPriority
		}
		urls = append(urls, u)
	}
	return urls, nil
}

// Split buckets urls by Categorize, keeping their order inside each bucket.
func (s *SitemapService) Split(urls []domain.SitemapURL) map[string][]domain.SitemapURL {
	buckets := make(map[string][]domain.SitemapURL)
	for _, u := range urls {
		category := s.Categorize(u.Loc)
		buckets[category] = append(buckets[category], u)
	}
	return buckets
}

// WriteSplit splits an existing sitemap into one file per non-empty category
// plus an index of those files, and returns the file names written.
func (s *SitemapService) WriteSplit(dir string, data []byte) ([]string, error) {
	urls, err := s.ParseSitemap(data)
	if err != nil {
		return nil, err
	}
	if len(urls) == 0 {
		return nil, invalid("sitemap contains no URLs")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}

	buckets := s.Split(urls)
	names := make([]string, 0, len(buckets))
	for name := range buckets {
		if name != mainSitemapName {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	if _, ok := buckets[mainSitemapName]; ok {
		names = append([]string{mainSitemapName}, names...)
	}

	written := []string{}
	for _, name := range names {
		out, err := renderURLSet(buckets[name])
		if err != nil {
			return written, err
		}
		file := SitemapFileName(name)
		if err := writeSitemapFile(dir, file, out); err != nil {
			return written, err
		}
		written = append(written, file)
	}

	index, err := s.renderIndex(names)
	if err != nil {
		return written, err
	}
	if err := writeSitemapFile(dir, sitemapIndexFile, index); err != nil {
		return written, err
	}
	return append(written, sitemapIndexFile), nil
}

func writeSitemapFile(dir, name string, data []byte) error {
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// WriteAll writes the index, main and category sitemaps into dir and returns
// the file names written.
func (s *SitemapService) WriteAll(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}

	written := []string{}
	for _, name := range append([]string{mainSitemapName}, s.Categories()...) {
		data, err := s.Sitemap(name)
		if err != nil {
			return written, err
		}
		file := SitemapFileName(name)
		if err := writeSitemapFile(dir, file, data); err != nil {
			return written, err
		}
		written = append(written, file)
	}

	data, err := s.Index()
	if err != nil {
		return written, err
	}
	if err := writeSitemapFile(dir, sitemapIndexFile, data); err != nil {
		return written, err
	}
	return append(written, sitemapIndexFile), nil
}

// Categorize assigns a site URL to the sitemap it belongs in. Tool pages go to
// their catalog category, category landing pages (/finance, /health-tools...)
// to that category, everything else to main.
func (s *SitemapService) Categorize(rawURL string) string {
	path := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		path = u.Path
	}
	path = strings.TrimRight(strings.ToLower(path), "/")

	if id, ok := strings.CutPrefix(path, "/tools/"); ok {
		if t, found := s.byID[id]; found {
			return t.Category
		}
		return mainSitemapName
	}

	last := path[strings.LastIndex(path, "/")+1:]
	last = strings.TrimSuffix(last, "-tools")
	if _, ok := s.grouped[last]; ok {
		return last
	}
	return mainSitemapName
}

// SitemapFileName maps a sitemap name to its file, e.g. "finance" to sitemap-finance.xml.
func SitemapFileName(name string) string {
	return "sitemap-" + name + ".xml"
}

func marshalXML(v any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encoding sitemap: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
