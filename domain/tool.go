package domain

type Tool struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Category    string `json:"category" yaml:"category"`
	Href        string `json:"href" yaml:"href"`
	URL         string `json:"url" yaml:"-"`
}

type Catalog struct {
	Tools []Tool `yaml:"tools"`
}

type SitemapURL struct {
	Loc        string
	LastMod    string
	ChangeFreq string
	Priority   string
}
