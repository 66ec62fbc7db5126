package domain

type CaseConversionInput struct {
	Text string `json:"text"`
}

type CaseConversionResult struct {
	Uppercase    string `json:"uppercase"`
	Lowercase    string `json:"lowercase"`
	TitleCase    string `json:"title_case"`
	SentenceCase string `json:"sentence_case"`
	CamelCase    string `json:"camel_case"`
	PascalCase   string `json:"pascal_case"`
	SnakeCase    string `json:"snake_case"`
	KebabCase    string `json:"kebab_case"`
	Alternating  string `json:"alternating_case"`
	Inverse      string `json:"inverse_case"`
}
