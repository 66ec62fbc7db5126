package service

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"calculator-api/domain"
)

var (
	titleWordPattern     = regexp.MustCompile(`\w\S*`)
	sentenceStartPattern = regexp.MustCompile(`(^\s*\w|[.!?]\s*\w)`)
	nonWordPattern       = regexp.MustCompile(`[^\w\s]`)
	whitespacePattern    = regexp.MustCompile(`\s+`)
)

// caseMapper bundles the language-neutral casers. Casers keep state, so a
// mapper belongs to a single conversion.
type caseMapper struct {
	upper cases.Caser
	lower cases.Caser
}

func newCaseMapper() *caseMapper {
	return &caseMapper{
		upper: cases.Upper(language.Und),
		lower: cases.Lower(language.Und),
	}
}

func (m *caseMapper) capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError && size <= 1 {
		return word
	}
	return m.upper.String(word[:size]) + m.lower.String(word[size:])
}

// ConvertCase maps text to its ten case variants. Input is NFC-normalised first.
func ConvertCase(input domain.CaseConversionInput) (domain.CaseConversionResult, error) {
	if input.Text == "" {
		return domain.CaseConversionResult{}, invalid("text is empty")
	}
	if utf8.RuneCountInString(input.Text) > MaxTextLength {
		return domain.CaseConversionResult{}, invalid("text exceeds %d characters", MaxTextLength)
	}

	text := norm.NFC.String(input.Text)
	m := newCaseMapper()
	words := programmingWords(text)

	return domain.CaseConversionResult{
		Uppercase:    m.upper.String(text),
		Lowercase:    m.lower.String(text),
		TitleCase:    m.titleCase(text),
		SentenceCase: m.sentenceCase(text),
		CamelCase:    m.camelCase(words),
		PascalCase:   m.pascalCase(words),
		SnakeCase:    m.joinLower(words, "_"),
		KebabCase:    m.joinLower(words, "-"),
		Alternating:  AlternatingCase(text),
		Inverse:      InverseCase(text),
	}, nil
}

func (m *caseMapper) titleCase(text string) string {
	return titleWordPattern.ReplaceAllStringFunc(text, m.capitalize)
}

func (m *caseMapper) sentenceCase(text string) string {
	return sentenceStartPattern.ReplaceAllStringFunc(m.lower.String(text), m.upper.String)
}

// programmingWords strips punctuation, collapses whitespace and splits on spaces.
func programmingWords(text string) []string {
	cleaned := nonWordPattern.ReplaceAllString(text, "")
	cleaned = strings.TrimSpace(whitespacePattern.ReplaceAllString(cleaned, " "))
	if cleaned == "" {
		return nil
	}
	return strings.Split(cleaned, " ")
}

func (m *caseMapper) camelCase(words []string) string {
	var b strings.Builder
	for i, w := range words {
		if i == 0 {
			b.WriteString(m.lower.String(w))
			continue
		}
		b.WriteString(m.capitalize(w))
	}
	return b.String()
}

func (m *caseMapper) pascalCase(words []string) string {
	var b strings.Builder
	for _, w := range words {
		b.WriteString(m.capitalize(w))
	}
	return b.String()
}

func (m *caseMapper) joinLower(words []string, sep string) string {
	return m.lower.String(strings.Join(words, sep))
}

// AlternatingCase lowercases even character positions and uppercases odd ones,
// ignoring the original case.
func AlternatingCase(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	i := 0
	for _, r := range text {
		if i%2 == 0 {
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(unicode.ToUpper(r))
		}
		i++
	}
	return b.String()
}

// InverseCase flips the case of every letter; other characters pass through.
func InverseCase(text string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsUpper(r):
			return unicode.ToLower(r)
		case unicode.IsLower(r):
			return unicode.ToUpper(r)
		default:
			return r
		}
	}, text)
}
