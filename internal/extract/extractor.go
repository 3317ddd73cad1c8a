// Package extract parses raw article wikitext into typed candidate fields.
package extract

import (
	"regexp"
	"strings"

	"github.com/sneiksus/VINF2025/internal/models"
)

// infoboxMarker is the cheap prefilter token checked before any parsing.
const infoboxMarker = "{{infobox"

// fieldRule describes one keyed infobox field: where to find it and how to
// clean its raw value. Extraction logic is data, not control flow.
type fieldRule struct {
	name  string
	key   *regexp.Regexp
	clean func(e *Extractor, raw string) string
}

// Extractor handles wikitext parsing and field extraction.
type Extractor struct {
	introPattern    *regexp.Regexp
	infoboxPattern  *regexp.Regexp
	templatePattern *regexp.Regexp
	extLinkPattern  *regexp.Regexp
	wikiLinkPattern *regexp.Regexp
	citationPattern *regexp.Regexp
	htmlTagPattern  *regexp.Regexp
	spacePattern    *regexp.Regexp
	sentencePattern *regexp.Regexp
	fields          []fieldRule
}

// NewExtractor creates a new extractor instance.
func NewExtractor() *Extractor {
	e := &Extractor{
		// Intro span: everything before the first level-2 section heading.
		introPattern: regexp.MustCompile(`(?s)(.*?)(==[^=]|$)`),
		// Infobox block: opening through the first }} at the start of a line.
		// Deliberately non-recursive; nested {{...}} templates inside the
		// infobox can close the block early. Downstream counts depend on
		// this, so it stays a documented limitation.
		infoboxPattern:  regexp.MustCompile(`(?is)\{\{infobox\s+.*?\n\}\}`),
		templatePattern: regexp.MustCompile(`\{\{[^{}]*\}\}`),
		extLinkPattern:  regexp.MustCompile(`\[https?://[^\s\]]+\s*([^\]]*)\]`),
		// A wiki link renders its last pipe segment; [[target]] renders the
		// target itself.
		wikiLinkPattern: regexp.MustCompile(`\[\[(?:[^\]|]+\|)*([^\]|]+)\]\]`),
		citationPattern: regexp.MustCompile(`\[\d+\]`),
		htmlTagPattern:  regexp.MustCompile(`<.*?>`),
		spacePattern:    regexp.MustCompile(`\s+`),
		sentencePattern: regexp.MustCompile(`([^.!?]*[.!?])`),
	}

	e.fields = []fieldRule{
		{
			name:  "birth_date",
			key:   regexp.MustCompile(`(?i)birth[_ ]?date\s*=\s*([^\n|]+)`),
			clean: func(e *Extractor, raw string) string { return NormalizeBirthDate(raw) },
		},
		{
			name:  "occupation",
			key:   regexp.MustCompile(`(?i)occupation\s*=\s*([^\n|]+)`),
			clean: (*Extractor).cleanField,
		},
		{
			name:  "birthplace",
			key:   regexp.MustCompile(`(?i)birth_?place\s*=\s*([^\n|]+)`),
			clean: (*Extractor).cleanField,
		},
	}

	return e
}

// Eligible reports whether a page is worth parsing at all: main namespace,
// a body, and the infobox marker somewhere in it.
func (e *Extractor) Eligible(page *models.ArticlePage) bool {
	if page.Namespace != models.MainNamespace || page.Body == "" {
		return false
	}

	return strings.Contains(strings.ToLower(page.Body), infoboxMarker)
}

// Extract parses one article body into candidate fields. The second return
// is false when the article yields no infobox block or no usable value;
// such articles are dropped, never represented as empty extractions.
// JoinKey is left empty here: the resolver owns it.
func (e *Extractor) Extract(page *models.ArticlePage) (models.ExtractedFields, bool) {
	if !e.Eligible(page) {
		return models.ExtractedFields{}, false
	}

	intro := e.introSpan(page.Body)

	infobox := e.infoboxPattern.FindString(intro)
	if infobox == "" {
		return models.ExtractedFields{}, false
	}

	vals := make(map[string]string, len(e.fields))

	for _, rule := range e.fields {
		m := rule.key.FindStringSubmatch(infobox)
		if m == nil {
			vals[rule.name] = ""
			continue
		}

		vals[rule.name] = rule.clean(e, m[1])
	}

	fields := models.ExtractedFields{
		Description: e.description(page.Body),
		BirthDate:   vals["birth_date"],
		Occupation:  vals["occupation"],
		Birthplace:  vals["birthplace"],
	}

	if fields.Empty() {
		return models.ExtractedFields{}, false
	}

	return fields, true
}

// introSpan returns everything before the first level-2 section heading,
// or the whole text if there is none.
func (e *Extractor) introSpan(text string) string {
	m := e.introPattern.FindStringSubmatch(text)
	if m == nil {
		return text
	}

	return m[1]
}

// description derives the first sentence of the cleaned intro, computed on
// the body with all infobox blocks removed.
func (e *Extractor) description(body string) string {
	stripped := e.infoboxPattern.ReplaceAllString(body, "")
	intro := e.introSpan(stripped)

	return e.firstSentence(e.cleanWikitext(intro))
}

// cleanWikitext runs the full markup-cleaning pipeline: templates, external
// links, wiki links, citation markers, HTML tags, whitespace.
func (e *Extractor) cleanWikitext(text string) string {
	text = e.templatePattern.ReplaceAllString(text, "")
	text = e.extLinkPattern.ReplaceAllString(text, "${1}")
	text = e.wikiLinkPattern.ReplaceAllString(text, "${1}")
	text = e.citationPattern.ReplaceAllString(text, "")
	text = e.htmlTagPattern.ReplaceAllString(text, "")
	text = e.spacePattern.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}

// cleanField cleans a keyed infobox value: HTML tags, wiki links, templates.
// No sentence truncation for infobox values.
func (e *Extractor) cleanField(raw string) string {
	raw = e.htmlTagPattern.ReplaceAllString(raw, "")
	raw = e.wikiLinkPattern.ReplaceAllString(raw, "${1}")
	raw = e.templatePattern.ReplaceAllString(raw, "")

	return strings.TrimSpace(raw)
}

// firstSentence truncates cleaned text at the first ., ! or ?.
func (e *Extractor) firstSentence(text string) string {
	m := e.sentencePattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}

	return strings.TrimSpace(m[1])
}
