package responder

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"vaccine-village-go/internal/model"
)

// DefaultLanguage is the primary language; every topic has content in it.
const DefaultLanguage = "en"

// Response is a canned answer for one (topic, language) pair.
type Response struct {
	Content    string           `json:"content"`
	Confidence model.Confidence `json:"confidence"`
	Sources    []string         `json:"sources,omitempty"`
}

// Language describes a supported language code.
type Language struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"nativeName"`
}

// Resolution is the outcome of a catalog lookup.
type Resolution struct {
	Topic    Topic
	Language string // code the request resolved to
	Response Response
	// Untranslated is set when primary-language content was served, with a
	// notice, to a supported language that has no table of its own.
	Untranslated bool
}

// Catalog holds the static response tables. It is never mutated after
// construction and is safe for concurrent use.
type Catalog struct {
	primary   string
	languages []Language
	tables    map[string]map[Topic]Response
	notices   map[string]string
}

// NewCatalog validates and builds a catalog. The primary table must cover
// every topic; other tables may be partial.
func NewCatalog(primary string, languages []Language, tables map[string]map[Topic]Response, notices map[string]string) (*Catalog, error) {
	if primary == "" {
		return nil, errors.New("primary language is required")
	}
	primaryTable, ok := tables[primary]
	if !ok {
		return nil, fmt.Errorf("no response table for primary language %q", primary)
	}
	for _, topic := range Topics {
		resp, ok := primaryTable[topic]
		if !ok || strings.TrimSpace(resp.Content) == "" {
			return nil, fmt.Errorf("primary language %q has no content for topic %q", primary, topic)
		}
	}

	supported := make(map[string]struct{}, len(languages))
	for _, l := range languages {
		supported[l.Code] = struct{}{}
	}
	if _, ok := supported[primary]; !ok {
		return nil, fmt.Errorf("primary language %q is not in the supported list", primary)
	}

	for code, table := range tables {
		if _, ok := supported[code]; !ok {
			return nil, fmt.Errorf("response table for unsupported language %q", code)
		}
		for topic, resp := range table {
			if !topic.Known() {
				return nil, fmt.Errorf("language %q: unknown topic %q", code, topic)
			}
			if strings.TrimSpace(resp.Content) == "" {
				return nil, fmt.Errorf("language %q, topic %q: empty content", code, topic)
			}
			if !resp.Confidence.Valid() {
				return nil, fmt.Errorf("language %q, topic %q: invalid confidence %q", code, topic, resp.Confidence)
			}
			if resp.Sources != nil && len(resp.Sources) == 0 {
				return nil, fmt.Errorf("language %q, topic %q: sources must be omitted or non-empty", code, topic)
			}
		}
	}

	return &Catalog{
		primary:   primary,
		languages: slices.Clone(languages),
		tables:    tables,
		notices:   notices,
	}, nil
}

// Primary returns the primary language code.
func (c *Catalog) Primary() string { return c.primary }

// Languages returns the supported languages in display order.
func (c *Catalog) Languages() []Language { return slices.Clone(c.languages) }

// Supports reports whether code is a supported language code.
func (c *Catalog) Supports(code string) bool {
	_, ok := c.language(normalizeCode(code))
	return ok
}

// HasTable reports whether code has dedicated content.
func (c *Catalog) HasTable(code string) bool {
	_, ok := c.tables[normalizeCode(code)]
	return ok
}

// Lookup resolves the canned response for topic in the requested language.
// Unrecognized codes are served as the primary language.
func (c *Catalog) Lookup(topic Topic, code string) Resolution {
	code = normalizeCode(code)
	if _, ok := c.language(code); !ok {
		code = c.primary
	}

	if table, ok := c.tables[code]; ok {
		if resp, ok := table[topic]; ok {
			return Resolution{Topic: topic, Language: code, Response: clone(resp)}
		}
		if resp, ok := table[TopicDefault]; ok {
			return Resolution{Topic: topic, Language: code, Response: clone(resp)}
		}
		// Table without a default entry: primary content, no notice.
		return Resolution{Topic: topic, Language: code, Response: clone(c.primaryResponse(topic))}
	}

	resp := clone(c.primaryResponse(topic))
	resp.Content = c.UntranslatedNotice(code) + "\n\n" + resp.Content
	return Resolution{Topic: topic, Language: code, Response: resp, Untranslated: true}
}

// UntranslatedNotice renders the "translation in progress" notice for code:
// the canned native line, when one exists, followed by the English line.
func (c *Catalog) UntranslatedNotice(code string) string {
	code = normalizeCode(code)
	name := code
	if l, ok := c.language(code); ok {
		name = l.Name
		if l.NativeName != "" && l.NativeName != l.Name {
			name = fmt.Sprintf("%s (%s)", l.Name, l.NativeName)
		}
	}
	english := fmt.Sprintf("Translation to %s is in progress. Showing content in English.", name)
	if native, ok := c.notices[code]; ok && native != "" {
		return native + "\n" + english
	}
	return english
}

func (c *Catalog) primaryResponse(topic Topic) Response {
	table := c.tables[c.primary]
	if resp, ok := table[topic]; ok {
		return resp
	}
	return table[TopicDefault]
}

func (c *Catalog) language(code string) (Language, bool) {
	for _, l := range c.languages {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}

func normalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

func clone(r Response) Response {
	r.Sources = slices.Clone(r.Sources)
	return r
}
