// Package i18n renders selection messages as localized text.
//
// Phrase books are embedded JSON files with %{name} placeholders. Locale
// negotiation accepts Accept-Language style strings.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/valyala/fasttemplate"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ticket-search/roundtrip-analyzer/internal/domain"
)

// DefaultLocale is used when nothing else matches.
const DefaultLocale = "en"

const (
	startTag = "%{"
	endTag   = "}"
)

//go:embed locales/*.json
var localeFS embed.FS

// phrasebook holds one locale's phrases.
type phrasebook struct {
	Locale  string            `json:"locale"`
	Phrases map[string]string `json:"phrases"`

	// Terms translates English parameter values such as month names
	Terms map[string]string `json:"terms"`

	tag      language.Tag
	terms    *strings.Replacer
	numerals *message.Printer
}

// Translator implements domain.Translator over the embedded phrase books.
type Translator struct {
	books   []*phrasebook
	matcher language.Matcher
}

// New loads the embedded phrase books. defaultLocale must be one of them.
func New(defaultLocale string) (*Translator, error) {
	if defaultLocale == "" {
		defaultLocale = DefaultLocale
	}

	books, err := loadPhrasebooks()
	if err != nil {
		return nil, err
	}

	// The matcher falls back to its first tag.
	idx := -1
	for i, b := range books {
		if b.Locale == defaultLocale {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("i18n: unsupported default locale %q", defaultLocale)
	}
	books[0], books[idx] = books[idx], books[0]

	tags := make([]language.Tag, len(books))
	for i, b := range books {
		tags[i] = b.tag
	}

	return &Translator{books: books, matcher: language.NewMatcher(tags)}, nil
}

// MustNew is New that panics on error.
func MustNew(defaultLocale string) *Translator {
	t, err := New(defaultLocale)
	if err != nil {
		panic(err)
	}
	return t
}

// Locales returns the supported locales, default first.
func (t *Translator) Locales() []string {
	out := make([]string, len(t.books))
	for i, b := range t.books {
		out[i] = b.Locale
	}
	return out
}

// Match resolves an Accept-Language value or a bare locale to a supported locale.
func (t *Translator) Match(acceptLanguage string) string {
	return t.book(acceptLanguage).Locale
}

// Translate implements domain.Translator. Unknown keys render as the key itself;
// placeholders without a parameter are left untouched.
func (t *Translator) Translate(locale string, msg domain.Message) string {
	book := t.book(locale)

	phrase, ok := book.Phrases[string(msg.Key)]
	if !ok {
		return string(msg.Key)
	}

	return fasttemplate.ExecuteFuncString(phrase, startTag, endTag, func(w io.Writer, name string) (int, error) {
		value, ok := msg.Params[name]
		if !ok {
			return w.Write([]byte(startTag + name + endTag))
		}
		return w.Write([]byte(book.format(value)))
	})
}

func (t *Translator) book(locale string) *phrasebook {
	if locale == "" {
		return t.books[0]
	}
	tags, _, err := language.ParseAcceptLanguage(locale)
	if err != nil || len(tags) == 0 {
		return t.books[0]
	}
	_, idx, confidence := t.matcher.Match(tags...)
	if confidence == language.No {
		return t.books[0]
	}
	return t.books[idx]
}

// format renders a parameter value for this locale.
func (b *phrasebook) format(value any) string {
	switch v := value.(type) {
	case string:
		return b.terms.Replace(v)
	case float64, float32, int, int64:
		return b.numerals.Sprint(v)
	default:
		return fmt.Sprint(v)
	}
}

func loadPhrasebooks() ([]*phrasebook, error) {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("i18n: list locales: %w", err)
	}

	books := make([]*phrasebook, 0, len(entries))
	for _, entry := range entries {
		raw, err := localeFS.ReadFile(path.Join("locales", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", entry.Name(), err)
		}
		book, err := parsePhrasebook(raw)
		if err != nil {
			return nil, fmt.Errorf("i18n: %s: %w", entry.Name(), err)
		}
		books = append(books, book)
	}

	sort.Slice(books, func(i, j int) bool { return books[i].Locale < books[j].Locale })
	return books, nil
}

// parsePhrasebook decodes a phrase book and checks it covers every message key.
func parsePhrasebook(raw []byte) (*phrasebook, error) {
	var book phrasebook
	if err := json.Unmarshal(raw, &book); err != nil {
		return nil, err
	}

	tag, err := language.Parse(book.Locale)
	if err != nil {
		return nil, fmt.Errorf("locale %q: %w", book.Locale, err)
	}
	book.tag = tag

	for _, key := range domain.MessageKeys {
		if _, ok := book.Phrases[string(key)]; !ok {
			return nil, fmt.Errorf("missing phrase %q", key)
		}
	}

	// Longest terms first so "all year" wins over any shorter overlap.
	terms := make([]string, 0, len(book.Terms))
	for term := range book.Terms {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if len(terms[i]) != len(terms[j]) {
			return len(terms[i]) > len(terms[j])
		}
		return terms[i] < terms[j]
	})
	pairs := make([]string, 0, 2*len(terms))
	for _, term := range terms {
		pairs = append(pairs, term, book.Terms[term])
	}
	book.terms = strings.NewReplacer(pairs...)
	book.numerals = message.NewPrinter(tag)

	return &book, nil
}

var _ domain.Translator = (*Translator)(nil)
