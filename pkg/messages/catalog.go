package messages

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/formbind/pkg/validator"
)

// DefaultLanguage is used when no language is configured explicitly.
const DefaultLanguage = "en"

// Catalog renders validation failures into human-readable text. Translations
// are keyed by language, then by dot-separated message key. A Catalog is
// immutable after construction and safe for concurrent use.
type Catalog struct {
	translations  map[string]map[string]any
	defaultLang   string
	fallbackToKey bool

	matcher    language.Matcher
	matchLangs []string
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithDefaultLanguage sets the language used when a requested language has no
// translations and no close match exists.
func WithDefaultLanguage(lang string) Option {
	return func(c *Catalog) {
		if lang != "" {
			c.defaultLang = lang
		}
	}
}

// WithoutKeyFallback makes Render return an empty string for missing keys
// instead of echoing the key back.
func WithoutKeyFallback() Option {
	return func(c *Catalog) {
		c.fallbackToKey = false
	}
}

// New constructs a Catalog from a language-keyed translation map, typically
// the output of ParseYAML.
func New(translations map[string]map[string]any, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		translations:  translations,
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
	}
	for _, opt := range opts {
		opt(c)
	}

	for lang, m := range translations {
		if lang == "" {
			return nil, ErrEmptyLanguage
		}
		if m == nil {
			return nil, fmt.Errorf("%w: %q", ErrNilTranslations, lang)
		}
	}

	// The default language sits at index 0 so unmatched requests land on it.
	c.matchLangs = append(c.matchLangs, c.defaultLang)
	for _, lang := range c.Languages() {
		if lang != c.defaultLang {
			c.matchLangs = append(c.matchLangs, lang)
		}
	}
	tags := make([]language.Tag, len(c.matchLangs))
	for i, lang := range c.matchLangs {
		tags[i] = language.Make(lang)
	}
	c.matcher = language.NewMatcher(tags)

	return c, nil
}

// Languages returns the language codes with translations, sorted.
func (c *Catalog) Languages() []string {
	langs := make([]string, 0, len(c.translations))
	for lang := range c.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Match resolves a requested language tag to the closest supported language,
// falling back to the default. "en-GB" matches an "en" catalog, "pt-BR"
// matches "pt", and so on.
func (c *Catalog) Match(lang string) string {
	if _, ok := c.translations[lang]; ok {
		return lang
	}
	_, idx, conf := c.matcher.Match(language.Make(lang))
	if conf == language.No {
		return c.defaultLang
	}
	return c.matchLangs[idx]
}

// Render produces the message for a single validation failure. Lookup order:
// the failure's translation key in the matched language, then the failure's
// built-in message, then the key itself unless WithoutKeyFallback is set.
// Placeholders in the form %{name} are substituted from the failure's
// translation values.
func (c *Catalog) Render(lang string, failure *validator.ValidationError) string {
	if failure == nil {
		return ""
	}

	if failure.TranslationKey != "" {
		if langMap, ok := c.translations[c.Match(lang)]; ok {
			if val, ok := lookup(langMap, failure.TranslationKey); ok {
				if s, ok := val.(string); ok {
					return substitute(s, failure.TranslationValues)
				}
			}
		}
	}

	if failure.Message != "" {
		return substitute(failure.Message, failure.TranslationValues)
	}
	if c.fallbackToKey {
		return failure.TranslationKey
	}
	return ""
}

// RenderAll renders every validation failure carried by err, in order. A nil
// err or one carrying no validation failures renders to nil.
func (c *Catalog) RenderAll(lang string, err error) []string {
	verrs := validator.ExtractValidationErrors(err)
	if len(verrs) == 0 {
		return nil
	}
	out := make([]string, 0, len(verrs))
	for i := range verrs {
		out = append(out, c.Render(lang, &verrs[i]))
	}
	return out
}

// RenderFields renders err's validation failures keyed by field name, the
// shape form UIs consume. Later failures for the same field win.
func (c *Catalog) RenderFields(lang string, err error) map[string]string {
	verrs := validator.ExtractValidationErrors(err)
	if len(verrs) == 0 {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for i := range verrs {
		out[verrs[i].Field] = c.Render(lang, &verrs[i])
	}
	return out
}

// lookup traverses a nested map by dot-separated key, so "validation.min"
// reaches m["validation"]["min"].
func lookup(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m
	for i, part := range parts {
		if i == len(parts)-1 {
			val, ok := current[part]
			return val, ok
		}
		next, ok := current[part].(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}
	return nil, false
}

var placeholderRe = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} placeholders with the corresponding translation
// values. Unknown placeholders are left intact.
func substitute(tmpl string, values map[string]any) string {
	if len(values) == 0 {
		return tmpl
	}
	return placeholderRe.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if val, ok := values[name]; ok {
			return fmt.Sprint(val)
		}
		return match
	})
}
