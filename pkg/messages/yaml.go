package messages

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseYAML parses catalog content where top-level keys are language codes
// and values are nested message maps:
//
//	en:
//	  validation:
//	    min_length: "%{field} must be at least %{min} characters"
//	de:
//	  validation:
//	    min_length: "%{field} muss mindestens %{min} Zeichen lang sein"
func ParseYAML(content []byte) (map[string]map[string]any, error) {
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrInvalidCatalog, err)
	}

	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		m, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q holds %T, want a map", ErrInvalidCatalog, lang, val)
		}
		result[lang] = m
	}

	if len(result) == 0 {
		return nil, ErrInvalidCatalog
	}
	return result, nil
}

// LoadYAML reads a catalog file and constructs a Catalog from it.
func LoadYAML(path string, opts ...Option) (*Catalog, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	translations, err := ParseYAML(content)
	if err != nil {
		return nil, err
	}
	return New(translations, opts...)
}
