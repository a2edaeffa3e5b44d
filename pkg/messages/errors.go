package messages

import "errors"

var (
	ErrInvalidCatalog  = errors.New("messages: invalid catalog content")
	ErrEmptyLanguage   = errors.New("messages: empty language code")
	ErrNilTranslations = errors.New("messages: nil translations for language")
)
