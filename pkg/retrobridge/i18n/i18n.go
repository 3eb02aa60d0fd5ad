package i18n

import (
	"embed"
	"encoding/json"
	"path"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed messages/*.toml
var embeddedMessages embed.FS

var (
	mu sync.RWMutex
	i  *I18N
)

type I18N struct {
	localizer *i18n.Localizer
	bundle    *i18n.Bundle
}

type MessageFile struct {
	Name    string
	Content []byte
}

func newBundle() *i18n.Bundle {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return bundle
}

// DefaultMessageFiles returns the translations shipped with the bridge.
func DefaultMessageFiles() ([]MessageFile, error) {
	entries, err := embeddedMessages.ReadDir("messages")
	if err != nil {
		return nil, err
	}

	files := make([]MessageFile, 0, len(entries))
	for _, entry := range entries {
		content, err := embeddedMessages.ReadFile(path.Join("messages", entry.Name()))
		if err != nil {
			return nil, err
		}
		files = append(files, MessageFile{Name: entry.Name(), Content: content})
	}
	return files, nil
}

// InitI18N loads the embedded translations followed by messageFilePaths, so
// files on disk can override or extend the defaults.
func InitI18N(messageFilePaths []string) error {
	bundle := newBundle()

	defaults, err := DefaultMessageFiles()
	if err != nil {
		return err
	}
	for _, messageFile := range defaults {
		if _, err := bundle.ParseMessageFileBytes(messageFile.Content, messageFile.Name); err != nil {
			return err
		}
	}

	for _, messageFile := range messageFilePaths {
		_, err := bundle.LoadMessageFile(messageFile)
		if err != nil {
			return err
		}
	}

	set(bundle, language.English)
	return nil
}

func InitI18NFromBytes(messageFiles []MessageFile) error {
	bundle := newBundle()

	for _, messageFile := range messageFiles {
		_, err := bundle.ParseMessageFileBytes(messageFile.Content, messageFile.Name)
		if err != nil {
			return err
		}
	}

	set(bundle, language.English)
	return nil
}

func set(bundle *i18n.Bundle, lang language.Tag) {
	localizer := i18n.NewLocalizer(bundle, lang.String(), language.English.String())

	mu.Lock()
	i = &I18N{localizer: localizer, bundle: bundle}
	mu.Unlock()
}

func SetLanguage(lang language.Tag) {
	mu.RLock()
	current := i
	mu.RUnlock()

	if current == nil {
		return
	}
	set(current.bundle, lang)
}

func SetWithCode(code string) error {
	lang, err := language.Parse(code)
	if err != nil {
		return err
	}
	SetLanguage(lang)
	return nil
}

func localizer() *i18n.Localizer {
	mu.RLock()
	defer mu.RUnlock()
	if i == nil {
		return nil
	}
	return i.localizer
}

// Message is an alias for i18n.Message to avoid requiring users to import go-i18n directly
type Message = i18n.Message

// Localize retrieves a localized string using the go-i18n struct pattern.
// When no bundle is loaded, or the current locale has no translation, the
// message's Other text is returned.
func Localize(message *Message, templateData map[string]interface{}) string {
	if message == nil {
		return "I18N Error: nil message"
	}

	l := localizer()
	if l == nil {
		return message.Other
	}

	config := &i18n.LocalizeConfig{
		DefaultMessage: message,
	}

	if templateData != nil {
		config.TemplateData = templateData
	}

	msg, err := l.Localize(config)
	if err != nil {
		if message.Other != "" {
			return message.Other
		}
		return "I18N Error"
	}
	return msg
}
