package i18n

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"localekit/internal/domain"
	"localekit/internal/ports/output"
)

// Ensure the adapters implement their output ports.
var (
	_ output.Catalog       = (*Catalog)(nil)
	_ output.CatalogLoader = (*Loader)(nil)
)

// Catalog is a thin wrapper around a go-i18n Bundle holding one locale.
type Catalog struct {
	bundle *i18n.Bundle
	tag    language.Tag
	ids    []string
}

// NewCatalog builds a Catalog for tag from flat key -> text messages.
// The bundle's default language is tag itself, so lookups never fall back
// to another locale.
func NewCatalog(tag language.Tag, messages map[string]string) (*Catalog, error) {
	bundle := i18n.NewBundle(tag)
	msgs := make([]*i18n.Message, 0, len(messages))
	ids := make([]string, 0, len(messages))
	for id, text := range messages {
		msgs = append(msgs, &i18n.Message{ID: id, Other: text})
		ids = append(ids, id)
	}
	if err := bundle.AddMessages(tag, msgs...); err != nil {
		return nil, fmt.Errorf("i18n: add messages for %s: %w", tag, err)
	}
	return &Catalog{bundle: bundle, tag: tag, ids: ids}, nil
}

func (c *Catalog) Language() string {
	return c.tag.String()
}

// Has reports whether key resolves in this locale. A message whose text is
// not a valid template still counts as present.
func (c *Catalog) Has(key string) bool {
	if key == "" {
		return false
	}
	localizer := i18n.NewLocalizer(c.bundle, c.tag.String())
	_, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
	var notFound *i18n.MessageNotFoundErr
	return !errors.As(err, &notFound)
}

func (c *Catalog) Keys() []string {
	return append([]string(nil), c.ids...)
}

// Loader reads locale files through a LocaleRepository and wraps them in a
// Catalog.
type Loader struct {
	locales         output.LocaleRepository
	defaultLanguage language.Tag
}

// NewLoader returns a Loader that falls back to defaultLocale (e.g. "en")
// when a file name is not a language tag.
func NewLoader(locales output.LocaleRepository, defaultLocale string) *Loader {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}
	return &Loader{locales: locales, defaultLanguage: tag}
}

func (l *Loader) LoadCatalog(ctx context.Context, path, lang string) (output.Catalog, error) {
	tag, err := l.resolveTag(path, lang)
	if err != nil {
		return nil, domain.InputError(path, err)
	}
	m, err := l.locales.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	messages := make(map[string]string, len(m))
	for k, v := range m {
		messages[string(k)] = v
	}
	c, err := NewCatalog(tag, messages)
	if err != nil {
		return nil, domain.InputError(path, err)
	}
	return c, nil
}

// resolveTag prefers an explicit lang, then the file name ("zh-cn.json" ->
// zh-CN), then the default language.
func (l *Loader) resolveTag(path, lang string) (language.Tag, error) {
	if lang != "" {
		tag, err := language.Parse(lang)
		if err != nil {
			return language.Und, fmt.Errorf("language %q: %w", lang, err)
		}
		return tag, nil
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if tag, err := language.Parse(strings.ReplaceAll(base, "_", "-")); err == nil {
		return tag, nil
	}
	return l.defaultLanguage, nil
}
