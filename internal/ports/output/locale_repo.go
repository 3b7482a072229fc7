package output

import (
	"context"

	"localekit/internal/domain/entities"
)

// MarkupSource reads a template as decoded text.
type MarkupSource interface {
	ReadMarkup(ctx context.Context, path string) (string, error)
}

// LocaleRepository persists flat key -> text dictionaries.
type LocaleRepository interface {
	// Load returns the non-empty top-level string entries of a locale file.
	Load(ctx context.Context, path string) (entities.Mapping, error)
	// Save replaces path atomically.
	Save(ctx context.Context, path string, m entities.Mapping) error
}

// DocumentRepository reads and writes whole JSON documents without
// reordering their keys.
type DocumentRepository interface {
	// ReadDocument returns the raw document. A missing file yields
	// (nil, false, nil).
	ReadDocument(ctx context.Context, path string) ([]byte, bool, error)
	// WriteDocument re-indents doc and replaces path atomically.
	WriteDocument(ctx context.Context, path string, doc []byte) error
	// EncodeValue renders a value as compact JSON without HTML escaping.
	EncodeValue(v any) ([]byte, error)
}

// OverridesSource loads the literal replacement set of a merge.
type OverridesSource interface {
	LoadOverrides(ctx context.Context, path string) (*entities.Overrides, error)
}
