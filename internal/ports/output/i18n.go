package output

import "context"

// Catalog exposes the messages of a single locale.
type Catalog interface {
	// Language is the catalog's language tag.
	Language() string
	// Has reports whether a message exists for key in this locale.
	Has(key string) bool
	// Keys lists every message id in the catalog.
	Keys() []string
}

// CatalogLoader builds a Catalog from a locale file. lang may be empty, in
// which case the tag is derived from the file name.
type CatalogLoader interface {
	LoadCatalog(ctx context.Context, path, lang string) (Catalog, error)
}
