package filestore

import (
	"bytes"
	"context"
	"os"

	"github.com/pelletier/go-toml/v2"

	"localekit/internal/domain"
	"localekit/internal/domain/entities"
)

// LoadOverrides decodes a TOML overrides file. Unknown top-level keys are
// rejected so a misspelt table does not silently drop its values.
func (s *Store) LoadOverrides(ctx context.Context, path string) (*entities.Overrides, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.InputError(path, err)
	}
	data, err = decodeText(data)
	if err != nil {
		return nil, domain.InputError(path, err)
	}

	var ov entities.Overrides
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&ov); err != nil {
		return nil, domain.OverridesError(path, err)
	}
	return &ov, nil
}
