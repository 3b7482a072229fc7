package filestore

import (
	"context"
	"fmt"
	"os"

	"localekit/internal/domain"
	"localekit/internal/domain/entities"
)

// Load reads the flat string entries of a locale file.
func (s *Store) Load(ctx context.Context, path string) (entities.Mapping, error) {
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
	var rec map[string]any
	if err := s.compact.Unmarshal(data, &rec); err != nil {
		return nil, domain.InputError(path, fmt.Errorf("decode locale: %w", err))
	}
	return recordToMapping(rec), nil
}

// Save writes m as a flat JSON object with sorted keys, literal non-ASCII
// text and a trailing newline.
func (s *Store) Save(ctx context.Context, path string, m entities.Mapping) error {
	data, err := s.encodeMapping(m)
	if err != nil {
		return domain.OutputError(path, err)
	}
	if err := writeFileAtomic(ctx, path, data); err != nil {
		return domain.OutputError(path, err)
	}
	return nil
}

func (s *Store) encodeMapping(m entities.Mapping) ([]byte, error) {
	if len(m) == 0 {
		return []byte("{}\n"), nil
	}
	data, err := s.pretty.Marshal(mappingToRecord(m))
	if err != nil {
		return nil, fmt.Errorf("encode locale: %w", err)
	}
	return append(data, '\n'), nil
}
