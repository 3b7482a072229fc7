package filestore

import (
	"context"
	"errors"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"localekit/internal/domain"
)

var errNotText = errors.New("not valid UTF-8 text")

// ReadMarkup reads a template as text. A UTF-8 byte order mark is dropped and
// BOM-marked UTF-16 is transcoded; anything else must already be UTF-8.
func (s *Store) ReadMarkup(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", domain.InputError(path, err)
	}
	text, err := decodeText(data)
	if err != nil {
		return "", domain.InputError(path, err)
	}
	return string(text), nil
}

func decodeText(data []byte) ([]byte, error) {
	out, _, err := transform.Bytes(unicode.BOMOverride(encoding.Nop.NewDecoder()), data)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(out) {
		return nil, errNotText
	}
	return out, nil
}
