package filestore

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	"localekit/internal/domain"
)

var errInvalidDocument = errors.New("document is not valid JSON")

// ReadDocument returns the raw bytes of a JSON document, minus any byte
// order mark.
func (s *Store) ReadDocument(ctx context.Context, path string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, domain.InputError(path, err)
	}
	data, err = decodeText(data)
	if err != nil {
		return nil, false, domain.InputError(path, err)
	}
	return data, true, nil
}

// WriteDocument re-indents doc, keeping its key order, and writes it.
func (s *Store) WriteDocument(ctx context.Context, path string, doc []byte) error {
	if !gjson.ValidBytes(doc) {
		return domain.OutputError(path, errInvalidDocument)
	}
	// Width 0 keeps every array element on its own line.
	out := pretty.PrettyOptions(doc, &pretty.Options{
		Width:    0,
		Indent:   s.indent,
		SortKeys: false,
	})
	if err := writeFileAtomic(ctx, path, out); err != nil {
		return domain.OutputError(path, err)
	}
	return nil
}

// EncodeValue renders v as compact JSON. '<', '>' and '&' are kept literal
// since locale values carry prompt markup.
func (s *Store) EncodeValue(v any) ([]byte, error) {
	return s.compact.Marshal(v)
}
