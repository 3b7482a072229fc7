// Package filestore implements the file-backed output ports: template
// reading, flat locale dictionaries, whole JSON documents and TOML overrides.
package filestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"localekit/internal/ports/output"
)

// DefaultIndent matches the indentation of the extension's locale files.
const DefaultIndent = 4

var (
	_ output.MarkupSource       = (*Store)(nil)
	_ output.LocaleRepository   = (*Store)(nil)
	_ output.DocumentRepository = (*Store)(nil)
	_ output.OverridesSource    = (*Store)(nil)
)

// Store reads and writes files on the local filesystem. Writes go to a
// temporary file in the target directory which is then renamed over the
// target, so readers never observe a half-written file.
type Store struct {
	indent  string
	pretty  jsoniter.API
	compact jsoniter.API
}

// NewStore returns a Store writing JSON with the given indentation width.
func NewStore(indent int) *Store {
	if indent <= 0 {
		indent = DefaultIndent
	}
	return &Store{
		indent: strings.Repeat(" ", indent),
		pretty: jsoniter.Config{
			EscapeHTML:    false,
			SortMapKeys:   true,
			IndentionStep: indent,
		}.Froze(),
		compact: jsoniter.Config{
			EscapeHTML:  false,
			SortMapKeys: true,
		}.Froze(),
	}
}

func writeFileAtomic(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	name := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(name)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(name, 0o644); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Rename(name, path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	committed = true
	return nil
}
