package application

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"go.uber.org/zap"

	"localekit/internal/domain"
	"localekit/internal/ports/input"
	"localekit/internal/ports/output"
)

const tableStructureField = "tableStructure"

var _ input.MergeUseCase = (*MergeService)(nil)

// MergeService copies the reference locale's default settings into a
// translated locale and applies literal overrides on top.
type MergeService struct {
	docs        output.DocumentRepository
	overrides   output.OverridesSource
	settingsKey string
	log         *zap.Logger
}

// NewMergeService uses settingsKey when an overrides file does not name one.
func NewMergeService(
	docs output.DocumentRepository,
	overrides output.OverridesSource,
	settingsKey string,
	log *zap.Logger,
) *MergeService {
	if log == nil {
		log = zap.NewNop()
	}
	return &MergeService{docs: docs, overrides: overrides, settingsKey: settingsKey, log: log}
}

// MergeDefaults replaces the settings sub-document of the translated locale
// with the reference's, deep-merges the default overrides into it, replaces
// the table structure when one is given and sets the extra top-level keys.
// Key order of both documents is preserved.
func (s *MergeService) MergeDefaults(ctx context.Context, req input.MergeRequest) (*input.MergeResult, error) {
	ov, err := s.overrides.LoadOverrides(ctx, req.OverridesPath)
	if err != nil {
		return nil, err
	}
	if ov.SettingsKey == "" {
		ov.SettingsKey = s.settingsKey
	}
	if err := ov.Validate(); err != nil {
		return nil, domain.OverridesError(req.OverridesPath, err)
	}

	translated, err := s.readObject(ctx, req.TranslatedPath, true)
	if err != nil {
		return nil, err
	}
	reference, err := s.readObject(ctx, req.ReferencePath, false)
	if err != nil {
		return nil, err
	}

	key := ov.Key()
	keyPath := gjson.Escape(key)
	settings := []byte("{}")
	if ref := gjson.GetBytes(reference, keyPath); ref.Exists() {
		if !ref.IsObject() {
			return nil, domain.InputError(req.ReferencePath, fmt.Errorf("%s is not an object", key))
		}
		settings = []byte(ref.Raw)
	}

	res := &input.MergeResult{SettingsKey: key}
	settings, res.Overwritten, err = s.mergeValues(settings, "", ov.Defaults)
	if err != nil {
		return nil, domain.OverridesError(req.OverridesPath, err)
	}
	if len(ov.TableStructure) > 0 {
		if settings, err = s.setValue(settings, tableStructureField, ov.TableStructure); err != nil {
			return nil, domain.OverridesError(req.OverridesPath, err)
		}
		res.Tables = len(ov.TableStructure)
	}

	if translated, err = sjson.SetRawBytes(translated, keyPath, settings); err != nil {
		return nil, fmt.Errorf("merge: set %s: %w", key, err)
	}
	for _, k := range slices.Sorted(maps.Keys(ov.Extra)) {
		if translated, err = s.setValue(translated, gjson.Escape(k), ov.Extra[k]); err != nil {
			return nil, domain.OverridesError(req.OverridesPath, err)
		}
	}
	res.Extra = len(ov.Extra)

	out := req.OutputPath
	if out == "" {
		out = req.TranslatedPath
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("merge: %w", err)
	}
	if err := s.docs.WriteDocument(ctx, out, translated); err != nil {
		return nil, err
	}
	s.log.Info("default settings merged",
		zap.String("output", out),
		zap.String("settings_key", key),
		zap.Int("overwritten", res.Overwritten),
		zap.Int("tables", res.Tables),
		zap.Int("extra", res.Extra))
	return res, nil
}

func (s *MergeService) readObject(ctx context.Context, path string, optional bool) ([]byte, error) {
	doc, ok, err := s.docs.ReadDocument(ctx, path)
	if err != nil {
		return nil, err
	}
	if !ok {
		if optional {
			s.log.Debug("locale missing, starting empty", zap.String("path", path))
			return []byte("{}"), nil
		}
		return nil, domain.InputError(path, errors.New("file does not exist"))
	}
	if !gjson.ValidBytes(doc) || !gjson.ParseBytes(doc).IsObject() {
		return nil, domain.InputError(path, errors.New("not a JSON object"))
	}
	return doc, nil
}

// mergeValues writes values under prefix. Maps merge into existing objects,
// everything else overwrites the leaf. It returns the number of leaves set.
func (s *MergeService) mergeValues(doc []byte, prefix string, values map[string]any) ([]byte, int, error) {
	count := 0
	for _, k := range slices.Sorted(maps.Keys(values)) {
		path := gjson.Escape(k)
		if prefix != "" {
			path = prefix + "." + path
		}
		if nested, ok := values[k].(map[string]any); ok && gjson.GetBytes(doc, path).IsObject() {
			var (
				n   int
				err error
			)
			if doc, n, err = s.mergeValues(doc, path, nested); err != nil {
				return nil, 0, err
			}
			count += n
			continue
		}
		var err error
		if doc, err = s.setValue(doc, path, values[k]); err != nil {
			return nil, 0, err
		}
		count++
	}
	return doc, count, nil
}

func (s *MergeService) setValue(doc []byte, path string, v any) ([]byte, error) {
	raw, err := s.docs.EncodeValue(v)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", path, err)
	}
	out, err := sjson.SetRawBytes(doc, path, raw)
	if err != nil {
		return nil, fmt.Errorf("set %s: %w", path, err)
	}
	return out, nil
}
