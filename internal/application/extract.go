package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"localekit/internal/domain/entities"
	"localekit/internal/ports/input"
	"localekit/internal/ports/output"
	"localekit/pkg/markup"
)

// Extractor builds a Mapping from a template by applying the element-content,
// leading-attribute and trailing-attribute strategies in that order. A key
// produced by several strategies or elements keeps the last text written.
type Extractor struct {
	marker     string
	strategies []markup.Strategy
}

func NewExtractor(marker string) *Extractor {
	if marker == "" {
		marker = markup.DefaultMarker
	}
	return &Extractor{
		marker: marker,
		strategies: []markup.Strategy{
			markup.ElementContent,
			markup.LeadingAttribute,
			markup.TrailingAttribute,
		},
	}
}

// Marker is the attribute the extractor looks for.
func (e *Extractor) Marker() string {
	return e.marker
}

// Extract never fails: unmatched markup is simply not extracted.
func (e *Extractor) Extract(doc string) entities.Mapping {
	m := entities.NewMapping()
	for _, strategy := range e.strategies {
		m.Merge(toEntries(strategy(doc, e.marker)))
	}
	return m
}

func toEntries(matches []markup.Match) []entities.Entry {
	entries := make([]entities.Entry, len(matches))
	for i, mt := range matches {
		entries[i] = entities.Entry{Key: entities.Key(mt.Key), Text: mt.Text}
	}
	return entries
}

var _ input.ExtractUseCase = (*ExtractService)(nil)

type ExtractService struct {
	markup  output.MarkupSource
	locales output.LocaleRepository
	marker  string
	log     *zap.Logger
}

func NewExtractService(
	markupSource output.MarkupSource,
	locales output.LocaleRepository,
	marker string,
	log *zap.Logger,
) *ExtractService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ExtractService{
		markup:  markupSource,
		locales: locales,
		marker:  marker,
		log:     log,
	}
}

// Extract reads the template, extracts its dictionary and writes it. Nothing
// is written when the template cannot be read.
func (s *ExtractService) Extract(ctx context.Context, req input.ExtractRequest) (entities.Mapping, error) {
	doc, err := s.markup.ReadMarkup(ctx, req.InputPath)
	if err != nil {
		return nil, err
	}

	marker := req.Marker
	if marker == "" {
		marker = s.marker
	}
	extractor := NewExtractor(marker)
	m := extractor.Extract(doc)
	s.log.Debug("markup extracted",
		zap.String("input", req.InputPath),
		zap.String("marker", extractor.Marker()),
		zap.Int("keys", len(m)))

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	if err := s.locales.Save(ctx, req.OutputPath, m); err != nil {
		return nil, err
	}
	s.log.Info("locale written", zap.String("output", req.OutputPath), zap.Int("keys", len(m)))
	return m, nil
}
