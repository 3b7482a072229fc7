package application

import (
	"context"
	"slices"

	"go.uber.org/zap"

	"localekit/internal/domain/entities"
	"localekit/internal/ports/input"
	"localekit/internal/ports/output"
)

var _ input.CheckUseCase = (*CheckService)(nil)

type CheckService struct {
	markup   output.MarkupSource
	catalogs output.CatalogLoader
	marker   string
	log      *zap.Logger
}

func NewCheckService(markupSource output.MarkupSource, catalogs output.CatalogLoader, marker string, log *zap.Logger) *CheckService {
	if log == nil {
		log = zap.NewNop()
	}
	return &CheckService{markup: markupSource, catalogs: catalogs, marker: marker, log: log}
}

// Check reports template keys the locale cannot resolve and locale keys the
// template no longer declares.
func (s *CheckService) Check(ctx context.Context, req input.CheckRequest) (*entities.CoverageReport, error) {
	doc, err := s.markup.ReadMarkup(ctx, req.MarkupPath)
	if err != nil {
		return nil, err
	}
	marker := req.Marker
	if marker == "" {
		marker = s.marker
	}
	declared := NewExtractor(marker).Extract(doc)

	catalog, err := s.catalogs.LoadCatalog(ctx, req.LocalePath, req.Language)
	if err != nil {
		return nil, err
	}

	report := &entities.CoverageReport{
		Language: catalog.Language(),
		Declared: len(declared),
	}
	for _, k := range declared.Keys() {
		if !catalog.Has(string(k)) {
			report.Missing = append(report.Missing, k)
		}
	}
	keys := catalog.Keys()
	slices.Sort(keys)
	for _, k := range keys {
		if !declared.Has(entities.Key(k)) {
			report.Stale = append(report.Stale, entities.Key(k))
		}
	}

	s.log.Debug("coverage checked",
		zap.String("locale", req.LocalePath),
		zap.String("language", report.Language),
		zap.Int("declared", report.Declared),
		zap.Int("missing", len(report.Missing)),
		zap.Int("stale", len(report.Stale)))
	return report, nil
}
