package input

import (
	"context"

	"localekit/internal/domain/entities"
)

// ExtractRequest names the template to scan and the dictionary to write.
type ExtractRequest struct {
	InputPath  string
	OutputPath string
	// Marker overrides the configured marker attribute when set.
	Marker string
}

type ExtractUseCase interface {
	Extract(ctx context.Context, req ExtractRequest) (entities.Mapping, error)
}

// MergeRequest names the locale files and overrides of a default-settings
// merge. OutputPath defaults to TranslatedPath.
type MergeRequest struct {
	TranslatedPath string
	ReferencePath  string
	OverridesPath  string
	OutputPath     string
}

// MergeResult counts what a merge changed.
type MergeResult struct {
	SettingsKey string
	Overwritten int
	Tables      int
	Extra       int
}

type MergeUseCase interface {
	MergeDefaults(ctx context.Context, req MergeRequest) (*MergeResult, error)
}

// CheckRequest names the template and locale file to compare. Language
// overrides the tag derived from the locale file name.
type CheckRequest struct {
	MarkupPath string
	LocalePath string
	Language   string
	Marker     string
}

type CheckUseCase interface {
	Check(ctx context.Context, req CheckRequest) (*entities.CoverageReport, error)
}
