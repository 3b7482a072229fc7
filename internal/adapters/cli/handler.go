package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"localekit/internal/domain"
	"localekit/internal/ports/input"
)

// Handler runs commands using use cases.
type Handler struct {
	extractUseCase input.ExtractUseCase
	mergeUseCase   input.MergeUseCase
	checkUseCase   input.CheckUseCase
}

// NewHandler creates a Handler.
func NewHandler(
	extractUseCase input.ExtractUseCase,
	mergeUseCase input.MergeUseCase,
	checkUseCase input.CheckUseCase,
) *Handler {
	return &Handler{
		extractUseCase: extractUseCase,
		mergeUseCase:   mergeUseCase,
		checkUseCase:   checkUseCase,
	}
}

func (h *Handler) HandleExtract(cmd *cobra.Command, req input.ExtractRequest) error {
	m, err := h.extractUseCase.Extract(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}
	printExtracted(cmd.OutOrStdout(), len(m))
	return nil
}

func (h *Handler) HandleMerge(cmd *cobra.Command, req input.MergeRequest) error {
	res, err := h.mergeUseCase.MergeDefaults(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("merge-defaults: %w", err)
	}
	printMerged(cmd.OutOrStdout(), res)
	return nil
}

func (h *Handler) HandleCheck(cmd *cobra.Command, req input.CheckRequest, strict bool) error {
	report, err := h.checkUseCase.Check(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}
	printReport(cmd.OutOrStdout(), report)
	if strict && !report.Complete() {
		return fmt.Errorf("check: %w: %d of %d", domain.ErrMissingKeys, len(report.Missing), report.Declared)
	}
	return nil
}
