package cli

import (
	"fmt"
	"io"

	"localekit/internal/domain/entities"
	"localekit/internal/ports/input"
)

func printExtracted(w io.Writer, n int) {
	fmt.Fprintf(w, "Extracted %d keys.\n", n)
}

func printMerged(w io.Writer, res *input.MergeResult) {
	fmt.Fprintf(w, "Merged %s: %d fields overwritten, %d tables, %d extra keys.\n",
		res.SettingsKey, res.Overwritten, res.Tables, res.Extra)
}

func printReport(w io.Writer, r *entities.CoverageReport) {
	fmt.Fprintf(w, "Language: %s\n", r.Language)
	fmt.Fprintf(w, "Declared keys: %d\n", r.Declared)
	printKeys(w, "Missing", r.Missing)
	printKeys(w, "Stale", r.Stale)
}

func printKeys(w io.Writer, label string, keys []entities.Key) {
	fmt.Fprintf(w, "%s (%d)\n", label, len(keys))
	for _, k := range keys {
		fmt.Fprintf(w, "  %s\n", k)
	}
}
