package cli

import (
	"github.com/spf13/cobra"

	"localekit/internal/ports/input"
)

func (a *App) newExtractCmd() *cobra.Command {
	var marker string
	cmd := &cobra.Command{
		Use:   "extract <input-path> <output-path>",
		Short: "Extract translatable strings from a template into a JSON dictionary",
		Long: `Scans the template for the marker attribute and writes every key with its
source text. Element content is captured up to the next closing tag, and
bracket-scoped keys such as "[title]save" take the value of the named
attribute of the same tag. When a key is found more than once, the last
occurrence wins.`,
		Example: `  localekit extract assets/templates/index.html assets/locales/zh-cn.json`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.handler.HandleExtract(cmd, input.ExtractRequest{
				InputPath:  args[0],
				OutputPath: args[1],
				Marker:     marker,
			})
		},
	}
	cmd.Flags().StringVar(&marker, "attr", a.config.MarkerAttr, "Marker attribute holding the localization key")
	return cmd
}

func (a *App) newMergeCmd() *cobra.Command {
	var req input.MergeRequest
	cmd := &cobra.Command{
		Use:   "merge-defaults",
		Short: "Merge default settings from a reference locale into a translated locale",
		Long: `Copies the reference locale's default settings into the translated locale,
overwrites the fields listed in the TOML overrides file, replaces the table
structure when the overrides define one and sets extra top-level keys.`,
		Example: `  localekit merge-defaults --translated zh-cn.json --reference en.json --overrides zh-cn.defaults.toml`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.handler.HandleMerge(cmd, req)
		},
	}
	cmd.Flags().StringVar(&req.TranslatedPath, "translated", "", "Translated locale file to update")
	cmd.Flags().StringVar(&req.ReferencePath, "reference", "", "Reference locale file holding the default settings")
	cmd.Flags().StringVar(&req.OverridesPath, "overrides", "", "TOML file with the replacement values")
	cmd.Flags().StringVar(&req.OutputPath, "out", "", "Write the result here instead of over the translated file")
	_ = cmd.MarkFlagRequired("translated")
	_ = cmd.MarkFlagRequired("reference")
	_ = cmd.MarkFlagRequired("overrides")
	return cmd
}

func (a *App) newCheckCmd() *cobra.Command {
	var (
		req    input.CheckRequest
		strict bool
	)
	cmd := &cobra.Command{
		Use:   "check <markup-path> <locale-path>",
		Short: "Report template keys missing from a locale file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.MarkupPath = args[0]
			req.LocalePath = args[1]
			return a.handler.HandleCheck(cmd, req, strict)
		},
	}
	cmd.Flags().StringVar(&req.Marker, "attr", a.config.MarkerAttr, "Marker attribute holding the localization key")
	cmd.Flags().StringVar(&req.Language, "lang", "", "Language tag of the locale (default: derived from the file name)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when keys are missing")
	return cmd
}
