package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"localekit/internal/application"
	"localekit/internal/config"
	"localekit/internal/infrastructure/filestore"
	"localekit/internal/infrastructure/i18n"
)

// App is the command-line adapter.
type App struct {
	root    *cobra.Command
	config  *config.Config
	handler *Handler
	level   zap.AtomicLevel
	verbose bool
}

// NewApp wires ports: file adapters -> application (use cases) -> handler.
// Results are printed to out; logs go wherever logger writes.
func NewApp(cfg *config.Config, logger *zap.Logger, level zap.AtomicLevel, out io.Writer) *App {
	store := filestore.NewStore(cfg.Indent)
	catalogs := i18n.NewLoader(store, cfg.DefaultLang)

	extractUC := application.NewExtractService(store, store, cfg.MarkerAttr, logger)
	mergeUC := application.NewMergeService(store, store, cfg.SettingsKey, logger)
	checkUC := application.NewCheckService(store, catalogs, cfg.MarkerAttr, logger)

	app := &App{
		config:  cfg,
		handler: NewHandler(extractUC, mergeUC, checkUC),
		level:   level,
	}
	app.root = app.newRootCmd()
	app.root.SetOut(out)
	return app
}

// Execute runs the command line args (without the program name).
func (a *App) Execute(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.root.ExecuteContext(ctx)
}

func (a *App) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "localekit",
		Short: "Localization tooling for the extension's UI templates",
		Long: `localekit extracts translatable strings from an HTML template into a flat
JSON dictionary, merges default settings into translated locale files and
checks a locale file against the keys a template declares.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if a.verbose {
				a.level.SetLevel(zapcore.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		a.newExtractCmd(),
		a.newMergeCmd(),
		a.newCheckCmd(),
	)
	return root
}
