package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vaultpass/passgen-go/internal/clipboard"
	"github.com/vaultpass/passgen-go/internal/config"
	"github.com/vaultpass/passgen-go/internal/repository"
	"github.com/vaultpass/passgen-go/internal/service"
	"github.com/vaultpass/passgen-go/internal/shell"
)

// app holds what the commands share once configuration is loaded.
// copier is nil when the host has no clipboard utility.
type app struct {
	cfg     config.Config
	copier  clipboard.Copier
	openLog func(ctx context.Context) (repository.PasswordLog, func() error)
}

func newApp(cfg config.Config) *app {
	a := &app{
		cfg: cfg,
		openLog: func(ctx context.Context) (repository.PasswordLog, func() error) {
			return repository.OpenLog(ctx, cfg.DatabaseDSN, cfg.SaveFile)
		},
	}
	if clipboard.Unsupported() {
		slog.Debug("no clipboard utility found, copying disabled")
	} else {
		a.copier = clipboard.System{}
	}
	return a
}

func newRootCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passgen",
		Short: "Generate strong random passwords.",
		Long: "passgen generates random passwords from lowercase letters, uppercase letters, digits and symbols,\n" +
			"rates their strength, and can copy them to the clipboard or append them to a log file.\n\n" +
			"Run without a subcommand for the interactive menu.",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runInteractive(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.AddCommand(newGenerateCommand(a), newEvaluateCommand())
	return cmd
}

func (a *app) runInteractive(ctx context.Context, in io.Reader, out io.Writer) error {
	log, closeLog := a.openLog(ctx)
	defer closeLog()

	opts := []shell.Option{shell.WithSaver(service.NewArchiveService(log))}
	if a.copier != nil {
		opts = append(opts, shell.WithClipboard(a.copier))
	}

	return shell.New(in, out, opts...).Run(ctx)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	slog.SetDefault(cfg.NewLogger(os.Stderr))

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}

	if err := newRootCommand(newApp(cfg)).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
