package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tinytelemetry/wattdeck/internal/dataset"
	"github.com/tinytelemetry/wattdeck/internal/i18n"
	"github.com/tinytelemetry/wattdeck/internal/logging"
	"github.com/tinytelemetry/wattdeck/internal/model"
	"github.com/tinytelemetry/wattdeck/internal/tui"
)

// rootOptions holds flags that are not configuration keys.
type rootOptions struct {
	configPath  string
	link        string
	showVersion bool
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   "wattdeck",
		Short: "Chart energy usage of meters and groups in the terminal",
		Long: `wattdeck is a terminal energy dashboard. Pick meters and groups, choose
a line, bar or compare chart, and share the chart as a link.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.showVersion {
				printVersion(cmd.OutOrStdout())
				return nil
			}
			cfg, err := loadConfig(opts.configPath, cmd.Flags())
			if err != nil {
				return err
			}
			return run(cfg, opts.link)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "config file (default is $HOME/.config/wattdeck/config.yml)")
	f.StringVar(&opts.link, "link", "", "restore a chart from a shared chart link")
	f.BoolVar(&opts.showVersion, "version", false, "print version information")
	f.String("locale", model.DefaultLocale, "display language (en, fr, es)")
	f.String("link-base", model.DefaultLinkBase, "base URL for chart links")
	f.String("chart-type", model.DefaultChartKind.String(), "initial chart type: line, bar or compare")
	f.String("log-file", logging.DefaultPath(), "log file path, empty to disable logging")
	f.BoolP("verbose", "v", false, "enable debug logging")

	return cmd
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "wattdeck - Energy Dashboard\n")
	fmt.Fprintf(w, "  Version:    %s\n", version)
	fmt.Fprintf(w, "  Commit:     %s\n", commit)
	fmt.Fprintf(w, "  Built:      %s\n", buildTime)
	fmt.Fprintf(w, "  Go version: %s\n", goVersion)
}

// buildDashboard wires config, messages and data into the dashboard model.
func buildDashboard(cfg cliConfig, link string) (*tui.DashboardModel, error) {
	initial, err := cfg.initialState(link)
	if err != nil {
		return nil, err
	}

	catalog, err := i18n.NewCatalog(model.DefaultLocale)
	if err != nil {
		return nil, err
	}
	if cfg.MessagesFile != "" {
		if err := catalog.Merge(cfg.MessagesFile); err != nil {
			return nil, err
		}
	}

	spec, err := cfg.datasetSpec()
	if err != nil {
		return nil, err
	}
	src, err := dataset.New(spec)
	if err != nil {
		return nil, fmt.Errorf("loading dataset: %w", err)
	}

	slog.Info("dashboard configured",
		"locale", cfg.Locale,
		"meters", len(src.Meters()),
		"groups", len(src.Groups()),
		"chart", initial.Kind,
	)

	return tui.NewDashboardModel(tui.Config{
		Locale:   cfg.Locale,
		LinkBase: cfg.LinkBase,
		Initial:  initial,
	}, src, catalog), nil
}

func run(cfg cliConfig, link string) error {
	closeLog, err := logging.Setup(cfg.LogFile, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer closeLog()

	dashboard, err := buildDashboard(cfg, link)
	if err != nil {
		return err
	}
	app := tui.NewApp(tui.NewDashboardPage(dashboard))

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("wattdeck requires a real terminal")
		}
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
