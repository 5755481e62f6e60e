package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/multibox/internal/config"
	"github.com/muurk/multibox/internal/logging"
	"github.com/muurk/multibox/internal/shell"
	"github.com/muurk/multibox/internal/tabs"
	"github.com/muurk/multibox/internal/ui"
	"github.com/muurk/multibox/internal/version"
)

// errNoTerminal is returned when the window cannot be created
var errNoTerminal = errors.New("cannot create window: stdout is not a terminal")

// stdoutIsTerminal reports whether the window can be drawn
var stdoutIsTerminal = func() bool { return ui.IsTerminal(os.Stdout) }

var (
	configPath string
	logLevel   string
	logPath    string
	startTab   string
)

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to config file (default: <config dir>/config.yaml)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default: $"+logging.LogLevelEnvVar+")")
	rootCmd.Flags().StringVar(&logPath, "log-file", "", "Log file path (default: <config dir>/multibox.log)")
	rootCmd.Flags().StringVar(&startTab, "tab", "", "Tab to open first: hello, clock, files or style")
}

func runWindow(cmd *cobra.Command, args []string) error {
	settings, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if logPath == "" {
		if logPath, err = config.GetLogPath(); err != nil {
			return fmt.Errorf("failed to get log path: %w", err)
		}
	}
	if err := logging.Initialize(logLevel, logPath); err != nil {
		return err
	}
	defer logging.Sync()

	opts, err := windowOptions(settings, startTab)
	if err != nil {
		return err
	}

	if !stdoutIsTerminal() {
		logging.Error("Window creation failed", zap.Error(errNoTerminal))
		return errNoTerminal
	}
	opts.Cols, opts.Rows = ui.GetTerminalSize(os.Stdout)

	logging.Info("Starting multibox",
		zap.String("version", version.Full()),
		zap.Stringer("tab", opts.StartTab),
	)

	model := shell.New(opts)
	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()

	// Close is idempotent; it covers exits that bypass the quit key
	if m, ok := final.(shell.Model); ok {
		m.Close()
	} else {
		model.Close()
	}

	if err != nil {
		return fmt.Errorf("window error: %w", err)
	}
	return nil
}

// windowOptions builds the window options from settings. A non-empty tab
// overrides the configured start tab.
func windowOptions(settings *config.Settings, tab string) (shell.Options, error) {
	if tab == "" {
		tab = settings.Startup.Tab
	}
	id, err := tabs.ParseID(tab)
	if err != nil {
		return shell.Options{}, err
	}

	return shell.Options{
		StartTab:  id,
		BrowseDir: settings.Startup.BrowseDir,
		FontFace:  settings.Style.FontFace,
		FontSize:  settings.Style.FontSize,
		Color:     settings.TextColor(),
		Tick:      settings.Clock.Tick,
	}, nil
}
