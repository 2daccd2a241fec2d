// Package main provides the CLI entrypoint for tenkey.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/tenkey/internal/charset"
	"github.com/verte-zerg/tenkey/internal/config"
	"github.com/verte-zerg/tenkey/internal/engine"
	"github.com/verte-zerg/tenkey/internal/generator"
	"github.com/verte-zerg/tenkey/internal/model"
	"github.com/verte-zerg/tenkey/internal/stats"
	"github.com/verte-zerg/tenkey/internal/tui"
)

const (
	defaultCharset = "numpad"
	defaultRadius  = engine.DefaultRadius
	defaultRefresh = 500 * time.Millisecond

	minRadius  = 1
	maxRadius  = 10
	minRefresh = 50 * time.Millisecond
)

var (
	practiceCharset string
	practiceSymbols string
	practiceRadius  int
	practiceRefresh time.Duration
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tenkey",
		Short:         "TUI numpad typing trainer",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().StringVar(&practiceCharset, "charset", defaultCharset, "symbol set: digits or numpad")
	rootCmd.Flags().StringVar(&practiceSymbols, "symbols", "", "custom symbols (overrides --charset)")
	rootCmd.Flags().IntVar(&practiceRadius, "radius", defaultRadius, "visible symbols left and right of the cursor")
	rootCmd.Flags().DurationVar(&practiceRefresh, "refresh", defaultRefresh, "UI refresh interval")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCharsetsCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "charset", &practiceCharset, fileCfg.Practice.Charset)
	applyStringConfig(cmd, "symbols", &practiceSymbols, fileCfg.Practice.Symbols)
	applyIntConfig(cmd, "radius", &practiceRadius, fileCfg.Practice.Radius)
	if err := applyRefreshConfig(cmd, "refresh", &practiceRefresh, fileCfg.Practice.Refresh); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	cfg := model.Config{
		Charset: practiceCharset,
		Symbols: practiceSymbols,
		Radius:  practiceRadius,
		Refresh: practiceRefresh,
	}

	if err := validateConfig(cfg); err != nil {
		return err
	}

	cs, err := resolveCharset(cfg)
	if err != nil {
		return err
	}

	eng := engine.New(cs, cfg.Radius, generator.New(cs))
	m := tui.NewModel(cfg, eng)
	program := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	if final, ok := finalModel.(*tui.Model); ok {
		if sum, ok := final.Summary(); ok {
			if err := stats.WriteSummary(os.Stdout, sum); err != nil {
				return fmt.Errorf("failed to write summary: %w", err)
			}
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newCharsetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "charsets",
		Short: "List built-in charsets",
		Args:  cobra.NoArgs,
		RunE:  runCharsetsCmd,
	}
}

func runCharsetsCmd(cmd *cobra.Command, _ []string) error {
	for _, name := range charset.Names() {
		cs, err := charset.ByName(name)
		if err != nil {
			return fmt.Errorf("failed to resolve charset %q: %w", name, err)
		}
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", cs.Name(), cs.String()); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyRefreshConfig(cmd *cobra.Command, name string, target *time.Duration, value *string) error {
	if value == nil {
		return nil
	}
	if cmd.Flags().Changed(name) {
		return nil
	}
	parsed, err := config.ParseRefresh(*value)
	if err != nil {
		return err
	}
	*target = parsed
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# tenkey configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# charset = %q      # Symbol set: digits or numpad
# symbols = "017+"      # Custom symbols (overrides charset)
# radius = %d             # Visible symbols left and right of the cursor
# refresh = "500ms"     # UI refresh interval
`,
		defaultCharset,
		defaultRadius,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Radius < minRadius || cfg.Radius > maxRadius {
		return fmt.Errorf("--radius must be between %d and %d", minRadius, maxRadius)
	}
	if cfg.Refresh < minRefresh {
		return fmt.Errorf("--refresh must be at least %s", minRefresh)
	}
	return nil
}

func resolveCharset(cfg model.Config) (charset.Charset, error) {
	if cfg.Symbols != "" {
		return charset.Custom(cfg.Symbols)
	}
	return charset.ByName(cfg.Charset)
}
