package cmd

import (
	"fmt"
	"os"

	cfgpkg "github.com/KaramelBytes/imaris-cli/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "imaris",
	Short: "Aggregate IMARIS microglia statistics exports into a group-comparison workbook",
	Long: `imaris reads a directory of IMARIS statistics exports, keeps the recognized
variables of each microglia, pivots them per sample and writes a workbook with
per-group means and a one-way ANOVA for every variable.`,
	SilenceUsage: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.imaris/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "write debug records to the run log")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal here: commands that need config reload it and report the error
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}

// requireConfig returns the loaded configuration, loading it if initialization
// did not run (as in tests that call rootCmd directly).
func requireConfig() (*cfgpkg.Global, error) {
	if cfg != nil {
		return cfg, nil
	}
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	cfg = c
	return cfg, nil
}
