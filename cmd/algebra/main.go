// Package main provides the algebra binary entry point.
// Algebra inspects the category lattice and the structures registered in
// the catalog: lattice position, distinguished elements, ideals,
// fraction fields and field resolution.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	// Register structure families via init()
	_ "github.com/c360studio/algebra/arith"

	"github.com/spf13/cobra"

	"github.com/c360studio/algebra/config"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "algebra"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
		noProbe    bool
	)

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Inspect algebraic structures and their category lattice",
		Long: `Algebra inspects the category lattice of ring-like structures and the
structures registered in the catalog.

It provides:
- The category lattice and subsumption queries
- Structure inspection (elements, ideals, fraction fields)
- Field resolution through the declared tag and supplier probes
- Manifest validation, optionally watching for changes`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&noProbe, "no-probe", false, "Resolve fields from the lattice only, skipping supplier probes")

	newApp := func() (*App, error) {
		return setup(configPath, logLevel, noProbe)
	}

	cmd.AddCommand(latticeCmd())
	cmd.AddCommand(isaCmd(newApp))
	cmd.AddCommand(showCmd(newApp))
	cmd.AddCommand(listCmd(newApp))
	cmd.AddCommand(checkCmd(newApp))

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

// setup loads configuration, applies flag overrides and builds the App.
func setup(configPath, logLevel string, noProbe bool) (*App, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFromFile(configPath)
	} else {
		cfg, err = config.NewLoader(nil).Load()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if logLevel != "" {
		cfg.Log.Level = strings.ToLower(logLevel)
	}
	if noProbe {
		cfg.Probe.Disable = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	return NewApp(cfg, logger), nil
}
