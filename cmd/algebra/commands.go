package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/c360studio/algebra/catalog"
	"github.com/c360studio/algebra/category"
	"github.com/c360studio/algebra/manifest"
	"github.com/c360studio/algebra/ring"
)

func latticeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lattice",
		Short: "Print the category lattice",
		Run: func(cmd *cobra.Command, args []string) {
			for _, c := range category.All() {
				parents := category.Parents(c)
				if len(parents) == 0 {
					fmt.Println(c)
					continue
				}
				names := make([]string, len(parents))
				for i, p := range parents {
					names[i] = p.String()
				}
				fmt.Printf("%s -> %s\n", c, strings.Join(names, ", "))
			}
		},
	}
}

func isaCmd(newApp func() (*App, error)) *cobra.Command {
	var manifests []string

	cmd := &cobra.Command{
		Use:   "isa <structure> <category>",
		Short: "Check whether a structure belongs to a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			if err := app.LoadManifests(manifests); err != nil {
				return err
			}

			s, err := app.Resolve(args[0])
			if err != nil {
				return err
			}
			target, err := category.Parse(args[1])
			if err != nil {
				return err
			}
			fmt.Printf("%s is %s: %v\n", s.Name(), target, s.IsA(target))
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&manifests, "manifest", "m", nil, "Manifest file or glob to load")
	return cmd
}

func showCmd(newApp func() (*App, error)) *cobra.Command {
	var manifests []string

	cmd := &cobra.Command{
		Use:   "show <structure>",
		Short: "Show a structure: categories, elements, ideals, fraction field",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			if err := app.LoadManifests(manifests); err != nil {
				return err
			}

			s, err := app.Resolve(args[0])
			if err != nil {
				return err
			}
			printStructure(app, s)
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&manifests, "manifest", "m", nil, "Manifest file or glob to load")
	return cmd
}

func printStructure(app *App, s *ring.Structure) {
	fmt.Println(s)
	if base := s.Base(); base != nil {
		fmt.Printf("  base: %s\n", base)
	}

	implied := category.Implied(s.Category())
	names := make([]string, len(implied))
	for i, c := range implied {
		names[i] = c.String()
	}
	fmt.Printf("  categories: %s\n", strings.Join(names, ", "))

	fmt.Printf("  zero: %s\n", s.Zero())
	fmt.Printf("  one: %s\n", s.One())
	fmt.Printf("  ideals: %s; %s\n", s.ZeroIdeal(), s.UnitIdeal())
	fmt.Printf("  ideal monoid: %s\n", s.IdealMonoid())

	tier, verdict := app.FieldVerdict(s)
	fmt.Printf("  is field: %v (%s: %s)\n", app.IsField(s), tier, verdict)

	if frac, err := s.FractionField(); err != nil {
		fmt.Printf("  fraction field: undefined (%v)\n", err)
	} else {
		fmt.Printf("  fraction field: %s\n", frac)
	}
}

func listCmd(newApp func() (*App, error)) *cobra.Command {
	var manifests []string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List structures registered in the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			if err := app.LoadManifests(manifests); err != nil {
				return err
			}

			names := app.Names()
			if len(names) == 0 {
				fmt.Println("no structures registered; pass --manifest or set catalog.paths")
				return nil
			}
			for _, name := range names {
				s, err := app.Resolve(name)
				if err != nil {
					return err
				}
				fmt.Printf("%s\t%s\n", name, s.Category())
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&manifests, "manifest", "m", nil, "Manifest file or glob to load")
	return cmd
}

func checkCmd(newApp func() (*App, error)) *cobra.Command {
	var (
		watch       bool
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:   "check [manifest...]",
		Short: "Validate manifest declarations, optionally watching for changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			paths := append([]string{}, app.cfg.Catalog.Paths...)
			paths = append(paths, args...)
			if len(paths) == 0 {
				return errors.New("no manifests to check: pass paths or set catalog.paths")
			}

			// Each pass builds into a fresh catalog so removed
			// declarations do not linger between checks.
			runCheck := func() error {
				m, err := manifest.LoadGlob(paths)
				if err != nil {
					return err
				}
				if err := m.Build(catalog.NewDefault()); err != nil {
					return err
				}
				fmt.Printf("ok: %d structures\n", len(m.Structures))
				return nil
			}

			if !watch {
				return runCheck()
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if metricsAddr != "" {
				mux := http.NewServeMux()
				mux.Handle("/metrics", promhttp.Handler())
				srv := &http.Server{Addr: metricsAddr, Handler: mux}
				go func() {
					if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						app.log.Error("Metrics server failed", "error", err)
					}
				}()
				defer srv.Close()
				app.log.Info("Serving metrics", "addr", metricsAddr)
			}

			w, err := manifest.NewWatcher(manifest.WatcherConfig{
				Paths:         watchRoots(paths),
				DebounceDelay: 250 * time.Millisecond,
				Logger:        app.log,
			})
			if err != nil {
				return err
			}
			if err := w.Start(ctx); err != nil {
				return err
			}

			if err := runCheck(); err != nil {
				fmt.Printf("invalid: %v\n", err)
			}
			for {
				select {
				case <-ctx.Done():
					return nil
				case ev, ok := <-w.Events():
					if !ok {
						return nil
					}
					app.log.Info("Manifest changed",
						"path", ev.Path,
						"op", string(ev.Operation))
					if err := runCheck(); err != nil {
						fmt.Printf("invalid: %v\n", err)
					}
				}
			}
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-validate when manifests change")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address while watching")
	return cmd
}

// watchRoots derives watchable paths from manifest patterns by trimming
// glob suffixes: "manifests/**/*.yaml" watches "manifests".
func watchRoots(patterns []string) []string {
	seen := make(map[string]bool)
	var roots []string
	for _, p := range patterns {
		root := p
		if i := strings.IndexAny(p, "*?[{"); i >= 0 {
			root = filepath.Dir(p[:i])
		}
		if root == "" {
			root = "."
		}
		if !seen[root] {
			seen[root] = true
			roots = append(roots, root)
		}
	}
	return roots
}
