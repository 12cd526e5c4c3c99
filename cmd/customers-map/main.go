// customers-map serves a local dashboard that connects to a Polar
// organization and renders its paying customers on a world map.
//
// Usage:
//
//	customers-map serve       Start the local web app (default)
//	customers-map export      Write the map card SVG from cached data
//	customers-map reset       Clear cached orders and organization info
//	customers-map version     Print the version
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/schollz/progressbar/v3"

	"github.com/world1dan/customers-map/internal/app"
	"github.com/world1dan/customers-map/internal/cache"
	"github.com/world1dan/customers-map/internal/config"
	"github.com/world1dan/customers-map/internal/mapimg"
	"github.com/world1dan/customers-map/internal/orders"
	"github.com/world1dan/customers-map/internal/polar"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cmd, configPath, verbose := parseArgs()

	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		printUsage()
		return
	}
	if cmd == "version" || cmd == "--version" || cmd == "-v" {
		fmt.Printf("customers-map version %s\n", version)
		return
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "customers-map: %v\n", err)
		os.Exit(1)
	}
	if verbose {
		cfg.Verbose = true
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	store := cache.Open(cfg.CachePath, logger)

	switch cmd {
	case "serve":
		err = cmdServe(cfg, store, logger)
	case "export":
		err = cmdExport(store)
	case "reset":
		err = cmdReset(store)
	default:
		fmt.Fprintf(os.Stderr, "customers-map: unknown command %q\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "customers-map: %v\n", err)
		os.Exit(1)
	}
}

func cmdServe(cfg *config.Config, store *cache.Store, logger *slog.Logger) error {
	a := app.New(cfg, store, logger)

	var bar *progressbar.ProgressBar
	a.SetPageProgress(func(fetched, total int) {
		if bar == nil {
			bar = progressbar.Default(int64(total), "fetching orders")
		}
		bar.ChangeMax(total)
		bar.Set(fetched)
		if fetched >= total {
			bar.Finish()
			bar = nil
		}
	})

	fmt.Printf("customers-map listening on http://%s\n", cfg.ListenAddr)
	return a.Serve()
}

// cmdExport renders the card from cached state without starting the server.
func cmdExport(store *cache.Store) error {
	var org polar.Organization
	if !store.Get(cache.KeyOrganization, &org) {
		return fmt.Errorf("no cached organization, run %q and authenticate first", "customers-map serve")
	}
	var all []orders.Order
	store.Get(cache.KeyOrders, &all)

	countries, err := orders.Analyze(all)
	if err != nil {
		return fmt.Errorf("aggregating orders: %w", err)
	}

	name := mapimg.Filename(org.Slug)
	if err := os.WriteFile(name, mapimg.Render(org, countries), 0o644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d countries)\n", name, len(countries))
	return nil
}

func cmdReset(store *cache.Store) error {
	store.Reset()
	fmt.Println("cache cleared")
	return nil
}

// parseArgs extracts the subcommand and the --config / --verbose options
// from os.Args.
func parseArgs() (command, configPath string, verbose bool) {
	if p := os.Getenv("CUSTOMERS_MAP_CONFIG"); p != "" {
		configPath = p
	}

	raw := os.Args[1:]
	var filtered []string
	for i := 0; i < len(raw); i++ {
		switch {
		case raw[i] == "--config" && i+1 < len(raw):
			configPath = raw[i+1]
			i++
		case raw[i] == "--verbose":
			verbose = true
		default:
			filtered = append(filtered, raw[i])
		}
	}

	if len(filtered) == 0 {
		return "serve", configPath, verbose
	}
	return filtered[0], configPath, verbose
}

func printUsage() {
	fmt.Printf(`customers-map %s - paying customers world map for Polar

Usage:
  customers-map [--config <path>] [--verbose] <command>

Commands:
  serve     Start the local web app (default)
  export    Write the map card SVG from cached data
  reset     Clear cached orders and organization info
  version   Print the version

Options:
  --config <path>   Path to config file (default: ./%s)
  --verbose         Enable debug logging

Environment:
  POLAR_CLIENT_ID            OAuth client id (required to authenticate)
  CUSTOMERS_MAP_ADDR         Listen address
  CUSTOMERS_MAP_CACHE        Cache file path
  CUSTOMERS_MAP_CONFIG       Config file path
`, version, config.DefaultConfigFile)
}
