package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dmarsters/author-style-mcp/internal/config"
	"github.com/dmarsters/author-style-mcp/internal/logging"
	"github.com/dmarsters/author-style-mcp/internal/server"
	"github.com/dmarsters/author-style-mcp/internal/styleops"
	"github.com/dmarsters/author-style-mcp/internal/stylespace"
	"github.com/dmarsters/author-style-mcp/internal/tools"
)

var (
	// Global flags
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "author-style",
	Short: "Author style-space MCP server",
	Long: `author-style serves a curated catalog of 11 author writing styles
decomposed into 8 orthogonal dimensions, with deterministic distance,
blending, and prompt-generation operations exposed as MCP tools over stdio.

Run 'author-style serve' to start the server, or use the inspection
subcommands to query the catalog directly.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		level := cfg.Logging.Level
		if verbose {
			level = "debug"
		}
		logger, err = logging.New(level, cfg.Logging.Development)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// serveCmd runs the MCP stdio server until the client disconnects or the
// process receives an interrupt.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the style catalog over MCP stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		registry := tools.NewStyleRegistry(logger, tools.ServerMeta{
			Name:        cfg.Server.Name,
			Version:     cfg.Server.Version,
			Description: cfg.Server.Description,
		})
		for _, name := range cfg.Tools.Disabled {
			registry.Remove(name)
		}

		srv, err := server.New(server.Options{
			Name:     cfg.Server.Name,
			Version:  cfg.Server.Version,
			Registry: registry,
			Logger:   logger,
			In:       os.Stdin,
			Out:      os.Stdout,
		})
		if err != nil {
			return err
		}

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			return srv.Run(ctx)
		})

		if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

// catalogCmd prints the author catalog.
var catalogCmd = &cobra.Command{
	Use:   "catalog [author_id]",
	Short: "Print the author catalog, or one author's full profile",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			entry, err := stylespace.Lookup(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, entry)
		}
		return printJSON(cmd, stylespace.Catalog())
	},
}

// dimensionsCmd prints the dimension taxonomy.
var dimensionsCmd = &cobra.Command{
	Use:   "dimensions",
	Short: "Print the 8-dimension style taxonomy",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printJSON(cmd, stylespace.Dimensions())
	},
}

// distanceCmd computes a distance report from the command line, handy for
// sanity checks without an MCP client.
var distanceCmd = &cobra.Command{
	Use:   "distance <author_id_1> <author_id_2>",
	Short: "Compute the style distance between two authors",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		weighted, _ := cmd.Flags().GetBool("weighted")
		report, err := styleops.ComputeDistance(args[0], args[1], weighted)
		if err != nil {
			return err
		}
		return printJSON(cmd, report)
	},
}

// infoCmd summarizes the server identity and tool surface.
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print server identity and capabilities",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := tools.NewStyleRegistry(zap.NewNop(), tools.ServerMeta{
			Name:        cfg.Server.Name,
			Version:     cfg.Server.Version,
			Description: cfg.Server.Description,
		})
		return printJSON(cmd, map[string]any{
			"name":       cfg.Server.Name,
			"version":    cfg.Server.Version,
			"authors":    stylespace.AuthorIDs(),
			"dimensions": stylespace.ParameterNames(),
			"tools":      registry.Names(),
		})
	},
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "author-style.yaml", "path to config file")

	distanceCmd.Flags().Bool("weighted", false, "apply perceptual salience weights")

	rootCmd.AddCommand(serveCmd, catalogCmd, dimensionsCmd, distanceCmd, infoCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
