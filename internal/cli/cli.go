package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"rawgraph/internal/config"
	"rawgraph/internal/export"
	"rawgraph/internal/filewalker"
	"rawgraph/internal/graph"
	"rawgraph/internal/pipeline"
	"rawgraph/internal/raws"
	"rawgraph/internal/store"
	"rawgraph/internal/store/postgres"
	"rawgraph/internal/store/sqlite"
)

// Execute runs the CLI application.
func Execute() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "rawgraph",
		Short:         "Resolve game raw definition files into a consistent object set",
		Long:          "Reads raw definition files, resolves COPY_TAGS_FROM, SELECT_CREATURE and creature variations, then exports or stores the result.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String("types", "", "Comma-separated object types to read (default: all)")
	rootCmd.PersistentFlags().Bool("skip-copy-tags-from", false, "Do not resolve COPY_TAGS_FROM")
	rootCmd.PersistentFlags().Bool("skip-variations", false, "Do not expand creature variations")

	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(ingestCmd())
	rootCmd.AddCommand(graphCmd())
	rootCmd.AddCommand(depsCmd())

	return rootCmd
}

func parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <directory>...",
		Short: "Parse and resolve raw files, writing the object set as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")
			return runParse(cmd, args, out)
		},
	}
	cmd.Flags().String("out", "", "Output file (default: stdout)")
	return cmd
}

func ingestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest <directory>...",
		Short: "Parse and resolve raw files, then upsert them into a database",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sink, _ := cmd.Flags().GetString("sink")
			return runIngest(cmd, args, sink)
		},
	}
	cmd.Flags().String("sink", "sqlite", "Storage backend: postgres or sqlite")
	return cmd
}

func graphCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "graph <directory>...",
		Short: "Parse and resolve raw files, then mirror their references into Neo4j",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(cmd, args)
		},
	}
}

func depsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deps <identifier>",
		Short: "List creatures that copy from a creature, or apply a variation, using the Neo4j graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			variation, _ := cmd.Flags().GetBool("variation")
			return runDeps(cmd, args[0], variation)
		},
	}
	cmd.Flags().Bool("variation", false, "Treat the identifier as a creature variation")
	return cmd
}

// setupContext creates a cancellable context with signal handling.
func setupContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Warn().Msg("Received shutdown signal, cancelling...")
		cancel()
	}()

	return ctx, cancel
}

// loadConfig reads the configuration and applies its log level.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	zerolog.SetGlobalLevel(cfg.Level())
	return cfg, nil
}

// buildOptions merges the persistent flags over the configuration.
func buildOptions(cmd *cobra.Command, cfg *config.Config) (pipeline.Options, error) {
	opts := pipeline.Options{
		Workers:          cfg.WorkerCount,
		SkipCopyTagsFrom: cfg.SkipCopyTagsFrom,
		SkipVariations:   cfg.SkipVariations,
	}
	if skip, _ := cmd.Flags().GetBool("skip-copy-tags-from"); skip {
		opts.SkipCopyTagsFrom = true
	}
	if skip, _ := cmd.Flags().GetBool("skip-variations"); skip {
		opts.SkipVariations = true
	}

	names, _ := cmd.Flags().GetString("types")
	types, err := parseTypes(names)
	if err != nil {
		return opts, err
	}
	opts.ObjectTypes = types
	return opts, nil
}

func parseTypes(s string) ([]raws.ObjectType, error) {
	var out []raws.ObjectType
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		t, ok := raws.ParseObjectType(strings.ToUpper(name))
		if !ok || !t.IsParsable() {
			return nil, fmt.Errorf("unsupported object type %q", name)
		}
		out = append(out, t)
	}
	return out, nil
}

// resolve walks every directory and runs the pipeline over the files found.
func resolve(ctx context.Context, cmd *cobra.Command, cfg *config.Config, dirs []string) (*pipeline.Result, error) {
	opts, err := buildOptions(cmd, cfg)
	if err != nil {
		return nil, err
	}

	w := filewalker.NewWalker()
	var entries []filewalker.FileEntry
	for _, dir := range dirs {
		found, err := w.Walk(dir)
		if err != nil {
			return nil, fmt.Errorf("walk input directory: %w", err)
		}
		entries = append(entries, found...)
	}

	log.Info().Int("files", len(entries)).Int("workers", opts.Workers).Msg("Starting raw resolution")

	res, err := pipeline.Build(ctx, opts, entries)
	if err != nil {
		return nil, err
	}
	for _, f := range res.Failures {
		log.Error().Err(f.Err).Str("file", f.Path).Msg("Parse failed")
	}
	for kind, n := range res.Count() {
		log.Debug().Str("kind", kind.String()).Int("objects", n).Msg("Resolved objects")
	}
	return res, nil
}

// runParse handles the `parse` command.
func runParse(cmd *cobra.Command, dirs []string, out string) error {
	ctx, cancel := setupContext()
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	res, err := resolve(ctx, cmd, cfg, dirs)
	if err != nil {
		return err
	}

	if out == "" {
		return export.Write(cmd.OutOrStdout(), res.Objects, true)
	}
	return export.WriteFile(out, res.Objects)
}

// openSink creates the storage backend named by sink.
func openSink(ctx context.Context, cfg *config.Config, sink string) (store.Sink, error) {
	switch sink {
	case "postgres":
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return postgres.NewStore(pool, cfg.BatchSize), nil
	case "sqlite":
		return sqlite.Open(cfg.SQLitePath, cfg.BatchSize)
	default:
		return nil, fmt.Errorf("unknown sink %q: want postgres or sqlite", sink)
	}
}

// runIngest handles the `ingest` command.
func runIngest(cmd *cobra.Command, dirs []string, sink string) error {
	ctx, cancel := setupContext()
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s, err := openSink(ctx, cfg, sink)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensure %s schema: %w", sink, err)
	}

	res, err := resolve(ctx, cmd, cfg, dirs)
	if err != nil {
		return err
	}

	records, err := store.Records(res.Objects)
	if err != nil {
		return fmt.Errorf("build records: %w", err)
	}
	n, err := s.Upsert(ctx, records)
	if err != nil {
		return fmt.Errorf("upsert records: %w", err)
	}

	log.Info().
		Str("sink", sink).
		Int("objects", len(res.Objects)).
		Int("rows", n).
		Int("failed_files", len(res.Failures)).
		Msg("Ingestion complete")

	return nil
}

// runGraph handles the `graph` command.
func runGraph(cmd *cobra.Command, dirs []string) error {
	ctx, cancel := setupContext()
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	driver, err := graph.Connect(ctx, cfg.Neo4jURI, cfg.Neo4jUser, cfg.Neo4jPassword)
	if err != nil {
		return err
	}
	defer driver.Close(ctx)

	builder := graph.NewGraphBuilder(driver, cfg.BatchSize)
	if err := builder.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensure graph schema: %w", err)
	}

	res, err := resolve(ctx, cmd, cfg, dirs)
	if err != nil {
		return err
	}

	if err := builder.Build(ctx, res.Objects); err != nil {
		return fmt.Errorf("build graph: %w", err)
	}

	log.Info().Int("objects", len(res.Objects)).Msg("Graph export complete")
	return nil
}

// runDeps handles the `deps` command.
func runDeps(cmd *cobra.Command, identifier string, variation bool) error {
	ctx, cancel := setupContext()
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	driver, err := graph.Connect(ctx, cfg.Neo4jURI, cfg.Neo4jUser, cfg.Neo4jPassword)
	if err != nil {
		return err
	}
	defer driver.Close(ctx)

	querier := graph.NewGraphQuerier(driver)
	var nodes []graph.RawNode
	if variation {
		nodes, err = querier.VariationUsers(ctx, identifier)
	} else {
		nodes, err = querier.CopyDescendants(ctx, identifier)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, n := range nodes {
		fmt.Fprintf(out, "%d\t%s\t%s\t%s\n", n.Depth, n.Identifier, n.Module, n.ObjectID)
	}
	log.Info().Str("identifier", identifier).Int("dependents", len(nodes)).Msg("Dependency query complete")
	return nil
}
