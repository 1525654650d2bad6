package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/windowgram/internal/config"
	"github.com/matzehuels/windowgram/pkg/buildinfo"
	"github.com/matzehuels/windowgram/pkg/cache"
	"github.com/matzehuels/windowgram/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = config.AppName

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Config is loaded in the root command's pre-run.
	Config config.Config

	// Stdin is read when a command is given "-" as its file.
	Stdin io.Reader

	configPath string
	verbose    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
		Stdin:  os.Stdin,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Windowgram compiles ASCII pane drawings into split plans",
		Long: `Windowgram reads a rectangular drawing of terminal panes, one character per
cell, and compiles it into the ordered list of splits a terminal multiplexer
needs to reproduce it. It also classifies, scales and edits windowgrams.`,
		Version:      buildinfo.Get().Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/windowgram/config.toml)")

	root.AddCommand(c.classifyCommand())
	root.AddCommand(c.splitCommand())
	root.AddCommand(c.scaleCommand())
	root.AddCommand(c.groupCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.versionCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the config file named by --config or the default path.
func (c *CLI) loadConfig() error {
	path := c.configPath
	if path == "" {
		p, err := config.Path()
		if err != nil {
			c.Logger.Debug("no config path", "err", err)
			return nil
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	c.Config = cfg
	c.Logger.Debug("config loaded", "path", path, "cache", cfg.Cache.Backend)
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. A configured key prefix
// scopes cache entries, which lets several setups share one Redis.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	store, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	var keyer cache.Keyer
	if prefix := c.Config.Cache.Prefix; prefix != "" {
		keyer = cache.NewScopedKeyer(nil, prefix)
	}
	runner := pipeline.NewRunner(store, keyer, loggerFromContext(ctx))
	runner.TTL = c.Config.Cache.TTL.Duration
	return runner, nil
}

func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	switch c.Config.Cache.Backend {
	case config.BackendNone:
		return cache.NewNullCache(), nil
	case config.BackendRedis:
		return cache.NewRedisCache(ctx, c.Config.Cache.RedisAddr)
	}
	dir, err := c.cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the configured cache directory, or the XDG default
// (~/.cache/windowgram/).
func (c *CLI) cacheDir() (string, error) {
	if c.Config.Cache.Dir != "" {
		return c.Config.Cache.Dir, nil
	}
	return cacheDir()
}

func cacheDir() (string, error) {
	return config.CacheDir()
}

// =============================================================================
// Options Helpers
// =============================================================================

// compileFlags are the flags shared by commands that compile a plan.
type compileFlags struct {
	canvas  string
	divider int
	noCache bool
	refresh bool
}

func (f *compileFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.canvas, "canvas", "", "canvas size as WxH (default from config)")
	cmd.Flags().IntVar(&f.divider, "divider", -1, "border cells subtracted per split (default from config)")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable the plan cache")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "recompile even if a cached plan exists")
}

// options layers the flags over the configured defaults.
func (f *compileFlags) options(c *CLI) (pipeline.Options, error) {
	opts := c.Config.PipelineOptions()
	opts.Logger = c.Logger
	opts.Refresh = f.refresh
	if f.canvas != "" {
		w, h, err := parseCanvas(f.canvas)
		if err != nil {
			return opts, err
		}
		opts.CanvasWidth, opts.CanvasHeight = w, h
	}
	if f.divider >= 0 {
		opts.Divider = f.divider
	}
	return opts, opts.ValidateAndSetDefaults()
}
