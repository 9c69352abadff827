package main

import (
	"context"
	"fmt"
	"io"

	"github.com/arloliu/lencoder/codec"
	"github.com/arloliu/lencoder/format"
	"github.com/arloliu/lencoder/labelstore"
	"github.com/arloliu/lencoder/repository"
	"github.com/arloliu/lencoder/storage"
	"github.com/arloliu/lencoder/storage/file"
	"github.com/arloliu/lencoder/storage/redis"
	"github.com/arloliu/lencoder/storage/sqlite"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// cli carries the global flags and the state shared by subcommands.
type cli struct {
	cfg     Config
	stdin   io.Reader
	stdout  io.Writer
	verbose bool
	sorted  bool
	kind    string

	logger  *zap.Logger
	backend storage.Backend
	store   *labelstore.Store
}

func newRootCmd(stdin io.Reader, stdout io.Writer) (*cobra.Command, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	c := &cli{cfg: cfg, stdin: stdin, stdout: stdout}

	root := &cobra.Command{
		Use:   "lencoder",
		Short: "Stable categorical label encoding with persisted mappings",
		Long: `lencoder assigns stable integer labels to categorical values.

A mapping is created with fit, extended with update, and applied with
transform and inverse. Values are read from the arguments or, when none are
given, one per line from standard input.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return c.teardown()
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)

	flags := root.PersistentFlags()
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")
	flags.StringVar(&c.cfg.Backend, "backend", cfg.Backend, "Storage backend: file, sqlite or redis")
	flags.StringVar(&c.cfg.Dir, "dir", cfg.Dir, "Base directory of the file backend")
	flags.StringVar(&c.cfg.Compression, "compression", cfg.Compression, "Compression of written mappings: none, zstd, s2 or lz4")
	flags.StringVar(&c.cfg.RedisAddr, "redis-addr", cfg.RedisAddr, "Redis address of the redis backend")
	flags.StringVar(&c.cfg.RedisPrefix, "redis-prefix", cfg.RedisPrefix, "Key prefix of the redis backend")
	flags.StringVar(&c.cfg.SQLitePath, "sqlite-path", cfg.SQLitePath, "Database file of the sqlite backend")
	flags.BoolVar(&c.sorted, "sorted", false, "Label new values in sorted order instead of first-seen order")
	flags.StringVar(&c.kind, "kind", "string", "Category kind of input values: string, int, float or bool")

	root.AddCommand(
		c.fitCmd(),
		c.updateCmd(),
		c.transformCmd(),
		c.inverseCmd(),
		c.dumpCmd(),
	)

	return root, nil
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(c.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	c.logger = logger

	compression, err := format.ParseCompression(c.cfg.Compression)
	if err != nil {
		return err
	}

	backend, err := c.openBackend(cmd.Context())
	if err != nil {
		return err
	}
	c.backend = backend

	repo, err := repository.New(backend, codec.WithCompression(compression))
	if err != nil {
		return c.abort(err)
	}

	order := labelstore.OrderFirstSeen
	if c.sorted {
		order = labelstore.OrderSorted
	}
	c.store, err = labelstore.New(repo,
		labelstore.WithLogger(logger),
		labelstore.WithAssignOrder(order))
	if err != nil {
		return c.abort(err)
	}

	return nil
}

// abort releases what setup acquired; PersistentPostRunE does not run when
// PersistentPreRunE fails.
func (c *cli) abort(err error) error {
	_ = c.teardown()
	return err
}

func (c *cli) openBackend(ctx context.Context) (storage.Backend, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	switch c.cfg.Backend {
	case "file":
		return file.New(file.WithBaseDir(c.cfg.Dir), file.WithLogger(c.logger))
	case "sqlite":
		return sqlite.Open(c.cfg.SQLitePath)
	case "redis":
		return redis.Dial(ctx, c.cfg.RedisAddr, c.cfg.RedisPrefix)
	default:
		return nil, fmt.Errorf("unknown backend %q", c.cfg.Backend)
	}
}

func (c *cli) teardown() error {
	var err error
	if c.backend != nil {
		err = c.backend.Close()
		c.backend = nil
	}
	if c.logger != nil {
		_ = c.logger.Sync()
	}

	return err
}

// newLogger writes warnings to stderr, or everything from debug up when verbose.
func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return config.Build()
}
