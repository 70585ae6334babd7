// Package runtime provides application runtime context for Ticktock.
package runtime

import (
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/espian/ticktock/internal/countdown"
	"github.com/espian/ticktock/internal/logging"
	"github.com/espian/ticktock/internal/output"
	"github.com/espian/ticktock/internal/storage"
)

// Context holds the application runtime context. It is built once per
// invocation and handed to every consumer; nothing reaches the store except
// through it.
type Context struct {
	DB         *storage.DB
	Countdowns *storage.CountdownRepo
	Pool       *countdown.Pool
	Formatter  *output.Formatter

	// RequestID correlates all log lines of one invocation.
	RequestID string

	Debug bool
}

// Options configures the runtime context.
type Options struct {
	DBPath    string
	InMemory  bool
	Format    output.Format
	ColorMode output.ColorMode
	Workers   int
	Debug     bool
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		DBPath:    storage.DefaultPath(),
		Format:    output.FormatCLI,
		ColorMode: output.ColorAuto,
		Workers:   countdown.DefaultWorkers,
	}
}

// New creates a new runtime context.
func New(opts Options) (*Context, error) {
	// Check for environment variable override
	if envPath := os.Getenv("TICKTOCK_DATABASE"); envPath != "" {
		if envPath == ":memory:" {
			opts.InMemory = true
		} else {
			opts.DBPath = envPath
		}
	}

	requestID := uuid.NewString()
	logging.Init(loggingConfigWith(opts.Debug))
	logging.Debug("invocation", logging.KeyRequestID, requestID)

	db, err := storage.Open(storage.Options{
		Path:     opts.DBPath,
		InMemory: opts.InMemory,
	})
	if err != nil {
		return nil, err
	}

	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode

	return &Context{
		DB:         db,
		Countdowns: storage.NewCountdownRepo(db),
		Pool:       countdown.NewPool(opts.Workers),
		Formatter:  formatter,
		RequestID:  requestID,
		Debug:      opts.Debug,
	}, nil
}

func loggingConfigWith(debug bool) logging.Config {
	if debug {
		return logging.DebugConfig()
	}
	return logging.DefaultConfig()
}

// Close closes the runtime context: the compute pool drains first so no
// worker outlives the database handle.
func (c *Context) Close() error {
	if c.Pool != nil {
		c.Pool.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}

// Logger returns a request-scoped logger.
func (c *Context) Logger() *slog.Logger {
	return logging.With(logging.KeyRequestID, c.RequestID)
}
