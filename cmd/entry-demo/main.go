package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aescanero/dago-entries/internal/config"
	"github.com/aescanero/dago-entries/internal/entry"
	"github.com/aescanero/dago-entries/internal/eval/cel"
	"github.com/aescanero/dago-entries/internal/eval/template"
	"github.com/aescanero/dago-entries/internal/render"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Version is set at build time
	Version = "dev"
	// BuildTime is set at build time
	BuildTime = "unknown"
)

// User is the structured value rendered by the JSON entries
type User struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting entry demo",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)
	logger.Debug("configuration loaded", zap.String("config", cfg.String()))

	if err := run(context.Background(), cfg, logger, os.Stdout); err != nil {
		logger.Error("entry demo failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

// run builds the demo entries and writes the selected ones to out
func run(ctx context.Context, cfg *config.Config, logger *zap.Logger, out io.Writer) error {
	templateFormat, err := cfg.JSONOptions()
	if err != nil {
		return err
	}

	storage, err := buildEntries(templateFormat)
	if err != nil {
		return err
	}
	logger.Debug("entries built", zap.Int("count", storage.Len()))

	entries := storage.Entries()
	if cfg.EntryFilter != "" {
		evaluator := cel.NewEvaluator()
		if err := evaluator.Validate(cfg.EntryFilter); err != nil {
			return fmt.Errorf("invalid entry filter: %w", err)
		}

		entries, err = storage.Filter(evaluator.Filter(ctx, cfg.EntryFilter))
		if err != nil {
			return fmt.Errorf("failed to filter entries: %w", err)
		}
		logger.Debug("entries filtered",
			zap.String("filter", cfg.EntryFilter),
			zap.Int("kept", len(entries)),
		)
	}

	if _, err := fmt.Fprintln(out, entry.Join(entries, "\n")); err != nil {
		return fmt.Errorf("failed to write entries: %w", err)
	}

	logger.Info("entries written", zap.Int("count", len(entries)))
	return nil
}

// buildEntries assembles the demo entries in order
func buildEntries(templateFormat render.Options) (*entry.Storage, error) {
	storage := &entry.Storage{}
	storage.Add(entry.New("Entry 1"))

	index := 2
	items := []string{"Item 1", "Item 2"}
	storage.Add(entry.NewBuilder().
		AppendLiteral("Entry ").
		AppendPlain(index).
		AppendLiteral(": items=").
		AppendPlain(items).
		Build())

	user := User{Name: "Appleseed", Age: 20}
	storage.Add(entry.NewBuilder().
		AppendLiteral("Entry 3: ").
		AppendJSON(user, render.PrettyPrinted).
		Build())
	storage.Add(entry.NewBuilder().
		AppendLiteral("Entry 3: ").
		AppendJSON(user, render.SortedKeys).
		Build())

	engine := template.NewEngine(nil)
	e, err := engine.Render(
		fmt.Sprintf(`Entry 4: {{json user format=%q}}`, templateFormat.String()),
		map[string]interface{}{"user": user},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to render template entry: %w", err)
	}
	storage.Add(e)

	storage.Add(entry.NewBuilder().
		AppendLiteral("Entry 5: items=").
		AppendRepr(items).
		Build())

	return storage, nil
}

// initLogger initializes the logger
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	// Entries own stdout; logs go to stderr
	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
