package main

import (
	"fmt"
	"log/slog"
	"os"

	"pluralizer"
	"pluralizer/internal/config"
	"pluralizer/internal/logging"

	"github.com/spf13/pflag"
)

var (
	// Version is set at build time via -ldflags "-X main.Version=...".
	Version = "dev"
	Commit  = "none"
)

func main() {
	if err := run(); err != nil {
		slog.Error("pluralize error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	pflag.Bool("version", false, "Print version and exit")
	pflag.Int("count", 2, "Count used to select the output form")
	pflag.Bool("inclusive", false, "Prepend the count to the output")
	pflag.Bool("singular", false, "Convert to the singular form regardless of count")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if showVersion, _ := pflag.CommandLine.GetBool("version"); showVersion {
		fmt.Printf("pluralize %s (%s)\n", Version, Commit)
		return nil
	}

	validationResult := cfg.Validate()
	for _, warn := range validationResult.Warnings {
		slog.Warn("configuration warning",
			slog.String("field", warn.Field),
			slog.String("message", warn.Message),
			slog.String("hint", warn.Hint),
		)
	}
	if validationResult.HasErrors() {
		for _, err := range validationResult.Errors {
			slog.Error("configuration error",
				slog.String("field", err.Field),
				slog.String("message", err.Message),
				slog.String("hint", err.Hint),
			)
		}
		return fmt.Errorf("configuration validation failed")
	}

	logger := logging.NewLogger(cfg.Logging)

	engine, err := pluralizer.New(cfg.Rules, logger.Logger)
	if err != nil {
		return fmt.Errorf("failed to build rule engine: %w", err)
	}

	words := pflag.Args()
	if len(words) == 0 {
		return fmt.Errorf("no words given; usage: pluralize [flags] WORD...")
	}

	count, _ := pflag.CommandLine.GetInt("count")
	inclusive, _ := pflag.CommandLine.GetBool("inclusive")
	forceSingular, _ := pflag.CommandLine.GetBool("singular")

	logger.Debug("transforming words",
		slog.Int("words", len(words)),
		slog.Int("count", count),
		slog.Bool("inclusive", inclusive),
		slog.Bool("singular", forceSingular),
	)

	for _, out := range transformAll(engine, words, count, inclusive, forceSingular) {
		fmt.Println(out)
	}
	return nil
}

// transformAll converts each word with the requested count. The singular flag
// forces the singular form independent of count.
func transformAll(engine *pluralizer.Engine, words []string, count int, inclusive, forceSingular bool) []string {
	out := make([]string, 0, len(words))
	for _, word := range words {
		if forceSingular {
			out = append(out, engine.Singular(word))
			continue
		}
		out = append(out, engine.Pluralize(word, count, inclusive))
	}
	return out
}
