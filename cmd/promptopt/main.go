// Package main provides a command-line interface for the prompt-optimizer
// library.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	promptopt "github.com/rsrini3/prompt-optimizer"
	"github.com/rsrini3/prompt-optimizer/config"
	"github.com/rsrini3/prompt-optimizer/internal/logging"
)

// cmdFlags holds all command-line flags
type cmdFlags struct {
	provider    string
	model       string
	apiKey      string
	temperature float64
	maxTokens   int
	timeout     time.Duration
	logLevel    string
	evaluate    bool
}

// parseFlags parses command-line flags
func parseFlags() *cmdFlags {
	flags := &cmdFlags{}
	flag.StringVar(&flags.provider, "provider", "", "Completion provider (openai)")
	flag.StringVar(&flags.model, "model", "", "Model to evaluate variants with")
	flag.StringVar(&flags.apiKey, "api-key", "", "API key for the specified provider")
	flag.Float64Var(&flags.temperature, "temperature", -1, "Sampling temperature")
	flag.IntVar(&flags.maxTokens, "max-tokens", 0, "Response length cap in tokens")
	flag.DurationVar(&flags.timeout, "timeout", 0, "Per-request timeout")
	flag.StringVar(&flags.logLevel, "log-level", "", "Log level (OFF, ERROR, WARN, INFO, DEBUG)")
	flag.BoolVar(&flags.evaluate, "evaluate", false, "Send each variant to the provider and score the responses")
	flag.Parse()
	return flags
}

func configOptions(flags *cmdFlags) []config.ConfigOption {
	var opts []config.ConfigOption
	if flags.provider != "" {
		opts = append(opts, config.SetProvider(flags.provider))
	}
	if flags.model != "" {
		opts = append(opts, config.SetModel(flags.model))
	}
	if flags.apiKey != "" {
		opts = append(opts, config.SetAPIKey(flags.apiKey))
	}
	if flags.temperature >= 0 {
		opts = append(opts, config.SetTemperature(flags.temperature))
	}
	if flags.maxTokens > 0 {
		opts = append(opts, config.SetMaxTokens(flags.maxTokens))
	}
	if flags.timeout > 0 {
		opts = append(opts, config.SetTimeout(flags.timeout))
	}
	if flags.logLevel != "" {
		var level logging.LogLevel
		if err := level.UnmarshalText([]byte(flags.logLevel)); err != nil {
			log.Fatalf("Invalid log level: %v", err)
		}
		opts = append(opts, config.SetLogLevel(level))
	}
	return opts
}

// readPrompt takes the prompt from the remaining arguments, or from stdin
// when no arguments are given.
func readPrompt() (string, error) {
	if flag.NArg() > 0 {
		return strings.Join(flag.Args(), " "), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read prompt from stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func main() {
	flags := parseFlags()

	prompt, err := readPrompt()
	if err != nil {
		log.Fatal(err)
	}

	opt, err := promptopt.New(configOptions(flags)...)
	if err != nil {
		log.Fatalf("Failed to create optimizer: %v", err)
	}

	result, err := opt.GenerateAndEvaluate(context.Background(), prompt, flags.evaluate)
	if err != nil {
		log.Fatalf("Optimization failed: %v", err)
	}

	fmt.Print(promptopt.FormatVariants(result))
	if flags.evaluate {
		fmt.Print(promptopt.FormatResults(result))
		fmt.Println(promptopt.FormatSummary(result))
	}
}
