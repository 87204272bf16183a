package main

import (
	"flag"
	"os"

	"github.com/hashicorp/go-hclog"
)

func main() {
	defaults := DefaultDriverConfig()

	configPath := flag.String("config", "", "TOML file describing the run")
	count := flag.Int("n", defaults.Count, "Number of values to insert when none are configured")
	sentinel := flag.Int("sentinel", defaults.Sentinel, "Reserved minus infinity value")
	drain := flag.Bool("drain", false, "Extract every value after the dump")
	colorize := flag.Bool("color", false, "Highlight dump headers")
	logLevel := flag.String("l", defaults.LogLevel, "Logging level (trace, debug, info, warn, error)")
	flag.Parse()

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "binomial",
		Level:  hclog.LevelFromString(*logLevel),
		Output: os.Stderr,
	})

	config := defaults
	if len(*configPath) > 0 {
		var err error
		config, err = LoadDriverConfig(*configPath, defaults)
		if err != nil {
			logger.Error("invalid configuration", "error", err)
			os.Exit(1)
		}
	}

	// Flags given explicitly win over the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n":
			config.Count = *count
		case "sentinel":
			config.Sentinel = *sentinel
		case "drain":
			config.Drain = *drain
		case "color":
			config.Color = *colorize
		case "l":
			config.LogLevel = *logLevel
		}
	})

	if level := hclog.LevelFromString(config.LogLevel); level != hclog.NoLevel {
		logger.SetLevel(level)
	}

	if err := Run(config, os.Stdout, logger); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}
