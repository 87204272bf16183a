package main

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-hclog"
	"github.com/jabolina/go-binomial/pkg/binomial"
	"github.com/jabolina/go-binomial/pkg/binomial/output"
)

// DriverConfig describes which values the driver builds the heap from
// and what it does with them afterwards.
type DriverConfig struct {
	// Reserved minus infinity, every value must be above it.
	Sentinel int `toml:"sentinel"`

	// Values inserted in order. When empty, 0 up to Count-1 are used.
	Values []int `toml:"values"`

	// How many values to generate when Values is empty.
	Count int `toml:"count"`

	// Handles to delete after the heap is built, by insertion order.
	// A handle points to the position its value was inserted at, and
	// a previous delete may already have removed that position.
	Delete []int `toml:"delete"`

	// Extract every value after the dump, printing them in order.
	Drain bool `toml:"drain"`

	// Highlight dump headers.
	Color bool `toml:"color"`

	LogLevel string `toml:"log_level"`
}

// DefaultDriverConfig mirrors the classic demonstration: one hundred
// values with -1 as minus infinity.
func DefaultDriverConfig() DriverConfig {
	return DriverConfig{
		Sentinel: -1,
		Count:    100,
		LogLevel: "INFO",
	}
}

// LoadDriverConfig reads a TOML file over the given defaults.
func LoadDriverConfig(path string, defaults DriverConfig) (DriverConfig, error) {
	config := defaults
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return defaults, fmt.Errorf("failed reading config %s: %w", path, err)
	}
	return config, nil
}

func (d DriverConfig) values() []int {
	if len(d.Values) > 0 {
		return d.Values
	}

	values := make([]int, 0, d.Count)
	for i := 0; i < d.Count; i++ {
		values = append(values, i)
	}
	return values
}

// Run builds a heap by unioning one singleton per value, dumps it, then
// applies the configured deletes and optionally drains it.
func Run(config DriverConfig, out io.Writer, logger hclog.Logger) error {
	if config.Count < 0 {
		return fmt.Errorf("invalid count %d, must not be negative", config.Count)
	}

	arena, err := binomial.NewArena(&binomial.Configuration[int]{
		Name:     "driver",
		Sentinel: config.Sentinel,
		Capacity: len(config.values()),
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	h := arena.NewHeap()
	printer := output.NewPrinter[int](out, config.Color)
	if err = printer.Print(h); err != nil {
		return err
	}

	var handles []binomial.Handle[int]
	for _, value := range config.values() {
		singleton, err := arena.NewSingleton(value)
		if err != nil {
			return fmt.Errorf("failed creating heap for %d: %w", value, err)
		}

		handle, err := singleton.Minimum()
		if err != nil {
			return err
		}
		handles = append(handles, handle)

		if _, err = h.Union(singleton); err != nil {
			return err
		}
	}
	logger.Info("heap built", "size", h.Size())

	if err = printer.Print(h); err != nil {
		return err
	}

	for _, position := range config.Delete {
		if position < 0 || position >= len(handles) {
			return fmt.Errorf("delete position %d out of range [0, %d)", position, len(handles))
		}

		if err = h.Delete(handles[position]); err != nil {
			return fmt.Errorf("failed deleting position %d: %w", position, err)
		}
	}

	if len(config.Delete) > 0 {
		logger.Info("values deleted", "count", len(config.Delete), "size", h.Size())
		if err = printer.Print(h); err != nil {
			return err
		}
	}

	if !config.Drain {
		return nil
	}

	for !h.IsEmpty() {
		value, err := h.ExtractMin()
		if err != nil {
			return err
		}

		separator := " "
		if h.IsEmpty() {
			separator = "\n"
		}
		if _, err = fmt.Fprint(out, value, separator); err != nil {
			return err
		}
	}
	return nil
}
