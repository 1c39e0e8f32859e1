// Package tablegrid loads tables with spanning cells, keeps their header and
// body output trees in sync while they are edited and renders the result.
package tablegrid

import (
	"fmt"
	"log/slog"

	"github.com/ukaji3/gridsync/pkg/tablegrid/config"
)

// Format represents an output format.
type Format string

const (
	// FormatJSON renders the snapshot document as JSON.
	FormatJSON Format = "json"
	// FormatText renders each table as a box grid.
	FormatText Format = "text"
	// FormatHTML renders each table as an HTML <table>.
	FormatHTML Format = "html"
)

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case FormatJSON, FormatText, FormatHTML:
		return f, nil
	}
	return "", fmt.Errorf("invalid format: %s (must be json, text, or html)", name)
}

// Options configures loading and editing behavior.
type Options struct {
	// HeadingRows overrides the heading rows of every imported table.
	// If nil, the value read from the source is kept.
	HeadingRows *int
	// HeadingColumns overrides the heading columns of every imported table.
	// If nil, the value read from the source is kept.
	HeadingColumns *int
	// CheckInvariants validates the grid of every edited table after each
	// change block.
	CheckInvariants bool
	// Logger receives load and edit records. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{}
}

// OptionsFromConfig maps configuration settings onto Options. Negative
// heading settings keep the source values.
func OptionsFromConfig(cfg config.Config, logger *slog.Logger) Options {
	opts := Options{
		CheckInvariants: cfg.CheckInvariants,
		Logger:          logger,
	}
	if cfg.HeadingRows >= 0 {
		n := cfg.HeadingRows
		opts.HeadingRows = &n
	}
	if cfg.HeadingColumns >= 0 {
		n := cfg.HeadingColumns
		opts.HeadingColumns = &n
	}
	return opts
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
