// Package main provides the CLI entry point for gridsync.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/gridsync/pkg/tablegrid"
	"github.com/ukaji3/gridsync/pkg/tablegrid/config"
)

var (
	outputPath     string
	pretty         bool
	format         string
	configPath     string
	headingRows    int
	headingColumns int
	insertRows     []string
	insertColumns  []string
	removeRows     []string
	removeColumns  []string
	tableIndex     int
	savePath       string
	logLevel       string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gridsync [input.xlsx|input.html]",
		Short: "Edit tables with merged cells and render their header/body structure",
		Long: `gridsync loads tables with row and column spans from xlsx or html files,
applies row/column edits while keeping header and body sections in sync,
and outputs JSON, text or HTML.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&format, "format", "json", "Output format: json, text, html")
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.Flags().IntVar(&headingRows, "heading-rows", -1, "Override heading rows of every table (-1: keep)")
	rootCmd.Flags().IntVar(&headingColumns, "heading-columns", -1, "Override heading columns of every table (-1: keep)")
	rootCmd.Flags().StringArrayVar(&insertRows, "insert-row", nil, "Insert rows: at[:count] (repeatable)")
	rootCmd.Flags().StringArrayVar(&insertColumns, "insert-column", nil, "Insert columns: at[:count] (repeatable)")
	rootCmd.Flags().StringArrayVar(&removeRows, "remove-row", nil, "Remove rows: at[:count] (repeatable)")
	rootCmd.Flags().StringArrayVar(&removeColumns, "remove-column", nil, "Remove columns: at[:count] (repeatable)")
	rootCmd.Flags().IntVar(&tableIndex, "table", -1, "Only keep the table with this index")
	rootCmd.Flags().StringVar(&savePath, "save", "", "Also write the edited tables to this xlsx file")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	outFormat, err := tablegrid.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	edits, err := parseEdits()
	if err != nil {
		return err
	}

	s, err := tablegrid.Load(inputPath, tablegrid.OptionsFromConfig(cfg, logger))
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}
	if tableIndex >= 0 {
		if err := s.Keep(tableIndex); err != nil {
			return err
		}
	}

	for i := 0; i < s.Len(); i++ {
		for _, e := range edits {
			if err := e.apply(s, i); err != nil {
				return fmt.Errorf("%s failed: %w", e.flag, err)
			}
		}
	}

	if savePath != "" {
		if err := s.SaveXLSX(savePath); err != nil {
			return fmt.Errorf("failed to save workbook: %w", err)
		}
	}

	// Write output
	out := os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		defer f.Close()
		out = f
	}
	if err := s.Render(out, outFormat, cfg.Pretty); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// loadConfig reads the config file and applies explicitly set flags on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = format
	}
	if flags.Changed("pretty") {
		cfg.Pretty = pretty
	}
	if flags.Changed("heading-rows") {
		cfg.HeadingRows = headingRows
	}
	if flags.Changed("heading-columns") {
		cfg.HeadingColumns = headingColumns
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	return cfg, cfg.Validate()
}

// edit is one --insert-*/--remove-* flag value.
type edit struct {
	flag  string
	at    int
	count int
	apply func(s *tablegrid.Session, table int) error
}

// parseEdits turns the edit flags into edits applied to every table in
// flag order: row inserts, column inserts, row removals, column removals.
func parseEdits() ([]edit, error) {
	groups := []struct {
		flag   string
		values []string
		op     func(s *tablegrid.Session, table, at, count int) error
	}{
		{"insert-row", insertRows, (*tablegrid.Session).InsertRows},
		{"insert-column", insertColumns, (*tablegrid.Session).InsertColumns},
		{"remove-row", removeRows, (*tablegrid.Session).RemoveRows},
		{"remove-column", removeColumns, (*tablegrid.Session).RemoveColumns},
	}

	var edits []edit
	for _, g := range groups {
		for _, v := range g.values {
			at, count, err := parseSpan(v)
			if err != nil {
				return nil, fmt.Errorf("invalid --%s %q: %w", g.flag, v, err)
			}
			op := g.op
			edits = append(edits, edit{
				flag:  "--" + g.flag,
				at:    at,
				count: count,
				apply: func(s *tablegrid.Session, table int) error {
					return op(s, table, at, count)
				},
			})
		}
	}
	return edits, nil
}

// parseSpan parses "at" or "at:count". count defaults to 1.
func parseSpan(v string) (at, count int, err error) {
	atStr, countStr, found := strings.Cut(v, ":")
	at, err = strconv.Atoi(atStr)
	if err != nil || at < 0 {
		return 0, 0, fmt.Errorf("index must be a non-negative integer")
	}
	count = 1
	if found {
		count, err = strconv.Atoi(countStr)
		if err != nil || count < 0 {
			return 0, 0, fmt.Errorf("count must be a non-negative integer")
		}
	}
	return at, count, nil
}
