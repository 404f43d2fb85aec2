package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/PandorasFox/neon-white-ghost-parser/internal/application/decode"
	"github.com/PandorasFox/neon-white-ghost-parser/internal/application/report"
	"github.com/PandorasFox/neon-white-ghost-parser/internal/application/stats"
	"github.com/PandorasFox/neon-white-ghost-parser/internal/infrastructure/config"
	"github.com/PandorasFox/neon-white-ghost-parser/internal/infrastructure/store/sqlite"
)

// options are the command line flags
type options struct {
	configPath string
	file       string
	format     string
	collectors string
	dbPath     string
	strict     bool
}

func parseFlags(args []string) (options, error) {
	var o options
	fset := flag.NewFlagSet("ghoststats", flag.ContinueOnError)
	fset.StringVar(&o.configPath, "config", "", "Config file (e.g., -config ghost.json)")
	fset.StringVar(&o.file, "file", "", "Ghost recording to read, stdin when empty")
	fset.StringVar(&o.format, "format", "", "Report format: text, json or yaml")
	fset.StringVar(&o.collectors, "collectors", "", "Comma separated collectors (e.g., -collectors frametime,events)")
	fset.StringVar(&o.dbPath, "db", "", "Export the decoded run to this SQLite database")
	fset.BoolVar(&o.strict, "strict", false, "Fail when header time and frame times disagree")
	if err := fset.Parse(args); err != nil {
		return o, err
	}
	if o.file == "" && fset.NArg() > 0 {
		o.file = fset.Arg(0)
	}
	return o, nil
}

// loadConfig reads the config file if given, then env overrides, then flags
func loadConfig(o options) (*config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		cfg, err = config.NewLoader(filepath.Dir(o.configPath)).LoadFile(filepath.Base(o.configPath))
		if err != nil {
			return nil, err
		}
	}

	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}

	if o.format != "" {
		cfg.Report.Format = o.format
	}
	if o.collectors != "" {
		cfg.Report.Collectors = strings.Split(o.collectors, ",")
	}
	if o.dbPath != "" {
		cfg.Store.Path = o.dbPath
	}
	if o.strict {
		cfg.Decode.StrictDuration = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readInput(file string, stdin io.Reader) (string, error) {
	if file == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", file, err)
	}
	return string(data), nil
}

// run decodes one ghost, prints its report and optionally exports it
func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(o)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	input, err := readInput(o.file, stdin)
	if err != nil {
		return err
	}

	var decodeOpts []decode.Option
	if cfg.Decode.StrictDuration {
		decodeOpts = append(decodeOpts, decode.WithDurationCheck(cfg.Decode.DurationTolerance))
	}
	g, err := decode.Decode(input, decodeOpts...)
	if err != nil {
		return fmt.Errorf("failed to decode ghost: %w", err)
	}

	collectors, err := stats.ByName(cfg.Report.Collectors)
	if err != nil {
		return err
	}
	summaries := stats.Run(g.Frames, collectors...)

	if err := report.Render(stdout, report.New(g, summaries), report.Format(cfg.Report.Format)); err != nil {
		return err
	}

	if cfg.Store.Path == "" {
		return nil
	}

	st, err := sqlite.Open(cfg.Store.Path)
	if err != nil {
		return err
	}
	defer st.Close()

	runID, err := st.SaveRun(ctx, g, summaries)
	if err != nil {
		return err
	}
	log.Printf("Run saved: %s (%s, %d frames)", runID, g.LevelName, g.Len())
	return nil
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("ghoststats: %v", err)
	}
}
