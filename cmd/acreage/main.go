package main

import (
	"os"

	"github.com/woozymasta/acreage/internal/config"
	"github.com/woozymasta/acreage/internal/logger"
	"github.com/woozymasta/acreage/internal/processor"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config"    env:"CONFIG_FILE"   description:"Path to report configuration file"`
	Format     string `short:"f" long:"format"    env:"REPORT_FORMAT" description:"Report output format" choice:"csv" choice:"xlsx"`
	Output     string `short:"o" long:"out"       env:"OUTPUT_FILE"   description:"Report output path (defaults to polygon_areas.<format> in the working directory)"`
	Precision  *int   `short:"p" long:"precision" env:"PRECISION"     description:"Acreage decimal places (default: 2)"`

	Args struct {
		Input string `positional-arg-name:"FILE" description:"Input .kml or .kmz file"`
	} `positional-args:"true" required:"true"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	cfg := config.Default()
	if opts.ConfigFile != "" {
		var err error
		cfg, err = config.Load(opts.ConfigFile)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}
	}

	// Flags override the configuration file
	cfg.Merge(opts.Format, opts.Output, opts.Precision)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid report configuration")
	}

	rep, err := processor.Process(opts.Args.Input)
	if err != nil {
		log.Fatal().Err(err).Str("file", opts.Args.Input).Msg("Failed to process input file")
	}

	if len(rep.Rows) == 0 {
		log.Warn().Str("file", opts.Args.Input).Msg("No polygons found in input")
	}

	if err := processor.WriteReport(rep, cfg); err != nil {
		log.Fatal().Err(err).Str("file", cfg.OutputPath()).Msg("Failed to write report")
	}

	log.Info().
		Int("polygons", len(rep.Rows)).
		Float64("total_acres", rep.Total()).
		Str("file", cfg.OutputPath()).
		Msg("Report generated")
}
