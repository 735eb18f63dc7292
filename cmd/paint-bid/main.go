package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/iwvelando/paint-bid/internal/bid"
	"github.com/iwvelando/paint-bid/internal/calculator"
	"github.com/iwvelando/paint-bid/internal/config"
	"github.com/iwvelando/paint-bid/internal/export"
	"github.com/iwvelando/paint-bid/internal/store"
	"github.com/iwvelando/paint-bid/pkg/constants"
	"github.com/iwvelando/paint-bid/pkg/output"
	"github.com/iwvelando/paint-bid/pkg/validation"
)

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, json")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	houseSqft := flag.Float64("house-sqft", 0, "derive detailed measurements from this house square footage")
	pdfPath := flag.String("pdf", "", "write a PDF estimate to this path")
	xlsxPath := flag.String("xlsx", "", "write an XLSX workbook to this path")
	save := flag.Bool("save", false, "save the bid to the configured database")
	flag.Parse()

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	// Initialize logging based on config and CLI override
	logger, err := config.InitializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	if *houseSqft > 0 {
		applyAutoMeasurements(logger, conf, *houseSqft)
	}

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	now := time.Now()
	result, err := calculator.CalculateAt(conf.Inputs, conf.Pricing, now)
	if err != nil {
		logger.Fatal("failed to calculate bid",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	b, err := bid.New(conf.Bid.CalculatorType, conf.Bid.Customer, conf.Inputs, result, now)
	if err != nil {
		logger.Fatal("failed to build bid",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	durations := calculator.EstimateJobDuration(result.Labor, conf.Pricing.CrewRates)

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		err = output.PrettyFormat(os.Stdout, b, durations)
	case constants.OutputFormatCSV:
		err = output.CsvFormat(os.Stdout, b, durations)
	case constants.OutputFormatJSON:
		err = output.JSONFormat(os.Stdout, b, durations)
	}
	if err != nil {
		logger.Fatal("failed to write output",
			zap.String("op", "main"),
			zap.String("format", outputFormat),
			zap.Error(err),
		)
	}

	if *pdfPath != "" {
		err = writeFile(*pdfPath, func(f *os.File) error {
			return export.BidPDFAt(f, b, conf.Company, now)
		})
		exportDone(logger, *pdfPath, err)
	}
	if *xlsxPath != "" {
		err = writeFile(*xlsxPath, func(f *os.File) error {
			return export.BidWorkbook(f, b)
		})
		exportDone(logger, *xlsxPath, err)
	}

	if *save {
		if err := saveBid(context.Background(), logger, conf.Storage.DBPath, b); err != nil {
			logger.Fatal("failed to save bid",
				zap.String("op", "main"),
				zap.String("path", conf.Storage.DBPath),
				zap.Error(err),
			)
		}
	}
}

func exportDone(logger *zap.Logger, path string, err error) {
	if err != nil {
		logger.Fatal("failed to export bid",
			zap.String("op", "main"),
			zap.String("path", path),
			zap.Error(err),
		)
	}
	logger.Info("bid exported",
		zap.String("op", "main"),
		zap.String("path", path),
	)
}

func applyAutoMeasurements(logger *zap.Logger, conf *config.Configuration, houseSqft float64) {
	switch in := conf.Inputs.(type) {
	case *calculator.InteriorDetailedInputs:
		calculator.CalculateInteriorSqftAutoMeasurements(houseSqft, conf.Pricing).ApplyTo(in, houseSqft)
	case *calculator.ExteriorDetailedInputs:
		calculator.CalculateExteriorSqftAutoMeasurements(houseSqft, conf.Pricing).ApplyTo(in, houseSqft)
	default:
		logger.Warn("house-sqft only applies to detailed calculators, ignoring it",
			zap.String("op", "main.applyAutoMeasurements"),
			zap.String("calculatorType", string(conf.Bid.CalculatorType)),
		)
		return
	}
	logger.Debug("applied auto-measurements",
		zap.String("op", "main.applyAutoMeasurements"),
		zap.Float64("houseSqft", houseSqft),
	)
}

// writeFile creates path and fills it with write. The file is closed on
// every path.
func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close export file: %w", err)
	}
	return nil
}

// saveBid stores b in the SQLite database at dbPath and closes it again.
func saveBid(ctx context.Context, logger *zap.Logger, dbPath string, b bid.Bid) (err error) {
	bids, err := store.Open(dbPath, logger)
	if err != nil {
		return fmt.Errorf("failed to open bid database: %w", err)
	}
	defer func() {
		if closeErr := bids.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close bid database: %w", closeErr)
		}
	}()

	if err := bids.Save(ctx, b); err != nil {
		return err
	}
	logger.Info("bid saved",
		zap.String("op", "main.saveBid"),
		zap.String("id", b.ID),
		zap.String("path", dbPath),
	)
	return nil
}
