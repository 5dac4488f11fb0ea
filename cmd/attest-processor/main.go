package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"attestcli/internal/config"
	"attestcli/internal/dataprocessing"
	"attestcli/internal/exporter"
	"attestcli/internal/files"
	"attestcli/internal/infrastructure"
	"attestcli/internal/methodology"
	"attestcli/internal/validation"
	"attestcli/internal/workbook"
	"attestcli/pkg/contracts"
)

// defaultWorkbookName is the published results workbook looked up in the data
// directory when -file is not given.
const defaultWorkbookName = "Оголошення результатів.xlsx"

func main() {
	filePath := flag.String("file", "", "path to the attestation results workbook (defaults to the data directory)")
	outDir := flag.String("out", "", "output directory for CSV/JSON files (defaults to data/reports relative to executable)")
	directions := flag.String("directions", "", "comma-separated science direction labels or codes to keep (empty = all)")
	configFile := flag.String("config", "", "path to a YAML config file (defaults to config.yaml next to executable)")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(contracts.GetFullVersionString())
		return
	}

	paths, cfg, err := loadConfig(*configFile)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create application directories", "error", err)
		os.Exit(1)
	}

	if cfg.Logging.Output != "console" && !filepath.IsAbs(cfg.Logging.FilePath) {
		cfg.Logging.FilePath = filepath.Join(paths.BaseDir, cfg.Logging.FilePath)
	}
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.ContextWithRunID(context.Background())
	logger = infrastructure.LoggerWithContext(ctx)

	if *filePath == "" {
		book, err := files.NewDiscovery(paths.DataDir).FindWorkbook(".", defaultWorkbookName)
		if err != nil {
			logger.Error("No workbook to process", slog.String("data_dir", paths.DataDir), slog.String("error", err.Error()))
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			os.Exit(1)
		}
		*filePath = book.Path
	}
	if *outDir == "" {
		*outDir = paths.ReportsDir
	}

	logger.Info("Starting attestation data consolidation",
		slog.String("app", config.AppName),
		slog.String("workbook", *filePath),
		slog.String("output_dir", *outDir),
		slog.String("directions", *directions),
		slog.String("version", contracts.Version))

	if err := run(logger, *filePath, *outDir, *directions); err != nil {
		logger.Error("Consolidation failed", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(configFile string) (*config.Paths, *config.Config, error) {
	// Paths are needed before the config file can be located next to the
	// executable, so resolve them from defaults first.
	paths, err := config.GetPaths(config.Default().Paths)
	if err != nil {
		return nil, nil, err
	}
	if configFile == "" {
		configFile = paths.GetConfigPath(config.DefaultConfigFile)
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, err
	}
	paths, err = config.GetPaths(cfg.Paths)
	if err != nil {
		return nil, nil, err
	}
	return paths, cfg, nil
}

func run(logger *slog.Logger, filePath, outDir, directions string) error {
	validator := validation.NewFileValidator(logger)
	if err := validator.ValidateWorkbookPath(filePath); err != nil {
		return err
	}
	if err := validator.ValidateOutputDirectory(outDir); err != nil {
		return err
	}

	wb, err := workbook.Open(filePath)
	if err != nil {
		return err
	}
	defer wb.Close()

	sheets := wb.SheetNames()
	logger.Info("Workbook opened", slog.Int("sheets", len(sheets)))
	fmt.Printf("Found %d sheets in %s\n", len(sheets), filepath.Base(filePath))

	registry := methodology.New()
	var filterValues []string
	if directions != "" {
		filterValues = strings.Split(directions, ",")
	}
	filter := dataprocessing.NewDirectionFilter(registry, filterValues)

	consolidator := dataprocessing.NewConsolidator(registry, wb, logger)
	bundle, err := consolidator.Consolidate(filter)
	if err != nil {
		return err
	}
	report := consolidator.LastReport()

	exp := exporter.New(outDir, logger)
	if err := exp.Export(registry, bundle, report); err != nil {
		return err
	}

	summary := exporter.BuildSummary(filepath.Base(filePath), len(sheets), report)
	if err := exp.WriteSummary(summary); err != nil {
		return err
	}
	fmt.Println(summary)

	if report.HasErrors() {
		return fmt.Errorf("validation recorded %d hard error(s), see validation.json", len(report.Errors))
	}

	fmt.Println("Consolidation complete")
	return nil
}
