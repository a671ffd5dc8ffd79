package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/linkplan/internal/application"
	"github.com/eugenenazirov/linkplan/internal/config"
	"github.com/eugenenazirov/linkplan/internal/logging"
)

func main() {
	kingpinApp := kingpin.New("linkplan", "Link-plan translator - turns configure-stage settings into native linker directives")
	configFile := kingpinApp.Flag("config", "Path to YAML configuration file").String()
	buildOutput := kingpinApp.Flag("build-output", "Build output directory the settings-file path is derived from").String()
	settingsFile := kingpinApp.Flag("settings", "Explicit settings file path (bypasses derivation)").String()
	format := kingpinApp.Flag("format", "Output format: cargo or yaml").String()
	preserveDuplicates := kingpinApp.Flag("preserve-duplicate-paths", "Keep the duplicate in-tree search path verbatim").Bool()

	kingpin.MustParse(kingpinApp.Parse(os.Args[1:]))

	overrides := &config.CLIOverrides{
		ConfigFile: *configFile,
	}

	if *buildOutput != "" {
		overrides.BuildOutputDir = buildOutput
	}

	if *settingsFile != "" {
		overrides.SettingsFile = settingsFile
	}

	if *format != "" {
		overrides.Format = format
	}

	if *preserveDuplicates {
		overrides.PreserveDuplicatePaths = preserveDuplicates
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	logger, err := logging.New()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	app := application.New(cfg, logger)
	if err := app.Run(os.Stdout); err != nil {
		logger.Fatal("link plan generation failed", zap.Error(err))
	}
}
