package main

import (
	"os"

	"github.com/custodia-labs/radix-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/radix-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/radix-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/radix-cli/internal/core/domain"
	"github.com/custodia-labs/radix-cli/internal/core/ports/driven"
	"github.com/custodia-labs/radix-cli/internal/core/ports/driving"
	"github.com/custodia-labs/radix-cli/internal/core/services"
	"github.com/custodia-labs/radix-cli/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// bootstrap wires the core services to their adapters.
func bootstrap(configDir string) (*cli.Services, error) {
	var (
		configStore driven.ConfigStore
		watcher     driven.ConfigWatcher
	)

	fileStore, err := file.NewConfigStore(configDir)
	if err != nil {
		logger.Warn("config unavailable, using defaults: %v", err)
		configStore = memory.NewConfigStore()
	} else {
		logger.Debug("config: %s", fileStore.Path())
		configStore = fileStore
		watcher = file.NewWatcher(fileStore)
	}

	converter := services.NewConverterService()
	calculator := services.NewCalculatorService(converter)
	settings := services.NewSettingsService(configStore)

	if err := settings.Validate(); err != nil {
		logger.Warn("invalid settings, defaults apply: %v", err)
	}

	return &cli.Services{
		Converter:  converter,
		Calculator: calculator,
		Settings:   settings,
		NewKeypad: func(base domain.Base) driving.Keypad {
			return services.NewKeypad(converter, calculator, base)
		},
		Watcher: watcher,
	}, nil
}
