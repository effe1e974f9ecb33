// Command playnote plays a single MIDI note on the system's output device.
package main

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/kodistudios/playnote/internal/config"
	"github.com/kodistudios/playnote/internal/logger"
	"github.com/kodistudios/playnote/sdk/contracts"
	"github.com/kodistudios/playnote/sdk/midi"
)

const (
	exitOK       = 0
	exitFailure  = 1
	exitBadUsage = 2
)

// hold blocks while the note sounds.
var hold = time.Sleep

func main() {
	os.Exit(run(filepath.Base(os.Args[0]), os.Args[1:], os.Stdout))
}

func run(appName string, args []string, stdout io.Writer) int {
	a, err := parseArgs(args)
	if err != nil {
		printError(stdout, "Incorrect Arguments", err)
		printHelp(stdout, appName, config.DefaultConfig())
		return exitBadUsage
	}

	cfg, err := loadConfig(a.configPath)
	if err != nil {
		printError(stdout, "Invalid config", err)
		return exitBadUsage
	}

	if a.help {
		printHelp(stdout, appName, cfg)
		return exitOK
	}

	cfg = a.apply(cfg)
	if !a.userOverridden {
		// The demo always plays the built-in note; saved note settings only apply with flags.
		cfg.Note = config.DefaultConfig().Note
	}
	if err := cfg.Validate(); err != nil {
		printError(stdout, "Incorrect Arguments", err)
		return exitBadUsage
	}

	if a.saveConfig {
		if err := saveConfig(cfg, a.configPath); err != nil {
			printError(stdout, "Failed to save config", err)
			return exitFailure
		}
	}

	log := logger.NewStandardLogger()
	level, _ := contracts.ParseLogLevel(cfg.Log.Level)
	if cfg.Log.File != "" {
		log.SetDestination(contracts.FileLog, cfg.Log.File)
	}

	if !a.userOverridden {
		printBanner(stdout, "Play Piano C Note")
	}

	err = midi.PlayNote(cfg.Request(),
		contracts.WithLogger(log),
		contracts.WithLogLevel(level),
		contracts.WithDriver(contracts.Driver(cfg.Output.Driver)),
		contracts.WithDeviceIndex(cfg.Output.DeviceIndex),
		contracts.WithPortName(cfg.Output.PortName),
		contracts.WithSimpleMode(cfg.Note.Simple),
		contracts.WithHoldFunc(hold),
	)
	if err != nil {
		printError(stdout, "Failed to play note", err)
		return exitFailure
	}
	return exitOK
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFile(path)
}

func saveConfig(cfg *config.Config, path string) error {
	if path == "" {
		return cfg.Save()
	}
	return cfg.SaveFile(path)
}
