package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/tanabodee/attendly/internal/cli"
	"github.com/tanabodee/attendly/internal/cli/settings"
	"github.com/tanabodee/attendly/internal/cli/system"
	"github.com/tanabodee/attendly/internal/constants"
	apperrors "github.com/tanabodee/attendly/internal/errors"
	"github.com/tanabodee/attendly/internal/logger"
	"github.com/tanabodee/attendly/internal/notify"
	"github.com/tanabodee/attendly/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store path. A .json suffix selects the plain JSON store." env:"ATTENDLY_CONFIG" default:"~/.config/attendly/attendly.db"`
	Debug   bool   `help:"Verbose logging to stderr."`

	Init     system.InitCmd       `cmd:"" help:"Initialize attendly storage."`
	Check    cli.CheckCmd         `cmd:"" default:"withargs" help:"Fetch and display attendance for an employee number."`
	Watch    cli.WatchCmd         `cmd:"" help:"Run the automatic check scheduler in the foreground."`
	Records  cli.RecordsCmd       `cmd:"" help:"Show the last-fetched attendance snapshot."`
	History  cli.HistoryCmd       `cmd:"" help:"Show recent check runs."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	Doctor   system.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	Keyring  struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store the relay API key."`
		Show   system.KeyringShowCmd   `cmd:"" help:"Show whether a relay API key is stored."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the relay API key."`
	} `cmd:"" help:"Manage the relay API key in the OS keyring."`
}

func main() {
	// Optional .env for ATTENDLY_CONFIG / ATTENDLY_ENDPOINT overrides.
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Attendance check-in companion: scheduled scan checks with desktop notifications"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configPath := expandHome(CLI.Config)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: filepath.Dir(configPath)}); err != nil {
		apperrors.Fatalf("failed to initialize logging: %v", err)
	}

	var store storage.Provider
	if strings.HasSuffix(configPath, ".json") {
		store = storage.NewJSONStore(configPath)
	} else {
		store = storage.NewSQLiteStore(configPath)
	}

	appCtx := &cli.Context{
		Store:    store,
		Notifier: notify.New(),
		Debug:    CLI.Debug,
	}

	// Load the store before running the command; init handles its own setup.
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			apperrors.Fatal(err)
		}
		defer store.Close()
	}

	if err := ctx.Run(appCtx); err != nil {
		apperrors.Fatal(err)
	}
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
