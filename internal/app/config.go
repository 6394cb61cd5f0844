package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/leg100/hub/internal/logging"
	"github.com/leg100/hub/internal/platform"
	"github.com/leg100/hub/internal/view"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/peterbourgon/ff/v4/ffyaml"
)

type Config struct {
	Servers  []view.Server
	Platform platform.Platform
	// ConnectDelay is how long each server's content view takes to open.
	ConnectDelay time.Duration
	// SimulateUnread, if non-zero, is the interval at which each server
	// receives a message.
	SimulateUnread time.Duration
	Debug          bool
	LogFile        string
	Logging        logging.Options

	Version bool
}

// Parse sets config in order of precedence:
// 1. flags > 2. env vars > 3. config file
func Parse(stderr io.Writer, args []string) (Config, error) {
	var (
		cfg      Config
		servers  []string
		platName string
	)

	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("retrieving user's home directory: %w", err)
	}
	defaultConfigFile := filepath.Join(home, ".hub.yaml")

	fs := ff.NewFlagSet("hub")
	fs.StringListVar(&servers, 's', "server", "Server to connect to, as name=url or just url. Can set more than once.")
	fs.DurationVar(&cfg.ConnectDelay, 0, "connect-delay", 0, "Delay before each server's view opens.")
	fs.DurationVar(&cfg.SimulateUnread, 0, "simulate-unread", 0, "Deliver a message to each server at this interval (0 disables).")
	fs.StringVar(&cfg.LogFile, 0, "log-file", "", "Send log output to a file.")
	fs.BoolVar(&cfg.Debug, 'd', "debug", "Log bubbletea messages to messages.log")
	fs.BoolVar(&cfg.Version, 'v', "version", "Print version.")
	_ = fs.String('c', "config", defaultConfigFile, "Path to config file.")

	{
		usage := fmt.Sprintf("Platform determining shortcut glyphs (valid: %s).", strings.Join(platform.Choices(), ","))
		fs.StringEnumVar(&platName, 0, "platform", usage, platform.Choices()...)
	}
	{
		usage := fmt.Sprintf("Logging level (valid: %s).", strings.Join(logging.ValidLevels(), ","))
		fs.StringEnumVar(&cfg.Logging.Level, 'l', "log-level", usage, logging.ValidLevels()...)
	}

	err = ff.Parse(fs, args,
		ff.WithEnvVarPrefix("HUB"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ffyaml.Parse),
		ff.WithConfigAllowMissingFile(),
	)
	if err != nil {
		// ff.Parse returns an error if there is an error or if -h/--help is
		// passed; in either case print flag usage in addition to error message.
		fmt.Fprintln(stderr, ffhelp.Flags(fs))
		return Config{}, err
	}

	// Perform any conversions from the flag parsed primitive types to hub
	// defined types.
	cfg.Platform, err = platform.Parse(platName)
	if err != nil {
		return Config{}, err
	}
	for _, s := range servers {
		server, err := view.ParseServer(s)
		if err != nil {
			return Config{}, err
		}
		cfg.Servers = append(cfg.Servers, server)
	}
	return cfg, nil
}
