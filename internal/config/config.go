package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atomicstack/header-menu/internal/app"
	"github.com/atomicstack/header-menu/internal/server"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Server  server.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// EnvPrefix namespaces the environment variables that mirror each flag,
// e.g. HEADER_MENU_SESSION for --session.
const EnvPrefix = "HEADER_MENU"

const (
	flagSession       = "session"
	flagScreen        = "screen"
	flagMobile        = "mobile"
	flagDeviceType    = "device-type"
	flagPage          = "page"
	flagWidth         = "width"
	flagHeight        = "height"
	flagFooter        = "footer"
	flagVerbose       = "verbose"
	flagPlain         = "plain"
	flagTrace         = "trace"
	flagLogFile       = "log-file"
	flagAddr          = "addr"
	flagAllowedOrigin = "allowed-origin"
	flagPollInterval  = "poll-interval"
	flagFormat        = "format"
	flagConfig        = "config"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// RegisterFlags adds every option to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(flagSession, "", "path to a session snapshot file (YAML or JSON); empty renders a signed-out header")
	fs.String(flagScreen, app.ScreenAuto, "screen class: auto, desktop, tablet or phone")
	fs.Bool(flagMobile, false, "report the client as a mobile device (with --screen=auto)")
	fs.String(flagDeviceType, "", "device type reported by the client, e.g. mobile or tablet (with --screen=auto)")
	fs.String(flagPage, "mail", "active page highlighted in the header")
	fs.Int(flagWidth, 0, "desired viewport width in cells (0 uses terminal width)")
	fs.Int(flagHeight, 0, "desired viewport height in rows (0 uses terminal height)")
	fs.Bool(flagFooter, false, "enable footer hint row (disabled by default)")
	fs.Bool(flagVerbose, false, "show screen and session details on the status line")
	fs.Bool(flagPlain, false, "render only the logo, without the menu")
	fs.Bool(flagTrace, false, "enable verbose JSON trace logging")
	fs.String(flagLogFile, "", "path to the log file")
	fs.String(flagAddr, server.DefaultAddr, "listen address for serve")
	fs.StringSlice(flagAllowedOrigin, nil, "CORS origin allowed by serve (repeatable; empty allows any)")
	fs.Duration(flagPollInterval, app.DefaultPollInterval, "how often the session file is checked for changes")
	fs.String(flagFormat, "json", "render output format: json or text")
	fs.String(flagConfig, "", "path to a config file (YAML, JSON or TOML)")
}

// LoadDotEnv loads environment variables from a .env file when present.
// Variables already set in the environment win.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: unable to load .env: %v\n", err)
	}
}

// LoadArgs parses args against a fresh flag set.
func LoadArgs(args []string) (Config, error) {
	fs := pflag.NewFlagSet("header-menu", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return FromFlags(fs, args)
}

// FromFlags resolves configuration from an already parsed flag set. Flags
// set on the command line win over HEADER_MENU_* variables, which win over
// the config file, which wins over flag defaults.
func FromFlags(fs *pflag.FlagSet, args []string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("bind flags: %w", err)
	}
	if path := v.GetString(flagConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := Config{
		App: app.Config{
			SessionPath:  v.GetString(flagSession),
			Screen:       strings.ToLower(strings.TrimSpace(v.GetString(flagScreen))),
			Mobile:       v.GetBool(flagMobile),
			DeviceType:   v.GetString(flagDeviceType),
			Page:         v.GetString(flagPage),
			Width:        v.GetInt(flagWidth),
			Height:       v.GetInt(flagHeight),
			ShowFooter:   v.GetBool(flagFooter),
			Verbose:      v.GetBool(flagVerbose),
			Plain:        v.GetBool(flagPlain),
			PollInterval: v.GetDuration(flagPollInterval),
			Format:       strings.ToLower(strings.TrimSpace(v.GetString(flagFormat))),
		},
		Server: server.Config{
			Addr:           v.GetString(flagAddr),
			AllowedOrigins: v.GetStringSlice(flagAllowedOrigin),
		},
		Logging: Logging{
			FilePath: v.GetString(flagLogFile),
			Trace:    v.GetBool(flagTrace),
		},
		Args: append([]string(nil), args...),
	}
	cfg.Flags = flagSnapshot(v, fs)
	return cfg, nil
}

// flagSnapshot records the resolved value of every registered flag for
// the startup trace.
func flagSnapshot(v *viper.Viper, fs *pflag.FlagSet) map[string]string {
	out := make(map[string]string)
	fs.VisitAll(func(f *pflag.Flag) {
		out[f.Name] = fmt.Sprint(v.Get(f.Name))
	})
	return out
}

// Validate checks field constraints on the resolved configuration.
func Validate(cfg Config) error {
	if err := validate.Struct(cfg.App); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	if err := validate.Struct(cfg.Server); err != nil {
		return fmt.Errorf("invalid server options: %w", err)
	}
	if cfg.App.PollInterval < 10*time.Millisecond {
		return fmt.Errorf("poll-interval must be at least 10ms (got %s)", cfg.App.PollInterval)
	}
	return nil
}
