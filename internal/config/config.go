package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/fermata-io/menunav/internal/app"
	"github.com/fermata-io/menunav/internal/ui"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose     bool
	ListActions bool
}

const (
	envDBPath     = "MENUNAV_DB"
	envWidth      = "MENUNAV_WIDTH"
	envHeight     = "MENUNAV_HEIGHT"
	envShowFooter = "MENUNAV_FOOTER"
	envVerbose    = "MENUNAV_VERBOSE"
	envTrace      = "MENUNAV_TRACE"
	envLogFile    = "MENUNAV_LOG_FILE"
	envKeymap     = "MENUNAV_KEYMAP"
	envRecentMax  = "MENUNAV_RECENT_MAX"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("menunav", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	dbPath := fs.String("db", envOrDefault(env, envDBPath, ""), "path to the recent-files database (empty disables persistence)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	keymapFile := fs.String("keymap", envOrDefault(env, envKeymap, ""), "path to a JSON keymap override file")
	recentMax := fs.Int("recent-max", envOrInt(env, envRecentMax, 10), "maximum number of entries in Open Recent")
	listActions := fs.Bool("list-actions", false, "print the action registry and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *recentMax < 1 {
		return Config{}, fmt.Errorf("recent-max must be >= 1 (got %d)", *recentMax)
	}

	keymap, err := loadKeymapFile(*keymapFile)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			DBPath:     *dbPath,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Verbose:    *verbose,
			RecentMax:  *recentMax,
			Keymap:     keymap,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose:     *verbose,
			ListActions: *listActions,
		},
		Flags: map[string]string{
			"db":          *dbPath,
			"width":       strconv.Itoa(*width),
			"height":      strconv.Itoa(*height),
			"footer":      strconv.FormatBool(*footer),
			"trace":       strconv.FormatBool(*trace),
			"verbose":     strconv.FormatBool(*verbose),
			"logFile":     *logFile,
			"keymap":      *keymapFile,
			"recentMax":   strconv.Itoa(*recentMax),
			"listActions": strconv.FormatBool(*listActions),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// loadKeymapFile reads chrome key overrides from a JSON file, e.g.
// {"menu": "f9", "palette": "ctrl+k"}. Unknown fields are ignored.
func loadKeymapFile(path string) (ui.KeyOverrides, error) {
	var overrides ui.KeyOverrides
	if path == "" {
		return overrides, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return overrides, fmt.Errorf("read keymap file: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return overrides, fmt.Errorf("keymap file %s is not valid JSON", path)
	}
	doc := gjson.ParseBytes(data)
	overrides.Menu = doc.Get("menu").String()
	overrides.Palette = doc.Get("palette").String()
	overrides.Quit = doc.Get("quit").String()
	return overrides, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	// Additional validation hooks can be placed here as configuration evolves.
	return nil
}
