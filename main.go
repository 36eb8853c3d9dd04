package main

import (
	"fmt"
	"os"

	"github.com/fermata-io/menunav/internal/app"
	"github.com/fermata-io/menunav/internal/config"
	"github.com/fermata-io/menunav/internal/logging"
	"github.com/fermata-io/menunav/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	traceStartup(runtimeCfg)

	if runtimeCfg.Features.ListActions {
		if err := app.ListActions(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for name, value := range cfg.Flags {
		flags[name] = value
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath

	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
		"tty":    collectTTYDetails(),
	}
	addLookup(payload, "executable", os.Executable)
	addLookup(payload, "cwd", os.Getwd)
	return payload
}

func addLookup(payload map[string]interface{}, key string, lookup func() (string, error)) {
	value, err := lookup()
	if err != nil {
		payload[key+"Error"] = err.Error()
		return
	}
	payload[key] = value
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and
// dimensions. The first descriptor that reports a size wins as the detected
// terminal.
func collectTTYDetails() ttyDetails {
	var details ttyDetails
	for _, std := range []*os.File{os.Stdin, os.Stdout, os.Stderr} {
		probe := probeDescriptor(std)
		if details.Detected == nil && probe.IsTerminal && probe.Error == "" {
			details.Detected = &ttyDetected{Source: probe.Name, Width: probe.Width, Height: probe.Height}
		}
		details.Probes = append(details.Probes, probe)
	}
	return details
}

func probeDescriptor(f *os.File) ttyProbeResult {
	name := "stdin"
	switch f {
	case os.Stdout:
		name = "stdout"
	case os.Stderr:
		name = "stderr"
	}
	result := ttyProbeResult{Name: name}
	fd := int(f.Fd())
	if fd < 0 || !term.IsTerminal(fd) {
		return result
	}
	result.IsTerminal = true
	width, height, err := term.GetSize(fd)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Width = width
	result.Height = height
	return result
}
