/*
Command toolcli is an interactive debug front-end for the suggestion
engine: it reads lines from stdin and prints ranked suggestions, for
testing a catalog without standing up a gateway.

Usage:

	toolcli -catalog catalog.json
	toolcli -catalog catalog.yaml -stream

Flags:

	-catalog string
	    Path to a JSON or YAML tool catalog (required).
	-config string
	    Path to a TOML configuration file.
	-stream
	    Treat each line as a live delta (Feed) instead of a finalized
	    submission (Submit).
	-d
	    Enable debug logging.
*/
package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/log"

	"github.com/kordata/toolserve/internal/catalogio"
	"github.com/kordata/toolserve/internal/debugcli"
	"github.com/kordata/toolserve/internal/logger"
	"github.com/kordata/toolserve/pkg/config"
	"github.com/kordata/toolserve/pkg/suggest"
)

func main() {
	catalogPath := flag.String("catalog", "", "Path to a JSON or YAML tool catalog")
	configPath := flag.String("config", "", "Path to a TOML configuration file")
	streaming := flag.Bool("stream", false, "Treat each line as a live delta instead of a finalized submission")
	debugMode := flag.Bool("d", false, "Enable debug logging")
	flag.Parse()

	level := log.WarnLevel
	if *debugMode {
		level = log.DebugLevel
	}
	log.SetLevel(level)
	appLog := logger.NewWithConfig("toolcli", level, false, false, log.TextFormatter)

	if *catalogPath == "" {
		appLog.Fatal("a -catalog path is required")
	}

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.InitConfig(*configPath)
		if err != nil {
			appLog.Fatalf("loading config: %v", err)
		}
		cfg = loaded
	}

	tools, err := catalogio.Load(*catalogPath)
	if err != nil {
		appLog.Fatalf("loading catalog: %v", err)
	}

	opts := cfg.ToOptions()
	opts.Tools = tools
	engine, err := suggest.New(opts)
	if err != nil {
		appLog.Fatalf("constructing engine: %v", err)
	}

	handler := debugcli.NewInputHandler(engine, "toolcli", *streaming)
	if err := handler.Start(os.Stdin); err != nil {
		appLog.Fatalf("cli: %v", err)
	}
}
