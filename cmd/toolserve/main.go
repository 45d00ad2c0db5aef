/*
Command toolserve runs the real-time tool suggestion engine behind the
line-delimited JSON gateway described by the project's wire protocol.

Usage:

	toolserve -catalog catalog.json
	toolserve -catalog catalog.yaml -config config.toml -d

Flags:

	-catalog string
	    Path to a JSON or YAML tool catalog (required unless set in config).
	-config string
	    Path to a TOML configuration file (created with defaults if
	    missing). When omitted, built-in defaults are used.
	-d
	    Enable debug logging.
	-ipc
	    Serve the msgpack binary protocol instead of JSON.

The gateway reads newline-delimited JSON requests from stdin and writes
newline-delimited JSON responses to stdout; all logging goes to stderr
so it never interleaves with the wire protocol.
*/
package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/log"

	"github.com/kordata/toolserve/internal/catalogio"
	"github.com/kordata/toolserve/internal/logger"
	"github.com/kordata/toolserve/pkg/config"
	"github.com/kordata/toolserve/pkg/gateway"
	"github.com/kordata/toolserve/pkg/ipc"
	"github.com/kordata/toolserve/pkg/suggest"
)

func main() {
	catalogPath := flag.String("catalog", "", "Path to a JSON or YAML tool catalog")
	configPath := flag.String("config", "", "Path to a TOML configuration file")
	debugMode := flag.Bool("d", false, "Enable debug logging")
	useIPC := flag.Bool("ipc", false, "Serve the msgpack binary protocol instead of JSON")
	flag.Parse()

	level := log.WarnLevel
	if *debugMode {
		level = log.DebugLevel
	}
	log.SetLevel(level)
	appLog := logger.NewWithConfig("toolserve", level, false, false, log.TextFormatter)

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.InitConfig(*configPath)
		if err != nil {
			appLog.Fatalf("loading config: %v", err)
		}
		cfg = loaded
	}

	resolvedCatalog := *catalogPath
	if resolvedCatalog == "" {
		resolvedCatalog = cfg.Gateway.CatalogPath
	}
	if resolvedCatalog == "" {
		appLog.Fatal("no catalog provided: pass -catalog or set gateway.catalog_path in the config file")
	}

	tools, err := catalogio.Load(resolvedCatalog)
	if err != nil {
		appLog.Fatalf("loading catalog: %v", err)
	}

	opts := cfg.ToOptions()
	opts.Tools = tools
	engine, err := suggest.New(opts)
	if err != nil {
		appLog.Fatalf("constructing engine: %v", err)
	}
	appLog.Debugf("engine ready: %d tools loaded from %s", len(tools), resolvedCatalog)

	if *useIPC {
		srv := ipc.NewServer(engine, os.Stdin, os.Stdout)
		if err := srv.Serve(); err != nil {
			appLog.Fatalf("ipc server: %v", err)
		}
		return
	}

	gw := gateway.New(engine)
	if err := gw.Serve(); err != nil {
		appLog.Fatalf("gateway: %v", err)
	}
}
