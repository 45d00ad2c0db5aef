// Package debugcli provides an interactive stdin loop for exercising a
// suggestion engine by hand — useful for testing and debugging a
// catalog without standing up a gateway.
package debugcli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/kordata/toolserve/internal/logger"
	"github.com/kordata/toolserve/pkg/suggest"
)

var (
	labelStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	reasonStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.AdaptiveColor{Light: "#797593", Dark: "#908caa"})
	scoreStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"})
)

// InputHandler reads lines from a reader and feeds each one to an
// Engine, printing ranked suggestions to stdout as it goes.
type InputHandler struct {
	engine    *suggest.Engine
	sessionID string
	streaming bool
	log       *log.Logger
}

// NewInputHandler creates a handler bound to engine and sessionID.
// streaming selects Feed (treating each line as a live delta) over
// Submit (treating each line as a finalized replace).
func NewInputHandler(engine *suggest.Engine, sessionID string, streaming bool) *InputHandler {
	return &InputHandler{
		engine:    engine,
		sessionID: sessionID,
		streaming: streaming,
		log:       logger.Default("toolcli"),
	}
}

// Start runs the read-eval-print loop until r is exhausted or returns
// an error other than io.EOF.
func (h *InputHandler) Start(r io.Reader) error {
	h.log.Print("Tool Suggestion CLI [debug]")
	h.log.Print("type a query and press Enter (Ctrl+C to exit):")

	reader := bufio.NewReader(r)
	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		line = strings.TrimRight(line, "\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		h.handleLine(line)
	}
}

func (h *InputHandler) handleLine(line string) {
	var results []suggest.Suggestion
	if h.streaming {
		results = h.engine.Feed(line+" ", h.sessionID)
	} else {
		results = h.engine.Submit(line, h.sessionID)
	}

	if len(results) == 0 {
		h.log.Warnf("no suggestions for %q", line)
		return
	}

	for i, r := range results {
		fmt.Printf("%2d. %s %s\n    %s\n",
			i+1,
			labelStyle.Render(r.Label),
			scoreStyle.Render(fmt.Sprintf("(%.2f)", r.Score)),
			reasonStyle.Render(r.Reason),
		)
	}
}
