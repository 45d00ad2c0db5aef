// Package gateway implements the line-delimited JSON stdio wire
// protocol spec.md §6 defines: a thin collaborator that drives a
// suggest.Engine without any knowledge of its internals.
package gateway

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/kordata/toolserve/internal/logger"
	"github.com/kordata/toolserve/pkg/suggest"
)

// ClientMessage is one line of client→server input, tagged by Type:
// "submit", "feed", "reset", or "ping".
type ClientMessage struct {
	Type      string  `json:"type"`
	SessionID string  `json:"session_id"`
	Text      string  `json:"text,omitempty"`
	Delta     string  `json:"delta,omitempty"`
	Timestamp float64 `json:"timestamp,omitempty"`
}

// SuggestionsMessage is sent after each submit/feed.
type SuggestionsMessage struct {
	Type        string               `json:"type"`
	SessionID   string               `json:"session_id"`
	Suggestions []suggest.Suggestion `json:"suggestions"`
}

// PongMessage answers a ping.
type PongMessage struct {
	Type      string  `json:"type"`
	Timestamp float64 `json:"timestamp"`
}

// ErrorMessage reports a protocol violation. The engine itself is
// unaffected.
type ErrorMessage struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

// Gateway drives a suggest.Engine over newline-delimited JSON on
// arbitrary reader/writer streams — stdio by default, matching the
// teacher's IPC server shape.
type Gateway struct {
	engine *suggest.Engine
	reader *bufio.Reader
	writer io.Writer
	log    *log.Logger
}

// New creates a Gateway over stdin/stdout.
func New(engine *suggest.Engine) *Gateway {
	return &Gateway{
		engine: engine,
		reader: bufio.NewReader(os.Stdin),
		writer: os.Stdout,
		log:    logger.Default("gateway"),
	}
}

// NewWithStreams creates a Gateway over explicit streams, for tests and
// embedding in non-stdio transports.
func NewWithStreams(engine *suggest.Engine, r io.Reader, w io.Writer) *Gateway {
	return &Gateway{
		engine: engine,
		reader: bufio.NewReader(r),
		writer: w,
		log:    logger.Default("gateway"),
	}
}

// Serve reads one JSON message per line until EOF, dispatching each to
// the engine and writing back the corresponding response line.
func (g *Gateway) Serve() error {
	g.log.Debug("gateway serving")
	for {
		line, err := g.reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			g.log.Errorf("reading from stream: %v", err)
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		g.handleLine(line)
	}
}

func (g *Gateway) handleLine(line string) {
	var msg ClientMessage
	if err := json.Unmarshal([]byte(line), &msg); err != nil {
		g.log.Errorf("unmarshaling client message: %v", err)
		g.sendError(fmt.Sprintf("malformed message: %v", err))
		return
	}

	switch msg.Type {
	case "submit":
		g.handleSubmit(msg)
	case "feed":
		g.handleFeed(msg)
	case "reset":
		g.handleReset(msg)
	case "ping":
		g.send(PongMessage{Type: "pong", Timestamp: msg.Timestamp})
	default:
		g.sendError(fmt.Sprintf("unknown message type: %q", msg.Type))
	}
}

func (g *Gateway) handleSubmit(msg ClientMessage) {
	sid := sessionIDOrMint(msg.SessionID)
	suggestions := g.engine.Submit(msg.Text, sid)
	g.send(SuggestionsMessage{Type: "suggestions", SessionID: sid, Suggestions: suggestions})
}

func (g *Gateway) handleFeed(msg ClientMessage) {
	sid := sessionIDOrMint(msg.SessionID)
	suggestions := g.engine.Feed(msg.Delta, sid)
	g.send(SuggestionsMessage{Type: "suggestions", SessionID: sid, Suggestions: suggestions})
}

func (g *Gateway) handleReset(msg ClientMessage) {
	if msg.SessionID == "" {
		g.sendError("reset requires a session_id")
		return
	}
	g.engine.Reset(msg.SessionID)
}

// sessionIDOrMint mints a fresh session id when the client omits one,
// so callers can start submitting without an explicit handshake.
func sessionIDOrMint(sid string) string {
	if sid != "" {
		return sid
	}
	return uuid.NewString()
}

func (g *Gateway) send(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		g.log.Errorf("marshaling response: %v", err)
		return
	}
	fmt.Fprintln(g.writer, string(data))
}

func (g *Gateway) sendError(message string) {
	g.send(ErrorMessage{Type: "error", Error: message})
}
