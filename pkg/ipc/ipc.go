// Package ipc implements a compact binary IPC transport for the
// suggestion engine, mirroring the gateway's submit/feed/reset/ping
// protocol but encoded with msgpack instead of line-delimited JSON —
// grounded on the teacher's msgpack IPC convention, which favors short
// field tags to keep messages small.
package ipc

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/kordata/toolserve/internal/logger"
	"github.com/kordata/toolserve/pkg/suggest"
)

// Request is one client→server frame. Type selects which of the other
// fields apply, same semantics as gateway.ClientMessage but with
// msgpack's terse tags.
type Request struct {
	Type      string  `msgpack:"t"`
	SessionID string  `msgpack:"sid,omitempty"`
	Text      string  `msgpack:"text,omitempty"`
	Delta     string  `msgpack:"delta,omitempty"`
	Timestamp float64 `msgpack:"ts,omitempty"`
}

// SuggestionFrame mirrors suggest.Suggestion with short tags for wire
// compactness.
type SuggestionFrame struct {
	ID                string         `msgpack:"id"`
	Kind              string         `msgpack:"kind"`
	Score             float64        `msgpack:"score"`
	Label             string         `msgpack:"label"`
	Reason            string         `msgpack:"reason"`
	ArgumentsTemplate any            `msgpack:"args,omitempty"`
	Metadata          map[string]any `msgpack:"meta,omitempty"`
}

// Response is one server→client frame.
type Response struct {
	Type        string            `msgpack:"t"`
	SessionID   string            `msgpack:"sid,omitempty"`
	Suggestions []SuggestionFrame `msgpack:"suggestions,omitempty"`
	Timestamp   float64           `msgpack:"ts,omitempty"`
	Error       string            `msgpack:"error,omitempty"`
}

// Server drives a suggest.Engine over a msgpack-encoded stream. Unlike
// gateway.Gateway's line-delimited JSON, message boundaries come from
// msgpack's self-delimiting encoding, so no length prefix is needed.
type Server struct {
	engine *suggest.Engine
	dec    *msgpack.Decoder
	enc    *msgpack.Encoder
	log    *log.Logger
}

// NewServer creates an ipc.Server over arbitrary reader/writer streams.
func NewServer(engine *suggest.Engine, r io.Reader, w io.Writer) *Server {
	return &Server{
		engine: engine,
		dec:    msgpack.NewDecoder(r),
		enc:    msgpack.NewEncoder(w),
		log:    logger.Default("ipc"),
	}
}

// Serve decodes one Request at a time until the stream is exhausted,
// dispatching each to the engine and encoding back the response frame.
func (s *Server) Serve() error {
	for {
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			s.log.Errorf("decoding request frame: %v", err)
			return err
		}
		s.handle(req)
	}
}

func (s *Server) handle(req Request) {
	switch req.Type {
	case "submit":
		sid := sessionIDOrMint(req.SessionID)
		s.send(Response{Type: "suggestions", SessionID: sid, Suggestions: toFrames(s.engine.Submit(req.Text, sid))})
	case "feed":
		sid := sessionIDOrMint(req.SessionID)
		s.send(Response{Type: "suggestions", SessionID: sid, Suggestions: toFrames(s.engine.Feed(req.Delta, sid))})
	case "reset":
		if req.SessionID == "" {
			s.send(Response{Type: "error", Error: "reset requires a session_id"})
			return
		}
		s.engine.Reset(req.SessionID)
	case "ping":
		s.send(Response{Type: "pong", Timestamp: req.Timestamp})
	default:
		s.send(Response{Type: "error", Error: fmt.Sprintf("unknown message type: %q", req.Type)})
	}
}

func sessionIDOrMint(sid string) string {
	if sid != "" {
		return sid
	}
	return uuid.NewString()
}

func toFrames(suggestions []suggest.Suggestion) []SuggestionFrame {
	out := make([]SuggestionFrame, len(suggestions))
	for i, sg := range suggestions {
		out[i] = SuggestionFrame{
			ID:                sg.ID,
			Kind:              sg.Kind,
			Score:             sg.Score,
			Label:             sg.Label,
			Reason:            sg.Reason,
			ArgumentsTemplate: sg.ArgumentsTemplate,
			Metadata:          sg.Metadata,
		}
	}
	return out
}

func (s *Server) send(resp Response) {
	if err := s.enc.Encode(resp); err != nil {
		s.log.Errorf("encoding response frame: %v", err)
	}
}
