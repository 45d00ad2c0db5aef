package debugcli

import (
	"strings"
	"testing"

	"github.com/kordata/toolserve/pkg/suggest"
)

func newTestEngine(t *testing.T) *suggest.Engine {
	t.Helper()
	opts := suggest.DefaultOptions()
	opts.Tools = []suggest.ToolSpec{
		{Name: "export_csv", Description: "Export data to CSV format", Keywords: []string{"export", "csv"}},
	}
	e, err := suggest.New(opts)
	if err != nil {
		t.Fatalf("suggest.New: %v", err)
	}
	return e
}

func TestStartProcessesLinesUntilEOF(t *testing.T) {
	h := NewInputHandler(newTestEngine(t), "cli", false)
	in := strings.NewReader("export data to csv\n\nexport csv\n")
	if err := h.Start(in); err != nil {
		t.Fatalf("Start: %v", err)
	}
}

func TestStreamingModeUsesFeed(t *testing.T) {
	h := NewInputHandler(newTestEngine(t), "cli", true)
	in := strings.NewReader("export\ncsv\n")
	if err := h.Start(in); err != nil {
		t.Fatalf("Start: %v", err)
	}
}
