package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRunDemo(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var out bytes.Buffer
	runDemo(&out)
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != len(demoExamples)+1 {
		t.Fatalf("Expected %d demo lines, have %d", len(demoExamples)+1, len(lines))
	}
	if lines[0] != "Demo translations:" {
		t.Errorf("Expected the demo heading, have '%s'", lines[0])
	}
	if lines[1] != "I love pizza! -> 👁️ ❤️ 🍕!" {
		t.Errorf("unexpected first demo line: '%s'", lines[1])
	}
	if lines[5] != "Dance party! -> 💃 🎉!" {
		t.Errorf("unexpected last demo line: '%s'", lines[5])
	}
}
