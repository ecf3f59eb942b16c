package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew_JSONWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := ComponentLogger(New("debug", FormatJSON, &buf), "footprint")
	l.Debug().Str("operation", "aggregate").Msg("done")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal %q: %v", buf.String(), err)
	}
	if entry["component"] != "footprint" {
		t.Errorf("component = %v", entry["component"])
	}
	if entry["operation"] != "aggregate" {
		t.Errorf("operation = %v", entry["operation"])
	}
	if entry["level"] != "debug" {
		t.Errorf("level = %v", entry["level"])
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New("warn", FormatJSON, &buf)
	l.Info().Msg("hidden")
	if buf.Len() != 0 {
		t.Errorf("info logged at warn level: %q", buf.String())
	}
	l.Warn().Msg("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("warn not logged: %q", buf.String())
	}
}

func TestNew_InvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := New("loud", FormatJSON, &buf)
	l.Debug().Msg("hidden")
	l.Info().Msg("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	l := New("info", "CONSOLE", &buf)
	l.Info().Msg("hello")
	if strings.HasPrefix(buf.String(), "{") {
		t.Errorf("console output looks like JSON: %q", buf.String())
	}
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithContext(context.Background(), New("info", FormatJSON, &buf))
	FromContext(ctx).Info().Msg("from ctx")
	if !strings.Contains(buf.String(), "from ctx") {
		t.Errorf("output = %q", buf.String())
	}
	// No logger attached: must not panic.
	FromContext(context.Background()).Info().Msg("dropped")
}
