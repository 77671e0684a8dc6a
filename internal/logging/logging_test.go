package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
)

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestNew_ParsesLevelAndFormat(t *testing.T) {
	unsetEnv(t, "LOG_LEVEL")
	unsetEnv(t, "LOG_FORMAT")
	var buf bytes.Buffer
	l := NewTo(&buf, "warn", "json")
	if l.GetLevel() != logrus.WarnLevel {
		t.Fatalf("expected warn, got %s", l.GetLevel())
	}
	l.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at warn, got %q", buf.String())
	}
	l.Warn("shown")
	if !bytes.HasPrefix(buf.Bytes(), []byte("{")) {
		t.Fatalf("expected JSON output, got %q", buf.String())
	}
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	unsetEnv(t, "LOG_LEVEL")
	unsetEnv(t, "LOG_FORMAT")
	l := NewTo(&bytes.Buffer{}, "loud", "")
	if l.GetLevel() != logrus.InfoLevel {
		t.Fatalf("expected info, got %s", l.GetLevel())
	}
	if _, ok := l.Formatter.(*logrus.TextFormatter); !ok {
		t.Fatalf("expected the text formatter, got %T", l.Formatter)
	}
}

func TestNew_EnvOverridesConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	var buf bytes.Buffer
	l := NewTo(&buf, "error", "text")
	if l.GetLevel() != logrus.DebugLevel {
		t.Fatalf("expected debug from env, got %s", l.GetLevel())
	}
	l.WithField("score", 10).Debug("kill")
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "kill" || entry["score"] != float64(10) {
		t.Fatalf("unexpected entry %v", entry)
	}
}
