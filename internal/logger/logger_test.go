package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew_Level(t *testing.T) {
	cases := []struct {
		level string
		dev   bool
		want  zapcore.Level
	}{
		{"", false, zapcore.InfoLevel},
		{"", true, zapcore.DebugLevel},
		{"warn", false, zapcore.WarnLevel},
		{"ERROR", true, zapcore.ErrorLevel},
	}

	for _, tc := range cases {
		log, atom, err := New(tc.level, tc.dev)
		if err != nil {
			t.Fatalf("expected no error for %q, got %v", tc.level, err)
		}
		if log == nil {
			t.Fatalf("expected logger for %q", tc.level)
		}
		if atom.Level() != tc.want {
			t.Fatalf("expected %v, got %v", tc.want, atom.Level())
		}
	}
}

func TestNew_UnknownLevel(t *testing.T) {
	if _, _, err := New("loud", false); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestNew_LevelIsAdjustable(t *testing.T) {
	log, atom, err := New("info", false)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if log.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug disabled at info")
	}

	atom.SetLevel(zapcore.DebugLevel)

	if !log.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug enabled after SetLevel")
	}
}
