package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInit_RejectsUnknownLevelAndFormat(t *testing.T) {
	if _, err := Init("loud", "json"); err == nil {
		t.Fatalf("expected invalid level error")
	}
	if _, err := Init("info", "xml"); err == nil {
		t.Fatalf("expected invalid format error")
	}
}

func TestInit_InstallsGlobal(t *testing.T) {
	t.Cleanup(func() { global.Store(nil) })

	l, err := Init("debug", "console")
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if L() != l {
		t.Fatalf("expected L() to return the initialized logger")
	}
}

func TestL_FallsBackToNop(t *testing.T) {
	global.Store(nil)
	if L() == nil {
		t.Fatalf("expected a usable logger")
	}
	L().Info("dropped")
}

func TestSet(t *testing.T) {
	t.Cleanup(func() { global.Store(nil) })

	core, logs := observer.New(zap.InfoLevel)
	Set(zap.New(core))
	L().Info("estimate generated", zap.String("project_type", "residential"))

	if logs.Len() != 1 {
		t.Fatalf("expected one entry, got %d", logs.Len())
	}
	if got := logs.All()[0].ContextMap()["project_type"]; got != "residential" {
		t.Fatalf("unexpected field %v", got)
	}
}
