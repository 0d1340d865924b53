package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/voiceforher/report-intake/internal/config"
	"github.com/voiceforher/report-intake/internal/database"
	"github.com/voiceforher/report-intake/internal/models"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := &config.Config{DatabaseURL: fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())}
	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { database.Close(db) })
	return db
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

type failingHandler struct{ calls int }

func (f *failingHandler) Enabled(context.Context, slog.Level) bool { return true }
func (f *failingHandler) Handle(context.Context, slog.Record) error {
	f.calls++
	return errors.New("sink down")
}
func (f *failingHandler) WithAttrs([]slog.Attr) slog.Handler { return f }
func (f *failingHandler) WithGroup(string) slog.Handler      { return f }

func TestMultiHandlerFanOut(t *testing.T) {
	var buf bytes.Buffer
	failing := &failingHandler{}
	logger := slog.New(NewMultiHandler(failing, NewJSONHandler(&buf, "info")))

	logger.With("component", "test").Info("hello", "n", 1)

	if failing.calls != 1 {
		t.Fatalf("expected failing handler to be called once, got %d", failing.calls)
	}
	var line map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("decode log line: %v (%s)", err, buf.String())
	}
	if line["msg"] != "hello" || line["component"] != "test" {
		t.Fatalf("unexpected log line: %v", line)
	}

	buf.Reset()
	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug record should be filtered at info level, got %s", buf.String())
	}
}

func TestDBHandlerPersistsErrors(t *testing.T) {
	db := newTestDB(t)
	var fallback bytes.Buffer
	h := NewDBHandler(db, NewJSONHandler(&fallback, "info"))
	logger := slog.New(h).With("action", "submit_report")

	logger.Info("ignored")
	logger.Error("insert failed",
		"trace_id", "req-1",
		"error", "database is locked",
		"latency_ms", 12.6,
		"path", "/reports",
	)
	h.Stop()

	var logs []models.SystemLog
	if err := db.Find(&logs).Error; err != nil {
		t.Fatalf("query logs: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected 1 persisted log, got %d", len(logs))
	}
	got := logs[0]
	if got.Level != "ERROR" || got.Message != "insert failed" {
		t.Fatalf("unexpected log row: %+v", got)
	}
	if got.TraceID != "req-1" || got.Action != "submit_report" || got.Error != "database is locked" {
		t.Fatalf("unexpected mapped fields: %+v", got)
	}
	if got.LatencyMs != 13 {
		t.Fatalf("expected rounded latency 13, got %d", got.LatencyMs)
	}
	if !strings.Contains(string(got.Extra), `"path":"/reports"`) {
		t.Fatalf("expected path in extra, got %s", got.Extra)
	}
	if fallback.Len() != 0 {
		t.Fatalf("unexpected fallback output: %s", fallback.String())
	}
}

func TestDBHandlerFlushFailureUsesFallback(t *testing.T) {
	db := newTestDB(t)
	var fallback bytes.Buffer
	h := NewDBHandler(db, NewJSONHandler(&fallback, "info"))

	if err := database.Close(db); err != nil {
		t.Fatalf("close: %v", err)
	}
	slog.New(h).Error("boom")
	h.Stop()

	if !strings.Contains(fallback.String(), "failed to flush system logs to DB") {
		t.Fatalf("expected flush failure on fallback, got %q", fallback.String())
	}
}

func TestPurgeSystemLogs(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	rows := []models.SystemLog{
		{ID: uuid.New(), Timestamp: now.Add(-40 * 24 * time.Hour), Level: "ERROR", Message: "old"},
		{ID: uuid.New(), Timestamp: now.Add(-time.Hour), Level: "ERROR", Message: "recent"},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	deleted, err := PurgeSystemLogs(db, now.Add(-30*24*time.Hour))
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("expected 1 deleted row, got %d", deleted)
	}

	var remaining []models.SystemLog
	if err := db.Find(&remaining).Error; err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(remaining) != 1 || remaining[0].Message != "recent" {
		t.Fatalf("unexpected remaining rows: %+v", remaining)
	}
}
