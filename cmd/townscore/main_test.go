package main

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{250 * time.Millisecond, "250ms"},
		{1500 * time.Millisecond, "1.5s"},
		{90 * time.Second, "1m30s"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger("debug", "json", &buf)
	log.Debug("hello", "k", 1)

	if !strings.Contains(buf.String(), `"msg":"hello"`) {
		t.Errorf("Expected JSON debug line, got %q", buf.String())
	}
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger("warn", "text", &buf)
	log.Info("hidden")

	if buf.Len() != 0 {
		t.Errorf("Info should be filtered at warn, got %q", buf.String())
	}
}

func withFlags(t *testing.T, town, smp string) {
	t.Helper()
	oldTown, oldSample := townPath, sample
	townPath, sample = town, smp
	t.Cleanup(func() { townPath, sample = oldTown, oldSample })
}

func TestLoadEntries(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	withFlags(t, "", "temples")
	entries, _, _, err := loadEntries(log)
	if err != nil || len(entries) != 1 || entries[0].town.Name != "temples" {
		t.Errorf("example: got %d entries, err %v", len(entries), err)
	}

	withFlags(t, "", "all")
	entries, _, _, err = loadEntries(log)
	if err != nil || len(entries) != 6 {
		t.Errorf("all: got %d entries, err %v", len(entries), err)
	}

	withFlags(t, "", "seed:9")
	entries, _, _, err = loadEntries(log)
	if err != nil || len(entries) != 1 || entries[0].town.Grid.Len() != 16 {
		t.Errorf("seed: got %d entries, err %v", len(entries), err)
	}

	for _, bad := range [][2]string{{"", ""}, {"x.hcl", "all"}, {"", "seed:x"}, {"", "nowhere"}} {
		withFlags(t, bad[0], bad[1])
		if _, _, _, err := loadEntries(log); err == nil {
			t.Errorf("town=%q sample=%q: expected error", bad[0], bad[1])
		}
	}
}
