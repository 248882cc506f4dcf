// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newBufferedSlog(level zerolog.Level) (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(NewSlogHandlerWithLogger(NewTestLogger(&buf).Level(level))), &buf
}

func TestSlogHandler_Enabled(t *testing.T) {
	h := NewSlogHandlerWithLogger(NewTestLogger(&bytes.Buffer{}).Level(zerolog.WarnLevel))
	ctx := context.Background()

	tests := []struct {
		level slog.Level
		want  bool
	}{
		{slog.LevelDebug, false},
		{slog.LevelInfo, false},
		{slog.LevelWarn, true},
		{slog.LevelError, true},
	}
	for _, tt := range tests {
		if got := h.Enabled(ctx, tt.level); got != tt.want {
			t.Errorf("Enabled(%v) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestSlogHandler_Levels(t *testing.T) {
	withGlobalLevel(t, "trace")
	tests := []struct {
		log  func(*slog.Logger)
		want string
	}{
		{func(l *slog.Logger) { l.Debug("m") }, `"level":"debug"`},
		{func(l *slog.Logger) { l.Info("m") }, `"level":"info"`},
		{func(l *slog.Logger) { l.Warn("m") }, `"level":"warn"`},
		{func(l *slog.Logger) { l.Error("m") }, `"level":"error"`},
	}
	for _, tt := range tests {
		l, buf := newBufferedSlog(zerolog.TraceLevel)
		tt.log(l)
		if !strings.Contains(buf.String(), tt.want) {
			t.Errorf("output %s missing %s", buf.String(), tt.want)
		}
	}
}

func TestSlogHandler_Attributes(t *testing.T) {
	l, buf := newBufferedSlog(zerolog.TraceLevel)

	l.With("service", "api").WithGroup("req").Info("restart",
		"attempt", 3,
		"ok", true,
		"ratio", 0.5,
		"wait", 2*time.Second,
		"err", errors.New("port in use"),
		slog.Group("limits", "max", uint64(10)),
	)

	out := buf.String()
	for _, want := range []string{
		`"service":"api"`,
		`"req.attempt":3`,
		`"req.ok":true`,
		`"req.ratio":0.5`,
		`"req.err":"port in use"`,
		`"req.limits.max":10`,
		`"message":"restart"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output %s missing %s", out, want)
		}
	}
}

func TestSlogHandler_ContextIDs(t *testing.T) {
	l, buf := newBufferedSlog(zerolog.TraceLevel)
	ctx := ContextWithCorrelationID(context.Background(), "c9")

	l.InfoContext(ctx, "handled")

	if !strings.Contains(buf.String(), `"correlation_id":"c9"`) {
		t.Errorf("output = %s", buf.String())
	}
}

func TestSlogHandler_EmptyGroupIsNoop(t *testing.T) {
	h := NewSlogHandler()
	if h.WithGroup("") != h {
		t.Error("WithGroup(\"\") returned a new handler")
	}
}

func TestSlogToZerologLevel(t *testing.T) {
	tests := []struct {
		in   slog.Level
		want zerolog.Level
	}{
		{slog.LevelDebug - 4, zerolog.TraceLevel},
		{slog.LevelDebug, zerolog.DebugLevel},
		{slog.LevelInfo, zerolog.InfoLevel},
		{slog.LevelWarn, zerolog.WarnLevel},
		{slog.LevelError, zerolog.ErrorLevel},
		{slog.LevelError + 4, zerolog.ErrorLevel},
	}
	for _, tt := range tests {
		if got := slogToZerologLevel(tt.in); got != tt.want {
			t.Errorf("slogToZerologLevel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewSlogLoggerFor(t *testing.T) {
	var buf bytes.Buffer
	original := Logger()
	SetLogger(NewTestLogger(&buf))
	t.Cleanup(func() { SetLogger(original) })

	NewSlogLoggerFor("supervisor").Info("started")

	if !strings.Contains(buf.String(), `"component":"supervisor"`) {
		t.Errorf("output = %s", buf.String())
	}
}
