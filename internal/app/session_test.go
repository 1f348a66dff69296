package app

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontier/internal/worldgen"
)

func TestSessionRunsOneJob(t *testing.T) {
	s := NewSession(slog.New(slog.NewTextHandler(io.Discard, nil)))
	stage, fraction := s.Stage()
	assert.Equal(t, worldgen.StageStart, stage)
	assert.Zero(t, fraction)

	cfg := worldgen.SmallConfig()
	cfg.Params.TownsCount = 1 // rejected before any work
	require.True(t, s.Start(cfg))
	assert.True(t, s.Running())
	assert.False(t, s.Start(cfg), "second job while the first runs")

	o := s.Wait()
	assert.False(t, s.Running())
	assert.ErrorIs(t, o.Err, worldgen.ErrInvalidConfig)
	assert.Equal(t, cfg.Seed, o.Config.Seed)

	_, ok := s.Poll()
	assert.False(t, ok)
	require.True(t, s.Start(cfg))
	for {
		if _, ok := s.Poll(); ok {
			break
		}
		time.Sleep(time.Millisecond)
	}
	assert.False(t, s.Running())
}

func TestClipboardText(t *testing.T) {
	ok := Outcome{
		Config: worldgen.Config{Seed: 99},
		Result: &worldgen.Result{Summary: worldgen.Summary{Seed: 99, Towns: 2}},
	}
	text := ClipboardText(ok)
	assert.Contains(t, text, "seed 99\n")
	assert.Contains(t, text, `"towns": 2`)

	failed := Outcome{Config: worldgen.Config{Seed: 5}, Err: errors.New("boom")}
	assert.Equal(t, "seed 5\nfailed: boom\n", ClipboardText(failed))
}
