package app

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"

	"frontier/internal/worldgen"
)

// Outcome is the result of one background generation.
type Outcome struct {
	Config worldgen.Config
	Result *worldgen.Result
	Err    error
}

// Session runs world generation off the UI goroutine, one job at a time.
// The UI polls it every frame.
type Session struct {
	log      *slog.Logger
	running  atomic.Bool
	progress atomic.Pointer[worldgen.Progress]
	done     chan Outcome
}

// NewSession returns an idle session.
func NewSession(log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	return &Session{log: log, done: make(chan Outcome, 1)}
}

// Start launches a generation for cfg. It reports false when a generation
// is already running.
func (s *Session) Start(cfg worldgen.Config) bool {
	if !s.running.CompareAndSwap(false, true) {
		return false
	}
	progress := &worldgen.Progress{}
	s.progress.Store(progress)
	go func() {
		res, err := worldgen.Generate(cfg, worldgen.WithLogger(s.log), worldgen.WithProgress(progress))
		s.done <- Outcome{Config: cfg, Result: res, Err: err}
	}()
	return true
}

// Running reports whether a generation is in flight.
func (s *Session) Running() bool { return s.running.Load() }

// Stage returns the stage of the current or last generation.
func (s *Session) Stage() (worldgen.Stage, float64) {
	p := s.progress.Load()
	if p == nil {
		return worldgen.StageStart, 0
	}
	return p.Stage(), p.Fraction()
}

// Poll returns the finished outcome without blocking.
func (s *Session) Poll() (Outcome, bool) {
	select {
	case o := <-s.done:
		s.running.Store(false)
		return o, true
	default:
		return Outcome{}, false
	}
}

// Wait blocks until the running generation finishes.
func (s *Session) Wait() Outcome {
	o := <-s.done
	s.running.Store(false)
	return o
}

// ClipboardText formats an outcome for sharing: the seed on the first line,
// then the summary as JSON.
func ClipboardText(o Outcome) string {
	if o.Err != nil || o.Result == nil {
		return fmt.Sprintf("seed %d\nfailed: %v\n", o.Config.Seed, o.Err)
	}
	data, err := json.MarshalIndent(o.Result.Summary, "", "  ")
	if err != nil {
		return fmt.Sprintf("seed %d\n", o.Config.Seed)
	}
	return fmt.Sprintf("seed %d\n%s\n", o.Config.Seed, data)
}
