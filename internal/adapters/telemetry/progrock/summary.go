package progrock

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/vito/progrock"
	"go.trai.ch/lockcheck/internal/core/ports"
)

var _ progrock.Writer = (*SummaryWriter)(nil)

type stage struct {
	name      string
	started   time.Time
	completed time.Time
	done      bool
	cached    bool
	err       string
	lastLine  string
}

// SummaryWriter is a progrock.Writer that collects stage state from the tape
// and logs one line per stage when closed.
type SummaryWriter struct {
	mu     sync.Mutex
	logger ports.Logger
	order  []string
	stages map[string]*stage
	closed bool
}

// NewSummaryWriter creates a new SummaryWriter logging to logger.
func NewSummaryWriter(logger ports.Logger) *SummaryWriter {
	return &SummaryWriter{
		logger: logger,
		stages: make(map[string]*stage),
	}
}

// WriteStatus applies a tape update.
func (w *SummaryWriter) WriteStatus(update *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, v := range update.Vertexes {
		s := w.stage(v.Id)
		s.name = v.Name
		if v.Started != nil {
			s.started = v.Started.AsTime()
		}
		if v.Completed != nil {
			s.done = true
			s.completed = v.Completed.AsTime()
		}
		if v.Error != nil {
			s.err = *v.Error
		}
		s.cached = v.Cached
	}

	for _, l := range update.Logs {
		if line := lastLine(l.Data); line != "" {
			w.stage(l.Vertex).lastLine = line
		}
	}
	return nil
}

// Close logs the stage summary. Subsequent calls do nothing.
func (w *SummaryWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true

	for _, id := range w.order {
		s := w.stages[id]
		switch {
		case s.cached:
			w.logger.Info(s.name + ": cached")
		case !s.done:
			w.logger.Warn(s.name + ": interrupted")
		case s.err != "":
			msg := fmt.Sprintf("%s: failed after %s", s.name, s.elapsed())
			if s.lastLine != "" {
				msg += " (" + s.lastLine + ")"
			}
			w.logger.Warn(msg)
		default:
			w.logger.Info(fmt.Sprintf("%s: done in %s", s.name, s.elapsed()))
		}
	}
	return nil
}

func (w *SummaryWriter) stage(id string) *stage {
	s, ok := w.stages[id]
	if !ok {
		s = &stage{}
		w.stages[id] = s
		w.order = append(w.order, id)
	}
	return s
}

func (s *stage) elapsed() time.Duration {
	if s.started.IsZero() || s.completed.Before(s.started) {
		return 0
	}
	return s.completed.Sub(s.started).Round(time.Millisecond)
}

func lastLine(data []byte) string {
	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	return string(bytes.TrimSpace(lines[len(lines)-1]))
}
