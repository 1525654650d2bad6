package cli

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

// Spinner animates a status line on statusOut while a slow step runs, such
// as rendering the split tree through Graphviz. It stops on its own when the
// parent context is cancelled.
type Spinner struct {
	message string
	anim    spinner.Spinner

	ctx     context.Context
	cancel  context.CancelFunc
	stopped chan struct{}

	mu      sync.Mutex
	started bool
	once    sync.Once
}

func newSpinner(ctx context.Context, message string) *Spinner {
	ctx, cancel := context.WithCancel(ctx)
	return &Spinner{
		message: message,
		anim:    spinner.MiniDot,
		ctx:     ctx,
		cancel:  cancel,
		stopped: make(chan struct{}),
	}
}

// Start begins the animation.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true

	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(s.anim.FPS)
		defer ticker.Stop()

		for i := 0; ; i++ {
			frame := s.anim.Frames[i%len(s.anim.Frames)]
			fmt.Fprintf(statusOut, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(s.message))
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

// Stop ends the animation and clears the line. Calling it more than once,
// or before Start, is fine.
func (s *Spinner) Stop() {
	s.once.Do(func() {
		s.cancel()
		s.mu.Lock()
		started := s.started
		s.mu.Unlock()
		if !started {
			return
		}
		<-s.stopped
		fmt.Fprintf(statusOut, "\r%s\r", strings.Repeat(" ", s.width()))
	})
}

func (s *Spinner) width() int {
	w := 0
	for _, f := range s.anim.Frames {
		w = max(w, lipgloss.Width(f))
	}
	return w + 1 + lipgloss.Width(s.message)
}
