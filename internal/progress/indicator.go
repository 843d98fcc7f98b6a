package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Indicator shows that a request is in flight.
type Indicator interface {
	Start(message string)
	Stop()
}

// NewIndicator returns a LineIndicator if the CI environment variable is
// set, or a SpinnerIndicator otherwise.
func NewIndicator(w io.Writer) Indicator {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &LineIndicator{w: w}
	}
	return &SpinnerIndicator{w: w, interval: 100 * time.Millisecond}
}

// SpinnerIndicator animates a spinner with elapsed time until stopped.
type SpinnerIndicator struct {
	w        io.Writer
	interval time.Duration

	mu   sync.Mutex
	bar  *progressbar.ProgressBar
	done chan struct{}
	wg   sync.WaitGroup
}

func (s *SpinnerIndicator) Start(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bar != nil {
		return
	}
	s.bar = progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(s.w),
		progressbar.OptionSetDescription(message),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionClearOnFinish(),
	)
	s.done = make(chan struct{})

	bar, done := s.bar, s.done
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				_ = bar.Add(1)
			}
		}
	}()
}

func (s *SpinnerIndicator) Stop() {
	s.mu.Lock()
	if s.bar == nil {
		s.mu.Unlock()
		return
	}
	bar := s.bar
	close(s.done)
	s.bar = nil
	s.mu.Unlock()

	s.wg.Wait()
	_ = bar.Finish()
}

// LineIndicator prints one line when a request starts and one when it ends,
// suitable for CI logs.
type LineIndicator struct {
	w       io.Writer
	mu      sync.Mutex
	started time.Time
	active  bool
}

func (l *LineIndicator) Start(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.active {
		return
	}
	l.active = true
	l.started = time.Now()
	fmt.Fprintln(l.w, message)
}

func (l *LineIndicator) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.active {
		return
	}
	l.active = false
	fmt.Fprintf(l.w, "done in %s\n", time.Since(l.started).Round(100*time.Millisecond))
}
