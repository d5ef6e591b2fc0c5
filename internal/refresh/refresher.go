package refresh

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/fragmede/hackerstories/internal/ui/messages"
)

// Sender is the part of *tea.Program the refresher needs.
type Sender interface {
	Send(msg tea.Msg)
}

// Refresher periodically asks the UI to re-run the current search.
type Refresher struct {
	interval time.Duration
	stopCh   chan struct{}
	once     sync.Once
	started  bool
}

// New creates a refresher. A non-positive interval disables it.
func New(interval time.Duration) *Refresher {
	return &Refresher{
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the background loop. It is a no-op when the refresher
// is disabled or already running.
func (r *Refresher) Start(program Sender) {
	if r.interval <= 0 || r.started {
		return
	}
	r.started = true
	logrus.WithField("interval", r.interval).Info("auto refresh enabled")
	go r.loop(program)
}

// Stop halts the background loop. Safe to call more than once.
func (r *Refresher) Stop() {
	r.once.Do(func() { close(r.stopCh) })
}

func (r *Refresher) loop(program Sender) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopCh:
			return
		case <-ticker.C:
			select {
			case <-r.stopCh:
				return
			default:
			}
			logrus.Debug("auto refresh tick")
			program.Send(messages.RefreshMsg{})
		}
	}
}
