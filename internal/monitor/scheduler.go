package monitor

import (
	"sync"
	"time"
)

// Handle cancels a scheduled task.
type Handle interface {
	// Cancel stops future runs. It does not wait for a run in progress and is
	// safe to call more than once.
	Cancel()
}

// Scheduler runs repeating tasks.
type Scheduler interface {
	// Every runs fn once as soon as possible and then every interval until the
	// handle is cancelled. fn must not be invoked synchronously from Every.
	Every(interval time.Duration, fn func()) Handle
}

type tickerScheduler struct{}

// NewTickerScheduler returns a Scheduler backed by time.Ticker. Runs of one
// task never overlap.
func NewTickerScheduler() Scheduler {
	return tickerScheduler{}
}

func (tickerScheduler) Every(interval time.Duration, fn func()) Handle {
	h := &tickerHandle{done: make(chan struct{})}

	go func() {
		select {
		case <-h.done:
			return
		default:
		}
		fn()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-h.done:
				return
			case <-ticker.C:
				fn()
			}
		}
	}()

	return h
}

type tickerHandle struct {
	once sync.Once
	done chan struct{}
}

func (h *tickerHandle) Cancel() {
	h.once.Do(func() { close(h.done) })
}
