// Package notify is the device-local notification capability: immediate
// and scheduled-at-future-time delivery, cancel-all, badge count, and
// delivery listeners. Delivery is fire-once with no coupling back to
// whatever action scheduled it.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/wb-go/wbf/logger"
)

type Notification struct {
	Title string
	Body  string
	Data  map[string]string
}

// Delivered is handed to listeners after a notification reaches the sink.
type Delivered struct {
	Notification
	At time.Time
}

// Sink is where notifications ultimately land (Telegram in production, a
// recorder in tests).
type Sink interface {
	Deliver(ctx context.Context, n Notification) error
}

type pending struct {
	at time.Time
	n  Notification
}

// Scheduler holds future notifications in memory and flushes due ones on
// every tick. A dropped delivery is logged and gone; nothing is retried.
type Scheduler struct {
	sink     Sink
	interval time.Duration
	log      logger.Logger

	mu        sync.Mutex
	queue     []pending
	badge     int
	listeners []func(Delivered)

	now func() time.Time
}

func NewScheduler(sink Sink, interval time.Duration, log logger.Logger) *Scheduler {
	return &Scheduler{
		sink:     sink,
		interval: interval,
		log:      log,
		now:      time.Now,
	}
}

// Send delivers immediately.
func (s *Scheduler) Send(ctx context.Context, n Notification) error {
	if err := s.sink.Deliver(ctx, n); err != nil {
		return err
	}
	s.notifyListeners(Delivered{Notification: n, At: s.now()})
	return nil
}

// ScheduleAt queues n for delivery at the given time. Times already in the
// past fire on the next tick.
func (s *Scheduler) ScheduleAt(at time.Time, n Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = append(s.queue, pending{at: at, n: n})
	return nil
}

func (s *Scheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = nil
}

func (s *Scheduler) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

func (s *Scheduler) Badge() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.badge
}

func (s *Scheduler) SetBadge(count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.badge = count
}

func (s *Scheduler) AddDeliveryListener(fn func(Delivered)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *Scheduler) notifyListeners(d Delivered) {
	s.mu.Lock()
	fns := make([]func(Delivered), len(s.listeners))
	copy(fns, s.listeners)
	s.mu.Unlock()

	for _, fn := range fns {
		fn(d)
	}
}

// Start runs the dispatch loop until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info("notification dispatcher started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.log.Info("notification dispatcher stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	now := s.now()

	s.mu.Lock()
	var due []pending
	rest := s.queue[:0]
	for _, p := range s.queue {
		if !p.at.After(now) {
			due = append(due, p)
		} else {
			rest = append(rest, p)
		}
	}
	s.queue = rest
	s.mu.Unlock()

	for _, p := range due {
		if err := s.sink.Deliver(ctx, p.n); err != nil {
			s.log.Error("failed to deliver scheduled notification",
				logger.String("title", p.n.Title),
				logger.String("error", err.Error()),
			)
			continue
		}
		s.notifyListeners(Delivered{Notification: p.n, At: now})
	}
}
