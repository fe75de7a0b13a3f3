package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type fakeSink struct {
	mu        sync.Mutex
	delivered []Notification
	err       error
}

func (f *fakeSink) Deliver(_ context.Context, n Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.delivered = append(f.delivered, n)
	return nil
}

func (f *fakeSink) deliveries() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Notification, len(f.delivered))
	copy(out, f.delivered)
	return out
}

func TestScheduler_Send_Immediate(t *testing.T) {
	sink := &fakeSink{}
	s := NewScheduler(sink, time.Second, newTestLogger(t))

	var delivered []Delivered
	s.AddDeliveryListener(func(d Delivered) { delivered = append(delivered, d) })

	require.NoError(t, s.Send(context.Background(), Notification{Title: "hello"}))

	require.Len(t, sink.deliveries(), 1)
	require.Len(t, delivered, 1)
	assert.Equal(t, "hello", delivered[0].Title)
}

func TestScheduler_Send_SinkError(t *testing.T) {
	sink := &fakeSink{err: errors.New("offline")}
	s := NewScheduler(sink, time.Second, newTestLogger(t))

	var delivered []Delivered
	s.AddDeliveryListener(func(d Delivered) { delivered = append(delivered, d) })

	require.Error(t, s.Send(context.Background(), Notification{Title: "x"}))
	assert.Empty(t, delivered)
}

func TestScheduler_Tick_DeliversDueOnly(t *testing.T) {
	sink := &fakeSink{}
	s := NewScheduler(sink, time.Second, newTestLogger(t))

	base := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	require.NoError(t, s.ScheduleAt(base.Add(-time.Minute), Notification{Title: "due"}))
	require.NoError(t, s.ScheduleAt(base.Add(time.Hour), Notification{Title: "future"}))

	s.tick(context.Background())

	got := sink.deliveries()
	require.Len(t, got, 1)
	assert.Equal(t, "due", got[0].Title)
	assert.Equal(t, 1, s.PendingCount(), "future entry stays queued")
}

func TestScheduler_Tick_DropsFailedDelivery(t *testing.T) {
	sink := &fakeSink{err: errors.New("offline")}
	s := NewScheduler(sink, time.Second, newTestLogger(t))

	base := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	require.NoError(t, s.ScheduleAt(base, Notification{Title: "doomed"}))

	s.tick(context.Background())

	// dropped, not requeued
	assert.Equal(t, 0, s.PendingCount())

	sink.err = nil
	s.tick(context.Background())
	assert.Empty(t, sink.deliveries())
}

func TestScheduler_CancelAll(t *testing.T) {
	s := NewScheduler(&fakeSink{}, time.Second, newTestLogger(t))

	require.NoError(t, s.ScheduleAt(time.Now().Add(time.Hour), Notification{Title: "a"}))
	require.NoError(t, s.ScheduleAt(time.Now().Add(2*time.Hour), Notification{Title: "b"}))
	require.Equal(t, 2, s.PendingCount())

	s.CancelAll()

	assert.Equal(t, 0, s.PendingCount())
}

func TestScheduler_Badge(t *testing.T) {
	s := NewScheduler(&fakeSink{}, time.Second, newTestLogger(t))

	assert.Equal(t, 0, s.Badge())
	s.SetBadge(4)
	assert.Equal(t, 4, s.Badge())
	s.SetBadge(0)
	assert.Equal(t, 0, s.Badge())
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	s := NewScheduler(&fakeSink{}, time.Second, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_Start_FlushesDueEntries(t *testing.T) {
	sink := &fakeSink{}
	s := NewScheduler(sink, 20*time.Millisecond, newTestLogger(t))

	require.NoError(t, s.ScheduleAt(time.Now().Add(-time.Second), Notification{Title: "overdue"}))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	s.Start(ctx)

	got := sink.deliveries()
	require.Len(t, got, 1)
	assert.Equal(t, "overdue", got[0].Title)
}
