package eventbus

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"steamgrip/internal/domain"
)

// collector records events delivered to a subscriber
type collector struct {
	mu     sync.Mutex
	events []DomainEvent
}

func (c *collector) handle(e DomainEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
}

func (c *collector) snapshot() []DomainEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]DomainEvent, len(c.events))
	copy(out, c.events)
	return out
}

func (c *collector) waitFor(t *testing.T, n int) []DomainEvent {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if evs := c.snapshot(); len(evs) >= n {
			return evs
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d events, got %d", n, len(c.snapshot()))
	return nil
}

func TestPublishDeliversToSubscriber(t *testing.T) {
	t.Parallel()
	b := New()
	defer b.Close()

	var c collector
	b.Subscribe(EventSearchRequested, c.handle)

	b.Publish(SearchRequestedEvent{Term: "gaben"})

	evs := c.waitFor(t, 1)
	req, ok := evs[0].(SearchRequestedEvent)
	require.True(t, ok, "should deliver the concrete event type")
	require.Equal(t, "gaben", req.Term)
}

func TestSubscribersOnlyReceiveTheirType(t *testing.T) {
	t.Parallel()
	b := New()
	defer b.Close()

	var search, errs collector
	b.Subscribe(EventSearchStatus, search.handle)
	b.Subscribe(EventError, errs.handle)

	b.Publish(SearchStatusEvent{State: domain.StateLoading, Phase: domain.PhaseResolve})
	b.Publish(ErrorEvent{Message: "boom"})
	b.Publish(SearchStatusEvent{State: domain.StateSuccess, Phase: domain.PhaseLibrary})

	search.waitFor(t, 2)
	errs.waitFor(t, 1)
	require.Len(t, search.snapshot(), 2)
	require.Len(t, errs.snapshot(), 1)
}

func TestEventsArriveInPublishOrder(t *testing.T) {
	t.Parallel()
	b := New()
	defer b.Close()

	var c collector
	b.Subscribe(EventSearchStatus, c.handle)

	states := []domain.SearchState{domain.StateLoading, domain.StateSuccess, domain.StateFailure}
	for i := 0; i < 50; i++ {
		b.Publish(SearchStatusEvent{State: states[i%len(states)], Term: "order"})
	}

	evs := c.waitFor(t, 50)
	for i, e := range evs {
		st := e.(SearchStatusEvent).State
		require.Equal(t, states[i%len(states)], st, "event %d out of order", i)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	t.Parallel()
	b := New()
	defer b.Close()

	var c collector
	unsubscribe := b.Subscribe(EventError, c.handle)

	b.Publish(ErrorEvent{Message: "first"})
	c.waitFor(t, 1)

	unsubscribe()
	b.Publish(ErrorEvent{Message: "second"})

	// Give the dispatcher a moment; no second event should arrive
	time.Sleep(50 * time.Millisecond)
	require.Len(t, c.snapshot(), 1, "unsubscribed handler should not be called")
}

func TestUnsubscribeRemovesOnlyItsHandler(t *testing.T) {
	t.Parallel()
	b := New()
	defer b.Close()

	var first, second collector
	unsubFirst := b.Subscribe(EventError, first.handle)
	b.Subscribe(EventError, second.handle)

	unsubFirst()
	b.Publish(ErrorEvent{Message: "still delivered"})

	second.waitFor(t, 1)
	require.Empty(t, first.snapshot())
}

func TestHandlerPanicDoesNotStopDispatch(t *testing.T) {
	t.Parallel()
	b := New()
	defer b.Close()

	var c collector
	b.Subscribe(EventError, func(DomainEvent) { panic("handler blew up") })
	b.Subscribe(EventError, c.handle)

	b.Publish(ErrorEvent{Message: "one"})
	b.Publish(ErrorEvent{Message: "two"})

	evs := c.waitFor(t, 2)
	require.Len(t, evs, 2, "later handlers and events should still be delivered")
}

func TestPublishDoesNotBlockWhenFull(t *testing.T) {
	t.Parallel()
	b := New()
	defer b.Close()

	// No subscribers draining; overfill the buffer and make sure Publish returns
	done := make(chan struct{})
	go func() {
		for i := 0; i < 2500; i++ {
			b.Publish(ErrorEvent{Message: "flood"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a full bus")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	t.Parallel()
	b := New()
	b.Close()
	b.Close()
}
