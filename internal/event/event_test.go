package event

import "testing"

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(EnemyDestroyed, a)
	d.Subscribe(EnemyDestroyed, b)
	d.Subscribe(PlayerHit, b)

	d.Dispatch(Event{Type: EnemyDestroyed, Data: 7})
	d.Dispatch(Event{Type: PlayerHit})
	d.Dispatch(Event{Type: LaserFired})

	if len(a.got) != 1 || a.got[0].Data != 7 {
		t.Fatalf("a received %+v", a.got)
	}
	if len(b.got) != 2 {
		t.Fatalf("b should get 2 events, got %d", len(b.got))
	}
}

func TestDispatcherUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(EnemySpawned, r)
	d.Unsubscribe(EnemySpawned, r)
	d.Dispatch(Event{Type: EnemySpawned})
	if len(r.got) != 0 {
		t.Fatalf("unsubscribed listener got %d events", len(r.got))
	}
}

func TestQueueDefersUntilFlush(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(EnemyDestroyed, r)

	d.Queue(Event{Type: EnemyDestroyed, Data: 1})
	d.Queue(Event{Type: EnemyDestroyed, Data: 2})
	if len(r.got) != 0 {
		t.Fatal("queued events must not be delivered before Flush")
	}
	if d.Pending() != 2 {
		t.Fatalf("Pending() = %d, want 2", d.Pending())
	}

	d.Flush()
	if len(r.got) != 2 || r.got[0].Data != 1 || r.got[1].Data != 2 {
		t.Fatalf("flush delivered %+v", r.got)
	}
	if d.Pending() != 0 {
		t.Fatalf("queue not drained: %d left", d.Pending())
	}
}

func TestFlushDeliversEventsQueuedByListeners(t *testing.T) {
	d := NewDispatcher()
	var hits int
	d.Subscribe(EnemyDestroyed, ListenerFunc(func(Event) {
		d.Queue(Event{Type: PlayerHit})
	}))
	d.Subscribe(PlayerHit, ListenerFunc(func(Event) { hits++ }))

	d.Queue(Event{Type: EnemyDestroyed})
	d.Flush()
	if hits != 1 {
		t.Fatalf("expected chained event to be delivered once, got %d", hits)
	}
}
