package service

import "testing"

func TestBroadcaster_FansOut(t *testing.T) {
	b := NewBroadcaster()
	a := b.Subscribe()
	c := b.Subscribe()

	b.Publish(Update{Event: EventWiserUpdated, Hub: "hub1"})

	for _, ch := range []chan Update{a, c} {
		select {
		case u := <-ch:
			if u.Event != EventWiserUpdated {
				t.Fatalf("unexpected update: %+v", u)
			}
		default:
			t.Fatalf("subscriber missed the update")
		}
	}
}

func TestBroadcaster_SlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Subscribe()

	// Overfill the buffer; Publish must not block.
	for i := 0; i < 40; i++ {
		b.Publish(Update{Event: EventWiserUpdated})
	}
	if got := len(ch); got != cap(ch) {
		t.Fatalf("expected a full buffer of %d, got %d", cap(ch), got)
	}
}

func TestBroadcaster_UnsubscribeClosesOnce(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Subscribe()
	b.Unsubscribe(ch)
	b.Unsubscribe(ch) // second call is a no-op

	if _, open := <-ch; open {
		t.Fatalf("channel should be closed")
	}
	// Publishing after unsubscribe must not panic on the closed channel.
	b.Publish(Update{Event: EventWiserUpdated})
}
