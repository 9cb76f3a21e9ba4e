package tui

import "testing"

func TestResizeNotifierDelivers(t *testing.T) {
	n := NewResizeNotifier()
	n.Publish(120)

	msg := n.NextCmd()()
	inv, ok := msg.(GridInvalidateMsg)
	if !ok {
		t.Fatalf("msg = %T, want GridInvalidateMsg", msg)
	}
	if inv.Width != 120 {
		t.Errorf("Width = %d, want 120", inv.Width)
	}
}

func TestResizeNotifierCoalescesBurst(t *testing.T) {
	n := NewResizeNotifier()

	// A burst of publishes must never block the update loop; one pending
	// invalidation stands in for the whole burst.
	for w := 50; w <= 90; w += 10 {
		n.Publish(w)
	}

	msg := n.NextCmd()()
	if inv := msg.(GridInvalidateMsg); inv.Width != 50 {
		t.Errorf("Width = %d, want first queued value 50", inv.Width)
	}

	select {
	case extra := <-n.ch:
		t.Errorf("unexpected second invalidation queued: %d", extra)
	default:
	}
}
