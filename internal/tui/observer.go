package tui

import tea "github.com/charmbracelet/bubbletea"

// ResizeNotifier decouples geometry changes from cache invalidation. The
// update loop applies new dimensions immediately and publishes here; the
// notifier then delivers a separate GridInvalidateMsg, so caches are rebuilt
// in their own pass instead of mid-resize.
type ResizeNotifier struct {
	ch chan int
}

// NewResizeNotifier creates a notifier with a single pending slot
func NewResizeNotifier() *ResizeNotifier {
	return &ResizeNotifier{ch: make(chan int, 1)}
}

// Publish queues an invalidation for the given width (non-blocking if one
// is already pending; a single invalidation covers the whole burst).
func (n *ResizeNotifier) Publish(width int) {
	select {
	case n.ch <- width:
	default:
	}
}

// NextCmd returns a command that waits for the next queued invalidation
func (n *ResizeNotifier) NextCmd() tea.Cmd {
	return func() tea.Msg {
		width := <-n.ch
		return GridInvalidateMsg{Width: width}
	}
}
