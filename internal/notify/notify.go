// Package notify implements the transient status message shown after each
// successful change.
package notify

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const DefaultDelay = 3000 * time.Millisecond

// HideMsg is delivered when a notification's timer fires.
type HideMsg struct{}

// Notifier holds the current message. Every Show starts its own timer and
// any HideMsg hides whatever is showing, so an older timer may hide a newer
// message early.
type Notifier struct {
	Text    string
	Visible bool
	delay   time.Duration
}

func New(delay time.Duration) Notifier {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return Notifier{delay: delay}
}

func (n Notifier) Delay() time.Duration {
	return n.delay
}

func (n *Notifier) Show(msg string) tea.Cmd {
	n.Text = msg
	n.Visible = true
	return tea.Tick(n.delay, func(time.Time) tea.Msg {
		return HideMsg{}
	})
}

// Update reports whether msg was a HideMsg and hides the notification if so.
func (n *Notifier) Update(msg tea.Msg) bool {
	if _, ok := msg.(HideMsg); !ok {
		return false
	}
	n.Visible = false
	return true
}

func (n Notifier) View() string {
	if !n.Visible {
		return ""
	}
	return n.Text
}
