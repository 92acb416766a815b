package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowAndHide(t *testing.T) {
	n := New(10 * time.Millisecond)
	assert.Empty(t, n.View())

	cmd := n.Show("Task Added!")
	require.NotNil(t, cmd)
	assert.True(t, n.Visible)
	assert.Equal(t, "Task Added!", n.View())

	msg := cmd()
	assert.IsType(t, HideMsg{}, msg)
	assert.True(t, n.Update(msg))
	assert.False(t, n.Visible)
	assert.Empty(t, n.View())
}

func TestOverlappingShowsHideEarly(t *testing.T) {
	n := New(5 * time.Millisecond)

	first := n.Show("Task Added!")
	_ = n.Show("Task Deleted!")
	assert.Equal(t, "Task Deleted!", n.View(), "newer message overwrites older text")

	// The first timer fires while the second message is up.
	n.Update(first())
	assert.False(t, n.Visible)
}

func TestUpdate_IgnoresOtherMessages(t *testing.T) {
	n := New(time.Millisecond)
	n.Show("hi")
	assert.False(t, n.Update("not a hide"))
	assert.True(t, n.Visible)
}

func TestNew_DefaultDelay(t *testing.T) {
	assert.Equal(t, DefaultDelay, New(0).Delay())
	assert.Equal(t, 3*time.Second, DefaultDelay)
}
