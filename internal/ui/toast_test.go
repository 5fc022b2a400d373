package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToastAutoHides(t *testing.T) {
	tc := NewToastCenter(100 * time.Millisecond)
	tc.Show("sid", "saved", true)

	toast, ok := tc.Current("sid")
	require.True(t, ok)
	assert.Equal(t, "saved", toast.Message)
	assert.True(t, toast.Success)

	time.Sleep(200 * time.Millisecond)
	_, ok = tc.Current("sid")
	assert.False(t, ok, "toast should be cleared after the duration")
}

func TestToastDismissCancelsTimer(t *testing.T) {
	tc := NewToastCenter(100 * time.Millisecond)
	tc.Show("sid", "oops", false)
	tc.Dismiss("sid")

	_, ok := tc.Current("sid")
	assert.False(t, ok)

	// A dismissed toast must not resurface or clear a later one when
	// the old timer would have fired.
	tc.Show("sid", "second", true)
	time.Sleep(50 * time.Millisecond)
	toast, ok := tc.Current("sid")
	require.True(t, ok)
	assert.Equal(t, "second", toast.Message)
}

func TestToastReShowRearmsTimer(t *testing.T) {
	tc := NewToastCenter(120 * time.Millisecond)
	tc.Show("sid", "first", true)

	time.Sleep(80 * time.Millisecond)
	tc.Show("sid", "first", true) // same message, fresh timer

	time.Sleep(80 * time.Millisecond)
	_, ok := tc.Current("sid")
	assert.True(t, ok, "re-show should restart the clock")

	time.Sleep(120 * time.Millisecond)
	_, ok = tc.Current("sid")
	assert.False(t, ok)
}

func TestToastSessionsAreIndependent(t *testing.T) {
	tc := NewToastCenter(time.Minute)
	tc.Show("a", "for a", true)
	tc.Show("b", "for b", false)

	tc.Dismiss("a")
	_, ok := tc.Current("a")
	assert.False(t, ok)

	toast, ok := tc.Current("b")
	require.True(t, ok)
	assert.Equal(t, "for b", toast.Message)
}
