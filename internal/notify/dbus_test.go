//go:build linux

package notify

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WithoutSessionBus(t *testing.T) {
	t.Setenv("DBUS_SESSION_BUS_ADDRESS", "unix:path=/nonexistent/bus")

	n := New()
	require.NotNil(t, n)
	id, err := n.Notify(Notification{Title: "x"})
	require.NoError(t, err)
	assert.Zero(t, id)
}

func TestNew_SendsNotification(t *testing.T) {
	if os.Getenv("LOFI_DBUS_TESTS") == "" {
		t.Skip("set LOFI_DBUS_TESTS to talk to the session bus")
	}
	n := New()
	id, err := n.Notify(Notification{Title: "lofi test", Timeout: 1000})
	require.NoError(t, err)
	assert.NotZero(t, id)
	assert.NoError(t, n.Close(id))
}
