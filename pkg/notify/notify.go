// Package notify sends desktop notifications over the session bus.
package notify

import (
	"context"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/hyprpier/pkg/errors"
	"github.com/arthur-debert/hyprpier/pkg/logging"
)

const (
	// AppName is the application name shown by the notification daemon
	AppName = "hyprpier"

	// DefaultTimeout is how long a notification stays on screen
	DefaultTimeout = 3 * time.Second

	busName    = "org.freedesktop.Notifications"
	objectPath = dbus.ObjectPath("/org/freedesktop/Notifications")
	method     = busName + ".Notify"
)

// Notifier shows a notification
type Notifier interface {
	Notify(ctx context.Context, summary, body string) error
}

// Nop discards notifications
type Nop struct{}

// Notify implements Notifier
func (Nop) Notify(context.Context, string, string) error { return nil }

// DBus calls org.freedesktop.Notifications.Notify on the session bus
type DBus struct {
	timeout time.Duration
	connect func() (dbus.BusObject, error)
	logger  zerolog.Logger
}

// NewDBus creates a session bus notifier. A non-positive timeout uses DefaultTimeout.
func NewDBus(timeout time.Duration) *DBus {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &DBus{
		timeout: timeout,
		connect: sessionObject,
		logger:  logging.GetLogger("notify.dbus"),
	}
}

func sessionObject() (dbus.BusObject, error) {
	// SessionBus is shared by the process and must not be closed
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, err
	}
	return conn.Object(busName, objectPath), nil
}

// Notify implements Notifier
func (d *DBus) Notify(ctx context.Context, summary, body string) error {
	obj, err := d.connect()
	if err != nil {
		return errors.Wrap(err, errors.ErrEnvironment, "Failed to connect to session bus")
	}

	call := obj.CallWithContext(ctx, method, 0,
		AppName,
		uint32(0),
		"",
		summary,
		body,
		[]string{},
		map[string]dbus.Variant{},
		int32(d.timeout/time.Millisecond),
	)
	if call.Err != nil {
		return errors.Wrap(call.Err, errors.ErrEnvironment, "Failed to send notification")
	}

	d.logger.Debug().
		Str("summary", summary).
		Str("body", body).
		Msg("Notification sent")
	return nil
}

// New returns a DBus notifier when enabled, Nop otherwise
func New(enabled bool, timeout time.Duration) Notifier {
	if !enabled {
		return Nop{}
	}
	return NewDBus(timeout)
}
