package notify

import (
	"context"
	"testing"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/hyprpier/pkg/errors"
)

// fakeObject records Notify calls; other BusObject methods are unused
type fakeObject struct {
	dbus.BusObject
	method string
	args   []interface{}
	err    error
}

func (f *fakeObject) CallWithContext(_ context.Context, method string, _ dbus.Flags, args ...interface{}) *dbus.Call {
	f.method = method
	f.args = args
	return &dbus.Call{Err: f.err}
}

func TestDBus_Notify(t *testing.T) {
	obj := &fakeObject{}
	d := NewDBus(0)
	d.connect = func() (dbus.BusObject, error) { return obj, nil }

	require.NoError(t, d.Notify(context.Background(), "Dock Connected", "Applying profile: desk"))

	assert.Equal(t, "org.freedesktop.Notifications.Notify", obj.method)
	require.Len(t, obj.args, 8)
	assert.Equal(t, "hyprpier", obj.args[0])
	assert.Equal(t, uint32(0), obj.args[1])
	assert.Equal(t, "Dock Connected", obj.args[3])
	assert.Equal(t, "Applying profile: desk", obj.args[4])
	assert.Equal(t, int32(3000), obj.args[7])
}

func TestDBus_CustomTimeout(t *testing.T) {
	obj := &fakeObject{}
	d := NewDBus(1500 * time.Millisecond)
	d.connect = func() (dbus.BusObject, error) { return obj, nil }

	require.NoError(t, d.Notify(context.Background(), "s", "b"))
	assert.Equal(t, int32(1500), obj.args[7])
}

func TestDBus_Failures(t *testing.T) {
	d := NewDBus(0)
	d.connect = func() (dbus.BusObject, error) { return nil, assert.AnError }
	err := d.Notify(context.Background(), "s", "b")
	assert.True(t, errors.IsErrorCode(err, errors.ErrEnvironment))

	d.connect = func() (dbus.BusObject, error) { return &fakeObject{err: assert.AnError}, nil }
	err = d.Notify(context.Background(), "s", "b")
	assert.True(t, errors.IsErrorCode(err, errors.ErrEnvironment))
}

func TestNew(t *testing.T) {
	assert.IsType(t, Nop{}, New(false, 0))
	assert.IsType(t, &DBus{}, New(true, 0))
	assert.NoError(t, Nop{}.Notify(context.Background(), "s", "b"))
}
