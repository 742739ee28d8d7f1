package switcher

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/hyprpier/pkg/errors"
	"github.com/arthur-debert/hyprpier/pkg/filesystem"
	"github.com/arthur-debert/hyprpier/pkg/metadata"
	"github.com/arthur-debert/hyprpier/pkg/profile"
	"github.com/arthur-debert/hyprpier/pkg/thunderbolt"
)

const metadataPath = "/home/user/.config/hyprpier/.metadata.json"

type fixture struct {
	docks    *MockDocks
	profiles *MockProfiles
	store    *metadata.Store
	resolver *MockResolver
	writer   *MockWriter
	runtime  *MockRuntime
	notifier *MockNotifier
	engine   *Engine
}

func newFixture(t *testing.T, meta *metadata.Metadata) *fixture {
	t.Helper()
	f := &fixture{
		docks:    new(MockDocks),
		profiles: new(MockProfiles),
		store:    metadata.NewStore(filesystem.NewMemory(), metadataPath),
		resolver: new(MockResolver),
		writer:   new(MockWriter),
		runtime:  new(MockRuntime),
		notifier: new(MockNotifier),
	}
	if meta != nil {
		require.NoError(t, f.store.Save(meta))
	}
	f.engine = New(Options{
		Docks:    f.docks,
		Profiles: f.profiles,
		Metadata: f.store,
		Resolver: f.resolver,
		Writer:   f.writer,
		Runtime:  f.runtime,
		Notifier: f.notifier,
	})
	return f
}

func (f *fixture) expectApply(name string) *profile.Profile {
	p := profile.New(name)
	f.profiles.On("Load", name).Return(p, nil)
	f.resolver.On("ResolveMonitorNames", p).Return(nil)
	f.writer.On("WriteConfig", p).Return(nil)
	f.runtime.On("IsRunning").Return(true)
	f.runtime.On("Apply", p).Return(nil)
	return p
}

func (f *fixture) active(t *testing.T) string {
	t.Helper()
	name, _, err := f.engine.Active()
	require.NoError(t, err)
	return name
}

func strPtr(s string) *string { return &s }

func dock(id, uuid string) thunderbolt.Device {
	return thunderbolt.Device{Name: "Dock " + id, UUID: uuid, Role: thunderbolt.RolePeripheral, DeviceID: id}
}

func TestResolveAndApply_FirstBoundDockWins(t *testing.T) {
	f := newFixture(t, &metadata.Metadata{
		ActiveProfile:   strPtr("X"),
		DockProfiles:    map[string]string{"U1": "A", "U2": "B"},
		UndockedProfile: strPtr("C"),
	})
	f.docks.On("DetectDocks").Return([]thunderbolt.Device{dock("0-1", "U2"), dock("0-3", "U1")}, nil)
	f.expectApply("B")
	f.notifier.On("Notify", SummaryDocked, "Applying profile: B").Return(nil).Once()

	out, err := f.engine.ResolveAndApply(context.Background())
	require.NoError(t, err)

	assert.Equal(t, ActionApplied, out.Action)
	assert.Equal(t, "B", out.Target)
	assert.Equal(t, ReasonDock, out.Reason)
	assert.Equal(t, "X", out.Current)
	require.NotNil(t, out.Dock)
	assert.Equal(t, "U2", out.Dock.UUID)
	assert.Equal(t, "B", f.active(t))
	f.notifier.AssertExpectations(t)
	f.writer.AssertExpectations(t)
	f.runtime.AssertExpectations(t)
}

func TestResolveAndApply_UndockedAlreadyActiveIsNoop(t *testing.T) {
	docks := new(MockDocks)
	docks.On("DetectDocks").Return([]thunderbolt.Device{}, nil)
	meta := new(MockMetadata)
	meta.On("Load").Return(&metadata.Metadata{
		ActiveProfile:   strPtr("C"),
		UndockedProfile: strPtr("C"),
	}, nil)
	writer := new(MockWriter)
	notifier := new(MockNotifier)

	e := New(Options{
		Docks:    docks,
		Profiles: new(MockProfiles),
		Metadata: meta,
		Writer:   writer,
		Runtime:  new(MockRuntime),
		Notifier: notifier,
	})

	out, err := e.ResolveAndApply(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ActionUnchanged, out.Action)
	assert.Equal(t, ReasonUndocked, out.Reason)

	meta.AssertNotCalled(t, "Save", mock.Anything)
	writer.AssertNotCalled(t, "WriteConfig", mock.Anything)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestResolveAndApply_TwiceSwitchesOnce(t *testing.T) {
	f := newFixture(t, &metadata.Metadata{
		DockProfiles:    map[string]string{"U1": "A"},
		UndockedProfile: strPtr("C"),
	})
	f.docks.On("DetectDocks").Return([]thunderbolt.Device{dock("0-1", "U1")}, nil)
	f.expectApply("A")
	f.notifier.On("Notify", SummaryDocked, "Applying profile: A").Return(nil)

	first, err := f.engine.ResolveAndApply(context.Background())
	require.NoError(t, err)
	second, err := f.engine.ResolveAndApply(context.Background())
	require.NoError(t, err)

	assert.Equal(t, ActionApplied, first.Action)
	assert.Equal(t, ActionUnchanged, second.Action)
	f.writer.AssertNumberOfCalls(t, "WriteConfig", 1)
	f.notifier.AssertNumberOfCalls(t, "Notify", 1)
}

func TestResolveAndApply_UnboundDockFallsBackToUndocked(t *testing.T) {
	f := newFixture(t, &metadata.Metadata{
		ActiveProfile:   strPtr("A"),
		DockProfiles:    map[string]string{"U1": "A"},
		UndockedProfile: strPtr("C"),
	})
	f.docks.On("DetectDocks").Return([]thunderbolt.Device{dock("0-1", "U9")}, nil)
	f.expectApply("C")
	f.notifier.On("Notify", SummaryUndocked, "Applying profile: C").Return(nil)

	out, err := f.engine.ResolveAndApply(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ActionApplied, out.Action)
	assert.Equal(t, ReasonUndocked, out.Reason)
	assert.Nil(t, out.Dock)
	assert.Len(t, out.Docks, 1)
	assert.Equal(t, "C", f.active(t))
}

func TestResolveAndApply_NoTarget(t *testing.T) {
	f := newFixture(t, nil)
	f.docks.On("DetectDocks").Return([]thunderbolt.Device{}, nil)

	out, err := f.engine.ResolveAndApply(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ActionNoTarget, out.Action)
	assert.False(t, out.HasTarget())
	f.writer.AssertNotCalled(t, "WriteConfig", mock.Anything)
}

func TestResolveAndApply_NotificationFailureIgnored(t *testing.T) {
	f := newFixture(t, &metadata.Metadata{UndockedProfile: strPtr("C")})
	f.docks.On("DetectDocks").Return([]thunderbolt.Device{}, nil)
	f.expectApply("C")
	f.notifier.On("Notify", mock.Anything, mock.Anything).Return(assert.AnError)

	out, err := f.engine.ResolveAndApply(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ActionApplied, out.Action)
}

func TestResolveAndApply_DetectFailure(t *testing.T) {
	f := newFixture(t, nil)
	f.docks.On("DetectDocks").Return(nil, errors.New(errors.ErrIO, "sysfs unreadable"))

	_, err := f.engine.ResolveAndApply(context.Background())
	assert.True(t, errors.IsErrorCode(err, errors.ErrIO))
}

func TestApplyNamed_ResolverFailureIsWarning(t *testing.T) {
	f := newFixture(t, nil)
	p := profile.New("A")
	f.profiles.On("Load", "A").Return(p, nil)
	f.resolver.On("ResolveMonitorNames", p).Return(assert.AnError)
	f.writer.On("WriteConfig", p).Return(nil)
	f.runtime.On("IsRunning").Return(false)

	require.NoError(t, f.engine.ApplyNamed(context.Background(), "A", ApplyOptions{}))
	assert.Equal(t, "A", f.active(t))
	f.runtime.AssertNotCalled(t, "Apply", mock.Anything)
}

func TestApplyNamed_WriterFailureAborts(t *testing.T) {
	f := newFixture(t, &metadata.Metadata{ActiveProfile: strPtr("X")})
	p := profile.New("A")
	f.profiles.On("Load", "A").Return(p, nil)
	f.resolver.On("ResolveMonitorNames", p).Return(nil)
	f.writer.On("WriteConfig", p).Return(errors.New(errors.ErrIO, "disk full"))

	err := f.engine.ApplyNamed(context.Background(), "A", ApplyOptions{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIO))
	assert.Equal(t, "X", f.active(t), "active profile must not change")
}

func TestApplyNamed_RuntimeFailureAborts(t *testing.T) {
	f := newFixture(t, nil)
	p := profile.New("A")
	f.profiles.On("Load", "A").Return(p, nil)
	f.resolver.On("ResolveMonitorNames", p).Return(nil)
	f.writer.On("WriteConfig", p).Return(nil)
	f.runtime.On("IsRunning").Return(true)
	f.runtime.On("Apply", p).Return(assert.AnError)

	err := f.engine.ApplyNamed(context.Background(), "A", ApplyOptions{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrApply))
	assert.Equal(t, "", f.active(t))
}

func TestApplyNamed_NoRuntime(t *testing.T) {
	f := newFixture(t, nil)
	p := profile.New("A")
	f.profiles.On("Load", "A").Return(p, nil)
	f.resolver.On("ResolveMonitorNames", p).Return(nil)
	f.writer.On("WriteConfig", p).Return(nil)

	require.NoError(t, f.engine.ApplyNamed(context.Background(), "A", ApplyOptions{NoRuntime: true}))
	f.runtime.AssertNotCalled(t, "IsRunning")
	f.runtime.AssertNotCalled(t, "Apply", mock.Anything)
}

func TestApplyNamed_MissingProfile(t *testing.T) {
	f := newFixture(t, nil)
	f.profiles.On("Load", "ghost").Return(nil, errors.New(errors.ErrNotFound, "Profile not found: ghost"))

	err := f.engine.ApplyNamed(context.Background(), "ghost", ApplyOptions{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	f.writer.AssertNotCalled(t, "WriteConfig", mock.Anything)
}

func TestPlan_DoesNotApply(t *testing.T) {
	f := newFixture(t, &metadata.Metadata{DockProfiles: map[string]string{"U1": "A"}})
	f.docks.On("DetectDocks").Return([]thunderbolt.Device{dock("0-1", "U1")}, nil)

	d, err := f.engine.Plan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "A", d.Target)
	assert.True(t, d.Changed())
	assert.Equal(t, "", f.active(t))
	f.writer.AssertNotCalled(t, "WriteConfig", mock.Anything)
}
