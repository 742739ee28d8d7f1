package switcher

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/arthur-debert/hyprpier/pkg/metadata"
	"github.com/arthur-debert/hyprpier/pkg/profile"
	"github.com/arthur-debert/hyprpier/pkg/thunderbolt"
)

type MockDocks struct {
	mock.Mock
}

func (m *MockDocks) DetectDocks() ([]thunderbolt.Device, error) {
	args := m.Called()
	docks, _ := args.Get(0).([]thunderbolt.Device)
	return docks, args.Error(1)
}

type MockProfiles struct {
	mock.Mock
}

func (m *MockProfiles) Load(name string) (*profile.Profile, error) {
	args := m.Called(name)
	p, _ := args.Get(0).(*profile.Profile)
	return p, args.Error(1)
}

type MockMetadata struct {
	mock.Mock
}

func (m *MockMetadata) Load() (*metadata.Metadata, error) {
	args := m.Called()
	meta, _ := args.Get(0).(*metadata.Metadata)
	return meta, args.Error(1)
}

func (m *MockMetadata) Save(meta *metadata.Metadata) error {
	return m.Called(meta).Error(0)
}

type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) ResolveMonitorNames(ctx context.Context, p *profile.Profile) error {
	return m.Called(p).Error(0)
}

type MockWriter struct {
	mock.Mock
}

func (m *MockWriter) WriteConfig(p *profile.Profile) error {
	return m.Called(p).Error(0)
}

type MockRuntime struct {
	mock.Mock
}

func (m *MockRuntime) IsRunning() bool {
	return m.Called().Bool(0)
}

func (m *MockRuntime) Apply(ctx context.Context, p *profile.Profile) error {
	return m.Called(p).Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, summary, body string) error {
	return m.Called(summary, body).Error(0)
}
