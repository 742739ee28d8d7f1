package switcher

import (
	"context"

	"github.com/arthur-debert/hyprpier/pkg/metadata"
	"github.com/arthur-debert/hyprpier/pkg/profile"
	"github.com/arthur-debert/hyprpier/pkg/thunderbolt"
)

// DockDetector lists connected docks in a deterministic order
type DockDetector interface {
	DetectDocks() ([]thunderbolt.Device, error)
}

// ProfileLoader reads stored profiles
type ProfileLoader interface {
	Load(name string) (*profile.Profile, error)
}

// MetadataStore loads and saves the binding record
type MetadataStore interface {
	Load() (*metadata.Metadata, error)
	Save(m *metadata.Metadata) error
}

// MonitorResolver maps stored monitor descriptions to current port names
type MonitorResolver interface {
	ResolveMonitorNames(ctx context.Context, p *profile.Profile) error
}

// ConfigWriter persists a profile in the compositor's config format
type ConfigWriter interface {
	WriteConfig(p *profile.Profile) error
}

// RuntimeApplier pushes a profile to a live compositor session
type RuntimeApplier interface {
	IsRunning() bool
	Apply(ctx context.Context, p *profile.Profile) error
}

// Notifier shows a desktop notification
type Notifier interface {
	Notify(ctx context.Context, summary, body string) error
}
