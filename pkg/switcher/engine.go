package switcher

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/hyprpier/pkg/errors"
	"github.com/arthur-debert/hyprpier/pkg/logging"
	"github.com/arthur-debert/hyprpier/pkg/thunderbolt"
)

// Notification titles
const (
	SummaryDocked   = "Dock Connected"
	SummaryUndocked = "Undocked"
)

// Reason tells why a target profile was chosen
type Reason string

const (
	ReasonNone     Reason = ""
	ReasonDock     Reason = "dock"
	ReasonUndocked Reason = "undocked"
)

// Action is what ResolveAndApply ended up doing
type Action string

const (
	// ActionApplied means the target profile was applied
	ActionApplied Action = "applied"
	// ActionUnchanged means the target was already active
	ActionUnchanged Action = "unchanged"
	// ActionNoTarget means neither a bound dock nor a fallback was found
	ActionNoTarget Action = "no-target"
)

// Decision is the result of evaluating connected docks against the bindings
type Decision struct {
	// Target is the profile that should be active, empty if none
	Target string
	Reason Reason
	// Dock is the bound dock that selected Target when Reason is ReasonDock
	Dock *thunderbolt.Device
	// Current is the active profile at decision time, empty if none
	Current string
	// Docks are all connected docks
	Docks []thunderbolt.Device
}

// HasTarget reports whether any profile was selected
func (d Decision) HasTarget() bool {
	return d.Target != ""
}

// Changed reports whether applying the decision would switch profiles
func (d Decision) Changed() bool {
	return d.HasTarget() && d.Target != d.Current
}

// Outcome is a Decision plus what was done about it
type Outcome struct {
	Decision
	Action Action
}

// ApplyOptions tune ApplyNamed
type ApplyOptions struct {
	// NoRuntime writes the config file without pushing it to the compositor
	NoRuntime bool
}

// Options holds the engine collaborators. Resolver, Runtime and Notifier
// are optional.
type Options struct {
	Docks    DockDetector
	Profiles ProfileLoader
	Metadata MetadataStore
	Resolver MonitorResolver
	Writer   ConfigWriter
	Runtime  RuntimeApplier
	Notifier Notifier
}

// Engine is the decision engine
type Engine struct {
	docks    DockDetector
	profiles ProfileLoader
	metadata MetadataStore
	resolver MonitorResolver
	writer   ConfigWriter
	runtime  RuntimeApplier
	notifier Notifier
	logger   zerolog.Logger
}

// New creates an engine from opts
func New(opts Options) *Engine {
	return &Engine{
		docks:    opts.Docks,
		profiles: opts.Profiles,
		metadata: opts.Metadata,
		resolver: opts.Resolver,
		writer:   opts.Writer,
		runtime:  opts.Runtime,
		notifier: opts.Notifier,
		logger:   logging.GetLogger("switcher.engine"),
	}
}

// Plan evaluates the current hardware against the bindings without
// changing anything.
func (e *Engine) Plan(ctx context.Context) (Decision, error) {
	meta, err := e.metadata.Load()
	if err != nil {
		return Decision{}, err
	}
	docks, err := e.docks.DetectDocks()
	if err != nil {
		return Decision{}, err
	}

	d := Decision{Docks: docks}
	d.Current, _ = meta.Active()

	// only the first bound dock counts, even if several are connected
	for i := range docks {
		if name, ok := meta.DockProfile(docks[i].UUID); ok {
			dock := docks[i]
			d.Target = name
			d.Reason = ReasonDock
			d.Dock = &dock
			return d, nil
		}
	}

	if name, ok := meta.Undocked(); ok {
		d.Target = name
		d.Reason = ReasonUndocked
	}
	return d, nil
}

// ResolveAndApply applies the planned profile unless it is already active.
// Notifications are sent only when a switch happens.
func (e *Engine) ResolveAndApply(ctx context.Context) (Outcome, error) {
	done := logging.LogOperationStart(e.logger, "resolve_and_apply")
	defer done()

	d, err := e.Plan(ctx)
	if err != nil {
		return Outcome{}, err
	}
	out := Outcome{Decision: d}

	switch {
	case !d.HasTarget():
		out.Action = ActionNoTarget
		e.logger.Info().
			Int("docks", len(d.Docks)).
			Msg("No bound dock and no undocked profile configured")
		return out, nil
	case !d.Changed():
		out.Action = ActionUnchanged
		e.logger.Debug().
			Str("profile", d.Target).
			Str("reason", string(d.Reason)).
			Msg("Target profile already active")
		return out, nil
	}

	e.logger.Info().
		Str("from", d.Current).
		Str("to", d.Target).
		Str("reason", string(d.Reason)).
		Msg("Switching profile")

	summary := SummaryUndocked
	if d.Reason == ReasonDock {
		summary = SummaryDocked
		e.logger.Info().
			Str("dock", d.Dock.Name).
			Str("uuid", d.Dock.UUID).
			Msg("Detected dock")
	}
	e.notify(ctx, summary, fmt.Sprintf("Applying profile: %s", d.Target))

	if err := e.ApplyNamed(ctx, d.Target, ApplyOptions{}); err != nil {
		return out, err
	}
	out.Action = ActionApplied
	return out, nil
}

// ApplyNamed loads a profile, resolves its monitor names, writes the
// compositor config, applies it live if possible and records it as active.
func (e *Engine) ApplyNamed(ctx context.Context, name string, opts ApplyOptions) error {
	logger := e.logger.With().Str("profile", name).Logger()

	p, err := e.profiles.Load(name)
	if err != nil {
		return err
	}

	if e.resolver != nil {
		if err := e.resolver.ResolveMonitorNames(ctx, p); err != nil {
			logger.Warn().Err(err).Msg("Could not resolve monitor names, using stored names")
		}
	}

	if err := e.writer.WriteConfig(p); err != nil {
		return err
	}

	if !opts.NoRuntime && e.runtime != nil && e.runtime.IsRunning() {
		if err := e.runtime.Apply(ctx, p); err != nil {
			return errors.Wrapf(err, errors.ErrApply, "Failed to apply profile %s", name)
		}
		logger.Debug().Msg("Applied profile at runtime")
	}

	meta, err := e.metadata.Load()
	if err != nil {
		return err
	}
	meta.SetActive(name)
	if err := e.metadata.Save(meta); err != nil {
		return err
	}

	logger.Info().Msg("Applied profile")
	return nil
}

// Active returns the active profile from a fresh load of the binding record
func (e *Engine) Active() (string, bool, error) {
	meta, err := e.metadata.Load()
	if err != nil {
		return "", false, err
	}
	name, ok := meta.Active()
	return name, ok, nil
}

func (e *Engine) notify(ctx context.Context, summary, body string) {
	if e.notifier == nil {
		return
	}
	if err := e.notifier.Notify(ctx, summary, body); err != nil {
		e.logger.Debug().Err(err).Str("summary", summary).Msg("Notification failed")
	}
}
