package hyprland

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/arthur-debert/hyprpier/pkg/profile"
)

const maxWorkspaces = 10

var internalPrefixes = []string{"eDP", "LVDS", "DSI"}

// Detector snapshots the connected monitors into profile form
type Detector struct {
	client *Client
}

// NewDetector creates a detector on top of client
func NewDetector(client *Client) *Detector {
	return &Detector{client: client}
}

// DetectMonitors returns the connected monitors as profile monitors
func (d *Detector) DetectMonitors(ctx context.Context) ([]profile.Monitor, error) {
	infos, err := d.client.Monitors(ctx)
	if err != nil {
		return nil, err
	}
	monitors := make([]profile.Monitor, 0, len(infos))
	for _, info := range infos {
		monitors = append(monitors, toMonitor(info))
	}
	return monitors, nil
}

// Capture builds a complete profile from the current layout: monitors
// sorted and arranged left to right, workspaces split between enabled
// monitors and a lid switch when a laptop panel sits next to externals.
func (d *Detector) Capture(ctx context.Context, name string) (*profile.Profile, error) {
	monitors, err := d.DetectMonitors(ctx)
	if err != nil {
		return nil, err
	}
	SortMonitors(monitors)
	ArrangeMonitors(monitors)

	p := profile.New(name)
	p.Monitors = monitors
	p.Workspaces = GenerateWorkspaces(monitors)
	p.LidSwitch = GenerateLidSwitch(monitors)
	return p, nil
}

func toMonitor(info MonitorInfo) profile.Monitor {
	refresh := math.Round(info.RefreshRate*1000) / 1000
	resolution := fmt.Sprintf("%dx%d", info.Width, info.Height)
	m := profile.Monitor{
		Name:        info.Name,
		Enabled:     !info.Disabled,
		Resolution:  resolution,
		RefreshRate: refresh,
		Position:    profile.Position{X: info.X, Y: info.Y},
		Scale:       info.Scale,
		Transform:   info.Transform,
		Mode:        resolution + "@" + formatFloat(refresh),
	}
	if m.Scale <= 0 {
		m.Scale = 1
	}
	if desc := normalizeDescription(info.Description, info.Name); desc != "" {
		m.Description = &desc
	}
	return m
}

// IsInternal reports whether name is a built-in laptop panel
func IsInternal(name string) bool {
	for _, prefix := range internalPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// SortMonitors orders external monitors by port name, followed by internal panels
func SortMonitors(monitors []profile.Monitor) {
	sort.SliceStable(monitors, func(i, j int) bool {
		ii, ij := IsInternal(monitors[i].Name), IsInternal(monitors[j].Name)
		if ii != ij {
			return !ii
		}
		return monitors[i].Name < monitors[j].Name
	})
}

// ArrangeMonitors places enabled monitors side by side in slice order, top
// aligned, using their logical (scaled and rotated) widths.
func ArrangeMonitors(monitors []profile.Monitor) {
	var x int32
	for i := range monitors {
		if !monitors[i].Enabled {
			continue
		}
		monitors[i].Position = profile.Position{X: x, Y: 0}
		x += logicalWidth(monitors[i])
	}
}

func logicalWidth(m profile.Monitor) int32 {
	var w, h int
	if _, err := fmt.Sscanf(m.Resolution, "%dx%d", &w, &h); err != nil {
		return 0
	}
	// odd transforms rotate by 90 or 270 degrees
	if m.Transform%2 == 1 {
		w = h
	}
	return int32(math.Round(float64(w) / scaleOf(m)))
}

// GenerateWorkspaces splits workspaces 1..10 into contiguous runs across
// the enabled monitors, earlier monitors taking the remainder. The first
// workspace of each run is the monitor's default.
func GenerateWorkspaces(monitors []profile.Monitor) []profile.Workspace {
	var enabled []string
	for _, m := range monitors {
		if m.Enabled {
			enabled = append(enabled, m.Name)
		}
	}
	if len(enabled) == 0 {
		return []profile.Workspace{}
	}

	per := maxWorkspaces / len(enabled)
	extra := maxWorkspaces % len(enabled)
	workspaces := make([]profile.Workspace, 0, maxWorkspaces)
	id := uint8(1)
	for i, name := range enabled {
		n := per
		if i < extra {
			n++
		}
		for k := 0; k < n; k++ {
			workspaces = append(workspaces, profile.Workspace{ID: id, Monitor: name, Default: k == 0})
			id++
		}
	}
	return workspaces
}

// GenerateLidSwitch returns a lid switch that turns the internal panel off
// on close, or nil when there is no internal panel or nothing else to show on.
func GenerateLidSwitch(monitors []profile.Monitor) *profile.LidSwitch {
	var internal string
	externals := 0
	for _, m := range monitors {
		if IsInternal(m.Name) {
			if internal == "" {
				internal = m.Name
			}
			continue
		}
		externals++
	}
	if internal == "" || externals == 0 {
		return nil
	}
	return &profile.LidSwitch{
		Enabled: true,
		Monitor: internal,
		OnClose: "disable",
		OnOpen:  "enable",
	}
}
