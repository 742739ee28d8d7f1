// Package profile defines display profiles and their on-disk store.
//
// A profile is one JSON document per name in the hyprpier config directory.
// The JSON layout matches what earlier hyprpier releases wrote, so field
// names such as "description" on a monitor (its stable hardware identifier)
// and "default" on a workspace are kept as-is.
package profile

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
)

// Profile is a named display configuration
type Profile struct {
	Name        string      `json:"name" yaml:"name"`
	Description *string     `json:"description,omitempty" yaml:"description,omitempty"`
	Monitors    []Monitor   `json:"monitors" yaml:"monitors"`
	Workspaces  []Workspace `json:"workspaces" yaml:"workspaces"`
	LidSwitch   *LidSwitch  `json:"lid_switch,omitempty" yaml:"lid_switch,omitempty"`
}

// Monitor is one output of a profile
type Monitor struct {
	Name string `json:"name" yaml:"name"`
	// Description is the stable hardware identifier reported by the compositor,
	// e.g. "Ancor Communications Inc ASUS VS239 L3LMTF263862"
	Description *string  `json:"description,omitempty" yaml:"description,omitempty"`
	Enabled     bool     `json:"enabled" yaml:"enabled"`
	Resolution  string   `json:"resolution" yaml:"resolution"`
	RefreshRate float64  `json:"refresh_rate" yaml:"refresh_rate"`
	Position    Position `json:"position" yaml:"position"`
	Scale       float64  `json:"scale" yaml:"scale"`
	Transform   uint8    `json:"transform" yaml:"transform"`
	Mode        string   `json:"mode" yaml:"mode"`
}

// Position is a monitor's top-left corner in the global layout
type Position struct {
	X int32 `json:"x" yaml:"x"`
	Y int32 `json:"y" yaml:"y"`
}

// Workspace pins a workspace id to a monitor; Default marks the lowest id on that monitor
type Workspace struct {
	ID      uint8  `json:"id" yaml:"id"`
	Monitor string `json:"monitor" yaml:"monitor"`
	Default bool   `json:"default" yaml:"default"`
}

// LidSwitch describes what happens to the internal panel when the lid closes or opens
type LidSwitch struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Monitor string `json:"monitor" yaml:"monitor"`
	OnClose string `json:"on_close" yaml:"on_close"`
	OnOpen  string `json:"on_open" yaml:"on_open"`
}

const (
	MinWorkspaceID = 1
	MaxWorkspaceID = 10
	MaxTransform   = 7
)

var resolutionPattern = regexp.MustCompile(`^[0-9]+x[0-9]+$`)

// New creates an empty profile with the given name
func New(name string) *Profile {
	return &Profile{
		Name:       name,
		Monitors:   []Monitor{},
		Workspaces: []Workspace{},
	}
}

// UnmarshalJSON applies the defaults for fields older files may omit:
// enabled=true and scale=1.0.
func (m *Monitor) UnmarshalJSON(data []byte) error {
	type plain Monitor
	aux := plain{Enabled: true, Scale: 1.0}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*m = Monitor(aux)
	return nil
}

// MonitorByName returns the monitor with the given port name
func (p *Profile) MonitorByName(name string) (*Monitor, bool) {
	for i := range p.Monitors {
		if p.Monitors[i].Name == name {
			return &p.Monitors[i], true
		}
	}
	return nil, false
}

// RenameMonitor changes a monitor's port name and every workspace and
// lid-switch reference to it.
func (p *Profile) RenameMonitor(oldName, newName string) {
	p.RenameMonitors(map[string]string{oldName: newName})
}

// RenameMonitors applies all renames at once, so swapping two port names
// does not collapse them onto one monitor.
func (p *Profile) RenameMonitors(renames map[string]string) {
	rename := func(name string) string {
		if to, ok := renames[name]; ok {
			return to
		}
		return name
	}
	for i := range p.Monitors {
		p.Monitors[i].Name = rename(p.Monitors[i].Name)
	}
	for i := range p.Workspaces {
		p.Workspaces[i].Monitor = rename(p.Workspaces[i].Monitor)
	}
	if p.LidSwitch != nil {
		p.LidSwitch.Monitor = rename(p.LidSwitch.Monitor)
	}
}

// UpdateWorkspaceDefaults marks the lowest-numbered workspace of each monitor as its default
func (p *Profile) UpdateWorkspaceDefaults() {
	lowest := make(map[string]uint8)
	for _, ws := range p.Workspaces {
		if cur, ok := lowest[ws.Monitor]; !ok || ws.ID < cur {
			lowest[ws.Monitor] = ws.ID
		}
	}
	for i := range p.Workspaces {
		p.Workspaces[i].Default = lowest[p.Workspaces[i].Monitor] == p.Workspaces[i].ID
	}
}

// SortedWorkspaces returns the workspaces ordered by id
func (p *Profile) SortedWorkspaces() []Workspace {
	out := append([]Workspace(nil), p.Workspaces...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Validate checks the contents of a profile beyond its name
func (p *Profile) Validate() error {
	if err := ValidateName(p.Name); err != nil {
		return err
	}
	for _, m := range p.Monitors {
		if m.Name == "" {
			return validationError("Monitor name cannot be empty")
		}
		if !resolutionPattern.MatchString(m.Resolution) {
			return validationError(fmt.Sprintf("Monitor %s has invalid resolution %q (want WxH)", m.Name, m.Resolution))
		}
		if m.Transform > MaxTransform {
			return validationError(fmt.Sprintf("Monitor %s has invalid transform %d (0-%d)", m.Name, m.Transform, MaxTransform))
		}
	}
	seen := make(map[uint8]bool)
	for _, ws := range p.Workspaces {
		if ws.ID < MinWorkspaceID || ws.ID > MaxWorkspaceID {
			return validationError(fmt.Sprintf("Workspace id %d out of range (%d-%d)", ws.ID, MinWorkspaceID, MaxWorkspaceID))
		}
		if seen[ws.ID] {
			return validationError(fmt.Sprintf("Workspace %d is assigned twice", ws.ID))
		}
		seen[ws.ID] = true
	}
	return nil
}
