// Package metadata holds the binding record: which dock is bound to which
// profile, which profile is the undocked fallback and which one is active.
//
// The record is a single hidden JSON file next to the profiles. Every
// operation loads it fresh, mutates it in memory and saves it back; there is
// no locking, concurrent writers are last-write-wins.
package metadata

import (
	"sort"
	"strconv"
	"time"
)

// Metadata is the persisted binding record
type Metadata struct {
	ActiveProfile   *string           `json:"active_profile"`
	LastModified    *string           `json:"last_modified"`
	DockProfiles    map[string]string `json:"dock_profiles"`
	UndockedProfile *string           `json:"undocked_profile"`
}

// now is replaced in tests
var now = time.Now

// Active returns the active profile name, if any
func (m *Metadata) Active() (string, bool) {
	return deref(m.ActiveProfile)
}

// Undocked returns the undocked fallback profile name, if any
func (m *Metadata) Undocked() (string, bool) {
	return deref(m.UndockedProfile)
}

// LastModifiedTime parses the stored unix timestamp
func (m *Metadata) LastModifiedTime() (time.Time, bool) {
	s, ok := deref(m.LastModified)
	if !ok {
		return time.Time{}, false
	}
	secs, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.Unix(secs, 0), true
}

// Touch updates the last_modified timestamp to now
func (m *Metadata) Touch() {
	ts := strconv.FormatInt(now().Unix(), 10)
	m.LastModified = &ts
}

// SetActive records the active profile; an empty name clears it
func (m *Metadata) SetActive(name string) {
	m.ActiveProfile = ptr(name)
	m.Touch()
}

// SetUndocked makes profile the undocked fallback. A profile cannot be both
// dock-bound and the fallback, so its dock bindings are dropped.
func (m *Metadata) SetUndocked(profile string) {
	for _, uuid := range m.ProfileDocks(profile) {
		delete(m.DockProfiles, uuid)
	}
	m.UndockedProfile = ptr(profile)
	m.Touch()
}

// ClearUndocked removes the undocked fallback
func (m *Metadata) ClearUndocked() {
	m.UndockedProfile = nil
	m.Touch()
}

// LinkDock binds a dock UUID to a profile, replacing any previous binding of that dock
func (m *Metadata) LinkDock(uuid, profile string) {
	if m.DockProfiles == nil {
		m.DockProfiles = make(map[string]string)
	}
	m.DockProfiles[uuid] = profile
	m.Touch()
}

// UnlinkDock removes a dock binding; unknown UUIDs are ignored
func (m *Metadata) UnlinkDock(uuid string) {
	delete(m.DockProfiles, uuid)
	m.Touch()
}

// DockProfile returns the profile bound to a dock UUID
func (m *Metadata) DockProfile(uuid string) (string, bool) {
	name, ok := m.DockProfiles[uuid]
	return name, ok
}

// ProfileDock returns a dock UUID bound to profile. When several docks are
// bound to the same profile the lexicographically smallest UUID wins.
func (m *Metadata) ProfileDock(profile string) (string, bool) {
	docks := m.ProfileDocks(profile)
	if len(docks) == 0 {
		return "", false
	}
	return docks[0], true
}

// ProfileDocks returns every dock UUID bound to profile, sorted
func (m *Metadata) ProfileDocks(profile string) []string {
	var docks []string
	for uuid, name := range m.DockProfiles {
		if name == profile {
			docks = append(docks, uuid)
		}
	}
	sort.Strings(docks)
	return docks
}

// BindDock links a dock to profile and clears the undocked fallback when it
// names the same profile. It returns the profile the dock was bound to before.
func (m *Metadata) BindDock(uuid, profile string) (previous string, hadPrevious bool) {
	previous, hadPrevious = m.DockProfile(uuid)
	if undocked, ok := m.Undocked(); ok && undocked == profile {
		m.UndockedProfile = nil
	}
	m.LinkDock(uuid, profile)
	return previous, hadPrevious
}

// ForgetProfile removes every reference to profile
func (m *Metadata) ForgetProfile(profile string) {
	for _, uuid := range m.ProfileDocks(profile) {
		delete(m.DockProfiles, uuid)
	}
	if name, ok := m.Undocked(); ok && name == profile {
		m.UndockedProfile = nil
	}
	if name, ok := m.Active(); ok && name == profile {
		m.ActiveProfile = nil
	}
	m.Touch()
}

// RenameProfile rewrites every reference to oldName
func (m *Metadata) RenameProfile(oldName, newName string) {
	for uuid, name := range m.DockProfiles {
		if name == oldName {
			m.DockProfiles[uuid] = newName
		}
	}
	if name, ok := m.Undocked(); ok && name == oldName {
		m.UndockedProfile = ptr(newName)
	}
	if name, ok := m.Active(); ok && name == oldName {
		m.ActiveProfile = ptr(newName)
	}
	m.Touch()
}

func ptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}
