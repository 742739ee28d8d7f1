// Package switcher decides which display profile should be active for the
// hardware that is connected right now, and applies it.
//
// The decision is a pure function of the binding record and the connected
// docks: the first connected dock (in enumeration order) with a binding
// wins, otherwise the undocked fallback applies, otherwise nothing does.
// A target equal to the active profile is a no-op, which is what makes
// bursts of hardware events collapse into a single switch.
//
// Applying a profile goes through collaborators defined as interfaces here
// and implemented by pkg/hyprland, pkg/notify and the stores.
package switcher
