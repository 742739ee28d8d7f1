// Package hyprland talks to the Hyprland compositor on behalf of the
// switcher.
//
// Four collaborators live here:
//
//   - Resolver maps stored monitor descriptions to the port names the
//     compositor assigned this session (docks renumber ports on reconnect).
//   - Writer renders a profile into monitors.conf, the file Hyprland sources
//     on startup.
//   - Runtime pushes a profile into a running compositor through
//     hyprctl --batch.
//   - Detector snapshots the connected monitors into a new profile.
//
// All of them go through a Client, which shells out to hyprctl via a
// Runner so tests can substitute canned output.
package hyprland
