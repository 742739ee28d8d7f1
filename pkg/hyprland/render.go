package hyprland

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arthur-debert/hyprpier/pkg/profile"
)

const lidSwitchName = "Lid Switch"

// MonitorSpec is the value of a monitor= line or `keyword monitor` argument
func MonitorSpec(m profile.Monitor) string {
	if !m.Enabled {
		return m.Name + ",disable"
	}
	spec := fmt.Sprintf("%s,%s,%dx%d,%s", m.Name, modeOf(m), m.Position.X, m.Position.Y, formatFloat(scaleOf(m)))
	if m.Transform != 0 {
		spec += ",transform," + strconv.Itoa(int(m.Transform))
	}
	return spec
}

// WorkspaceSpec is the value of a workspace= line or `keyword workspace` argument
func WorkspaceSpec(w profile.Workspace) string {
	spec := fmt.Sprintf("%d,monitor:%s", w.ID, w.Monitor)
	if w.Default {
		spec += ",default:true"
	}
	return spec
}

// Render produces the monitors.conf content for p
func Render(p *profile.Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Generated by hyprpier - profile: %s\n", p.Name)
	if p.Description != nil && *p.Description != "" {
		fmt.Fprintf(&b, "# %s\n", *p.Description)
	}
	b.WriteString("# Changes will be overwritten on the next profile switch.\n\n")

	for _, m := range p.Monitors {
		if m.Description != nil && *m.Description != "" {
			fmt.Fprintf(&b, "# %s\n", *m.Description)
		}
		fmt.Fprintf(&b, "monitor=%s\n", MonitorSpec(m))
	}

	if len(p.Workspaces) > 0 {
		b.WriteString("\n")
		for _, w := range p.SortedWorkspaces() {
			fmt.Fprintf(&b, "workspace=%s\n", WorkspaceSpec(w))
		}
	}

	if lines := lidSwitchLines(p); len(lines) > 0 {
		b.WriteString("\n")
		for _, line := range lines {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// lidSwitchLines renders the bindl pair toggling the lid monitor. on_close
// and on_open accept "disable", "enable" or a raw command to exec.
func lidSwitchLines(p *profile.Profile) []string {
	lid := p.LidSwitch
	if lid == nil || !lid.Enabled || lid.Monitor == "" {
		return nil
	}
	return []string{
		fmt.Sprintf("bindl=,switch:on:%s,exec,%s", lidSwitchName, lidAction(p, lid.OnClose)),
		fmt.Sprintf("bindl=,switch:off:%s,exec,%s", lidSwitchName, lidAction(p, lid.OnOpen)),
	}
}

func lidAction(p *profile.Profile, action string) string {
	name := p.LidSwitch.Monitor
	switch action {
	case "disable":
		return fmt.Sprintf(`hyprctl keyword monitor "%s,disable"`, name)
	case "enable", "":
		spec := name + ",preferred,auto,1"
		if m, ok := p.MonitorByName(name); ok {
			enabled := *m
			enabled.Enabled = true
			spec = MonitorSpec(enabled)
		}
		return fmt.Sprintf(`hyprctl keyword monitor "%s"`, spec)
	default:
		return action
	}
}

// BatchCommands are the hyprctl keywords that apply p to a running compositor
func BatchCommands(p *profile.Profile) []string {
	cmds := make([]string, 0, len(p.Monitors)+len(p.Workspaces))
	// enable first so disabling the last active output never leaves no screen
	for _, m := range p.Monitors {
		if m.Enabled {
			cmds = append(cmds, "keyword monitor "+MonitorSpec(m))
		}
	}
	for _, m := range p.Monitors {
		if !m.Enabled {
			cmds = append(cmds, "keyword monitor "+MonitorSpec(m))
		}
	}
	for _, w := range p.SortedWorkspaces() {
		cmds = append(cmds, "keyword workspace "+WorkspaceSpec(w))
	}
	return cmds
}

func modeOf(m profile.Monitor) string {
	if m.Mode != "" {
		return m.Mode
	}
	if m.RefreshRate > 0 {
		return m.Resolution + "@" + formatFloat(m.RefreshRate)
	}
	return m.Resolution
}

func scaleOf(m profile.Monitor) float64 {
	if m.Scale <= 0 {
		return 1
	}
	return m.Scale
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
