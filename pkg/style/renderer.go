package style

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/hyprpier/pkg/thunderbolt"
)

const shortUUIDLen = 8

// ProfileEntry is one line of the profile listing
type ProfileEntry struct {
	Name     string
	Active   bool
	Docks    []string
	Undocked bool
}

// Renderer formats CLI output
type Renderer interface {
	RenderProfiles(entries []ProfileEntry) string
	RenderDevices(devices []thunderbolt.Device) string
	RenderSecurity(mode string) string
	RenderSuccess(msg string) string
	RenderWarning(msg string) string
	RenderError(err error) string
}

// ShortUUID abbreviates a dock identity for listings
func ShortUUID(uuid string) string {
	if len(uuid) <= shortUUIDLen {
		return uuid
	}
	return uuid[:shortUUIDLen]
}

// TerminalRenderer renders with colors and tables
type TerminalRenderer struct{}

// NewTerminalRenderer creates a terminal renderer
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{}
}

// RenderProfiles renders the profile listing with binding markers
func (r *TerminalRenderer) RenderProfiles(entries []ProfileEntry) string {
	if len(entries) == 0 {
		return MutedStyle.Render("No profiles found")
	}

	var b strings.Builder
	b.WriteString(HeadingStyle.Render("Available profiles") + "\n")
	for _, e := range entries {
		indicator := InactiveIndicator
		name := ProfileStyle.Render(e.Name)
		if e.Active {
			indicator = ActiveIndicator
			name += " " + ActiveStyle.Render("(active)")
		}
		line := fmt.Sprintf("%s %s", indicator, name)
		for _, uuid := range e.Docks {
			line += " " + DockStyle.Render("[dock: "+ShortUUID(uuid)+"]")
		}
		if e.Undocked {
			line += " " + UndockedStyle.Render("[undocked]")
		}
		b.WriteString(Indent(line, 1) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderDevices renders devices as a table
func (r *TerminalRenderer) RenderDevices(devices []thunderbolt.Device) string {
	if len(devices) == 0 {
		return MutedStyle.Render("No Thunderbolt devices found")
	}

	out, err := pterm.DefaultTable.
		WithHasHeader().
		WithData(deviceRows(devices)).
		Srender()
	if err != nil {
		return NewPlainRenderer().RenderDevices(devices)
	}
	return HeadingStyle.Render("Thunderbolt devices") + "\n" + strings.TrimRight(out, "\n")
}

// RenderSecurity renders the controller security mode
func (r *TerminalRenderer) RenderSecurity(mode string) string {
	return fmt.Sprintf("%s %s\n\n%s",
		TextStyle.Render("Thunderbolt security mode:"),
		ValueStyle.Render(mode),
		MutedStyle.Render(thunderbolt.SecurityModeDescription(mode)))
}

// RenderSuccess renders a confirmation line
func (r *TerminalRenderer) RenderSuccess(msg string) string {
	return SuccessIndicator + " " + Render(msg)
}

// RenderWarning renders a warning line
func (r *TerminalRenderer) RenderWarning(msg string) string {
	return WarningIndicator + " " + WarningStyle.Render(msg)
}

// RenderError renders an error message
func (r *TerminalRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	return ErrorStyle.Render("Error:") + " " + err.Error()
}

// PlainRenderer renders unstyled text
type PlainRenderer struct{}

// NewPlainRenderer creates a plain text renderer
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

// RenderProfiles renders the profile listing
func (r *PlainRenderer) RenderProfiles(entries []ProfileEntry) string {
	if len(entries) == 0 {
		return "No profiles found"
	}

	var b strings.Builder
	b.WriteString("Available profiles:\n")
	for _, e := range entries {
		b.WriteString("  " + e.Name)
		if e.Active {
			b.WriteString(" (active)")
		}
		for _, uuid := range e.Docks {
			b.WriteString(" [dock: " + ShortUUID(uuid) + "]")
		}
		if e.Undocked {
			b.WriteString(" [undocked]")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderDevices renders one block per device
func (r *PlainRenderer) RenderDevices(devices []thunderbolt.Device) string {
	if len(devices) == 0 {
		return "No Thunderbolt devices found"
	}

	var b strings.Builder
	b.WriteString("Thunderbolt devices:\n")
	for _, d := range devices {
		fmt.Fprintf(&b, "\n  %s (%s)\n", d.Name, d.VendorOr("unknown vendor"))
		fmt.Fprintf(&b, "    UUID: %s\n", d.UUID)
		fmt.Fprintf(&b, "    Device ID: %s\n", d.DeviceID)
		fmt.Fprintf(&b, "    Type: %s\n", d.Role)
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderSecurity renders the controller security mode
func (r *PlainRenderer) RenderSecurity(mode string) string {
	return fmt.Sprintf("Thunderbolt security mode: %s\n\n%s", mode, thunderbolt.SecurityModeDescription(mode))
}

// RenderSuccess strips markup from msg
func (r *PlainRenderer) RenderSuccess(msg string) string {
	return StripMarkup(msg)
}

// RenderWarning prefixes msg with Warning:
func (r *PlainRenderer) RenderWarning(msg string) string {
	return "Warning: " + msg
}

// RenderError renders a plain error message
func (r *PlainRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %s", err.Error())
}

func deviceRows(devices []thunderbolt.Device) pterm.TableData {
	rows := pterm.TableData{{"Device", "Name", "Vendor", "Type", "UUID"}}
	for _, d := range devices {
		rows = append(rows, []string{d.DeviceID, d.Name, d.VendorOr("-"), string(d.Role), d.UUID})
	}
	return rows
}
