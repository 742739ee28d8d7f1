package hyprpier

// Command descriptions
const (
	MsgRootShort = "Hyprland monitor profiles that follow your dock"

	MsgRootLong = `hyprpier switches Hyprland monitor profiles when a Thunderbolt dock is
connected or removed.

Profiles live in ~/.config/hyprpier as JSON files. Each dock is identified
by its Thunderbolt unique_id and can be linked to one profile; an optional
undocked profile applies when no linked dock is present. The daemon listens
on $XDG_RUNTIME_DIR/hyprpier.sock and re-evaluates the docks whenever a
hardware hook runs "hyprpier notify".`

	MsgApplyShort = "Apply a monitor profile"

	MsgApplyLong = `Apply writes the profile's monitor configuration to monitors.conf and, when
Hyprland is running, pushes it live through hyprctl.

With --auto the profile is chosen from the connected docks: the first
connected dock with a link wins, otherwise the undocked profile applies.
Nothing happens when the chosen profile is already active.`

	MsgApplyExample = `  hyprpier apply desk               # Apply the "desk" profile
  hyprpier apply desk --no-runtime  # Only write monitors.conf
  hyprpier apply --auto             # Pick the profile for the connected dock
  hyprpier apply --auto --dry-run   # Show what --auto would do`

	MsgListShort       = "List all profiles"
	MsgCurrentShort    = "Show the active profile"
	MsgShowShort       = "Print a stored profile"
	MsgDeleteShort     = "Delete a profile and its links"
	MsgLinkShort       = "Link a dock to a profile"
	MsgLinkLong        = "Link binds a dock to a profile. Without --dock the single connected dock is used.\nLinking the undocked profile to a dock clears the undocked setting."
	MsgUnlinkShort     = "Remove dock links"
	MsgUndockedShort   = "Show or set the profile used without a linked dock"
	MsgProfileShort    = "Manage stored profiles"
	MsgCaptureShort    = "Save the current monitor layout as a profile"
	MsgRenameShort     = "Rename a profile and update its links"
	MsgTBShort         = "Show Thunderbolt device information"
	MsgDaemonShort     = "Run the background daemon"
	MsgDaemonLong      = "The daemon listens on $XDG_RUNTIME_DIR/hyprpier.sock and applies the right\nprofile whenever it receives a refresh request."
	MsgNotifyShort     = "Notify the daemon of a dock event (used by udev)"
	MsgStatusShort     = "Show daemon and profile status"
	MsgGenConfigShort  = "Print the effective configuration as TOML"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"
)

// Output messages
const (
	MsgApplied          = "Applied profile: [profile]%s[/profile]"
	MsgAlreadyActive    = "Profile [profile]%s[/profile] is already active"
	MsgDetectedDock     = "Detected dock: %s (%s)"
	MsgNoDockUndocked   = "No dock detected, applying undocked profile: %s"
	MsgUnlinkedUndocked = "Dock detected but not linked, applying undocked profile: %s"
	MsgNoTargetNoDock   = "No dock detected and no undocked profile configured"
	MsgNoTargetUnlinked = "Dock detected but not linked, and no undocked profile configured"
	MsgDockItem         = "  - %s (%s)"
	MsgWouldApply       = "Would apply profile: %s (%s)"
	MsgActiveProfile    = "Active profile: %s"
	MsgNoActiveProfile  = "No active profile"
	MsgCreateProfiles   = "Create one with: hyprpier profile capture <name>"
	MsgDeleted          = "Deleted profile: [profile]%s[/profile]"
	MsgLinked           = "Linked dock [dock]%s[/dock] to profile [profile]%s[/profile]"
	MsgRelinked         = "Dock was previously linked to %s"
	MsgClearedUndocked  = "%s is no longer the undocked profile"
	MsgUnlinked         = "Unlinked dock [dock]%s[/dock]"
	MsgNothingUnlinked  = "No links to remove"
	MsgUndockedSet      = "Undocked profile: [undocked]%s[/undocked]"
	MsgUndockedDropped  = "Removed %d dock link(s) from %s"
	MsgUndockedCleared  = "Undocked profile cleared"
	MsgNoUndocked       = "No undocked profile configured"
	MsgCaptured         = "Captured %d monitor(s) into profile [profile]%s[/profile]"
	MsgRenamed          = "Renamed profile [profile]%s[/profile] to [profile]%s[/profile]"
	MsgDaemonRunning    = "Daemon: running (%s)"
	MsgDaemonStopped    = "Daemon: not running"
	MsgVersionFormat    = "hyprpier version %s\n  commit: %s\n  built:  %s\n"
	MsgManWritten       = "Man pages written to %s"
)

// Error messages
const (
	MsgErrNoCommand     = "no command specified"
	MsgErrNameRequired  = "profile name required unless --auto is used"
	MsgErrNameWithAuto  = "cannot combine a profile name with --auto"
	MsgErrNoDock        = "no dock connected; pass --dock <uuid>"
	MsgErrManyDocks     = "multiple docks connected; choose one with --dock"
	MsgErrDockNoUUID    = "dock %s has no unique_id"
	MsgErrProfileExists = "profile %s already exists (use --force to overwrite)"
	MsgErrRenameTarget  = "profile %s already exists"
	MsgErrUnlinkTarget  = "use either --dock or --profile, not both"
	MsgErrUndockedArgs  = "cannot combine a profile name with --clear"
)

// Flag descriptions
const (
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat    = "Output format: auto, term or text"
	MsgFlagAuto      = "Auto-detect dock and apply the linked profile"
	MsgFlagNoRuntime = "Generate config only, don't apply via hyprctl"
	MsgFlagDryRun    = "Show what would be applied without changing anything"
	MsgFlagYAML      = "Print as YAML instead of JSON"
	MsgFlagDock      = "Dock unique_id (defaults to the single connected dock)"
	MsgFlagProfile   = "Remove every dock linked to this profile"
	MsgFlagClear     = "Clear the undocked profile"
	MsgFlagForce     = "Overwrite an existing profile"
	MsgFlagDesc      = "Profile description"
	MsgFlagTBList    = "List all Thunderbolt devices"
	MsgFlagTBStatus  = "Show Thunderbolt security status"
	MsgFlagExplain   = "Also show which profile the connected docks select"
	MsgFlagManDir    = "Directory to write man pages into"
)

// MsgUsageTemplate groups commands under their group titles
const MsgUsageTemplate = `{{boldUpper "Usage:"}}{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{boldUpper "Aliases:"}}
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{boldUpper "Examples:"}}
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}{{$cmds := .Commands}}{{if eq (len .Groups) 0}}

{{boldUpper "Available Commands:"}}{{range $cmds}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{else}}{{range $group := .Groups}}

{{bold .Title}}{{range $cmds}}{{if (and (eq .GroupID $group.ID) (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{boldUpper "Flags:"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{boldUpper "Global Flags:"}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
