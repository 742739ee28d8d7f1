package hyprpier

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/hyprpier/pkg/config"
	"github.com/arthur-debert/hyprpier/pkg/filesystem"
	"github.com/arthur-debert/hyprpier/pkg/hyprland"
	"github.com/arthur-debert/hyprpier/pkg/metadata"
	"github.com/arthur-debert/hyprpier/pkg/notify"
	"github.com/arthur-debert/hyprpier/pkg/paths"
	"github.com/arthur-debert/hyprpier/pkg/profile"
	"github.com/arthur-debert/hyprpier/pkg/style"
	"github.com/arthur-debert/hyprpier/pkg/switcher"
	"github.com/arthur-debert/hyprpier/pkg/thunderbolt"
	"github.com/arthur-debert/hyprpier/pkg/types"
)

// app bundles the collaborators every command works with. It is built per
// invocation so each command sees fresh configuration.
type app struct {
	fs       types.FS
	paths    paths.Paths
	cfg      *config.Config
	profiles *profile.Store
	metadata *metadata.Store
	devices  *thunderbolt.Enumerator
	hyprctl  *hyprland.Client
	writer   *hyprland.Writer
	engine   *switcher.Engine
	render   style.Renderer
}

func newApp(cmd *cobra.Command) (*app, error) {
	p, err := paths.New()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(p.ConfigFilePath())
	if err != nil {
		return nil, err
	}

	fsys := filesystem.NewOS()
	a := &app{
		fs:       fsys,
		paths:    p,
		cfg:      cfg,
		profiles: profile.NewStore(fsys, p.ProfileDir()),
		metadata: metadata.NewStore(fsys, p.MetadataPath()),
		devices:  thunderbolt.NewEnumerator(fsys, cfg.Thunderbolt.SysfsPath),
		hyprctl:  hyprland.NewClient(nil, cfg.Hyprland.Hyprctl),
		render:   rendererFor(cmd),
	}

	monitorsConf := cfg.Hyprland.MonitorsConf
	if monitorsConf == "" {
		monitorsConf = p.HyprlandMonitorsConf()
	}
	a.writer = hyprland.NewWriter(fsys, monitorsConf)

	a.engine = switcher.New(switcher.Options{
		Docks:    a.devices,
		Profiles: a.profiles,
		Metadata: a.metadata,
		Resolver: hyprland.NewResolver(a.hyprctl),
		Writer:   a.writer,
		Runtime:  hyprland.NewRuntime(a.hyprctl),
		Notifier: notify.New(cfg.Notifications.Enabled, cfg.Notifications.Timeout),
	})
	return a, nil
}

// rendererFor honours --format, falling back to terminal detection on stdout
func rendererFor(cmd *cobra.Command) style.Renderer {
	format := style.FormatAuto
	if flag := cmd.Flag("format"); flag != nil {
		if f, err := style.ParseFormat(flag.Value.String()); err == nil {
			format = f
		}
	}
	out, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		if format == style.FormatAuto {
			format = style.FormatText
		}
		out = os.Stdout
	}
	return style.NewRenderer(format, out)
}

// loadProfile validates name before touching the store, so a name can
// never address a file outside the profile directory.
func (a *app) loadProfile(name string) (*profile.Profile, error) {
	if err := profile.ValidateName(name); err != nil {
		return nil, err
	}
	return a.profiles.Load(name)
}
