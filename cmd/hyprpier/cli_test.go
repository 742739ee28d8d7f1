package hyprpier

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/hyprpier/pkg/filesystem"
	"github.com/arthur-debert/hyprpier/pkg/hyprland"
	"github.com/arthur-debert/hyprpier/pkg/metadata"
	"github.com/arthur-debert/hyprpier/pkg/paths"
	"github.com/arthur-debert/hyprpier/pkg/profile"
)

const (
	dockUUID  = "d1a2b3c4-0000-1111-2222-333344445555"
	otherUUID = "e9f8e7d6-0000-1111-2222-333344445555"
)

// cliEnv points every hyprpier path at a temporary tree and keeps the
// commands away from the real compositor, daemon and session bus.
type cliEnv struct {
	t            *testing.T
	configDir    string
	sysfs        string
	monitorsConf string
	runtimeRoot  string
}

func newCLIEnv(t *testing.T) *cliEnv {
	t.Helper()
	root := t.TempDir()
	e := &cliEnv{
		t:            t,
		configDir:    filepath.Join(root, "config", "hyprpier"),
		sysfs:        filepath.Join(root, "sys", "bus", "thunderbolt", "devices"),
		monitorsConf: filepath.Join(root, "config", "hypr", "monitors.conf"),
		runtimeRoot:  filepath.Join(root, "run", "user"),
	}
	require.NoError(t, os.MkdirAll(e.sysfs, 0755))

	t.Setenv(paths.EnvConfigDir, e.configDir)
	t.Setenv(paths.EnvRuntimeDir, "")
	t.Setenv(paths.EnvSudoUser, "")
	t.Setenv(hyprland.EnvInstanceSignature, "")
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv("NO_COLOR", "1")
	t.Setenv("HYPRPIER_HYPRLAND__MONITORS_CONF", e.monitorsConf)
	t.Setenv("HYPRPIER_HYPRLAND__HYPRCTL", filepath.Join(root, "no-hyprctl"))
	t.Setenv("HYPRPIER_THUNDERBOLT__SYSFS_PATH", e.sysfs)
	t.Setenv("HYPRPIER_NOTIFICATIONS__ENABLED", "false")
	t.Setenv("HYPRPIER_DAEMON__RUNTIME_ROOT", e.runtimeRoot)

	e.addDevice("0-0", "Host Controller", "host-uuid")
	return e
}

func (e *cliEnv) run(args ...string) (string, error) {
	e.t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func (e *cliEnv) mustRun(args ...string) string {
	e.t.Helper()
	out, err := e.run(args...)
	require.NoError(e.t, err, "output: %s", out)
	return out
}

func (e *cliEnv) addDevice(id, name, uuid string) {
	e.t.Helper()
	dir := filepath.Join(e.sysfs, id)
	require.NoError(e.t, os.MkdirAll(dir, 0755))
	require.NoError(e.t, os.WriteFile(filepath.Join(dir, "device_name"), []byte(name+"\n"), 0644))
	require.NoError(e.t, os.WriteFile(filepath.Join(dir, "vendor_name"), []byte("CalDigit, Inc.\n"), 0644))
	require.NoError(e.t, os.WriteFile(filepath.Join(dir, "unique_id"), []byte(uuid+"\n"), 0644))
}

func (e *cliEnv) addDock(uuid string) {
	e.t.Helper()
	e.addDevice("0-1", "TS4", uuid)
}

func (e *cliEnv) saveProfile(name string) *profile.Profile {
	e.t.Helper()
	p := profile.New(name)
	p.Monitors = []profile.Monitor{{
		Name:        "DP-1",
		Enabled:     true,
		Resolution:  "2560x1440",
		RefreshRate: 60,
		Scale:       1,
	}}
	p.Workspaces = []profile.Workspace{{ID: 1, Monitor: "DP-1", Default: true}}
	require.NoError(e.t, profile.NewStore(filesystem.NewOS(), e.configDir).Save(p))
	return p
}

func (e *cliEnv) metadata() *metadata.Metadata {
	e.t.Helper()
	m, err := metadata.NewStore(filesystem.NewOS(), filepath.Join(e.configDir, paths.MetadataFile)).Load()
	require.NoError(e.t, err)
	return m
}

func (e *cliEnv) updateMetadata(fn func(m *metadata.Metadata)) {
	e.t.Helper()
	store := metadata.NewStore(filesystem.NewOS(), filepath.Join(e.configDir, paths.MetadataFile))
	require.NoError(e.t, store.Update(func(m *metadata.Metadata) error {
		fn(m)
		return nil
	}))
}
