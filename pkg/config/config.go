package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"

	pierrors "github.com/arthur-debert/hyprpier/pkg/errors"
)

// EnvPrefix marks environment variables that override configuration keys
const EnvPrefix = "HYPRPIER_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Config holds every tunable hyprpier reads at startup
type Config struct {
	Daemon        DaemonConfig        `koanf:"daemon"`
	Thunderbolt   ThunderboltConfig   `koanf:"thunderbolt"`
	Hyprland      HyprlandConfig      `koanf:"hyprland"`
	Notifications NotificationsConfig `koanf:"notifications"`
}

// DaemonConfig tunes the control daemon
type DaemonConfig struct {
	SettleDelay time.Duration `koanf:"settle_delay"`
	RuntimeRoot string        `koanf:"runtime_root"`
}

// ThunderboltConfig locates the device topology
type ThunderboltConfig struct {
	SysfsPath string `koanf:"sysfs_path"`
}

// HyprlandConfig locates the compositor tooling
type HyprlandConfig struct {
	MonitorsConf string `koanf:"monitors_conf"`
	Hyprctl      string `koanf:"hyprctl"`
}

// NotificationsConfig controls desktop notifications on profile switches
type NotificationsConfig struct {
	Enabled bool          `koanf:"enabled"`
	Timeout time.Duration `koanf:"timeout"`
}

// Default returns the embedded defaults without reading any file or env var.
func Default() *Config {
	cfg, err := load(nil)
	if err != nil {
		// The embedded file is part of the binary; failing here is a build defect.
		panic(fmt.Sprintf("invalid embedded defaults: %v", err))
	}
	return cfg
}

// Load reads defaults, then configPath if it exists, then HYPRPIER_ env vars.
func Load(configPath string) (*Config, error) {
	return load(func(k *koanf.Koanf) error {
		if configPath != "" {
			if _, err := os.Stat(configPath); err == nil {
				if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
					return pierrors.Wrapf(err, pierrors.ErrConfig, "failed to load config from %s", configPath)
				}
			}
		}

		err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
			return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
		}), nil)
		if err != nil {
			return pierrors.Wrap(err, pierrors.ErrConfig, "failed to load env vars")
		}
		return nil
	})
}

func load(overlay func(k *koanf.Koanf) error) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, pierrors.Wrap(err, pierrors.ErrConfig, "failed to load defaults")
	}

	if overlay != nil {
		if err := overlay(k); err != nil {
			return nil, err
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, pierrors.Wrap(err, pierrors.ErrConfig, "failed to unmarshal configuration")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Daemon.SettleDelay < 0 {
		return pierrors.Newf(pierrors.ErrConfig, "daemon.settle_delay must not be negative (got %s)", c.Daemon.SettleDelay)
	}
	if c.Daemon.RuntimeRoot == "" {
		return pierrors.New(pierrors.ErrConfig, "daemon.runtime_root must not be empty")
	}
	if c.Thunderbolt.SysfsPath == "" {
		return pierrors.New(pierrors.ErrConfig, "thunderbolt.sysfs_path must not be empty")
	}
	if c.Hyprland.Hyprctl == "" {
		return pierrors.New(pierrors.ErrConfig, "hyprland.hyprctl must not be empty")
	}
	return nil
}

// Render serializes the effective configuration as TOML, with durations
// written the way they are read back.
func (c *Config) Render() ([]byte, error) {
	doc := map[string]interface{}{
		"daemon": map[string]interface{}{
			"settle_delay": c.Daemon.SettleDelay.String(),
			"runtime_root": c.Daemon.RuntimeRoot,
		},
		"thunderbolt": map[string]interface{}{
			"sysfs_path": c.Thunderbolt.SysfsPath,
		},
		"hyprland": map[string]interface{}{
			"monitors_conf": c.Hyprland.MonitorsConf,
			"hyprctl":       c.Hyprland.Hyprctl,
		},
		"notifications": map[string]interface{}{
			"enabled": c.Notifications.Enabled,
			"timeout": c.Notifications.Timeout.String(),
		},
	}
	out, err := gotoml.Marshal(doc)
	if err != nil {
		return nil, pierrors.Wrap(err, pierrors.ErrInternal, "failed to render configuration")
	}
	return out, nil
}
