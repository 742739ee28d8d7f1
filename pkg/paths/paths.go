package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/hyprpier/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the directory holding profiles and the binding record
	EnvConfigDir = "HYPRPIER_CONFIG_DIR"

	// EnvRuntimeDir is the session runtime directory holding the daemon socket
	EnvRuntimeDir = "XDG_RUNTIME_DIR"

	// EnvSudoUser names the invoking user when running under sudo
	EnvSudoUser = "SUDO_USER"
)

// Default directories and files
const (
	// AppDirName is the directory name for hyprpier-specific files
	AppDirName = "hyprpier"

	// MetadataFile is the binding record; the leading dot keeps it out of profile listings
	MetadataFile = ".metadata.json"

	// ConfigFile holds user tunables
	ConfigFile = "config.toml"

	// ProfileExt is the extension of stored profiles
	ProfileExt = ".json"

	// SocketName is the daemon socket file name inside the runtime directory
	SocketName = "hyprpier.sock"

	// DefaultRuntimeRoot holds one runtime directory per logged-in user
	DefaultRuntimeRoot = "/run/user"

	// LogFileName is the name of the log file
	LogFileName = "hyprpier.log"
)

// Paths provides centralized path management for hyprpier
type Paths interface {
	BaseConfigDir() string
	ProfileDir() string
	ProfilePath(name string) string
	MetadataPath() string
	ConfigFilePath() string
	HyprlandMonitorsConf() string
}

type paths struct {
	baseConfig string
	profileDir string
}

// New resolves the configuration directories from the environment.
func New() (Paths, error) {
	base, err := baseConfigDir()
	if err != nil {
		return nil, err
	}

	p := &paths{baseConfig: base}
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.profileDir = expandHome(dir)
	} else {
		p.profileDir = filepath.Join(base, AppDirName)
	}
	return p, nil
}

// baseConfigDir returns ~/.config, or the original user's ~/.config when
// running under sudo so that a root invocation never writes root-owned profiles.
func baseConfigDir() (string, error) {
	if sudoUser := os.Getenv(EnvSudoUser); validSudoUser(sudoUser) {
		path := filepath.Join("/home", sudoUser, ".config")
		if strings.HasPrefix(path, "/home/") {
			return path, nil
		}
	}

	if xdg.ConfigHome == "" {
		return "", errors.New(errors.ErrEnvironment, "could not find config directory")
	}
	return xdg.ConfigHome, nil
}

func validSudoUser(name string) bool {
	if name == "" || name == "root" {
		return false
	}
	for _, c := range name {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_', c == '-':
		default:
			return false
		}
	}
	return true
}

// BaseConfigDir returns the user's configuration root (e.g. ~/.config)
func (p *paths) BaseConfigDir() string {
	return p.baseConfig
}

// ProfileDir returns the directory holding profiles and the binding record
func (p *paths) ProfileDir() string {
	return p.profileDir
}

// ProfilePath returns the storage path of a profile
func (p *paths) ProfilePath(name string) string {
	return filepath.Join(p.profileDir, name+ProfileExt)
}

// MetadataPath returns the binding record path
func (p *paths) MetadataPath() string {
	return filepath.Join(p.profileDir, MetadataFile)
}

// ConfigFilePath returns the user tunables file
func (p *paths) ConfigFilePath() string {
	return filepath.Join(p.profileDir, ConfigFile)
}

// HyprlandMonitorsConf returns the generated compositor config (~/.config/hypr/monitors.conf)
func (p *paths) HyprlandMonitorsConf() string {
	return filepath.Join(p.baseConfig, "hypr", "monitors.conf")
}

// SocketPath returns the daemon socket for the current session.
// It fails when XDG_RUNTIME_DIR is unset, which means we are not in a user session.
func SocketPath() (string, error) {
	runtimeDir := os.Getenv(EnvRuntimeDir)
	if runtimeDir == "" {
		return "", errors.New(errors.ErrEnvironment, "XDG_RUNTIME_DIR not set - are you in a user session?")
	}
	return filepath.Join(runtimeDir, SocketName), nil
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
