// Package paths provides centralized path handling for hyprpier.
//
// Profiles and the binding record live in the per-user configuration
// directory (XDG_CONFIG_HOME/hyprpier, or the invoking user's directory when
// running under sudo). The daemon socket lives in the session runtime
// directory. Nothing outside this package should build these paths by hand.
package paths
