// Package config loads hyprpier's tunables.
//
// Values are layered with koanf: embedded defaults first, then the optional
// config.toml next to the profiles, then HYPRPIER_ environment variables
// (HYPRPIER_DAEMON__SETTLE_DELAY=5s sets daemon.settle_delay).
package config
