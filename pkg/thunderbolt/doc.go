// Package thunderbolt enumerates Thunderbolt devices from sysfs.
//
// Each entry under /sys/bus/thunderbolt/devices whose name contains a '-'
// ("0-0", "0-1", "1-0") is a device; "domainN" entries are controllers and
// are skipped. The host controller of each domain is the "-0" entry, every
// other device is a peripheral (a dock). No boltd/boltctl is required.
package thunderbolt
