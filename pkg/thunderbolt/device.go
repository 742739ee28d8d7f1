package thunderbolt

import "strings"

// Role classifies a device as the host controller or an attached peripheral
type Role string

const (
	RoleHost       Role = "host"
	RolePeripheral Role = "peripheral"
)

// hostSuffix marks the host controller device of a domain ("0-0", "1-0")
const hostSuffix = "-0"

// deviceSeparator must appear in a sysfs entry name for it to be a device
const deviceSeparator = "-"

// Device is one Thunderbolt unit as reported by sysfs
type Device struct {
	Name     string
	UUID     string
	Vendor   string
	Role     Role
	DeviceID string
}

// IsDock reports whether this is a peripheral rather than the host controller
func (d Device) IsDock() bool {
	return d.Role == RolePeripheral
}

// VendorOr returns the vendor name or fallback when sysfs did not report one
func (d Device) VendorOr(fallback string) string {
	if d.Vendor == "" {
		return fallback
	}
	return d.Vendor
}

func roleFor(deviceID string) Role {
	if strings.HasSuffix(deviceID, hostSuffix) {
		return RoleHost
	}
	return RolePeripheral
}
