package thunderbolt

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/hyprpier/pkg/errors"
	"github.com/arthur-debert/hyprpier/pkg/filesystem"
	"github.com/arthur-debert/hyprpier/pkg/types"
)

// DefaultSysfsPath is where the kernel exposes the Thunderbolt bus
const DefaultSysfsPath = "/sys/bus/thunderbolt/devices"

const (
	attrDeviceName = "device_name"
	attrVendorName = "vendor_name"
	attrUniqueID   = "unique_id"
	attrSecurity   = "security"

	unknownName     = "Unknown"
	unknownSecurity = "unknown"
)

// Enumerator reads device topology from a sysfs-style directory
type Enumerator struct {
	fs   types.FS
	root string
}

// NewEnumerator creates an enumerator over root using fsys.
// An empty root means DefaultSysfsPath and a nil fsys means the OS filesystem.
func NewEnumerator(fsys types.FS, root string) *Enumerator {
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	if root == "" {
		root = DefaultSysfsPath
	}
	return &Enumerator{fs: fsys, root: root}
}

// ListAllDevices returns every device, host controllers included, sorted by DeviceID.
// A missing sysfs directory yields an empty list; unreadable attributes fall back
// to defaults instead of failing the enumeration.
func (e *Enumerator) ListAllDevices() ([]Device, error) {
	if _, err := e.fs.Stat(e.root); err != nil {
		if os.IsNotExist(err) {
			return []Device{}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrIO, "failed to read Thunderbolt sysfs at %s", e.root)
	}

	entries, err := e.fs.ReadDir(e.root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "failed to read Thunderbolt sysfs at %s", e.root)
	}

	devices := make([]Device, 0, len(entries))
	for _, entry := range entries {
		id := entry.Name()
		if !strings.Contains(id, deviceSeparator) {
			continue
		}

		devicePath := filepath.Join(e.root, id)
		name, ok := e.readAttr(devicePath, attrDeviceName)
		if !ok {
			name = unknownName
		}
		vendor, _ := e.readAttr(devicePath, attrVendorName)
		uuid, _ := e.readAttr(devicePath, attrUniqueID)

		devices = append(devices, Device{
			Name:     name,
			UUID:     uuid,
			Vendor:   vendor,
			Role:     roleFor(id),
			DeviceID: id,
		})
	}

	sort.Slice(devices, func(i, j int) bool {
		return devices[i].DeviceID < devices[j].DeviceID
	})

	return devices, nil
}

// DetectDocks returns only peripherals, in ListAllDevices order
func (e *Enumerator) DetectDocks() ([]Device, error) {
	devices, err := e.ListAllDevices()
	if err != nil {
		return nil, err
	}

	docks := make([]Device, 0, len(devices))
	for _, d := range devices {
		if d.IsDock() {
			docks = append(docks, d)
		}
	}
	return docks, nil
}

// SecurityMode returns the security level of domain0, or "unknown".
func (e *Enumerator) SecurityMode() string {
	mode, ok := e.readAttr(filepath.Join(e.root, "domain0"), attrSecurity)
	if !ok || mode == "" {
		return unknownSecurity
	}
	return mode
}

// readAttr reads and trims a sysfs attribute; ok is false if it is missing or unreadable
func (e *Enumerator) readAttr(devicePath, attr string) (string, bool) {
	data, err := e.fs.ReadFile(filepath.Join(devicePath, attr))
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(data)), true
}

// SecurityModeDescription explains a security level in plain words
func SecurityModeDescription(mode string) string {
	switch mode {
	case "none":
		return "All devices are automatically authorized"
	case "user":
		return "Devices require user authorization"
	case "secure":
		return "Devices require secure key exchange"
	case "dponly":
		return "Only DisplayPort tunneling allowed (no PCIe/USB)"
	default:
		return "Unknown security mode"
	}
}
