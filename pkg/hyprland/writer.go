package hyprland

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/hyprpier/pkg/errors"
	"github.com/arthur-debert/hyprpier/pkg/filesystem"
	"github.com/arthur-debert/hyprpier/pkg/logging"
	"github.com/arthur-debert/hyprpier/pkg/profile"
	"github.com/arthur-debert/hyprpier/pkg/types"
)

// Writer renders profiles into the compositor's monitors.conf
type Writer struct {
	fs     types.FS
	path   string
	logger zerolog.Logger
}

// NewWriter creates a writer targeting path
func NewWriter(fsys types.FS, path string) *Writer {
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	return &Writer{
		fs:     fsys,
		path:   path,
		logger: logging.GetLogger("hyprland.writer"),
	}
}

// Path returns the monitors.conf location
func (w *Writer) Path() string {
	return w.path
}

// WriteConfig renders p and replaces monitors.conf atomically
func (w *Writer) WriteConfig(p *profile.Profile) error {
	data := []byte(Render(p))
	if err := filesystem.WriteFileAtomic(w.fs, w.path, w.path+".tmp", data, 0644); err != nil {
		return errors.Wrap(err, errors.ErrIO, "Failed to write monitor config").
			WithDetail("path", w.path)
	}
	w.logger.Info().
		Str("profile", p.Name).
		Str("path", w.path).
		Msg("Wrote monitor config")
	return nil
}
