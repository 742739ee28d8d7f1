package daemon

import (
	stderrors "errors"
	"net"
	"os"
	"syscall"
	"time"

	"github.com/arthur-debert/hyprpier/pkg/errors"
)

const livenessTimeout = 500 * time.Millisecond

// Listen binds the control socket at path.
//
// A successful dial means another daemon is serving and yields
// ErrAlreadyRunning. A stale socket file left by a crashed daemon is
// removed and the bind retried once.
func Listen(path string) (net.Listener, error) {
	if conn, err := net.DialTimeout("unix", path, livenessTimeout); err == nil {
		_ = conn.Close()
		return nil, errors.New(errors.ErrAlreadyRunning, "Daemon already running").
			WithDetail("socket", path)
	}

	ln, err := net.Listen("unix", path)
	if err != nil && isAddrInUse(err) {
		if rmErr := os.Remove(path); rmErr != nil && !os.IsNotExist(rmErr) {
			return nil, errors.Wrap(rmErr, errors.ErrIO, "Failed to remove stale socket").
				WithDetail("socket", path)
		}
		ln, err = net.Listen("unix", path)
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrIO, "Failed to bind socket").
			WithDetail("socket", path)
	}

	if err := os.Chmod(path, 0o600); err != nil {
		_ = ln.Close()
		return nil, errors.Wrap(err, errors.ErrIO, "Failed to set socket permissions").
			WithDetail("socket", path)
	}
	return ln, nil
}

func isAddrInUse(err error) bool {
	return stderrors.Is(err, syscall.EADDRINUSE)
}
