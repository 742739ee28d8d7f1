package daemon

import (
	"context"
	"io"
	"net"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/hyprpier/pkg/errors"
	"github.com/arthur-debert/hyprpier/pkg/paths"
)

// FindSocket locates a running daemon: the current session's socket if
// it exists, otherwise the first <runtimeRoot>/*/hyprpier.sock. The scan
// lets hardware hooks running as root without a session reach the user's
// daemon.
func FindSocket(runtimeRoot string) (string, error) {
	if path, err := paths.SocketPath(); err == nil {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	if runtimeRoot == "" {
		runtimeRoot = paths.DefaultRuntimeRoot
	}
	matches, _ := filepath.Glob(filepath.Join(runtimeRoot, "*", paths.SocketName))
	sort.Strings(matches)
	for _, match := range matches {
		if info, err := os.Stat(match); err == nil && info.Mode()&os.ModeSocket != 0 {
			return match, nil
		}
	}

	return "", errors.New(errors.ErrNotFound, "No hyprpier daemon socket found - is the daemon running?").
		WithDetail("runtime_root", runtimeRoot)
}

// Send writes cmd to the daemon at path and returns its full response. A
// response starting with ERROR is returned as an ErrProtocol error.
func Send(ctx context.Context, path, cmd string) (string, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "unix", path)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrIO, "Failed to connect to daemon").
			WithDetail("socket", path)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	if _, err := conn.Write([]byte(cmd)); err != nil {
		return "", errors.Wrap(err, errors.ErrIO, "Failed to send command")
	}
	if uc, ok := conn.(*net.UnixConn); ok {
		_ = uc.CloseWrite()
	}

	data, err := io.ReadAll(conn)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrIO, "Failed to read response")
	}

	response := string(data)
	if strings.HasPrefix(response, "ERROR") {
		trimmed := strings.TrimSpace(response)
		return response, errors.New(errors.ErrProtocol, trimmed).WithDetail("response", trimmed)
	}
	return response, nil
}

// Notify finds the daemon socket and sends cmd to it
func Notify(ctx context.Context, runtimeRoot, cmd string) (string, error) {
	path, err := FindSocket(runtimeRoot)
	if err != nil {
		return "", err
	}
	return Send(ctx, path, cmd)
}
