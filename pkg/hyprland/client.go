package hyprland

import (
	"bytes"
	"context"
	"encoding/json"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/hyprpier/pkg/errors"
	"github.com/arthur-debert/hyprpier/pkg/logging"
)

// DefaultHyprctl is the hyprctl binary looked up on PATH
const DefaultHyprctl = "hyprctl"

// Runner executes an external command and returns its stdout
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec
type ExecRunner struct{}

// Run implements Runner
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return stdout.Bytes(), errors.Wrapf(err, errors.ErrApply, "%s failed: %s", name, msg)
		}
		return stdout.Bytes(), errors.Wrapf(err, errors.ErrApply, "%s failed", name)
	}
	return stdout.Bytes(), nil
}

// MonitorInfo is one entry of `hyprctl monitors all -j`
type MonitorInfo struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Make        string  `json:"make"`
	Model       string  `json:"model"`
	Serial      string  `json:"serial"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	RefreshRate float64 `json:"refreshRate"`
	X           int32   `json:"x"`
	Y           int32   `json:"y"`
	Scale       float64 `json:"scale"`
	Transform   uint8   `json:"transform"`
	Disabled    bool    `json:"disabled"`
}

// Client wraps the hyprctl binary
type Client struct {
	runner Runner
	bin    string
	logger zerolog.Logger
}

// NewClient creates a hyprctl client. A nil runner uses ExecRunner and an
// empty bin uses DefaultHyprctl.
func NewClient(runner Runner, bin string) *Client {
	if runner == nil {
		runner = ExecRunner{}
	}
	if bin == "" {
		bin = DefaultHyprctl
	}
	return &Client{
		runner: runner,
		bin:    bin,
		logger: logging.GetLogger("hyprland.client"),
	}
}

// Monitors lists every monitor the compositor knows about, disabled ones included
func (c *Client) Monitors(ctx context.Context) ([]MonitorInfo, error) {
	out, err := c.runner.Run(ctx, c.bin, "monitors", "all", "-j")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrApply, "Failed to query monitors")
	}

	var monitors []MonitorInfo
	if err := json.Unmarshal(out, &monitors); err != nil {
		return nil, errors.Wrap(err, errors.ErrParse, "Failed to parse hyprctl monitor list")
	}
	c.logger.Debug().Int("count", len(monitors)).Msg("Queried monitors")
	return monitors, nil
}

// Batch runs several hyprctl commands in one invocation. hyprctl answers
// "ok" per command, sometimes on one line; any other reply is a failure.
func (c *Client) Batch(ctx context.Context, commands []string) error {
	if len(commands) == 0 {
		return nil
	}
	out, err := c.runner.Run(ctx, c.bin, "--batch", strings.Join(commands, " ; "))
	if err != nil {
		return errors.Wrap(err, errors.ErrApply, "hyprctl batch failed")
	}

	var failures []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if strings.ReplaceAll(line, "ok", "") == "" {
			continue
		}
		failures = append(failures, line)
	}
	if len(failures) > 0 {
		return errors.Newf(errors.ErrApply, "hyprctl rejected commands: %s", strings.Join(failures, "; ")).
			WithDetail("commands", commands)
	}
	return nil
}
