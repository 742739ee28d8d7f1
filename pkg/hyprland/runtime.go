package hyprland

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/hyprpier/pkg/logging"
	"github.com/arthur-debert/hyprpier/pkg/profile"
)

// EnvInstanceSignature is set by Hyprland for every process in its session
const EnvInstanceSignature = "HYPRLAND_INSTANCE_SIGNATURE"

// Runtime applies profiles to a running compositor
type Runtime struct {
	client *Client
	getenv func(string) string
	logger zerolog.Logger
}

// NewRuntime creates a runtime applier on top of client
func NewRuntime(client *Client) *Runtime {
	return &Runtime{
		client: client,
		getenv: os.Getenv,
		logger: logging.GetLogger("hyprland.runtime"),
	}
}

// IsRunning reports whether this process belongs to a Hyprland session
func (r *Runtime) IsRunning() bool {
	return r.getenv(EnvInstanceSignature) != ""
}

// Apply pushes monitor and workspace settings of p through hyprctl
func (r *Runtime) Apply(ctx context.Context, p *profile.Profile) error {
	cmds := BatchCommands(p)
	r.logger.Debug().
		Str("profile", p.Name).
		Strs("commands", cmds).
		Msg("Applying profile at runtime")
	return r.client.Batch(ctx, cmds)
}
