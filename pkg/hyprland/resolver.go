package hyprland

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/hyprpier/pkg/logging"
	"github.com/arthur-debert/hyprpier/pkg/profile"
)

// Resolver rewrites stored port names to the ones currently assigned
type Resolver struct {
	client *Client
	logger zerolog.Logger
}

// NewResolver creates a resolver on top of client
func NewResolver(client *Client) *Resolver {
	return &Resolver{
		client: client,
		logger: logging.GetLogger("hyprland.resolver"),
	}
}

// ResolveMonitorNames matches each profile monitor by description against
// the connected monitors and renames it (plus its workspace and lid-switch
// references) when the port changed. Monitors without a description or
// without a connected match keep their stored name.
func (r *Resolver) ResolveMonitorNames(ctx context.Context, p *profile.Profile) error {
	current, err := r.client.Monitors(ctx)
	if err != nil {
		return err
	}

	byDescription := make(map[string]string, len(current))
	for _, m := range current {
		if desc := normalizeDescription(m.Description, m.Name); desc != "" {
			byDescription[desc] = m.Name
		}
	}

	renames := make(map[string]string)
	for _, m := range p.Monitors {
		if m.Description == nil {
			continue
		}
		port, ok := byDescription[normalizeDescription(*m.Description, m.Name)]
		if !ok || port == m.Name {
			continue
		}
		renames[m.Name] = port
		r.logger.Info().
			Str("description", *m.Description).
			Str("from", m.Name).
			Str("to", port).
			Msg("Monitor moved to a different port")
	}

	if len(renames) > 0 {
		p.RenameMonitors(renames)
	}
	return nil
}

// normalizeDescription strips the " (PORT)" suffix some hyprctl versions
// append to descriptions.
func normalizeDescription(desc, port string) string {
	desc = strings.TrimSpace(desc)
	desc = strings.TrimSuffix(desc, " ("+port+")")
	return strings.TrimSpace(desc)
}
