package hyprpier

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/hyprpier/pkg/daemon"
	"github.com/arthur-debert/hyprpier/pkg/logging"
	"github.com/arthur-debert/hyprpier/pkg/paths"
)

const (
	notifyTimeout = 30 * time.Second
	statusTimeout = 2 * time.Second
)

func newDaemonCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "daemon",
		Short:   MsgDaemonShort,
		Long:    MsgDaemonLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// the daemon always logs at info or above
			if verbosity, _ := cmd.Flags().GetCount("verbose"); verbosity < 1 {
				logging.SetupLogger(1)
			}

			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			socketPath, err := paths.SocketPath()
			if err != nil {
				return err
			}
			ln, err := daemon.Listen(socketPath)
			if err != nil {
				return err
			}

			server := daemon.NewServer(ln, socketPath, a.engine, a.cfg.Daemon.SettleDelay)
			defer server.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log.Info().
				Str("socket", socketPath).
				Dur("settle_delay", a.cfg.Daemon.SettleDelay).
				Msg("Daemon started")

			if err := server.Serve(ctx); err != nil {
				return err
			}
			log.Info().Msg("Daemon stopped")
			return nil
		},
	}
}

func newNotifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "notify",
		Short:  MsgNotifyShort,
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), notifyTimeout)
			defer cancel()

			response, err := daemon.Notify(ctx, a.cfg.Daemon.RuntimeRoot, daemon.CmdRefresh)
			if err != nil {
				return err
			}
			log.Debug().Str("response", strings.TrimSpace(response)).Msg("Daemon notified")
			return nil
		},
	}
}

func newStatusCmd() *cobra.Command {
	var explain bool

	cmd := &cobra.Command{
		Use:     "status",
		Short:   MsgStatusShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if socketPath, response, err := queryDaemon(cmd.Context(), a.cfg.Daemon.RuntimeRoot); err == nil {
				fmt.Fprintf(out, MsgDaemonRunning+"\n", socketPath)
				log.Debug().Str("response", response).Msg("Daemon status")
			} else {
				log.Debug().Err(err).Msg("Daemon not reachable")
				fmt.Fprintln(out, MsgDaemonStopped)
			}

			name, ok, err := a.engine.Active()
			if err != nil {
				return err
			}
			if ok {
				fmt.Fprintf(out, MsgActiveProfile+"\n", name)
			} else {
				fmt.Fprintln(out, MsgNoActiveProfile)
			}

			if !explain {
				return nil
			}
			d, err := a.engine.Plan(cmd.Context())
			if err != nil {
				return err
			}
			a.printDecision(out, d)
			if d.HasTarget() {
				fmt.Fprintf(out, MsgWouldApply+"\n", d.Target, reasonLabel(d.Reason))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&explain, "explain", false, MsgFlagExplain)
	return cmd
}

// queryDaemon asks a running daemon for its status
func queryDaemon(ctx context.Context, runtimeRoot string) (string, string, error) {
	socketPath, err := daemon.FindSocket(runtimeRoot)
	if err != nil {
		return "", "", err
	}

	ctx, cancel := context.WithTimeout(ctx, statusTimeout)
	defer cancel()

	response, err := daemon.Send(ctx, socketPath, daemon.CmdStatus)
	if err != nil {
		return socketPath, "", err
	}
	return socketPath, strings.TrimSpace(response), nil
}
