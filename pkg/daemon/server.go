package daemon

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/hyprpier/pkg/logging"
	"github.com/arthur-debert/hyprpier/pkg/switcher"
)

// Commands understood by the server
const (
	CmdRefresh = "refresh"
	CmdStatus  = "status"
)

// DefaultSettleDelay is the wait after a hardware event before docks are re-enumerated
const DefaultSettleDelay = 3 * time.Second

const maxRequestSize = 256

// Engine is what the server needs from the decision engine
type Engine interface {
	ResolveAndApply(ctx context.Context) (switcher.Outcome, error)
	Active() (string, bool, error)
}

// Server answers control requests one connection at a time
type Server struct {
	listener    net.Listener
	path        string
	engine      Engine
	settleDelay time.Duration
	sleep       func(time.Duration)
	logger      zerolog.Logger

	closeOnce sync.Once
	closeErr  error
}

// NewServer creates a server on an already bound listener. path is the
// socket file removed on Close.
func NewServer(ln net.Listener, path string, engine Engine, settleDelay time.Duration) *Server {
	return &Server{
		listener:    ln,
		path:        path,
		engine:      engine,
		settleDelay: settleDelay,
		sleep:       time.Sleep,
		logger:      logging.GetLogger("daemon.server"),
	}
}

// Path returns the socket path
func (s *Server) Path() string {
	return s.path
}

// Serve runs the accept loop until ctx is cancelled or the listener is
// closed. A request in progress always runs to completion.
func (s *Server) Serve(ctx context.Context) error {
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			_ = s.Close()
		case <-stop:
		}
	}()

	s.logger.Info().Str("socket", s.path).Msg("Listening for requests")
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if ctx.Err() != nil || stderrors.Is(err, net.ErrClosed) {
				return nil
			}
			s.logger.Error().Err(err).Msg("Failed to accept connection")
			continue
		}
		s.handle(ctx, conn)
	}
}

// Close stops the listener and removes the socket file
func (s *Server) Close() error {
	s.closeOnce.Do(func() {
		if err := s.listener.Close(); err != nil && !stderrors.Is(err, net.ErrClosed) {
			s.closeErr = err
		}
		if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) && s.closeErr == nil {
			s.closeErr = err
		}
		s.logger.Debug().Str("socket", s.path).Msg("Socket removed")
	})
	return s.closeErr
}

func (s *Server) handle(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	buf := make([]byte, maxRequestSize)
	n, err := conn.Read(buf)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Failed to read request")
		return
	}
	if n == 0 {
		return
	}

	cmd := strings.TrimSpace(string(buf[:n]))
	s.logger.Info().Str("command", cmd).Msg("Received request")

	response := s.dispatch(ctx, cmd)
	if _, err := conn.Write([]byte(response)); err != nil {
		s.logger.Warn().Err(err).Str("command", cmd).Msg("Failed to write response")
	}
}

func (s *Server) dispatch(ctx context.Context, cmd string) string {
	switch cmd {
	case CmdRefresh:
		return s.refresh(ctx)
	case CmdStatus:
		return s.status()
	default:
		s.logger.Warn().Str("command", cmd).Msg("Unknown command")
		return fmt.Sprintf("ERROR: Unknown command: %s\n", cmd)
	}
}

func (s *Server) refresh(ctx context.Context) string {
	if s.settleDelay > 0 {
		s.logger.Debug().Dur("delay", s.settleDelay).Msg("Waiting for devices to settle")
		s.sleep(s.settleDelay)
	}

	// the request is not tied to the daemon lifetime once accepted
	out, err := s.engine.ResolveAndApply(context.WithoutCancel(ctx))
	if err != nil {
		s.logger.Error().Err(err).Msg("Refresh failed")
		return fmt.Sprintf("ERROR: %s\n", err)
	}
	s.logger.Info().
		Str("action", string(out.Action)).
		Str("profile", out.Target).
		Msg("Refresh complete")
	return "OK\n"
}

func (s *Server) status() string {
	name, ok, err := s.engine.Active()
	if err != nil {
		return fmt.Sprintf("ERROR: %s\n", err)
	}
	if !ok {
		name = "none"
	}
	return fmt.Sprintf("OK: %s\n", name)
}
