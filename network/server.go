package network

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// Server accepts spectator websocket connections
type Server struct {
	cfg    *Config
	hub    *Hub
	logger *log.Logger
}

func NewServer(cfg *Config, hub *Hub, logger *log.Logger) *Server {
	s := &Server{cfg: cfg, hub: hub, logger: logger}
	hub.SetHandlers(
		func(id uuid.UUID) { logger.Info("spectator joined", "peer", id, "peers", hub.PeerCount()) },
		func(id uuid.UUID) { logger.Info("spectator left", "peer", id) },
	)
	return s
}

// ServeHTTP upgrades the request and streams frames until the spectator leaves
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: s.cfg.AllowAnyOrigin,
	})
	if err != nil {
		s.logger.Warn("spectator accept failed", "remote", r.RemoteAddr, "err", err)
		return
	}

	if err := s.hub.Serve(r.Context(), conn); err != nil {
		s.logger.Debug("spectator closed", "remote", r.RemoteAddr, "err", err)
	}
}

// ListenAndServe runs the feed until ctx is canceled
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:        s.cfg.Addr,
		Handler:     s,
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		srv.Shutdown(sctx)
	}()

	s.logger.Info("spectator feed listening", "addr", s.cfg.Addr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
