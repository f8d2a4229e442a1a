package network

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"
)

// ErrHubFull is returned when MaxPeers spectators are already connected
var ErrHubFull = errors.New("max peers reached")

// peer is one connected spectator
type peer struct {
	id     uuid.UUID
	conn   *websocket.Conn
	sendCh chan *Frame
}

// send queues a frame, returns false if the queue is full
func (p *peer) send(f *Frame) bool {
	select {
	case p.sendCh <- f:
		return true
	default:
		return false
	}
}

// writeLoop sends queued frames until ctx ends or a write fails
func (p *peer) writeLoop(ctx context.Context, timeout time.Duration) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case f := <-p.sendCh:
			wctx, cancel := context.WithTimeout(ctx, timeout)
			err := wsjson.Write(wctx, p.conn, f)
			cancel()
			if err != nil {
				return err
			}
		}
	}
}

// Hub fans frames out to connected spectators
// Broadcast never blocks: a slow peer loses frames, not the game loop
type Hub struct {
	cfg *Config

	mu     sync.RWMutex
	peers  map[uuid.UUID]*peer
	latest *Frame

	dropped atomic.Int64

	// Callbacks
	onConnect    func(uuid.UUID)
	onDisconnect func(uuid.UUID)
}

func NewHub(cfg *Config) *Hub {
	return &Hub{
		cfg:   cfg,
		peers: make(map[uuid.UUID]*peer),
	}
}

// SetHandlers configures connection callbacks
func (h *Hub) SetHandlers(onConnect, onDisconnect func(uuid.UUID)) {
	h.onConnect = onConnect
	h.onDisconnect = onDisconnect
}

// Serve runs a spectator connection until the peer leaves or ctx ends
// The most recent frame is sent first so late joiners start with full state
func (h *Hub) Serve(ctx context.Context, conn *websocket.Conn) error {
	p, err := h.add(conn)
	if err != nil {
		conn.Close(websocket.StatusTryAgainLater, err.Error())
		return err
	}
	defer h.remove(p.id)

	// Spectators never send; CloseRead cancels ctx when the peer disconnects
	ctx = conn.CloseRead(ctx)

	err = p.writeLoop(ctx, h.cfg.WriteTimeout)
	if errors.Is(err, context.Canceled) {
		conn.Close(websocket.StatusNormalClosure, "")
		return nil
	}
	conn.CloseNow()
	return err
}

func (h *Hub) add(conn *websocket.Conn) (*peer, error) {
	h.mu.Lock()
	if len(h.peers) >= h.cfg.MaxPeers {
		h.mu.Unlock()
		return nil, ErrHubFull
	}

	p := &peer{
		id:     uuid.New(),
		conn:   conn,
		sendCh: make(chan *Frame, h.cfg.SendQueueSize),
	}
	if h.latest != nil {
		p.send(h.latest)
	}
	h.peers[p.id] = p
	h.mu.Unlock()

	if h.onConnect != nil {
		h.onConnect(p.id)
	}
	return p, nil
}

func (h *Hub) remove(id uuid.UUID) {
	h.mu.Lock()
	delete(h.peers, id)
	h.mu.Unlock()

	if h.onDisconnect != nil {
		h.onDisconnect(id)
	}
}

// Broadcast queues f for every peer and keeps it for late joiners
// f must not be modified after the call
func (h *Hub) Broadcast(f *Frame) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.latest = f
	for _, p := range h.peers {
		if !p.send(f) {
			h.dropped.Add(1)
		}
	}
}

// PeerCount returns current connected peer count
func (h *Hub) PeerCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.peers)
}

// Dropped returns the number of frames lost to full peer queues
func (h *Hub) Dropped() int64 {
	return h.dropped.Load()
}
