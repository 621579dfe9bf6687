// internal/app/system/livepush/livepush.go

// Package livepush owns the websocket side of the live list pages: it
// upgrades the connection, then pushes a freshly rendered snippet every
// time the backing view signals a change. Rendering stays with the
// caller; this package only moves bytes and keeps the socket alive.
package livepush

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	defaultWriteTimeout = 10 * time.Second
	defaultPingInterval = 30 * time.Second
)

// Config carries per-connection timing and logging.
type Config struct {
	// WriteTimeout bounds each snapshot write. Zero means 10s.
	WriteTimeout time.Duration
	// PingInterval is the keepalive ping cadence. Zero means 30s.
	PingInterval time.Duration
	Log          *zap.Logger
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// Live endpoints serve the app's own pages; cross-origin sockets
	// are rejected by the default origin check.
}

// Upgrade switches the request to a websocket connection.
func Upgrade(w http.ResponseWriter, r *http.Request) (*websocket.Conn, error) {
	return upgrader.Upgrade(w, r, nil)
}

// Serve pushes render() output to conn whenever changed fires, until
// the client disconnects or ctx ends. It owns the write side of the
// connection; the read side is drained only to observe closure.
func Serve(ctx context.Context, conn *websocket.Conn, changed <-chan struct{}, render func() []byte, cfg Config) {
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = defaultWriteTimeout
	}
	if cfg.PingInterval <= 0 {
		cfg.PingInterval = defaultPingInterval
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Drain reads so close frames and pongs are processed. Any read
	// error means the client is gone.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(cfg.PingInterval)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-changed:
			if err := write(conn, websocket.TextMessage, render(), cfg.WriteTimeout); err != nil {
				cfg.Log.Debug("live push ended", zap.Error(err))
				return
			}
		case <-ping.C:
			if err := write(conn, websocket.PingMessage, nil, cfg.WriteTimeout); err != nil {
				cfg.Log.Debug("live ping failed", zap.Error(err))
				return
			}
		}
	}
}

func write(conn *websocket.Conn, messageType int, payload []byte, timeout time.Duration) error {
	if err := conn.SetWriteDeadline(time.Now().Add(timeout)); err != nil {
		return err
	}
	return conn.WriteMessage(messageType, payload)
}
