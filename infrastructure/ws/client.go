package ws

import (
	"context"
	"cooksync/domain"
	"cooksync/domain/event"
	"cooksync/services"
	"fmt"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 30 * time.Second
	maxMessageSize = 8192
)

// Client owns one upgraded connection: a read pump turning frames into
// commands, and a write pump draining the sink onto the wire.
type Client struct {
	log      *slog.Logger
	conn     *websocket.Conn
	identity domain.Identity
	sink     *ConnSink
	service  services.ICollabService
}

func NewClient(log *slog.Logger, conn *websocket.Conn, identity domain.Identity,
	sink *ConnSink, service services.ICollabService) *Client {
	return &Client{log: log, conn: conn, identity: identity, sink: sink, service: service}
}

// ReadPump reads frames until the connection drops, decoding each into a
// typed command for the coordinator. A bad frame costs the client one
// error event, never the connection. Exiting the loop triggers the
// presence sweep.
func (c *Client) ReadPump(ctx context.Context) {
	defer func() {
		c.service.Disconnect(c.identity.UserID)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Warn("Unexpected connection close",
					"user_id", c.identity.UserID,
					"error", err)
			}
			return
		}

		cmd, err := Decode(data, c.identity.UserID)
		if err != nil {
			c.log.Debug(fmt.Sprintf("Rejected frame from %s: %v", c.identity.UserID, err))
			_ = c.sink.Consume(ctx, event.Error{Message: err.Error()})
			continue
		}

		c.service.Dispatch(cmd)
	}
}

// WritePump serializes sink events onto the wire and keeps the
// connection alive with pings. It exits when the sink closes or a write
// fails; closing the connection unblocks the read pump.
func (c *Client) WritePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-c.sink.Events:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.writeEvent(e); err != nil {
				c.log.Debug("Write failed, closing connection",
					"user_id", c.identity.UserID,
					"error", err)
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) writeEvent(e event.Event) error {
	return c.conn.WriteJSON(outbound{Type: e.Type(), Payload: e})
}

type outbound struct {
	Type    string      `json:"type"`
	Payload event.Event `json:"payload"`
}
