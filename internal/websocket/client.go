package websocket

import (
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
)

const writeWait = 10 * time.Second

// ISender is the outbound half of a connection. The handler only ever
// writes through it, which keeps the protocol logic testable without a
// socket.
type ISender interface {
	Send(v interface{}) error
	SendStatus(state string)
	SendError(code, message string, recoverable bool)
}

// Client wraps one interview connection. The pipeline fans events in from
// worker goroutines, so every write goes through the mutex.
type Client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func newClient(conn *websocket.Conn) *Client {
	return &Client{conn: conn}
}

func (c *Client) Send(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(v)
}

func (c *Client) SendStatus(state string) {
	c.Send(statusMessage{Type: MsgStatus, State: state})
}

func (c *Client) SendError(code, message string, recoverable bool) {
	c.Send(errorMessage{Type: MsgError, Code: code, Message: message, Recoverable: recoverable})
}
