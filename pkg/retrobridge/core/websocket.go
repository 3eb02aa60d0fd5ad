package core

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 2 * time.Second

// WebSocketSink forwards commands to a remote core as one-byte binary
// frames.
type WebSocketSink struct {
	*asyncSink
	conn *websocket.Conn

	closeOnce sync.Once
}

// DialWebSocket connects to a core listening at url.
func DialWebSocket(ctx context.Context, url string, queueSize int) (*WebSocketSink, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to core at %s: %w", url, err)
	}
	return NewWebSocketSink(conn, queueSize), nil
}

func NewWebSocketSink(conn *websocket.Conn, queueSize int) *WebSocketSink {
	ws := &WebSocketSink{conn: conn}
	ws.asyncSink = newAsyncSink("websocket", queueSize, ws.writeCode)
	return ws
}

func (ws *WebSocketSink) writeCode(code int) error {
	if err := ws.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return ws.conn.WriteMessage(websocket.BinaryMessage, []byte{byte(code)})
}

// Close flushes queued commands, says goodbye to the core and closes the
// connection.
func (ws *WebSocketSink) Close() error {
	if err := ws.shutdown(); err != nil {
		return err
	}

	var err error
	ws.closeOnce.Do(func() {
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		_ = ws.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
		err = ws.conn.Close()
	})
	return err
}
