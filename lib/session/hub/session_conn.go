package sessionhub

import (
	"context"
	"time"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"

	sessionapimodels "interview-trainer-backend/models/api/session"
)

type sessionConn struct {
	conn *websocket.Conn

	// Outbound commands, buffered; serialized as JSON per command.
	sendCh chan sessionapimodels.ServerCommand
	stop   func()
}

func newSessionConn(conn *websocket.Conn) sessionConn {
	ctx, cancelFn := context.WithCancel(context.TODO())
	sess := sessionConn{
		stop:   cancelFn,
		conn:   conn,
		sendCh: make(chan sessionapimodels.ServerCommand, 16),
	}
	go sess.startSend(ctx)
	return sess
}

func (s sessionConn) startSend(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			s.close()
			return
		case cmd, opened := <-s.sendCh:
			if !opened {
				return
			}
			if err := s.send(cmd); err != nil {
				log.WithError(err).Error("failed to send session command")
			}
		}
	}
}

func (s sessionConn) send(cmd sessionapimodels.ServerCommand) error {
	if s.conn.Conn == nil {
		return nil
	}
	return s.conn.WriteJSON(cmd)
}

func (s sessionConn) close() {
	if s.conn == nil || s.conn.Conn == nil {
		return
	}
	err := s.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Millisecond))
	if err != nil {
		log.WithError(err).Debug("failed to close session socket")
	}
}
