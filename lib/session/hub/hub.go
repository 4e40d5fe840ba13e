package sessionhub

import (
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/pkg/errors"

	sessionapimodels "interview-trainer-backend/models/api/session"
)

type Provider interface {
	AddConn(sessionID string, conn *websocket.Conn)
	DeleteConn(sessionID string)
	SendCommand(sessionID string, cmd sessionapimodels.ServerCommand) error
	IsConnected(sessionID string) bool
}

var Instance Provider

func Init() {
	Instance = &impl{
		conns: map[string]sessionConn{},
	}
}

type impl struct {
	mu    sync.Mutex
	conns map[string]sessionConn //map[sessionID]
}

func (i *impl) AddConn(sessionID string, conn *websocket.Conn) {
	i.mu.Lock()
	defer i.mu.Unlock()
	oldSess, ok := i.conns[sessionID]
	if ok {
		oldSess.stop()
	}
	i.conns[sessionID] = newSessionConn(conn)
}

func (i *impl) DeleteConn(sessionID string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.conns[sessionID]
	if !ok {
		return
	}
	delete(i.conns, sessionID)
	sess.stop()
	close(sess.sendCh)
}

func (i *impl) SendCommand(sessionID string, cmd sessionapimodels.ServerCommand) error {
	i.mu.Lock()
	sess, ok := i.conns[sessionID]
	i.mu.Unlock()
	if !ok {
		return errors.New("session is not connected")
	}
	select {
	case sess.sendCh <- cmd:
		return nil
	default:
		return errors.New("session send buffer is full")
	}
}

func (i *impl) IsConnected(sessionID string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.conns[sessionID]
	if !ok || sess.conn == nil || sess.conn.Conn == nil {
		return false
	}
	return true
}

// Sender binds a session id to the hub as a command sink.
type Sender struct {
	SessionID string
}

func (s Sender) Send(cmd sessionapimodels.ServerCommand) error {
	return Instance.SendCommand(s.SessionID, cmd)
}
