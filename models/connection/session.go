package connection

import (
	"net"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	maxWriteWsRetries uint8         = 2
	backOffFactor     time.Duration = time.Millisecond * 100
	writeTimeout      time.Duration = time.Second * 2
)

const (
	MessageTypeBytes uint8 = iota
	MessageTypeJSON
)

// Session is one spectator connection. Spectators only listen; anything
// they send is read and dropped.
type Session struct {
	id        string
	conn      *websocket.Conn
	createdAt time.Time
	logger    *zap.Logger
}

func NewSession(id string, conn *websocket.Conn, logger *zap.Logger) *Session {
	return &Session{
		id:        id,
		conn:      conn,
		createdAt: time.Now(),
		logger:    logger.With(zap.String("session", id)),
	}
}

func (s *Session) Id() string {
	return s.id
}

func (s *Session) onConnErr(err error) uint8 {
	if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
		s.logger.Debug("timeout error", zap.Error(err))
		return ConnLoopRetry
	}

	if websocket.IsCloseError(err, websocket.CloseTryAgainLater) {
		s.logger.Debug("high server load/traffic error", zap.Error(err))
		return ConnLoopRetry
	}

	if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
		s.logger.Debug("close error", zap.Error(err))
		return ConnLoopBreak
	}

	s.logger.Warn("unexpected error", zap.Error(err))
	return ConnLoopBreak
}

// Writes to the connection of that session, retrying timeouts
// with a growing back off.
func (s *Session) writeToConnWithRetry(msg interface{}, msgType uint8) error {
	var retries uint8

writeLoop:
	for {
		var err error
		_ = s.conn.SetWriteDeadline(time.Now().Add(writeTimeout))

		switch msgType {
		case MessageTypeJSON:
			err = s.conn.WriteJSON(msg)

		case MessageTypeBytes:
			respBytes, ok := msg.([]byte)
			if !ok {
				return NewConnErr(ConnInvalidMsgType).AddDesc("msg type expected: []byte got invalid")
			}
			err = s.conn.WriteMessage(websocket.TextMessage, respBytes)

		default:
			return NewConnErr(ConnInvalidMsgType).AddDesc("invalid message type to write with retry")
		}

		if err == nil {
			return nil
		}

		switch s.onConnErr(err) {
		case ConnLoopRetry:
			if retries < maxWriteWsRetries {
				retries++
				s.logger.Debug("writing to ws failed; retrying...", zap.Uint8("retry", retries))
				time.Sleep(time.Duration(retries) * backOffFactor)
				continue writeLoop
			}
			return NewConnErr(ConnLoopBreak).AddDesc("max retries reached: " + err.Error())

		default:
			return NewConnErr(ConnLoopBreak).AddDesc("breaking writeLoop due to: " + err.Error())
		}
	}
}

// DrainReads reads and drops incoming frames until the connection fails.
// It lets gorilla answer pings and notice a close from the spectator.
func (s *Session) DrainReads() {
	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Debug("spectator read failed", zap.Error(err))
			}
			return
		}
	}
}
