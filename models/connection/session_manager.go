package connection

import (
	"encoding/base64"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type SessionManager interface {
	GenerateNewSession(conn *websocket.Conn) *Session
	TerminateSession(sessionId string)
	Broadcast(msg interface{}, msgType uint8)
	Count() int
}

type BattleshipSessionManager struct {
	sessions map[string]*Session
	logger   *zap.Logger
	mu       sync.RWMutex
}

var _ SessionManager = (*BattleshipSessionManager)(nil)

func NewBattleshipSessionManager(logger *zap.Logger) *BattleshipSessionManager {
	initMapSize := 10
	if logger == nil {
		logger = zap.NewNop()
	}

	return &BattleshipSessionManager{
		sessions: make(map[string]*Session, initMapSize),
		logger:   logger,
	}
}

// GenerateNewSession registers conn and greets it with a CodeSpectating
// signal. Writes to sessions happen under mu, one writer per connection.
func (bsm *BattleshipSessionManager) GenerateNewSession(conn *websocket.Conn) *Session {
	sessionId := base64.RawURLEncoding.EncodeToString([]byte(uuid.New().String()))
	session := NewSession(sessionId, conn, bsm.logger)

	bsm.mu.Lock()
	defer bsm.mu.Unlock()
	bsm.sessions[sessionId] = session

	if err := session.writeToConnWithRetry(NewSignal(CodeSpectating), MessageTypeJSON); err != nil {
		bsm.logger.Debug("could not greet spectator", zap.String("session", sessionId), zap.Error(err))
	}
	return session
}

func (bsm *BattleshipSessionManager) TerminateSession(sessionId string) {
	bsm.mu.Lock()
	defer bsm.mu.Unlock()
	bsm.terminate(sessionId)
}

// caller holds mu
func (bsm *BattleshipSessionManager) terminate(sessionId string) {
	session, prs := bsm.sessions[sessionId]
	if !prs {
		return
	}
	_ = session.conn.Close()
	delete(bsm.sessions, sessionId)
	bsm.logger.Debug("session terminated",
		zap.String("session", sessionId),
		zap.Duration("connected_for", time.Since(session.createdAt)),
	)
}

// Broadcast writes msg to every session. msgType tells how msg is
// written: MessageTypeBytes for an already encoded []byte, MessageTypeJSON
// for a value encoded per session. Sessions that cannot be written to
// are terminated.
func (bsm *BattleshipSessionManager) Broadcast(msg interface{}, msgType uint8) {
	bsm.mu.Lock()
	defer bsm.mu.Unlock()

	for id, session := range bsm.sessions {
		if err := session.writeToConnWithRetry(msg, msgType); err != nil {
			fields := []zap.Field{zap.String("session", id), zap.Error(err)}
			var connErr ConnErr
			if errors.As(err, &connErr) {
				fields = append(fields, zap.Uint8("conn_code", connErr.Code()))
			}
			bsm.logger.Debug("dropping spectator", fields...)
			bsm.terminate(id)
		}
	}
}

func (bsm *BattleshipSessionManager) Count() int {
	bsm.mu.RLock()
	defer bsm.mu.RUnlock()
	return len(bsm.sessions)
}
