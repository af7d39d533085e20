package api

import (
	"encoding/json"

	"go.uber.org/zap"

	mb "github.com/saeidalz13/battleship-sim/models/battleship"
	mc "github.com/saeidalz13/battleship-sim/models/connection"
)

// Spectator publishes game events to every connected spectator.
type Spectator struct {
	sessionManager mc.SessionManager
	logger         *zap.Logger
}

var _ mb.Observer = (*Spectator)(nil)

func NewSpectator(sessionManager mc.SessionManager, logger *zap.Logger) *Spectator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Spectator{sessionManager: sessionManager, logger: logger}
}

// publish encodes msg once and hands the same bytes to every session.
func (sp *Spectator) publish(msg interface{}) {
	msgBytes, err := json.Marshal(msg)
	if err != nil {
		sp.logger.Error("failed to encode spectator message", zap.Error(err))
		return
	}
	sp.sessionManager.Broadcast(msgBytes, mc.MessageTypeBytes)
}

func (sp *Spectator) OnGameStart(g *mb.Game) {
	msg := mc.NewMessage[mc.RespGameStart](mc.CodeGameStart)
	msg.AddGameUuid(g.Uuid)
	msg.AddPayload(mc.RespGameStart{
		GridSize:     g.GridSize,
		CommitmentA:  g.Commitment(mb.SideA).RootHex(),
		CommitmentB:  g.Commitment(mb.SideB).RootHex(),
		ActivePlayer: g.ActiveSide().String(),
	})
	sp.publish(msg)
}

func (sp *Spectator) OnShot(g *mb.Game, ev mb.ShotEvent) {
	msg := mc.NewMessage[mc.RespShot](mc.CodeShot)
	msg.AddGameUuid(g.Uuid)
	msg.AddPayload(mc.NewRespShot(ev))
	sp.publish(msg)
}

func (sp *Spectator) OnShotRejected(g *mb.Game, shooter mb.Side, target mb.Cell, err error) {
	msg := mc.NewMessage[mc.RespShotRejected](mc.CodeShotRejected)
	msg.AddGameUuid(g.Uuid)
	msg.AddPayload(mc.RespShotRejected{X: target.X, Y: target.Y, Side: shooter.String()})
	msg.AddError(err.Error(), "shot rejected")
	sp.publish(msg)
}

func (sp *Spectator) OnGameOver(g *mb.Game) {
	msg := mc.NewMessage[mc.RespEndGame](mc.CodeEndGame)
	msg.AddGameUuid(g.Uuid)
	msg.AddPayload(mc.RespEndGame{
		Winner: g.Winner().String(),
		Moves:  g.Moves(),
		SaltA:  g.Commitment(mb.SideA).SaltHex(),
		SaltB:  g.Commitment(mb.SideB).SaltHex(),
		FleetA: g.Board(mb.SideA).Flatten(),
		FleetB: g.Board(mb.SideB).Flatten(),
	})
	sp.publish(msg)
}
