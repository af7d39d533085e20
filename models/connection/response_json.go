package connection

import (
	mb "github.com/saeidalz13/battleship-sim/models/battleship"
)

type RespGameStart struct {
	GridSize     int    `json:"grid_size"`
	CommitmentA  string `json:"commitment_a"`
	CommitmentB  string `json:"commitment_b"`
	ActivePlayer string `json:"active_player"`
}

type RespShot struct {
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Side      string `json:"side"`
	Outcome   string `json:"outcome"`
	SunkCount int    `json:"sunk_count"`
	IsTurn    bool   `json:"is_turn"`
}

type RespShotRejected struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Side string `json:"side"`
}

type RespEndGame struct {
	Winner string `json:"winner"`
	Moves  int    `json:"moves"`

	// Salts of the start commitments and the revealed fleets, so anyone
	// holding the commitments can check the fleets did not move.
	SaltA  string  `json:"salt_a"`
	SaltB  string  `json:"salt_b"`
	FleetA []uint8 `json:"fleet_a"`
	FleetB []uint8 `json:"fleet_b"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}

func NewRespShot(ev mb.ShotEvent) RespShot {
	return RespShot{
		X:         ev.Target.X,
		Y:         ev.Target.Y,
		Side:      ev.Shooter.String(),
		Outcome:   ev.Outcome.String(),
		SunkCount: ev.SunkCount,
		IsTurn:    ev.KeepsTurn,
	}
}
