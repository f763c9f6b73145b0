package server

import (
	"bulwark/internal/game"
)

// Message types
const (
	MsgTypeInput    = "input"
	MsgTypeWelcome  = "welcome"
	MsgTypeSnapshot = "snapshot"
	MsgTypeEvent    = "event"
)

// InputMsg is the per-frame input sent by a client. Move and aim are already
// combined from whatever devices the client has; the action flags are one-shot.
type InputMsg struct {
	Type        string  `msgpack:"type"`
	MoveX       float64 `msgpack:"moveX"`
	MoveY       float64 `msgpack:"moveY"`
	AimX        float64 `msgpack:"aimX"`
	AimY        float64 `msgpack:"aimY"`
	Firing      bool    `msgpack:"firing"`
	DropMine    bool    `msgpack:"dropMine"`
	PlaceTurret bool    `msgpack:"placeTurret"`
	TogglePause bool    `msgpack:"togglePause"`
	Restart     bool    `msgpack:"restart"`
	Upgrade     string  `msgpack:"upgrade"`
	Width       float64 `msgpack:"width"`  // Viewport size, zero when unchanged
	Height      float64 `msgpack:"height"` // Viewport size, zero when unchanged
}

// toInput converts the wire message into simulation input
func (msg InputMsg) toInput() game.Input {
	return game.Input{
		Move:          game.Vec2{X: msg.MoveX, Y: msg.MoveY},
		Aim:           game.Vec2{X: msg.AimX, Y: msg.AimY},
		Firing:        msg.Firing,
		DropMine:      msg.DropMine,
		PlaceTurret:   msg.PlaceTurret,
		TogglePause:   msg.TogglePause,
		Restart:       msg.Restart,
		UpgradeChoice: game.UpgradeID(msg.Upgrade),
	}
}

// WelcomeMsg is sent once when a session opens
type WelcomeMsg struct {
	Type      string           `msgpack:"type"`
	Session   string           `msgpack:"session"`
	TickRate  int              `msgpack:"tickRate"`
	BestScore int              `msgpack:"bestScore"`
	Catalog   []game.UpgradeID `msgpack:"catalog"`
}

// SnapshotMsg carries the full simulation state after a tick
type SnapshotMsg struct {
	Type    string        `msgpack:"type"`
	Session string        `msgpack:"session"`
	Tick    int64         `msgpack:"tick"`
	State   game.Snapshot `msgpack:"state"`
}

// EventMsg forwards one simulation event
type EventMsg struct {
	Type    string     `msgpack:"type"`
	Session string     `msgpack:"session"`
	Event   game.Event `msgpack:"event"`
}
