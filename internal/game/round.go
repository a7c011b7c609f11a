package game

import (
	"math/rand"

	"github.com/akovalev/fridayfall/internal/config"
	"github.com/akovalev/fridayfall/internal/core"
	"github.com/akovalev/fridayfall/internal/leaderboard"
)

// FinalScore archives an eliminated player's result, in elimination order.
type FinalScore struct {
	Slot  int `json:"slot"`
	Score int `json:"score"`
}

// roundTuning is the subset of config a round actually consumes, flattened
// so the hot path doesn't chase nested structs.
type roundTuning struct {
	fieldW, fieldH   float64
	playerW, playerH float64
	playerSpeed      float64
	health           int
	bottomMargin     float64
	objW, objH       float64
	objSpeed         float64
	rampTicks        int
	rampStep         float64
	baseInterval     float64
	minInterval      float64
	bonusThreshold   float64
	bonusChance      float64
	goodBase         float64
	goodSlope        float64
	goodFloor        float64
	goodPoints       int
}

func tuningFrom(cfg config.GameConfig) roundTuning {
	return roundTuning{
		fieldW:         cfg.Field.Width,
		fieldH:         cfg.Field.Height,
		playerW:        cfg.Player.Width,
		playerH:        cfg.Player.Height,
		playerSpeed:    cfg.Player.Speed,
		health:         cfg.Player.Health,
		bottomMargin:   cfg.Player.BottomMargin,
		objW:           cfg.Objects.Width,
		objH:           cfg.Objects.Height,
		objSpeed:       cfg.Objects.Speed,
		rampTicks:      cfg.Difficulty.RampTicks,
		rampStep:       cfg.Difficulty.RampStep,
		baseInterval:   cfg.Difficulty.BaseSpawnInterval,
		minInterval:    cfg.Difficulty.MinSpawnInterval,
		bonusThreshold: cfg.Difficulty.BonusThreshold,
		bonusChance:    cfg.Difficulty.BonusChance,
		goodBase:       cfg.Difficulty.GoodChanceBase,
		goodSlope:      cfg.Difficulty.GoodChanceSlope,
		goodFloor:      cfg.Difficulty.GoodChanceFloor,
		goodPoints:     cfg.Scoring.GoodPoints,
	}
}

// Round owns the live state of one play session: the shrinking player
// roster, the falling objects, and the difficulty scheduler state. Exactly
// one Round exists while the phase machine is in Playing.
type Round struct {
	tuning roundTuning
	rng    *rand.Rand
	mode   leaderboard.Mode

	Players []*PlayerSlot
	Objects []FallingObject

	Tick        int
	Difficulty  float64 // Starts at 1.0, never decreases within a round
	spawnMeter  float64 // Fractional spawn accumulator
	FinalScores []FinalScore
}

// NewRound starts a fresh round in the given mode with playerCount slots
// evenly spaced across the field.
func NewRound(mode leaderboard.Mode, cfg config.GameConfig, rng *rand.Rand) *Round {
	tuning := tuningFrom(cfg)
	count := mode.PlayerCount()

	players := make([]*PlayerSlot, 0, count)
	for i := 0; i < count; i++ {
		players = append(players, newPlayerSlot(i, count, tuning))
	}

	return &Round{
		tuning:     tuning,
		rng:        rng,
		mode:       mode,
		Players:    players,
		Difficulty: 1.0,
	}
}

// Mode returns the player mode this round was started in.
func (r *Round) Mode() leaderboard.Mode {
	return r.mode
}

// MovePlayer shifts the living player with the given slot index by dir
// (-1 left, +1 right) at the configured speed, clamped to the field.
// Unknown or eliminated slots are ignored.
func (r *Round) MovePlayer(slot int, dir float64) {
	p := r.playerBySlot(slot)
	if p == nil {
		return
	}
	p.X = core.ClampF(p.X+dir*r.tuning.playerSpeed, 0, r.tuning.fieldW-r.tuning.playerW)
}

// playerBySlot finds a living player by its stable slot index.
func (r *Round) playerBySlot(slot int) *PlayerSlot {
	for _, p := range r.Players {
		if p.Slot == slot && p.Alive() {
			return p
		}
	}
	return nil
}

// Advance runs one full simulation tick after input has been applied:
// difficulty ramp, spawns, object fall, then collision resolution.
// Returns true when the roster is empty and the round is over.
func (r *Round) Advance() bool {
	r.Tick++

	r.advanceDifficulty()
	r.spawnObjects()

	// All objects fall before collisions resolve
	speed := r.tuning.objSpeed * r.Difficulty
	for i := range r.Objects {
		r.Objects[i].Y += speed
	}

	return r.resolveCollisions()
}
