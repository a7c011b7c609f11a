package game

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/akovalev/fridayfall/internal/config"
	"github.com/akovalev/fridayfall/internal/leaderboard"
)

func TestDifficultyRampCadence(t *testing.T) {
	r := newTestRound(t, leaderboard.ModeSingle, 1)

	if r.Difficulty != 1.0 {
		t.Fatalf("initial difficulty = %v, want 1.0", r.Difficulty)
	}

	last := r.Difficulty
	for i := 0; i < 1800; i++ {
		r.Advance()
		if r.Difficulty < last {
			t.Fatalf("difficulty decreased at tick %d: %v -> %v", r.Tick, last, r.Difficulty)
		}
		last = r.Difficulty

		switch r.Tick {
		case 599:
			if math.Abs(r.Difficulty-1.0) > 1e-9 {
				t.Errorf("tick 599: difficulty = %v, want 1.0", r.Difficulty)
			}
		case 600:
			if math.Abs(r.Difficulty-1.2) > 1e-9 {
				t.Errorf("tick 600: difficulty = %v, want 1.2", r.Difficulty)
			}
		case 1200:
			if math.Abs(r.Difficulty-1.4) > 1e-9 {
				t.Errorf("tick 1200: difficulty = %v, want 1.4", r.Difficulty)
			}
		}
	}
}

func TestDifficultyResetsPerRound(t *testing.T) {
	r := newTestRound(t, leaderboard.ModeSingle, 1)
	for i := 0; i < 700; i++ {
		r.Advance()
	}
	if r.Difficulty <= 1.0 {
		t.Fatalf("difficulty = %v, expected a ramp by tick 700", r.Difficulty)
	}

	fresh := newTestRound(t, leaderboard.ModeSingle, 2)
	if fresh.Difficulty != 1.0 {
		t.Errorf("new round difficulty = %v, want 1.0", fresh.Difficulty)
	}
	if fresh.Tick != 0 || fresh.spawnMeter != 0 {
		t.Errorf("new round tick/meter = %d/%v, want 0/0", fresh.Tick, fresh.spawnMeter)
	}
}

func TestSpawnRateScalesWithDifficulty(t *testing.T) {
	slow := newTestRound(t, leaderboard.ModeSingle, 3)
	fast := newTestRound(t, leaderboard.ModeSingle, 3)
	fast.Difficulty = 3.0

	slowCount, fastCount := 0, 0
	for i := 0; i < 900; i++ {
		before := len(slow.Objects)
		slow.spawnObjects()
		slowCount += len(slow.Objects) - before

		before = len(fast.Objects)
		fast.spawnObjects()
		fastCount += len(fast.Objects) - before
	}

	if fastCount <= slowCount {
		t.Errorf("spawns at x3.0 (%d) not above x1.0 (%d)", fastCount, slowCount)
	}
}

func TestSpawnIntervalFloor(t *testing.T) {
	r := newTestRound(t, leaderboard.ModeSingle, 4)
	// Interval would be 45/20 = 2.25 without the floor of 10
	r.Difficulty = 20.0

	spawned := 0
	const ticks = 100
	for i := 0; i < ticks; i++ {
		before := len(r.Objects)
		r.spawnObjects()
		spawned += len(r.Objects) - before
	}

	// Meter fills 20/tick against a floored interval of 10, so two base
	// spawns per tick plus at most one bonus per drained interval.
	if spawned < 2*ticks {
		t.Errorf("spawned %d in %d ticks, want at least %d", spawned, ticks, 2*ticks)
	}
	if spawned > 4*ticks {
		t.Errorf("spawned %d in %d ticks, floor not applied (max %d)", spawned, ticks, 4*ticks)
	}
}

func TestGoodChanceFloorAtHighDifficulty(t *testing.T) {
	r := newTestRound(t, leaderboard.ModeSingle, 5)
	// Unfloored chance would be 0.6 - 0.15*9 < 0; the floor keeps it at 0.25
	r.Difficulty = 10.0

	const draws = 2000
	good := 0
	for i := 0; i < draws; i++ {
		r.Objects = r.Objects[:0]
		r.spawnOne()
		if r.Objects[0].Kind == GoodDeal {
			good++
		}
	}

	frac := float64(good) / draws
	if frac < 0.18 || frac > 0.32 {
		t.Errorf("good fraction = %.3f, want about 0.25", frac)
	}
}

func TestZeroTuningDoesNotHangSpawning(t *testing.T) {
	// A partial config YAML can leave every tuning field zero. The spawn
	// drain must bail out instead of looping forever on a zero interval.
	r := NewRound(leaderboard.ModeSingle, config.GameConfig{}, rand.New(rand.NewSource(1)))

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			r.Advance()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Advance hung on zero spawn interval")
	}

	if len(r.Objects) != 0 {
		t.Errorf("zero tuning spawned %d objects, want 0", len(r.Objects))
	}
	if r.spawnMeter != 0 {
		t.Errorf("spawn meter = %v, want 0 after bail-out", r.spawnMeter)
	}
}

func TestSpawnPositionsInsideField(t *testing.T) {
	r := newTestRound(t, leaderboard.ModeSingle, 6)
	for i := 0; i < 500; i++ {
		r.spawnOne()
	}
	for _, o := range r.Objects {
		if o.X < 0 || o.X > r.tuning.fieldW-r.tuning.objW {
			t.Fatalf("spawn X = %v outside [0, %v]", o.X, r.tuning.fieldW-r.tuning.objW)
		}
		if o.Y != -r.tuning.objH {
			t.Fatalf("spawn Y = %v, want %v", o.Y, -r.tuning.objH)
		}
	}
}

func TestRoundDeterministicForSeed(t *testing.T) {
	a := newTestRound(t, leaderboard.ModeSingle, 42)
	b := newTestRound(t, leaderboard.ModeSingle, 42)

	for i := 0; i < 300; i++ {
		a.Advance()
		b.Advance()
	}

	if len(a.Objects) != len(b.Objects) {
		t.Fatalf("object counts diverged: %d vs %d", len(a.Objects), len(b.Objects))
	}
	for i := range a.Objects {
		if a.Objects[i] != b.Objects[i] {
			t.Fatalf("object %d diverged: %+v vs %+v", i, a.Objects[i], b.Objects[i])
		}
	}

	if len(a.Players) != len(b.Players) {
		t.Fatalf("rosters diverged: %d vs %d", len(a.Players), len(b.Players))
	}
	for i := range a.Players {
		if *a.Players[i] != *b.Players[i] {
			t.Fatalf("player %d diverged: %+v vs %+v", i, a.Players[i], b.Players[i])
		}
	}
	if len(a.FinalScores) != len(b.FinalScores) {
		t.Fatalf("finals diverged: %d vs %d", len(a.FinalScores), len(b.FinalScores))
	}
}
