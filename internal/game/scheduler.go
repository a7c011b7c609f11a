package game

// advanceDifficulty bumps the multiplier on a fixed tick cadence.
// At 60 ticks per second the default cadence is a bump every ~10 seconds.
func (r *Round) advanceDifficulty() {
	if r.tuning.rampTicks > 0 && r.Tick%r.tuning.rampTicks == 0 {
		r.Difficulty += r.tuning.rampStep
	}
}

// spawnObjects fills the spawn accumulator at a difficulty-scaled rate and
// drains it one effective interval per spawn. Higher difficulty both fills
// the meter faster and shrinks the interval, so the spawn rate scales
// smoothly without fixed-frame modulo logic.
func (r *Round) spawnObjects() {
	r.spawnMeter += 1.0 * r.Difficulty

	effectiveInterval := r.tuning.baseInterval / r.Difficulty
	if effectiveInterval < r.tuning.minInterval {
		// Cap so it never becomes too fast to be playable
		effectiveInterval = r.tuning.minInterval
	}
	if effectiveInterval <= 0 {
		// A zero or negative interval would drain forever. Misconfigured
		// tuning disables spawning instead of hanging the tick.
		r.spawnMeter = 0
		return
	}

	for r.spawnMeter >= effectiveInterval {
		r.spawnMeter -= effectiveInterval
		r.spawnOne()

		// At very high difficulty, sometimes spawn an extra object.
		// Independent draw per drained interval, not per tick.
		if r.Difficulty >= r.tuning.bonusThreshold && r.rng.Float64() < r.tuning.bonusChance {
			r.spawnOne()
		}
	}
}

// spawnOne creates a single object just above the field at a random x.
// The chance of a good object shrinks as difficulty rises, floored so the
// game never becomes pure punishment.
func (r *Round) spawnOne() {
	x := r.rng.Float64() * (r.tuning.fieldW - r.tuning.objW)

	goodChance := r.tuning.goodBase - r.tuning.goodSlope*(r.Difficulty-1.0)
	if goodChance < r.tuning.goodFloor {
		goodChance = r.tuning.goodFloor
	}

	kind := BadItem
	if r.rng.Float64() < goodChance {
		kind = GoodDeal
	}

	r.Objects = append(r.Objects, FallingObject{
		X:    x,
		Y:    -r.tuning.objH,
		Kind: kind,
	})
}
