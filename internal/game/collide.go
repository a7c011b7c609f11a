package game

// resolveCollisions applies one tick of contact resolution, in a fixed
// order: consume objects touching living players, filter out consumed
// objects, cull off-screen objects, then archive and remove eliminated
// players. Returns true when the roster is empty.
func (r *Round) resolveCollisions() bool {
	if len(r.Players) == 0 {
		return false
	}

	consumed := make([]bool, len(r.Objects))

	for i, obj := range r.Objects {
		objRect := obj.Rect(r.tuning.objW, r.tuning.objH)

		// Players are tested in slot order; the first living match consumes
		// the object, so one object affects at most one player per tick.
		for _, p := range r.Players {
			if !p.Alive() {
				continue
			}
			if !objRect.Overlaps(p.Rect(r.tuning.playerW, r.tuning.playerH)) {
				continue
			}

			switch obj.Kind {
			case GoodDeal:
				p.Score += r.tuning.goodPoints
			case BadItem:
				p.Health--
				if p.Health < 0 {
					p.Health = 0
				}
			}
			consumed[i] = true
			break
		}
	}

	// Filter pass keeps every unconsumed object; no in-place index deletion
	// during iteration, so nothing is skipped or double-processed.
	kept := r.Objects[:0]
	for i, obj := range r.Objects {
		if !consumed[i] && obj.Y < r.tuning.fieldH {
			kept = append(kept, obj)
		}
	}
	r.Objects = kept

	// Archive final scores in elimination order, then compact the roster.
	livePlayers := r.Players[:0]
	for _, p := range r.Players {
		if p.Alive() {
			livePlayers = append(livePlayers, p)
			continue
		}
		r.FinalScores = append(r.FinalScores, FinalScore{Slot: p.Slot, Score: p.Score})
	}
	r.Players = livePlayers

	return len(r.Players) == 0
}
