package main

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/game"
)

// weighted is one entry of the random player's intent table.
type weighted struct {
	intents []game.Intent
	weight  int
}

// player picks a random action every few ticks. It restarts finished games
// and leaves the pause menu, so a run spends most ticks in play.
type player struct {
	rng     *rand.Rand
	table   []weighted
	total   int
	holding []game.Intent
}

func newPlayer(rng *rand.Rand) *player {
	p := &player{
		rng: rng,
		table: []weighted{
			{nil, 40},
			{[]game.Intent{game.IntentShiftLeft, game.IntentShiftLeftRelease}, 12},
			{[]game.Intent{game.IntentShiftRight, game.IntentShiftRightRelease}, 12},
			{[]game.Intent{game.IntentRotate, game.IntentRotateRelease}, 10},
			{[]game.Intent{game.IntentShiftLeft}, 3},
			{[]game.Intent{game.IntentSoftDropStart}, 4},
			{[]game.Intent{game.IntentHardDrop}, 4},
			{[]game.Intent{game.IntentTogglePause}, 1},
			{[]game.Intent{game.IntentToggleInfo}, 1},
			{[]game.Intent{game.IntentToggleSound}, 1},
		},
	}
	for _, w := range p.table {
		p.total += w.weight
	}
	return p
}

// Next returns the intents to apply before the coming tick.
func (p *player) Next(session game.Session) []game.Intent {
	switch session.State {
	case game.GameOver:
		return []game.Intent{game.IntentNewGame}
	case game.Paused:
		return []game.Intent{game.IntentMenuActivate}
	case game.ShowingInfo:
		return []game.Intent{game.IntentToggleInfo}
	}

	if len(p.holding) > 0 && p.rng.IntN(8) == 0 {
		released := p.holding
		p.holding = nil
		return released
	}

	roll := p.rng.IntN(p.total)
	for _, w := range p.table {
		if roll < w.weight {
			p.hold(w.intents)
			return w.intents
		}
		roll -= w.weight
	}
	return nil
}

// hold records the release for presses that are not released right away.
func (p *player) hold(intents []game.Intent) {
	if len(intents) != 1 {
		return
	}
	switch intents[0] {
	case game.IntentShiftLeft:
		p.holding = append(p.holding, game.IntentShiftLeftRelease)
	case game.IntentSoftDropStart:
		p.holding = append(p.holding, game.IntentSoftDropStop)
	}
}
