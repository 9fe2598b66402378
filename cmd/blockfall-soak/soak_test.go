package main

import (
	"bytes"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/game"
)

func TestRunIsDeterministic(t *testing.T) {
	a := run(3000, 7)
	b := run(3000, 7)

	assert.Equal(t, a.Events, b.Events)
	assert.Equal(t, a.Lines, b.Lines)
	assert.Equal(t, a.BestScore, b.BestScore)
	assert.Len(t, a.TickTime.Samples, 3000)
	assert.Positive(t, a.Events[game.EventPieceLocked.String()])
}

func TestPlayerLeavesOverlays(t *testing.T) {
	p := newPlayer(rand.New(rand.NewPCG(1, 1)))

	assert.Equal(t, []game.Intent{game.IntentNewGame}, p.Next(game.Session{State: game.GameOver}))
	assert.Equal(t, []game.Intent{game.IntentMenuActivate}, p.Next(game.Session{State: game.Paused}))
	assert.Equal(t, []game.Intent{game.IntentToggleInfo}, p.Next(game.Session{State: game.ShowingInfo}))
}

func TestReportGenerate(t *testing.T) {
	r := &Report{Ticks: 10, Seed: 2, Events: map[string]int{}}
	r.Observe(game.Event{Kind: game.EventLinesCleared, Lines: 3})
	r.Observe(game.Event{Kind: game.EventLinesCleared, Lines: 1})
	r.Observe(game.Event{Kind: game.EventGameOver})
	r.TickTime.Samples = []time.Duration{3, 1, 2}
	r.TickTime.Finalize()

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "**Lines Cleared:** 4")
	assert.Contains(t, out, "**Games Finished:** 1")
	assert.Contains(t, out, "- GameOver: 1")
	assert.Contains(t, out, "- LinesCleared: 2")
	assert.Contains(t, out, "**Min:** 1ns")
	assert.Contains(t, out, "**Max:** 3ns")
	assert.NotContains(t, out, "GC Pause")
}
