package debugui

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/blockfall/game"
)

func TestFlagIndices(t *testing.T) {
	var flagged [game.Rows]bool
	assert.Equal(t, "none", flagIndices(reflect.ValueOf(flagged)))

	flagged[3], flagged[19] = true, true
	assert.Equal(t, "3 19", flagIndices(reflect.ValueOf(flagged)))
}

func TestMatrixLines(t *testing.T) {
	var g game.Grid
	g.Cells[19][0] = game.Color{R: 1}
	g.Cells[19][9] = game.Color{B: 1}

	lines := matrixLines(reflect.ValueOf(g.Cells))
	assert.Len(t, lines, game.Rows)
	assert.Equal(t, " 0 ..........", lines[0])
	assert.Equal(t, "19 #........#", lines[19])
}

func TestListItems(t *testing.T) {
	queue := []game.Intent{game.IntentRotate, game.IntentHardDrop}
	assert.Equal(t, "["+game.IntentRotate.String()+" "+game.IntentHardDrop.String()+"]", listItems(reflect.ValueOf(queue)))
	assert.Equal(t, "[]", listItems(reflect.ValueOf([]game.Intent{})))
	assert.Equal(t, "[{1 2} {3 4}]", listItems(reflect.ValueOf([2]game.Point{{X: 1, Y: 2}, {X: 3, Y: 4}})))
}
