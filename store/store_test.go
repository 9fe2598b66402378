package store_test

import (
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/store"
)

func newEngine(seed uint64) *game.Engine {
	return game.New(game.DefaultConfig(), rand.New(rand.NewPCG(seed, seed)))
}

func TestFileRoundTrip(t *testing.T) {
	f := store.NewFile(filepath.Join(t.TempDir(), "save.dat"))

	src := newEngine(1)
	src.Apply(game.IntentToggleMusic, game.IntentShiftLeft, game.IntentShiftLeftRelease, game.IntentHardDrop)
	for range 200 {
		src.Tick()
	}
	require.NoError(t, f.Save(src.Snapshot()))

	snap, err := f.Load()
	require.NoError(t, err)
	assert.Equal(t, src.Snapshot(), snap)

	dst := newEngine(2)
	require.NoError(t, store.Resume(dst, f))
	assert.Equal(t, src.Grid(), dst.Grid())
	assert.Equal(t, src.Active(), dst.Active())
	assert.Equal(t, game.Paused, dst.Session().State)
	assert.False(t, dst.Settings().Music)
}

func TestLoadMissing(t *testing.T) {
	f := store.NewFile(filepath.Join(t.TempDir(), "missing.dat"))

	_, err := f.Load()
	assert.ErrorIs(t, err, store.ErrNoSnapshot)

	err = store.Resume(newEngine(1), f)
	assert.ErrorIs(t, err, store.ErrNoSnapshot)
}

func TestLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.dat")
	require.NoError(t, os.WriteFile(path, []byte{0xc1, 0x00, 0xff}, 0o644))

	_, err := store.NewFile(path).Load()

	require.Error(t, err)
	assert.False(t, errors.Is(err, store.ErrNoSnapshot))
}

func TestResumeInvalid(t *testing.T) {
	f := store.NewFile(filepath.Join(t.TempDir(), "save.dat"))
	snap := newEngine(1).Snapshot()
	snap.Grid = snap.Grid[:1]
	require.NoError(t, f.Save(snap))

	eng := newEngine(3)
	err := store.Resume(eng, f)

	assert.ErrorIs(t, err, game.ErrInvalidSnapshot)
	assert.Equal(t, game.Playing, eng.Session().State)
}

func TestAutosave(t *testing.T) {
	f := store.NewFile(filepath.Join(t.TempDir(), "save.dat"))
	eng := newEngine(1)
	var logged []string
	store.Autosave(eng, f, func(format string, args ...any) {
		logged = append(logged, format)
	})

	eng.Tick()
	_, err := f.Load()
	assert.ErrorIs(t, err, store.ErrNoSnapshot, "no save while playing")

	eng.Apply(game.IntentTogglePause)
	eng.Tick()
	snap, err := f.Load()
	require.NoError(t, err)
	assert.Equal(t, eng.Snapshot(), snap)

	require.NoError(t, os.Remove(f.Path()))
	eng.Apply(game.IntentQuit)
	eng.Tick()
	_, err = f.Load()
	assert.NoError(t, err)
	assert.Empty(t, logged)
}

func TestAutosaveReportsErrors(t *testing.T) {
	f := store.NewFile(filepath.Join(t.TempDir(), "missing-dir", "save.dat"))
	eng := newEngine(1)
	var logged int
	store.Autosave(eng, f, func(string, ...any) { logged++ })

	eng.Apply(game.IntentQuit)
	eng.Tick()

	assert.Equal(t, 1, logged)
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, ".blockfall.dat", filepath.Base(store.DefaultPath()))
}
