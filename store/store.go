// Package store persists engine snapshots as msgpack files.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/plus3/blockfall/game"
)

// ErrNoSnapshot is returned by Load when nothing has been saved yet.
var ErrNoSnapshot = errors.New("store: no snapshot")

const defaultName = ".blockfall.dat"

// File is a snapshot file on disk.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

// DefaultPath returns the snapshot location in the user's home directory, or
// in the working directory if the home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultName
	}
	return filepath.Join(home, defaultName)
}

func (f *File) Path() string {
	return f.path
}

// Load reads and decodes the snapshot.
func (f *File) Load() (game.Snapshot, error) {
	var snap game.Snapshot

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return snap, ErrNoSnapshot
	}
	if err != nil {
		return snap, fmt.Errorf("store: read %s: %w", f.path, err)
	}

	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return game.Snapshot{}, fmt.Errorf("store: decode %s: %w", f.path, err)
	}
	return snap, nil
}

// Save encodes snap and replaces the file atomically.
func (f *File) Save(snap game.Snapshot) error {
	data, err := msgpack.Marshal(&snap)
	if err != nil {
		return fmt.Errorf("store: encode: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*")
	if err != nil {
		return fmt.Errorf("store: create temp: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("store: write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("store: close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("store: replace %s: %w", f.path, err)
	}
	return nil
}

// Resume loads the snapshot into eng. It returns ErrNoSnapshot when there is
// nothing to resume; any other error leaves eng on a fresh game.
func Resume(eng *game.Engine, f *File) error {
	snap, err := f.Load()
	if err != nil {
		return err
	}
	return eng.Restore(snap)
}

// Autosave saves eng whenever the game is paused and when quit is requested.
// Failures are reported through logf.
func Autosave(eng *game.Engine, f *File, logf func(format string, args ...any)) {
	save := func() {
		if err := f.Save(eng.Snapshot()); err != nil {
			logf("autosave: %v", err)
		}
	}

	eng.Subscribe(game.EventPauseToggled, func(ev game.Event) {
		if ev.Enabled {
			save()
		}
	})
	eng.Subscribe(game.EventQuit, func(game.Event) {
		save()
	})
}
