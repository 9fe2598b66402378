package sim

// UpdateFrame is handed to every system during one tick.
type UpdateFrame struct {
	Tick     uint64
	Commands *Commands
	Storage  *Storage
}

func newUpdateFrame(tick uint64, commands *Commands, storage *Storage) *UpdateFrame {
	return &UpdateFrame{
		Tick:     tick,
		Commands: commands,
		Storage:  storage,
	}
}
