package game

import "github.com/plus3/blockfall/sim"

// IntentSystem drains the intent queue, applies session and menu commands,
// and turns key presses and held-key repeats into pending actions.
type IntentSystem struct {
	Config   sim.Singleton[Config]
	Controls sim.Singleton[Controls]
	Session  sim.Singleton[Session]
	Settings sim.Singleton[Settings]
	Gravity  sim.Singleton[Gravity]
}

func (s *IntentSystem) Execute(frame *sim.UpdateFrame) {
	c := s.Controls.Get()
	queue := c.Queue
	c.Queue = nil

	for _, intent := range queue {
		s.apply(frame, intent)
	}

	c = s.Controls.Get()
	if !c.held() {
		c.Repeat = 0
		return
	}
	c.Repeat++
	if c.Repeat >= s.Config.Get().RepeatTicks {
		c.Repeat = 0
		c.fireHeld()
	}
}

func (s *IntentSystem) apply(frame *sim.UpdateFrame, intent Intent) {
	c := s.Controls.Get()
	session := s.Session.Get()

	switch intent {
	case IntentShiftLeft:
		c.Left = true
		c.Repeat = 0
		c.DX--
	case IntentShiftLeftRelease:
		c.Left = false
	case IntentShiftRight:
		c.Right = true
		c.Repeat = 0
		c.DX++
	case IntentShiftRightRelease:
		c.Right = false
	case IntentSoftDropStart:
		if session.State == Paused {
			session.Navigate(1)
			return
		}
		c.Down = true
		c.Repeat = 0
		c.Drop = true
	case IntentSoftDropStop:
		c.Down = false
	case IntentRotate:
		if session.State == Paused {
			session.Navigate(-1)
			return
		}
		c.Up = true
		c.Repeat = 0
		c.Turn = true
	case IntentRotateRelease:
		c.Up = false
	case IntentHardDrop:
		if session.State == Playing {
			s.Gravity.Get().Limit = s.Config.Get().HardDropLimit
		}
	case IntentTogglePause:
		s.Gravity.Get().Limit = s.Config.Get().GravityLimit
		frame.Commands.Emit(Event{Kind: EventPauseToggled, Enabled: session.TogglePause()})
	case IntentToggleInfo:
		s.Gravity.Get().Limit = s.Config.Get().GravityLimit
		frame.Commands.Emit(Event{Kind: EventInfoToggled, Enabled: session.ToggleInfo()})
	case IntentToggleMusic:
		settings := s.Settings.Get()
		settings.Music = !settings.Music
		frame.Commands.Emit(Event{Kind: EventMusicToggled, Enabled: settings.Music})
	case IntentToggleSound:
		settings := s.Settings.Get()
		settings.Sound = !settings.Sound
		frame.Commands.Emit(Event{Kind: EventSoundToggled, Enabled: settings.Sound})
	case IntentMenuUp:
		if session.State == Paused {
			session.Navigate(-1)
		}
	case IntentMenuDown:
		if session.State == Paused {
			session.Navigate(1)
		}
	case IntentMenuActivate:
		if session.State == Paused {
			s.activate(frame, session.Menu)
		}
	case IntentNewGame:
		newGame(frame.Storage)
		frame.Commands.Emit(Event{Kind: EventNewGame})
	case IntentQuit:
		session.Quit = true
		frame.Commands.Emit(Event{Kind: EventQuit})
	}
}

func (s *IntentSystem) activate(frame *sim.UpdateFrame, item MenuItem) {
	switch item {
	case MenuResume:
		s.apply(frame, IntentTogglePause)
	case MenuNewGame:
		s.apply(frame, IntentNewGame)
	case MenuMusic:
		s.apply(frame, IntentToggleMusic)
	case MenuSound:
		s.apply(frame, IntentToggleSound)
	case MenuExit:
		s.apply(frame, IntentQuit)
	}
}

func playable(session *Session, cs *Clear) bool {
	return session.State == Playing && cs.Phase == ClearIdle
}

// ShiftSystem applies the pending horizontal movement one column at a time.
type ShiftSystem struct {
	Controls sim.Singleton[Controls]
	Session  sim.Singleton[Session]
	Clear    sim.Singleton[Clear]
	Grid     sim.Singleton[Grid]
	Pieces   sim.Singleton[Pieces]
}

func (s *ShiftSystem) Execute(frame *sim.UpdateFrame) {
	c := s.Controls.Get()
	dx := c.DX
	c.DX = 0
	if dx == 0 || !playable(s.Session.Get(), s.Clear.Get()) {
		return
	}

	step := 1
	if dx < 0 {
		step, dx = -1, -dx
	}

	pieces := s.Pieces.Get()
	moved := false
	for range dx {
		next, ok := TryShift(s.Grid.Get(), pieces.Active, step)
		if !ok {
			break
		}
		pieces.Active = next
		moved = true
	}
	if moved {
		frame.Commands.Emit(Event{Kind: EventPieceMoved})
	}
}

// RotateSystem applies a pending rotation through the resolver.
type RotateSystem struct {
	Controls sim.Singleton[Controls]
	Session  sim.Singleton[Session]
	Clear    sim.Singleton[Clear]
	Grid     sim.Singleton[Grid]
	Pieces   sim.Singleton[Pieces]
}

func (s *RotateSystem) Execute(frame *sim.UpdateFrame) {
	c := s.Controls.Get()
	turn := c.Turn
	c.Turn = false
	if !turn || !playable(s.Session.Get(), s.Clear.Get()) {
		return
	}

	pieces := s.Pieces.Get()
	if !pieces.Active.Rotatable() {
		return
	}
	if rotated, ok := Rotate(s.Grid.Get(), pieces.Active); ok {
		pieces.Active = rotated
		frame.Commands.Emit(Event{Kind: EventPieceRotated})
	}
}

// GravitySystem advances the fall accumulator, steps the piece down and locks
// it when it cannot fall further.
type GravitySystem struct {
	Config     sim.Singleton[Config]
	Controls   sim.Singleton[Controls]
	Session    sim.Singleton[Session]
	Clear      sim.Singleton[Clear]
	Grid       sim.Singleton[Grid]
	Pieces     sim.Singleton[Pieces]
	Gravity    sim.Singleton[Gravity]
	Scoreboard sim.Singleton[Scoreboard]
	Dealer     sim.Singleton[Dealer]
}

func (s *GravitySystem) Execute(frame *sim.UpdateFrame) {
	c := s.Controls.Get()
	drop := c.Drop
	c.Drop = false

	session := s.Session.Get()
	if !playable(session, s.Clear.Get()) {
		return
	}

	gravity := s.Gravity.Get()
	gravity.Accumulator += s.Scoreboard.Get().GravitySpeed
	if gravity.Accumulator < float64(gravity.Limit) && !drop {
		return
	}
	gravity.Accumulator = 0

	grid := s.Grid.Get()
	pieces := s.Pieces.Get()
	if next, ok := Fall(grid, pieces.Active); ok {
		pieces.Active = next
		if drop {
			frame.Commands.Emit(Event{Kind: EventPieceMoved})
		}
		return
	}

	if err := grid.Lock(pieces.Active.Cells, pieces.Active.Color); err != nil {
		panic(err)
	}
	frame.Commands.Emit(Event{Kind: EventPieceLocked})

	pieces.Active = pieces.Next
	pieces.Next = s.Dealer.Get().Deal()
	gravity.Limit = s.Config.Get().GravityLimit

	if grid.Collides(pieces.Active.Cells) {
		session.State = GameOver
		frame.Commands.Emit(Event{Kind: EventGameOver})
	}
}

// LineClearSystem flags full rows, runs the clear animation and compacts the
// grid when it finishes.
type LineClearSystem struct {
	Config     sim.Singleton[Config]
	Session    sim.Singleton[Session]
	Clear      sim.Singleton[Clear]
	Grid       sim.Singleton[Grid]
	Scoreboard sim.Singleton[Scoreboard]
}

func (s *LineClearSystem) Execute(frame *sim.UpdateFrame) {
	cfg := s.Config.Get()
	cs := s.Clear.Get()
	grid := s.Grid.Get()

	switch cs.Phase {
	case ClearIdle:
		if s.Session.Get().State != Playing {
			return
		}
		found := false
		for y := range Rows {
			if grid.Full(y) {
				cs.Flagged[y] = true
				grid.FillRow(y, cfg.Highlight)
				found = true
			}
		}
		if found {
			cs.Phase = ClearAnimating
			cs.Ticks = 0
		}

	case ClearAnimating:
		cs.Ticks++
		if cs.Ticks >= cfg.ClearTicks {
			cs.Phase = ClearCompacting
		}

	case ClearCompacting:
		lines := grid.Compact(cs.Flagged)
		*cs = Clear{}

		board := s.Scoreboard.Get()
		leveled := board.Add(lines, *cfg)
		frame.Commands.Emit(Event{Kind: EventLinesCleared, Lines: lines})
		if leveled {
			frame.Commands.Emit(Event{Kind: EventLevelUp, Level: board.Level})
		}
	}
}

// newGame resets every per-game resource, keeping the best score, the
// settings and the random source.
func newGame(storage *sim.Storage) {
	var (
		cfg    *Config
		dealer *Dealer
		board  *Scoreboard
	)
	storage.ReadSingleton(&cfg)
	storage.ReadSingleton(&dealer)

	best := 0
	if storage.ReadSingleton(&board) {
		best = board.Best
	}

	active := dealer.Deal()
	next := dealer.Deal()

	storage.AddSingleton(Grid{})
	storage.AddSingleton(Pieces{Active: active, Next: next})
	storage.AddSingleton(newScoreboard(*cfg, best))
	storage.AddSingleton(Session{State: Playing})
	storage.AddSingleton(Clear{})
	storage.AddSingleton(Gravity{Limit: cfg.GravityLimit})
	storage.AddSingleton(Controls{})
}
