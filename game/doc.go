// Package game implements the falling-block engine: the grid and piece model,
// movement and collision, the rotation resolver, line clearing with its
// animation countdown, scoring and leveling, and the session state machine.
//
// The engine is driven entirely by discrete intents and ticks. Engine.Apply
// queues intents, Engine.Tick advances one frame through a fixed pipeline of
// systems (intents, shift, rotate, gravity, line clear), and events raised
// during the tick are published once it completes. Given the same seed and the
// same intent script the engine always produces the same states.
package game
