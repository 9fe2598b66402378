package sim

// System is one step of a tick. Systems run in registration order and can
// declare Singleton fields, which the Scheduler binds to its Storage on Register.
type System interface {
	Execute(frame *UpdateFrame)
}
