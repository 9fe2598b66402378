package sim_test

// Common test resource types
type Counter struct {
	Value int
}

type Clock struct {
	Ticks uint64
}

type Label string

type Trace struct {
	Order []string
}
