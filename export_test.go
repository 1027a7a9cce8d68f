package gc9d01

import "time"

func init() {
	sleep = func(time.Duration) {}
}

// InitSequence exposes the power-on register table to tests.
var InitSequence = initSequence
