package usecase

import "time"

// Clock is the time source for the confirmation floor.
type Clock interface {
	After(d time.Duration) <-chan time.Time
}

type systemClock struct{}

func (systemClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

func SystemClock() Clock {
	return systemClock{}
}

// ConfirmPolicy controls the confirmation dialog.
type ConfirmPolicy struct {
	// MinDisplay is how long the dialog stays pending at least, measured
	// from submission. A slower request extends it; a faster one does not
	// shorten it.
	MinDisplay time.Duration
}

const DefaultMinDisplay = 2 * time.Second
