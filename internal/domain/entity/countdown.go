package entity

// Countdown is a tick-resolution timer. The simulation is a fixed-tick
// loop, so every suspended effect (invulnerability, attack cooldown,
// hitstop, despawn grace, the victory delay) is just a number of ticks
// remaining. Zero means inactive.
type Countdown int

// Set arms the countdown with the given number of ticks.
func (c *Countdown) Set(ticks int) {
	*c = Countdown(ticks)
}

// Active reports whether the countdown has ticks remaining.
func (c Countdown) Active() bool {
	return c > 0
}

// Done reports whether the countdown has reached zero.
func (c Countdown) Done() bool {
	return c <= 0
}

// Tick decrements an active countdown by one tick and reports whether
// it expired on this exact call. An inactive countdown stays at zero
// and never reports expiry again.
func (c *Countdown) Tick() bool {
	if *c <= 0 {
		return false
	}
	*c--
	return *c == 0
}
