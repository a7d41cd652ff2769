package lanternfish

// Strategy selects how Population is computed.
type Strategy int

const (
	// Memoized evaluates the per-fish recurrence with a memo table.
	Memoized Strategy = iota
	// Buckets keeps one counter per timer value.
	Buckets
)

// Options configures a Simulator.
type Options struct {
	// ResetTimer is the timer a fish takes after spawning.
	ResetTimer int
	// SpawnTimer is the timer of a newborn fish.
	SpawnTimer int
	// Strategy selects the counting method.
	Strategy Strategy
}

// DefaultOptions returns ResetTimer=6, SpawnTimer=8, Strategy=Memoized.
func DefaultOptions() Options {
	return Options{
		ResetTimer: 6,
		SpawnTimer: 8,
		Strategy:   Memoized,
	}
}

// memoKey indexes the memo table.
type memoKey struct {
	timer, days int
}
