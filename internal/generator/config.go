package generator

// Config drives the synthetic catalog generator.
type Config struct {
	NumCourses       int
	EdgesPerCourse   int
	SkipTierChance   float64
	UnweightedChance float64
	Seed             int64
}

// DefaultConfig returns baseline settings that produce a catalog large enough
// to exercise every optimization strategy.
func DefaultConfig() Config {
	return Config{
		NumCourses:       200,
		EdgesPerCourse:   3,
		SkipTierChance:   0.15,
		UnweightedChance: 0.2,
		Seed:             42,
	}
}
