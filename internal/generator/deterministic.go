package generator

import "time"

// seedFunc supplies a seed when a config leaves it at zero (override in tests).
var seedFunc = func() int64 { return time.Now().UnixNano() }

// SetSeedFunc overrides the seed provider (use only in tests).
func SetSeedFunc(f func() int64) { seedFunc = f }

func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return seedFunc()
	}
	return seed
}
