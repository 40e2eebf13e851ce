package interview

type inversionConfig struct {
	bruteForce bool
}

// InversionOption configures WeightedInversions.
type InversionOption func(*inversionConfig)

// BruteForce selects the quadratic reference algorithm, which for every
// element scans everything to its left and to its right.
//
// It is much slower than the default on large inputs, but it is simple
// enough to be obviously correct and is kept as an oracle for testing.
func BruteForce() InversionOption {
	return func(c *inversionConfig) {
		c.bruteForce = true
	}
}
