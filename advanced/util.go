package advanced

// Hull vertices are a circular buffer. This gives the modular index given
// length n, but unlike the raw modulo operator, it only gives positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
