package bufops

// Copy copies min(len(src), len(dst)) samples from src to dst and returns the
// count.
//
// Overlapping slices are handled like memmove.
func Copy(dst, src []float32) int {
	return copy(dst, src)
}

// Clear sets every sample in buf to 0.
func Clear(buf []float32) {
	clear(buf)
}
