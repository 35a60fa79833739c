package effectchain

// Context carries the chain settings a stage factory needs.
type Context struct {
	// BufferSize is the chain's buffer-size hint at the moment the stage is added.
	BufferSize int
}
