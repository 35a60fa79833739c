// Package buffer provides a reusable float32 sample buffer and pool.
//
// The bufops primitives take raw []float32; Buffer is an optional owner for
// callers that want to size blocks from a processor's buffer-size hint and
// recycle them between callbacks instead of allocating per block.
package buffer
