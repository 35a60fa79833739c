// Package effect provides single-stage processors built on the bufops primitives.
//
// A [Unit] scales a buffer by one gain value. It carries a buffer-size hint
// for callers that pre-allocate scratch space, but never checks it against
// the buffers it is given. A [BiquadStage] wraps one biquad section together
// with its own explicit filter history so it can sit in a chain and keep
// state across blocks.
//
// Both types process in place without allocating.
package effect
