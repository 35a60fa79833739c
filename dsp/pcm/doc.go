// Package pcm moves samples between github.com/go-audio/audio buffers and the
// planar float32 slices used by bufops and the effect chain.
package pcm
