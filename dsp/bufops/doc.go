// Package bufops provides allocation-free operations on float32 sample buffers.
//
// Every function works on caller-owned slices and never allocates, locks or
// retains them. When more than one buffer is involved the operation is
// bounded by the shortest length; excess samples are left untouched and no
// error is reported.
//
// Operations:
//   - Gain and mixing: [ApplyGain], [Mix].
//   - Format conversion: [Int16ToFloat32], [Float32ToInt16].
//   - Channel layout: [Interleave], [Deinterleave].
//   - Level: [Peak], [RMS], [Normalize], [Clip].
//   - Memory: [Copy], [Clear].
//   - Filtering: [Lowpass] and the direct-form-I [Biquad] with caller-owned [State].
//
// Hot loops go through a kernel registry keyed by CPU features. Only the
// generic scalar kernel ships, so results are identical on every platform.
//
// Nothing in this package is safe for concurrent mutation of the same buffer.
package bufops
