// Package analysis measures sample buffers: peak and RMS levels in linear
// and dB terms, and the magnitude spectrum of a block.
//
// Build with -tags fastmath to use the approximate logarithm from algo-approx
// for dB conversion.
package analysis
