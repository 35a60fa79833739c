// Package effectchain composes processing stages into an ordered, in-place chain.
//
// A [Chain] owns its stages and runs them over one buffer in insertion
// order. Gain stages are [effect.Unit] values built with the chain's
// buffer-size hint at the moment they are added; biquad stages carry their
// own filter history. Custom stages implement [Stage].
//
// Chains can also be built from a compact text form through a [Registry]:
//
//	c := effectchain.New()
//	err := c.Configure(effectchain.DefaultRegistry(), "gain:2 biquad:0.1,0.2,0.1,-0.5,0.2")
package effectchain
