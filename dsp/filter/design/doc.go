// Package design provides digital IIR coefficient designers.
//
// Designers build a cascade of second-order sections with the RBJ cookbook
// formulas and the bilinear transform, then expand the cascade into a single
// direct-form pair (b, a) that dsp/filter/iir and dsp/filter/zerophase
// consume directly.
//
// Butterworth designs cover lowpass, highpass and bandpass responses. A
// bandpass of order N is the cascade of an order-N highpass at the lower
// edge and an order-N lowpass at the upper edge, so its direct form has
// 2N+1 coefficients.
package design
