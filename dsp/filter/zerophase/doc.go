// Package zerophase provides forward-backward (zero-phase) IIR filtering.
//
// The signal is filtered forward, time-reversed, filtered again and reversed
// back, so the phase shifts of the two passes cancel and the magnitude
// response is squared. Both functions are whole-signal operations without
// persistent state and cannot be used on a stream.
//
// Apply is the plain two-pass form. It starts every pass from zero history
// and does not pad the signal, so the first and last few time constants of
// the output carry a start-up transient that an edge-padded implementation
// would suppress. This is a known approximation, not an error.
//
// ApplyPadded extends the signal at both ends by odd reflection and starts
// each pass from the steady state of its first sample, which removes most of
// that transient.
package zerophase
