// Package signalio loads and stores the signals fed to the filters.
//
// Text files hold one sample per line. A line may contain several
// whitespace- or comma-separated values, one per channel, optionally
// wrapped in square brackets ("[0.1 0.2 0.3]"), which is how recorded
// multi-axis sensor data is usually dumped. Blank lines and lines starting
// with '#' are ignored.
//
// WAV files are read and written through go-audio. Integer PCM is scaled to
// [-1, 1) on read and back on write.
package signalio
