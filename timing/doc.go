// Package timing derives animation state from a frame index.
//
// Every function here is a pure function of its arguments: no clocks are
// read and nothing is remembered between calls, so hosts may evaluate frames
// in any order and on any number of goroutines. Durations and delays are
// always frame counts; Clock is the one place seconds are converted.
package timing
