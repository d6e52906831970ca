// Package demo orchestrates one pass of the inventory algorithm demo:
// generation, linear search, binary search (hit and miss), bulk
// validation, shuffle, quicksort by value, and a final-order report.
//
// The driver is a plain sequential function with no host lifecycle
// dependency. Everything it needs arrives injected: the run profile
// (item count, seed, reporting switch), the clock behind the timing
// harness, the logger, the transcript writer, and the run token
// source. With a fixed seed, a stepping clock, and a fixed token the
// whole transcript is byte-reproducible.
//
// Each pass is stamped with a run token carried on every log record,
// so interleaved diagnostics from separate passes stay attributable.
package demo
