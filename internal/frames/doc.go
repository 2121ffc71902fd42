// Package frames extracts frame sequences from sheets, reduces them under a
// selection policy and lays them back out onto fresh canvases.
//
// A Sequence is never modified after extraction. Selection and the
// transforms return new sequences that share the frame buffers.
package frames
