// Package domain contains the core value types and errors for spritegrid.
//
// This package is the innermost layer. It has no dependencies on image
// codecs, the file system or logging, and holds only the shapes that the
// layout, frames and regroup packages agree on.
//
// # Types
//
//   - [FrameGeometry]: pixel size of one frame, constant for a sheet
//   - [GridLayout]: columns and rows of a sheet
//   - [Grid]: a layout together with its geometry and populated frame count
//   - [SplitPlan]: how many files a sheet is partitioned into, and their layout
//   - [Selection]: a frame reduction policy
//   - [Sheet]: a composed output canvas
//
// # Invariants
//
// Frames are placed row-major: frame i lives in cell (i % cols, i / cols).
// A layout committed to an output file never exceeds the maximum canvas
// dimension on either axis.
package domain
