// Package layout decides how frames are arranged on sheets.
//
// It answers three questions, none of which touch pixels:
//
//   - how many columns N frames should occupy ([Columns], [Natural])
//   - whether a sheet must be split across files to respect a maximum
//     canvas dimension, and how ([Plan])
//   - which grid a decoded sheet of a given pixel size holds ([Infer],
//     [InferFromCount])
package layout
