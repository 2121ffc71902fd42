// Package ports defines the interfaces (ports) that connect the layout and
// frame logic to infrastructure adapters.
//
// The core never touches files or pixel formats directly. It needs exactly
// two collaborators plus a logger:
//
//   - [ImageCodec]: open/save a sheet, allocate a transparent canvas, crop a
//     rectangle out of an image and paste a sub-image at an offset
//   - [FileLister]: list image files of a directory, ordered by the number
//     embedded in their names
//   - [Logger]: structured logging abstraction
//
// Infrastructure adapters (internal/adapters) implement these interfaces
// with the file system, golang.org/x/image and zerolog.
package ports
