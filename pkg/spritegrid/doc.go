// Package spritegrid provides an embeddable sprite sheet layout engine.
//
// A sprite sheet is one image holding a sequence of equally sized animation
// frames on a grid. spritegrid merges single frames into sheets, reduces,
// reverses and shifts frame sequences, splits sheets that exceed a maximum
// canvas size into numbered parts, regroups parts back together and trims
// transparent borders shared by a set of sheets.
//
// # Basic Usage
//
//	sg, err := spritegrid.New(spritegrid.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := sg.Merge(ctx, spritegrid.MergeRequest{Dir: "frames/walk"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Outputs) // [frames/walk.png]
//
// # Frame Grids
//
// Operations that read existing sheets need the frame grid of every input.
// Pass a [Hint] with the frame count or the frame size when it is known.
// With an empty hint the grid is guessed from the sheet dimensions, trying
// the common frame counts in [DefaultGuessChain] order.
//
// # Size Limit
//
// No written sheet exceeds [Config].MaxDimension on either edge. A result
// that would is split into parts named base-1.png, base-2.png and so on,
// every part sharing one layout so that a regroup restores the sequence.
//
// # Dependency Injection
//
// For testing, custom implementations of the image codec, file lister and
// logger can be injected:
//
//	sg, err := spritegrid.New(cfg,
//	    spritegrid.WithCodec(memCodec),
//	    spritegrid.WithLogger(customLogger),
//	)
package spritegrid
