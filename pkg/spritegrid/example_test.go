package spritegrid_test

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/bft-labs/spritegrid/pkg/spritegrid"
)

// ExampleSpritegrid_Plan shows how a sequence is partitioned under the
// size limit.
func ExampleSpritegrid_Plan() {
	cfg := spritegrid.DefaultConfig()
	cfg.MaxDimension = 2048

	sg, err := spritegrid.New(cfg)
	if err != nil {
		fmt.Printf("failed to create spritegrid: %v\n", err)
		return
	}

	plan, err := sg.Plan(128, spritegrid.FrameGeometry{Width: 256, Height: 256})
	if err != nil {
		fmt.Printf("plan failed: %v\n", err)
		return
	}
	fmt.Printf("%d files of %d frames, %s\n", plan.NumFiles, plan.FramesPerFile, plan.Layout)

	// Output: 2 files of 64 frames, 8x8
}

// ExampleSpritegrid_Merge assembles a directory of frames into one sheet.
func ExampleSpritegrid_Merge() {
	root, err := os.MkdirTemp("", "spritegrid-example")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(root)

	dir := filepath.Join(root, "walk")
	if err := os.Mkdir(dir, 0o755); err != nil {
		fmt.Println(err)
		return
	}
	for i := 1; i <= 6; i++ {
		img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
		img.SetNRGBA(0, 0, color.NRGBA{R: uint8(i), A: 255})
		f, err := os.Create(filepath.Join(dir, fmt.Sprintf("walk_%d.png", i)))
		if err != nil {
			fmt.Println(err)
			return
		}
		_ = png.Encode(f, img)
		_ = f.Close()
	}

	sg, err := spritegrid.New(spritegrid.DefaultConfig())
	if err != nil {
		fmt.Println(err)
		return
	}
	res, err := sg.Merge(context.Background(), spritegrid.MergeRequest{Dir: dir})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%d frames on a %s grid in %s\n", res.Frames, res.Layout, filepath.Base(res.Outputs[0]))

	// Output: 6 frames on a 3x2 grid in walk.png
}
