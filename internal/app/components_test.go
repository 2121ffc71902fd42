package app

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/spritegrid/internal/adapters/imagefile"
	"github.com/bft-labs/spritegrid/internal/domain"
)

// writeFrames saves count single-frame images with markers first, first+1,
// ... into dir.
func writeFrames(t *testing.T, dir string, count, first int) {
	t.Helper()
	for i := 0; i < count; i++ {
		img := image.NewNRGBA(image.Rect(0, 0, tile.Width, tile.Height))
		fill(img, img.Bounds(), marker(first+i))
		require.NoError(t, imagefile.New().Save(filepath.Join(dir, fmt.Sprintf("frame%04d.png", i+1)), img))
	}
}

func TestMergeComponents(t *testing.T) {
	root := t.TempDir()
	dest := filepath.Join(t.TempDir(), "sprites")
	writeFrames(t, filepath.Join(root, "Object"), 4, 0)
	writeFrames(t, filepath.Join(root, "Shadow"), 4, 10)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Light A Reduced"), 0o755))

	svc, logger := newTestService(t, nil)
	res, err := svc.MergeComponents(context.Background(), ComponentMergeRequest{Root: root, Prefix: "tree", Dest: dest})
	require.NoError(t, err)
	require.Len(t, res, 2)

	l := domain.GridLayout{Cols: 2, Rows: 2}
	assert.Equal(t, []string{filepath.Join(dest, "tree.png")}, res[0].Outputs)
	assert.Equal(t, []int{0, 1, 2, 3}, markers(t, res[0].Outputs[0], l))
	assert.Equal(t, []string{filepath.Join(dest, "tree-shadow.png")}, res[1].Outputs)
	assert.Equal(t, []int{10, 11, 12, 13}, markers(t, res[1].Outputs[0], l))

	// WaterReflection is missing and the glow directory is empty.
	assert.Equal(t, []string{"component skipped", "component skipped"}, logger.warnings)
	assert.NoFileExists(t, filepath.Join(dest, "tree-water-reflection.png"))
	assert.NoFileExists(t, filepath.Join(dest, "tree-glow.png"))
}

func TestMergeComponents_DefaultsDestToRoot(t *testing.T) {
	root := t.TempDir()
	writeFrames(t, filepath.Join(root, "body"), 2, 0)

	svc, _ := newTestService(t, nil)
	res, err := svc.MergeComponents(context.Background(), ComponentMergeRequest{
		Root:       root,
		Prefix:     "crate",
		Components: []Component{{Name: "body", Dir: "body", Suffix: "-body"}},
	})
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, []string{filepath.Join(root, "crate-body.png")}, res[0].Outputs)
}

func TestMergeComponents_FailurePolicy(t *testing.T) {
	setup := func(t *testing.T) string {
		root := t.TempDir()
		writeFrames(t, filepath.Join(root, "Object"), 2, 0)
		shadow := filepath.Join(root, "Shadow")
		writeFrames(t, shadow, 1, 0)
		require.NoError(t, imagefile.New().Save(filepath.Join(shadow, "frame0002.png"), image.NewNRGBA(image.Rect(0, 0, 4, 5))))
		writeFrames(t, filepath.Join(root, "WaterReflection"), 2, 0)
		return root
	}

	t.Run("fail soft continues", func(t *testing.T) {
		root := setup(t)
		svc, logger := newTestService(t, nil)
		res, err := svc.MergeComponents(context.Background(), ComponentMergeRequest{Root: root, Prefix: "rock"})
		require.ErrorIs(t, err, domain.ErrFrameSizeMismatch)
		require.Len(t, res, 2)
		assert.Equal(t, []string{filepath.Join(root, "rock-water-reflection.png")}, res[1].Outputs)
		assert.Equal(t, []string{"component merge failed"}, logger.errors)
	})

	t.Run("fail fast stops", func(t *testing.T) {
		root := setup(t)
		svc, _ := newTestService(t, func(c *Config) { c.FailFast = true })
		res, err := svc.MergeComponents(context.Background(), ComponentMergeRequest{Root: root, Prefix: "rock"})
		require.ErrorIs(t, err, domain.ErrFrameSizeMismatch)
		assert.Len(t, res, 1)
		assert.NoFileExists(t, filepath.Join(root, "rock-water-reflection.png"))
	})
}

func TestMergeComponents_RequiresPrefix(t *testing.T) {
	svc, _ := newTestService(t, nil)
	_, err := svc.MergeComponents(context.Background(), ComponentMergeRequest{Root: t.TempDir()})
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}
