package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bft-labs/spritegrid/internal/domain"
	"github.com/bft-labs/spritegrid/internal/ports"
)

func TestZerologAdapter_Fields(t *testing.T) {
	var buf bytes.Buffer
	z := NewZerologAdapterWithLogger(zerolog.New(&buf))

	z.Info("composed",
		ports.String("file", "tank.png"),
		ports.Int("frames", 16),
		ports.Ints("indices", []int{0, 4}),
		ports.Any("layout", domain.GridLayout{Cols: 4, Rows: 4}),
		ports.Err(errors.New("boom")),
	)

	var got map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal %q: %v", buf.String(), err)
	}
	if got["file"] != "tank.png" {
		t.Errorf("file = %v", got["file"])
	}
	if got["frames"] != float64(16) {
		t.Errorf("frames = %v", got["frames"])
	}
	if got["layout"] != "4x4" {
		t.Errorf("layout = %v, want Stringer output 4x4", got["layout"])
	}
	if got["error"] != "boom" {
		t.Errorf("error = %v", got["error"])
	}
	if got["message"] != "composed" {
		t.Errorf("message = %v", got["message"])
	}
}

func TestNoopLogger(t *testing.T) {
	var l ports.Logger = NewNoopLogger()
	l.Debug("x")
	l.Info("x", ports.Int("n", 1))
	l.Warn("x")
	l.Error("x", ports.Err(errors.New("ignored")))
}
