package scaler_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"

	"github.com/ironsmile/coverlookup/src/assert"
	"github.com/ironsmile/coverlookup/src/scaler"
)

func pngImage(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding test png: %s", err)
	}
	return buf.Bytes()
}

// TestScaleKeepsAspectRatio scales a few images at the same time and checks the
// dimensions of the results.
func TestScaleKeepsAspectRatio(t *testing.T) {
	s := scaler.New(context.Background())
	defer s.Cancel()

	tests := []struct {
		width, height  int
		toWidth        int
		expectedScaled bool
		expectedW      int
		expectedH      int
	}{
		{width: 200, height: 100, toWidth: 50, expectedScaled: true, expectedW: 50, expectedH: 25},
		{width: 120, height: 120, toWidth: 60, expectedScaled: true, expectedW: 60, expectedH: 60},
		{width: 40, height: 80, toWidth: 100, expectedScaled: false, expectedW: 40, expectedH: 80},
	}

	type outcome struct {
		res scaler.Result
		err error
	}

	sources := make([][]byte, len(tests))
	outcomes := make([]outcome, len(tests))
	for i, test := range tests {
		sources[i] = pngImage(t, test.width, test.height)
	}

	var wg sync.WaitGroup
	for i, test := range tests {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := s.Scale(context.Background(), sources[i], test.toWidth)
			outcomes[i] = outcome{res: res, err: err}
		}()
	}
	wg.Wait()

	for i, test := range tests {
		res := outcomes[i].res
		assert.NilErr(t, outcomes[i].err)
		assert.Equal(t, test.expectedScaled, res.Scaled)

		cfg, format, err := image.DecodeConfig(bytes.NewReader(res.Data))
		assert.NilErr(t, err)
		assert.Equal(t, test.expectedW, cfg.Width)
		assert.Equal(t, test.expectedH, cfg.Height)

		if test.expectedScaled {
			assert.Equal(t, "jpeg", format)
		} else if !bytes.Equal(sources[i], res.Data) {
			t.Errorf("narrow image was changed")
		}
	}
}

// TestScaleErrors checks that bad input and stopped scalers are reported.
func TestScaleErrors(t *testing.T) {
	s := scaler.New(context.Background())

	_, err := s.Scale(context.Background(), []byte("not an image"), 100)
	assert.NotNilErr(t, err)

	_, err = s.Scale(context.Background(), pngImage(t, 10, 10), 0)
	assert.NotNilErr(t, err)

	s.Cancel()
	_, err = s.Scale(context.Background(), pngImage(t, 10, 10), 5)
	assert.ErrorIs(t, err, scaler.ErrCancelled)
}
