// Package scaler shrinks downloaded cover images. Scaling is done by a fixed pool
// of workers, one per CPU, so that many concurrent downloads do not decode an
// unbounded number of images at once.
package scaler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"runtime"

	// Formats the Cover Art Archive serves images in.
	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

// ErrCancelled is returned when one is trying to interact with an stopped
// scaler.
var ErrCancelled = errors.New("scale operation on cancelled Scaler")

// MimeJPEG is the type of every image produced by the scaler.
const MimeJPEG = "image/jpeg"

// job is a scaling instruction.
type job struct {
	data    []byte
	toWidth int
	result  chan Result
}

// Result is a scaled image or the reason it could not be produced. Scaled is false
// when the source was already narrow enough and Data holds it unchanged.
type Result struct {
	Data   []byte
	Scaled bool
	Err    error
}

// Scaler is a pool of workers scaling images down to a given width.
type Scaler struct {
	ctx    context.Context
	cancel context.CancelFunc
	group  *errgroup.Group

	work chan job
}

// New returns a new scaler, ready for use. It is stopped when ctx is done or
// Cancel is called.
func New(ctx context.Context) *Scaler {
	ctx, cancel := context.WithCancel(ctx)

	s := &Scaler{
		ctx:    ctx,
		cancel: cancel,
		group:  &errgroup.Group{},
		work:   make(chan job),
	}

	for i := 0; i < runtime.NumCPU(); i++ {
		s.group.Go(s.worker)
	}

	return s
}

// Scale makes the image in `data` at most `toWidth` pixels wide while keeping its
// aspect ratio. Images which are already narrow enough are returned as they are.
func (s *Scaler) Scale(ctx context.Context, data []byte, toWidth int) (Result, error) {
	if toWidth <= 0 {
		return Result{}, fmt.Errorf("width must be positive, got %d", toWidth)
	}
	if s.ctx.Err() != nil {
		return Result{}, ErrCancelled
	}

	j := job{
		data:    data,
		toWidth: toWidth,
		result:  make(chan Result, 1),
	}

	select {
	case s.work <- j:
	case <-s.ctx.Done():
		return Result{}, ErrCancelled
	case <-ctx.Done():
		return Result{}, fmt.Errorf("ctx done while waiting to send scale op: %w", ctx.Err())
	}

	res := <-j.result
	if res.Err != nil {
		return Result{}, res.Err
	}

	return res, nil
}

// Cancel stops the scaler and waits for its workers to finish. Users may not use
// any further methods on cancelled scalers.
func (s *Scaler) Cancel() {
	s.cancel()
	_ = s.group.Wait()
}

// worker scales images until the scaler is stopped. Jobs it has accepted are
// always answered since their result channels are buffered.
func (s *Scaler) worker() error {
	for {
		select {
		case j := <-s.work:
			j.result <- scaleImage(j.data, j.toWidth)
		case <-s.ctx.Done():
			return nil
		}
	}
}

func scaleImage(data []byte, toWidth int) Result {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Result{Err: fmt.Errorf("decoding image: %w", err)}
	}

	bounds := img.Bounds()
	imgw, imgh := bounds.Dx(), bounds.Dy()
	if imgw <= toWidth {
		return Result{Data: data}
	}

	toHeight := int((float64(imgh) / float64(imgw)) * float64(toWidth))
	if toHeight < 1 {
		toHeight = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, toWidth, toHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var out bytes.Buffer
	if err := jpeg.Encode(&out, dst, nil); err != nil {
		return Result{Err: fmt.Errorf("encoding image: %w", err)}
	}

	return Result{Data: out.Bytes(), Scaled: true}
}
