package scaler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"io"

	// The following are all image formats supported for converting
	// to other image sizes.
	_ "image/gif"
	_ "image/png"

	// Additional image formats from the x repository.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8"
	_ "golang.org/x/image/webp"

	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

// ErrCancelled is returned when one is trying to interact with an stopped
// scaler.
var ErrCancelled = errors.New("scale operation on cancelled Scaler")

// ErrInvalidWidth is returned for scaling to width which is not positive.
var ErrInvalidWidth = errors.New("width must be a positive number")

// description is a scaling instruction.
type description struct {
	toWidth int
	imgR    io.Reader

	// result is buffered so that workers never block on callers which
	// went away.
	result chan result
}

type result struct {
	imgData []byte
	err     error
}

// Scaler is a utility type which could be used for scaling images. It runs a pool
// of workers and is safe for concurrent use.
type Scaler struct {
	cancel context.CancelFunc
	done   <-chan struct{}
	group  *errgroup.Group

	work chan description
}

// New returns a new scaler with `workers` number of workers, ready for use. The
// scaler stops when `ctx` is done or when Cancel is called.
func New(ctx context.Context, workers int) *Scaler {
	if workers < 1 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(ctx)

	s := &Scaler{
		cancel: cancel,
		done:   gctx.Done(),
		group:  g,
		work:   make(chan description),
	}

	for i := 0; i < workers; i++ {
		g.Go(s.worker)
	}

	return s
}

// Scale converts the image (img) to have width toWidth in pixels while
// preserving its aspect ratio. Images which are already narrower are only
// re-encoded. The result is always a JPEG.
func (s *Scaler) Scale(
	ctx context.Context,
	img io.Reader,
	toWidth int,
) ([]byte, error) {
	if toWidth <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidWidth, toWidth)
	}

	select {
	case <-s.done:
		return nil, ErrCancelled
	default:
	}

	desc := description{
		imgR:    img,
		toWidth: toWidth,
		result:  make(chan result, 1),
	}

	select {
	case s.work <- desc:
	case <-s.done:
		return nil, ErrCancelled
	case <-ctx.Done():
		return nil, fmt.Errorf("ctx done while waiting to send scale op: %w", ctx.Err())
	}

	select {
	case res := <-desc.result:
		return res.imgData, res.err
	case <-ctx.Done():
		return nil, fmt.Errorf("ctx done while waiting for scale result: %w", ctx.Err())
	}
}

// Cancel stops the scaler and waits for its workers to finish. Users may not use
// any further methods on cancelled scalers.
func (s *Scaler) Cancel() {
	s.cancel()
	_ = s.group.Wait()
}

func (s *Scaler) worker() error {
	for {
		select {
		case <-s.done:
			return nil
		case desc := <-s.work:
			imgData, err := scaleImage(desc.imgR, desc.toWidth)
			desc.result <- result{
				imgData: imgData,
				err:     err,
			}
		}
	}
}

func scaleImage(imgReader io.Reader, toWidth int) ([]byte, error) {
	img, _, err := image.Decode(imgReader)
	if err != nil {
		return nil, fmt.Errorf("error decoding image: %w", err)
	}

	imgRect := img.Bounds()
	imgw := imgRect.Dx()
	imgh := imgRect.Dy()
	if imgw <= toWidth {
		return encode(img)
	}

	toHeight := int((float64(imgh) / float64(imgw)) * float64(toWidth))
	if toHeight < 1 {
		toHeight = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, toWidth, toHeight))

	draw.CatmullRom.Scale(
		dst,
		dst.Bounds(),
		img,
		img.Bounds(),
		draw.Over,
		nil,
	)

	return encode(dst)
}

func encode(img image.Image) ([]byte, error) {
	var dstJPEG bytes.Buffer
	if err := jpeg.Encode(&dstJPEG, img, nil); err != nil {
		return nil, fmt.Errorf("encoding image: %w", err)
	}

	return dstJPEG.Bytes(), nil
}
