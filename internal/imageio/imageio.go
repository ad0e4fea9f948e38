// Package imageio converts between BMP files and interleaved RGB sample
// buffers. Samples are float64 in [0, 255]; values are clamped and
// truncated to 8 bits only when encoding.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"github.com/cwbudde/algo-blend/buffer"
)

// Channels is the number of interleaved samples per decoded pixel (R, G, B).
const Channels = 3

// ErrChannels is returned when encoding a buffer that is not RGB.
var ErrChannels = errors.New("imageio: buffer must have 3 channels")

// Decode reads a BMP image into an RGB sample buffer. Alpha is discarded.
func Decode(r io.Reader) (*buffer.Buffer, error) {
	img, err := bmp.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode bmp: %w", err)
	}
	return FromImage(img)
}

// FromImage converts any image to an RGB sample buffer.
func FromImage(img image.Image) (*buffer.Buffer, error) {
	b := img.Bounds()
	nrgba, ok := img.(*image.NRGBA)
	if !ok || b.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	}

	out, err := buffer.NewImage(buffer.Layout{Width: b.Dx(), Height: b.Dy(), Channels: Channels})
	if err != nil {
		return nil, err
	}

	s := out.Samples()
	i := 0
	for y := 0; y < b.Dy(); y++ {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+4*b.Dx()]
		for x := 0; x < len(row); x += 4 {
			s[i] = float64(row[x])
			s[i+1] = float64(row[x+1])
			s[i+2] = float64(row[x+2])
			i += Channels
		}
	}
	return out, nil
}

// ToImage converts an RGB sample buffer to an opaque image.
func ToImage(buf *buffer.Buffer) (*image.NRGBA, error) {
	l := buf.Layout()
	if l.Channels != Channels {
		return nil, fmt.Errorf("%w: got %d", ErrChannels, l.Channels)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}

	img := image.NewNRGBA(image.Rect(0, 0, l.Width, l.Height))
	s := buf.Samples()
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			i := buf.Index(x, y, 0)
			img.SetNRGBA(x, y, color.NRGBA{
				R: toByte(s[i]),
				G: toByte(s[i+1]),
				B: toByte(s[i+2]),
				A: 0xff,
			})
		}
	}
	return img, nil
}

// Encode writes buf as a 24-bit BMP.
func Encode(w io.Writer, buf *buffer.Buffer) error {
	img, err := ToImage(buf)
	if err != nil {
		return err
	}
	if err := bmp.Encode(w, img); err != nil {
		return fmt.Errorf("imageio: encode bmp: %w", err)
	}
	return nil
}

// Load decodes the BMP file at path.
func Load(path string) (*buffer.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: %w", err)
	}
	defer f.Close()

	buf, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return buf, nil
}

// Save encodes buf as a BMP file at path, replacing any existing file.
func Save(path string, buf *buffer.Buffer) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("imageio: %w", cerr)
		}
	}()

	return Encode(f, buf)
}

// toByte clamps v to [0, 255] and truncates. NaN maps to 0.
func toByte(v float64) uint8 {
	switch {
	case !(v > 0):
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}
