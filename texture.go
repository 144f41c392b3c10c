package walker

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// PixelFormat is the channel layout of a decoded source image.
type PixelFormat uint8

const (
	FormatUnknown PixelFormat = iota
	FormatGray                // 1 channel
	FormatRGB                 // 3 channels
	FormatRGBA                // 4 channels
)

func (f PixelFormat) String() string {
	switch f {
	case FormatGray:
		return "gray"
	case FormatRGB:
		return "rgb"
	case FormatRGBA:
		return "rgba"
	}
	return "unknown"
}

// formatForChannels maps a channel count to a PixelFormat. Only 1, 3 and 4
// channels are supported.
func formatForChannels(n int) (PixelFormat, error) {
	switch n {
	case 1:
		return FormatGray, nil
	case 3:
		return FormatRGB, nil
	case 4:
		return FormatRGBA, nil
	}
	return FormatUnknown, fmt.Errorf("%w: %d channels", ErrUnsupportedChannels, n)
}

// DecodedImage is the CPU half of a texture: decoded pixels plus the facts
// about the source file. It needs no graphics device.
type DecodedImage struct {
	Image    image.Image
	Kind     string // decoder name: png, jpeg, gif, bmp, webp
	Width    int
	Height   int
	Channels int
	Format   PixelFormat
}

// Texture is a decoded image resident on the GPU with its mip chain.
// Sampling is bilinear with clamp-to-edge addressing (see the quad shader);
// the quad picks the mip level per draw from its on-screen size.
type Texture struct {
	Image    *ebiten.Image
	Path     string
	Width    int
	Height   int
	Channels int
	Format   PixelFormat

	// mips holds successively halved copies of Image, level 1 first.
	mips []*ebiten.Image
}

// Valid reports whether t holds an uploaded image.
func (t *Texture) Valid() bool {
	return t != nil && t.Image != nil
}

// MipLevels returns the number of levels including the base image.
func (t *Texture) MipLevels() int {
	if !t.Valid() {
		return 0
	}
	return 1 + len(t.mips)
}

// level returns mip level l, clamped to the levels that exist.
func (t *Texture) level(l int) *ebiten.Image {
	if l <= 0 || len(t.mips) == 0 {
		return t.Image
	}
	return t.mips[min(l, len(t.mips))-1]
}

// Deallocate releases the image and its mip chain.
func (t *Texture) Deallocate() {
	if !t.Valid() {
		return
	}
	for _, m := range t.mips {
		m.Deallocate()
	}
	t.mips = nil
	t.Image.Deallocate()
}

// buildMips downsamples img by halves with linear filtering until both
// sides reach 1 pixel.
func buildMips(img *ebiten.Image) []*ebiten.Image {
	var mips []*ebiten.Image
	src := img
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	for w > 1 || h > 1 {
		sw, sh := w, h
		w, h = max(1, w/2), max(1, h/2)
		dst := ebiten.NewImage(w, h)
		op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
		op.GeoM.Scale(float64(w)/float64(sw), float64(h)/float64(sh))
		dst.DrawImage(src, op)
		mips = append(mips, dst)
		src = dst
	}
	return mips
}

// DecodeTexture decodes r and reports its size and channel layout. Images
// that are not gray, RGB or RGBA fail with ErrUnsupportedChannels.
func DecodeTexture(r io.Reader) (*DecodedImage, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read: %w", ErrTextureDecode, err)
	}
	img, kind, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTextureDecode, err)
	}
	channels, err := channelCount(kind, img.ColorModel(), data)
	if err != nil {
		return nil, err
	}
	format, err := formatForChannels(channels)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	return &DecodedImage{
		Image:    img,
		Kind:     kind,
		Width:    b.Dx(),
		Height:   b.Dy(),
		Channels: channels,
		Format:   format,
	}, nil
}

// LoadTexture decodes the image at path and uploads it to the GPU. Failures
// are logged and returned; no placeholder texture is substituted.
func LoadTexture(path string) (*Texture, error) {
	tex, err := loadTexture(path)
	if err != nil {
		logger.Error("texture load failed", "component", "texture", "path", path, "error", err)
		return nil, err
	}
	logger.Debug("texture loaded", "component", "texture", "path", path,
		"width", tex.Width, "height", tex.Height, "format", tex.Format)
	return tex, nil
}

func loadTexture(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTextureDecode, err)
	}
	defer f.Close()

	dec, err := DecodeTexture(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	img := ebiten.NewImageFromImage(dec.Image)
	return &Texture{
		Image:    img,
		mips:     buildMips(img),
		Path:     path,
		Width:    dec.Width,
		Height:   dec.Height,
		Channels: dec.Channels,
		Format:   dec.Format,
	}, nil
}

// pngGrayAlpha is the IHDR color type for 8/16-bit gray with alpha.
const pngGrayAlpha = 4

// channelCount reports how many channels the source image stores, judged
// from the decoded color model. The PNG decoder widens gray+alpha to NRGBA,
// so the PNG header is consulted directly to tell it apart from true RGBA.
func channelCount(kind string, m color.Model, data []byte) (int, error) {
	if kind == "png" && pngColorType(data) == pngGrayAlpha {
		return 0, fmt.Errorf("%w: gray+alpha png", ErrUnsupportedChannels)
	}
	if p, ok := m.(color.Palette); ok {
		for _, c := range p {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return 4, nil
			}
		}
		return 3, nil
	}
	switch m {
	case color.GrayModel, color.Gray16Model:
		return 1, nil
	case color.RGBAModel, color.RGBA64Model, color.YCbCrModel:
		return 3, nil
	case color.NRGBAModel, color.NRGBA64Model, color.NYCbCrAModel:
		return 4, nil
	case color.CMYKModel:
		return 0, fmt.Errorf("%w: cmyk", ErrUnsupportedChannels)
	}
	return 0, fmt.Errorf("%w: color model %T", ErrUnsupportedChannels, m)
}

// pngColorType returns the IHDR color type byte, or -1 when data is not a
// well-formed PNG header.
func pngColorType(data []byte) int {
	const sig = "\x89PNG\r\n\x1a\n"
	if len(data) < 26 || string(data[:8]) != sig || string(data[12:16]) != "IHDR" {
		return -1
	}
	return int(data[25])
}
