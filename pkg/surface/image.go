package surface

import (
	"bytes"
	"image"
	"os"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/connections/pkg/errors"
)

// Image is a decoded raster image together with its encoded bytes, which
// vector surfaces embed unchanged.
type Image struct {
	Path    string
	Format  string // decoder name, e.g. "png"
	Data    []byte
	Decoded image.Image
}

// Width returns the image width in pixels.
func (im *Image) Width() int { return im.Decoded.Bounds().Dx() }

// Height returns the image height in pixels.
func (im *Image) Height() int { return im.Decoded.Bounds().Dy() }

// MIMEType returns the media type of the encoded data.
func (im *Image) MIMEType() string { return "image/" + im.Format }

// LoadImage reads and decodes the image at path. The file is closed before
// decoding starts.
func LoadImage(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeImageLoad, err, "read %s", path)
	}
	return DecodeImage(path, data)
}

// DecodeImage decodes data; path is only used for messages.
func DecodeImage(path string, data []byte) (*Image, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeImageLoad, err, "decode %s", path)
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeImageLoad, err, "decode %s", path)
	}
	return &Image{Path: path, Format: format, Data: data, Decoded: img}, nil
}
