package export

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	"github.com/rook-computer/duelicons/internal/system"
)

// PNGSizes are the downscaled variants written next to the native icon.
var PNGSizes = []int{16, 24, 32, 48, 64, 128, 256, 512}

const (
	NativeName = "icon.png"
	dirPerm    = 0o755
)

// SizedName returns the file name of the size px variant.
func SizedName(px int) string { return fmt.Sprintf("icon-%d.png", px) }

// Resize scales img to a px square with Lanczos resampling.
func Resize(img image.Image, px int) *image.NRGBA {
	return imaging.Resize(img, px, px, imaging.Lanczos)
}

// SavePNG writes img to path as PNG.
func SavePNG(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}

// Written describes one file produced by the exporter.
type Written struct {
	Path string
	Size int
}

// Exporter writes the flat PNG set into Dir.
type Exporter struct {
	Dir    string
	Sizes  []int
	Logger system.Logger
}

func NewExporter(dir string) *Exporter {
	return &Exporter{Dir: dir, Sizes: PNGSizes}
}

// WritePNGSet creates Dir (with parents), then writes the native image and
// one resized file per entry of Sizes.
func (e *Exporter) WritePNGSet(img image.Image) ([]Written, error) {
	if err := os.MkdirAll(e.Dir, dirPerm); err != nil {
		return nil, errors.Wrap(err, "failed to create icon directory")
	}

	native := filepath.Join(e.Dir, NativeName)
	if err := SavePNG(img, native); err != nil {
		return nil, err
	}
	written := []Written{{Path: native, Size: img.Bounds().Dx()}}

	for _, px := range e.Sizes {
		path := filepath.Join(e.Dir, SizedName(px))
		if err := SavePNG(Resize(img, px), path); err != nil {
			return written, err
		}
		written = append(written, Written{Path: path, Size: px})
	}
	if e.Logger != nil {
		e.Logger.Infof("export", "wrote %d png files to %s", len(written), e.Dir)
	}
	return written, nil
}
