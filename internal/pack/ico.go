package pack

import (
	"bytes"
	"image"
	"os"

	"github.com/pkg/errors"
	ico "github.com/sergeymakinen/go-ico"

	"github.com/rook-computer/duelicons/internal/export"
)

// ICOSizes are embedded in the Windows container, smallest first.
var ICOSizes = []int{16, 24, 32, 48, 64, 128, 256}

const ICOName = "icon.ico"

// WriteICO resizes img to every entry of sizes and encodes all of them into
// one ICO file at path.
func WriteICO(path string, img image.Image, sizes []int) error {
	images := make([]image.Image, 0, len(sizes))
	for _, px := range sizes {
		images = append(images, export.Resize(img, px))
	}
	var buf bytes.Buffer
	if err := ico.EncodeAll(&buf, images); err != nil {
		return errors.Wrap(err, "failed to encode ico")
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}
