package render

import (
	"context"
	"image"

	"github.com/pkg/errors"

	"github.com/rook-computer/duelicons/internal/system"
)

// Renderer produces the finished icon canvas.
type Renderer interface {
	Render(ctx context.Context) (*image.RGBA, error)
}

// LogoRenderer draws the logo onto a fresh transparent canvas of Size pixels.
type LogoRenderer struct {
	Size   int
	Logger system.Logger
}

func NewLogoRenderer() *LogoRenderer { return &LogoRenderer{Size: CanvasSize} }

func (r *LogoRenderer) Render(ctx context.Context) (*image.RGBA, error) {
	if r.Size < 1 {
		return nil, errors.Errorf("invalid canvas size %d", r.Size)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	canvas := NewCanvas(r.Size)
	DrawLogo(canvas)
	if r.Logger != nil {
		r.Logger.Infof("render", "logo rendered, canvas=%dx%d", r.Size, r.Size)
	}
	return canvas, nil
}
