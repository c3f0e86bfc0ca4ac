package render

import (
	"image"
	"image/color"
	"math"

	"github.com/rook-computer/duelicons/internal/render/layout"
)

// composition holds the logo geometry resolved for one canvas size.
type composition struct {
	w, h   int
	cx, cy int
	scale  float64
}

func newComposition(bounds image.Rectangle) composition {
	w, h := bounds.Dx(), bounds.Dy()
	return composition{w: w, h: h, cx: w / 2, cy: h / 2, scale: float64(w) / ReferenceSize}
}

// px scales a reference-canvas length to this canvas.
func (c composition) px(v float64) int { return int(math.Round(v * c.scale)) }

// pxf is px without rounding, for stroke widths and blur sigmas.
func (c composition) pxf(v float64) float64 { return v * c.scale }

func (c composition) center() image.Point { return image.Pt(c.cx, c.cy) }

// cards returns the left card and its mirror image around the center column.
func (c composition) cards() (left, right image.Rectangle) {
	cardW := int(float64(c.w) * cardWidthRatio)
	cardH := int(float64(c.h) * cardHeightRatio)
	gap := int(float64(c.w) * cardGapRatio)
	top := int(float64(c.h) * cardTopRatio)
	left = layout.Box(c.cx-gap-cardW, top, c.cx-gap, top+cardH)
	return left, layout.MirrorX(left, c.cx)
}

// blades returns the two blade quadrilaterals, mirrored around the center column.
func (c composition) blades() (left, right []Point) {
	offsets := [][2]float64{{-95, 34}, {-15, -46}, {8, -23}, {-74, 55}}
	for _, o := range offsets {
		dx, dy := c.px(o[0]), c.px(o[1])
		left = append(left, pixelCenter(c.cx+dx, c.cy+dy))
		right = append(right, pixelCenter(c.cx-dx, c.cy+dy))
	}
	return left, right
}

func (c composition) particles() []image.Point {
	return []image.Point{
		{X: c.cx, Y: int(float64(c.h) * particleNearRatio)},
		{X: int(float64(c.w) * particleSideLeft), Y: c.cy},
		{X: int(float64(c.w) * particleSideRight), Y: c.cy},
		{X: c.cx, Y: int(float64(c.h) * particleFarRatio)},
	}
}

// DrawLogo paints the full icon composition onto dst in layer order:
// background, glow, cards, blades, core, particles and border ring.
func DrawLogo(dst *image.RGBA) {
	c := newComposition(dst.Bounds())
	DrawGradient(dst, GradientTop, GradientBottom)
	drawGlow(dst, c)
	drawCards(dst, c)
	drawBlades(dst, c)
	drawCore(dst, c)
	drawParticles(dst, c)
	drawBorder(dst, c)
}

// GlowAlpha is the alpha of glow ring i; it falls off linearly and floors at zero.
func GlowAlpha(i int) uint8 {
	a := glowBaseAlpha - i*glowAlphaFalloff
	if a < 0 {
		a = 0
	}
	return uint8(a)
}

func drawGlow(dst *image.RGBA, c composition) {
	glow := NewLayer(dst)
	for i := 0; i < glowRings; i++ {
		radius := int(float64(c.w) * (glowBaseRatio + float64(i)*glowStepRatio))
		ring := GlowColor
		ring.A = GlowAlpha(i)
		FillEllipse(glow, layout.Circle(c.center(), radius), ring)
	}
	CompositeBlurred(dst, glow, c.pxf(glowSigma))
}

func drawCard(dst *image.RGBA, c composition, card image.Rectangle, fill, outline, gem color.NRGBA) {
	radius := c.pxf(cardRadius)
	FillRoundedRect(dst, card, radius, fill)
	StrokeRoundedRect(dst, card, radius, c.pxf(cardOutline), outline)
	FillEllipse(dst, layout.Within(card, c.px(gemX0), c.px(gemY0), c.px(gemX1), c.px(gemY1)), gem)
}

func drawCards(dst *image.RGBA, c composition) {
	left, right := c.cards()
	drawCard(dst, c, left, LeftCardFill, LeftCardOutline, LeftCardGem)
	drawCard(dst, c, right, RightCardFill, RightCardOutline, RightCardGem)
}

func drawBlades(dst *image.RGBA, c composition) {
	blade := NewLayer(dst)
	left, right := c.blades()
	FillPolygon(blade, left, BladeColor)
	FillPolygon(blade, right, BladeColor)
	// guard across the two blade tips
	y := c.cy - c.px(46)
	StrokeLine(blade, pixelCenter(c.cx-c.px(15), y), pixelCenter(c.cx+c.px(15), y), c.pxf(guardWidth), GuardColor)
	CompositeBlurred(dst, blade, c.pxf(bladeSigma))
}

func drawCore(dst *image.RGBA, c composition) {
	FillEllipse(dst, layout.Circle(c.center(), c.px(haloRadius)), CoreHalo)
	core := layout.Circle(c.center(), c.px(coreRadius))
	FillEllipse(dst, core, CoreFill)
	StrokeEllipse(dst, core, c.pxf(coreOutline), CoreOutline)
}

func drawParticles(dst *image.RGBA, c composition) {
	r := c.px(particleRadius)
	for _, p := range c.particles() {
		FillEllipse(dst, layout.Circle(p, r), ParticleColor)
	}
}

func drawBorder(dst *image.RGBA, c composition) {
	inset := c.px(borderInset)
	ring := layout.Box(inset, inset, c.w-inset, c.h-inset)
	StrokeEllipse(dst, ring, c.pxf(borderOutline), BorderColor)
}
