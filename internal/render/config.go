package render

import "image/color"

// Canvas geometry. All absolute offsets below are given for a
// ReferenceSize canvas and scaled to the actual canvas width.
const (
	CanvasSize    = 1024
	ReferenceSize = 1024.0
)

// Palette, non-premultiplied.
var (
	GradientTop    = color.NRGBA{R: 18, G: 26, B: 54, A: 0xFF}
	GradientBottom = color.NRGBA{R: 6, G: 42, B: 72, A: 0xFF}

	GlowColor = color.NRGBA{R: 92, G: 107, B: 192} // alpha set per ring

	LeftCardFill     = color.NRGBA{R: 84, G: 94, B: 224, A: 0xFF}
	LeftCardOutline  = color.NRGBA{R: 57, G: 66, B: 171, A: 0xFF}
	LeftCardGem      = color.NRGBA{R: 239, G: 83, B: 80, A: 240}
	RightCardFill    = color.NRGBA{R: 40, G: 180, B: 246, A: 0xFF}
	RightCardOutline = color.NRGBA{R: 2, G: 136, B: 209, A: 0xFF}
	RightCardGem     = color.NRGBA{R: 255, G: 215, B: 0, A: 240}

	BladeColor = color.NRGBA{R: 255, G: 215, B: 0, A: 0xFF}
	GuardColor = color.NRGBA{R: 255, G: 159, B: 0, A: 0xFF}

	CoreHalo    = color.NRGBA{R: 255, G: 255, B: 255, A: 210}
	CoreFill    = color.NRGBA{R: 255, G: 179, B: 0, A: 0xFF}
	CoreOutline = color.NRGBA{R: 255, G: 235, B: 59, A: 0xFF}

	ParticleColor = color.NRGBA{R: 41, G: 182, B: 246, A: 220}
	BorderColor   = color.NRGBA{R: 255, G: 193, B: 7, A: 170}
)

// Glow aura.
const (
	glowRings        = 18
	glowBaseRatio    = 0.14
	glowStepRatio    = 0.018
	glowBaseAlpha    = 110
	glowAlphaFalloff = 6
	glowSigma        = 12.0
)

// Cards, as fractions of the canvas plus reference-pixel details.
const (
	cardWidthRatio  = 0.23
	cardHeightRatio = 0.34
	cardGapRatio    = 0.08
	cardTopRatio    = 0.31
	cardRadius      = 28
	cardOutline     = 8

	gemX0, gemY0 = 38, 40
	gemX1, gemY1 = 92, 94
)

// Blades and core.
const (
	bladeSigma  = 0.6
	guardWidth  = 8
	haloRadius  = 42
	coreRadius  = 30
	coreOutline = 4
)

// Particles and border ring.
const (
	particleRadius    = 9
	particleNearRatio = 0.18
	particleFarRatio  = 0.82
	particleSideLeft  = 0.21
	particleSideRight = 0.79

	borderInset   = 20
	borderOutline = 8
)
