package layout

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoxIsInclusive(t *testing.T) {
	b := Box(10, 20, 19, 29)
	assert.Equal(t, 10, b.Dx())
	assert.Equal(t, 10, b.Dy())
	assert.Equal(t, b, Box(19, 29, 10, 20))
	assert.Equal(t, image.Rect(10, 20, 20, 30), Box(19, 29, 10, 20))
	assert.Equal(t, image.Rect(10, 20, 20, 30), Box(10, 29, 19, 20))
}

func TestCircle(t *testing.T) {
	c := Circle(image.Pt(512, 512), 30)
	assert.Equal(t, image.Rect(482, 482, 543, 543), c)
	assert.Equal(t, c, Circle(image.Pt(512, 512), -30))
}

func TestMirrorX(t *testing.T) {
	// left card of the 1024 composition: pixels 206..441 mirrored around 512
	left := Box(206, 317, 441, 665)
	right := MirrorX(left, 512)
	assert.Equal(t, Box(583, 317, 818, 665), right)
	assert.Equal(t, left, MirrorX(right, 512))
}

func TestWithin(t *testing.T) {
	card := Box(100, 200, 300, 400)
	assert.Equal(t, Box(138, 240, 192, 294), Within(card, 38, 40, 92, 94))
}
