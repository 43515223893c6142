package gallery

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
)

func TestRowFit_CurrentStaysInBounds(t *testing.T) {
	for _, b := range []struct{ min, max int }{{1, 1}, {1, 8}, {3, 5}, {2, 2}} {
		r := newRowFit(b.min, b.max)
		for i := 0; i < 20; i++ {
			r.reduce()
			assert.GreaterOrEqual(t, r.current(), b.min)
			assert.LessOrEqual(t, r.current(), b.max)
		}
		assert.Equal(t, b.min, r.current(), "pinned at the floor")
		assert.Equal(t, b.min-1, r.requested(), "one step below the floor is observable")

		for i := 0; i < 20; i++ {
			r.enlarge()
			assert.GreaterOrEqual(t, r.current(), b.min)
			assert.LessOrEqual(t, r.current(), b.max)
		}
		assert.Equal(t, b.max, r.current())
		assert.Equal(t, 0, r.delta)
	}
}

func TestRowFit_SetBoundsNormalises(t *testing.T) {
	r := newRowFit(0, -3)
	assert.Equal(t, 1, r.min)
	assert.Equal(t, 1, r.max)

	r = newRowFit(2, 6)
	for i := 0; i < 4; i++ {
		r.reduce()
	}
	assert.Equal(t, 2, r.current())
	r.setBounds(2, 3)
	assert.Equal(t, -2, r.delta, "delta is clamped to the new range")
	assert.Equal(t, 2, r.current())
}

func TestRowFit_DesiredWidth(t *testing.T) {
	r := newRowFit(1, 4)
	r.setChrome(20)
	assert.Equal(t, float32(4*50+20), r.desiredWidth(50))

	r.reduce()
	assert.Equal(t, float32(3*50+20), r.desiredWidth(50))

	r.invalidateChrome()
	assert.False(t, r.chromeValid)
	r.setChrome(-5)
	assert.Equal(t, float32(0), r.chrome)
}

func TestRowFit_ReportOnlyOnChange(t *testing.T) {
	r := newRowFit(1, 4)
	size := fyne.NewSize(220, 40)

	assert.True(t, r.report(size))
	assert.False(t, r.report(size))
	assert.False(t, r.report(fyne.NewSize(220.2, 40)))
	assert.True(t, r.report(fyne.NewSize(170, 40)))
	assert.True(t, r.report(fyne.NewSize(170, 48)))
}
