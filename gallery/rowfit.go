package gallery

import "fyne.io/fyne/v2"

// rowFit computes how many items fit in one inline row and remembers the last
// width reported upwards so the scaled notification only fires on change.
type rowFit struct {
	min, max int
	// delta is moved by Enlarge and Reduce, never positive. It may go one
	// step below the minimum so the collapse rule can observe an underflow.
	delta int

	chrome      float32
	chromeValid bool

	reported fyne.Size
}

func newRowFit(min, max int) *rowFit {
	r := &rowFit{}
	r.setBounds(min, max)
	return r
}

func (r *rowFit) setBounds(min, max int) {
	if min < 1 {
		min = 1
	}
	if max < min {
		max = min
	}
	r.min, r.max = min, max
	r.delta = r.clampDelta(r.delta)
}

// requested is max + delta before clamping into [min, max].
func (r *rowFit) requested() int {
	return r.max + r.delta
}

func (r *rowFit) current() int {
	return clampItemsInRow(r.requested(), r.min, r.max)
}

func clampItemsInRow(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

func (r *rowFit) clampDelta(d int) int {
	floor := r.min - r.max - 1
	if d < floor {
		return floor
	}
	if d > 0 {
		return 0
	}
	return d
}

func (r *rowFit) enlarge() {
	r.delta = r.clampDelta(r.delta + 1)
}

func (r *rowFit) reduce() {
	r.delta = r.clampDelta(r.delta - 1)
}

// invalidateChrome drops the cached chrome width, e.g. after a theme change.
func (r *rowFit) invalidateChrome() {
	r.chromeValid = false
	r.chrome = 0
}

func (r *rowFit) setChrome(w float32) {
	if w < 0 {
		w = 0
	}
	r.chrome = w
	r.chromeValid = true
}

func (r *rowFit) desiredWidth(itemWidth float32) float32 {
	return float32(r.current())*itemWidth + r.chrome
}

// report records the size of a measurement pass and reports whether it
// differs from the previous one.
func (r *rowFit) report(size fyne.Size) bool {
	if abs32(size.Width-r.reported.Width) < 0.5 && abs32(size.Height-r.reported.Height) < 0.5 {
		return false
	}
	r.reported = size
	return true
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
