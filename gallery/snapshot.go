package gallery

import (
	"image"
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"golang.org/x/image/draw"
)

//go:generate mockgen -package=gallery -destination=mock_snapshotter_test.go github.com/alexballas/xgallery/gallery Snapshotter

// Snapshotter rasterises a rendered object so the gallery can show a frozen
// copy of itself while its items move to another host. A nil image keeps the
// live objects on screen, for drivers where reparenting does not flicker.
type Snapshotter interface {
	Snapshot(obj fyne.CanvasObject, size fyne.Size) image.Image
}

// CanvasSnapshotter captures the canvas the object is drawn on and crops the
// object's area out of it.
type CanvasSnapshotter struct{}

func (CanvasSnapshotter) Snapshot(obj fyne.CanvasObject, size fyne.Size) image.Image {
	w, h := int(size.Width), int(size.Height)
	if w <= 0 || h <= 0 {
		return nil
	}

	var c fyne.Canvas
	if app := fyne.CurrentApp(); app != nil {
		c = app.Driver().CanvasForObject(obj)
	}
	if c == nil {
		// Not on screen yet: a blank frame of the right size keeps layout stable.
		return image.NewNRGBA(image.Rect(0, 0, w, h))
	}

	scale := c.Scale()
	pos := fyne.CurrentApp().Driver().AbsolutePositionForObject(obj)
	src := c.Capture()
	if src == nil {
		return image.NewNRGBA(image.Rect(0, 0, w, h))
	}

	srcRect := image.Rect(
		int(pos.X*scale), int(pos.Y*scale),
		int((pos.X+size.Width)*scale), int((pos.Y+size.Height)*scale),
	).Intersect(src.Bounds())

	dst := image.NewNRGBA(image.Rect(0, 0, int(float32(w)*scale), int(float32(h)*scale)))
	if srcRect.Empty() {
		return dst
	}
	// Nearest neighbour keeps the frozen frame pixel identical to the live one.
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, srcRect, draw.Src, nil)
	return dst
}

// NoSnapshot never freezes the visual tree.
type NoSnapshot struct{}

func (NoSnapshot) Snapshot(fyne.CanvasObject, fyne.Size) image.Image {
	return nil
}

// snapshot swaps the visual children of a renderer for a single frozen image.
// Only visual enumeration is affected.
type snapshot struct {
	active bool
	image  *canvas.Image
	size   fyne.Size
	saved  []fyne.CanvasObject
}

// engage freezes live into img. It is a no-op when already engaged and
// reports whether the state changed.
func (s *snapshot) engage(live []fyne.CanvasObject, img image.Image, size fyne.Size) bool {
	if s.active {
		return false
	}
	s.active = true
	s.size = size
	s.saved = slices.Clone(live)
	if img != nil {
		s.image = canvas.NewImageFromImage(img)
		s.image.FillMode = canvas.ImageFillStretch
		s.image.ScaleMode = canvas.ImageScalePixels
		s.image.Resize(size)
		s.image.Move(fyne.NewPos(0, 0))
	}
	return true
}

// disengage restores and returns the original children in their original order.
func (s *snapshot) disengage() ([]fyne.CanvasObject, bool) {
	if !s.active {
		return nil, false
	}
	restored := s.saved
	s.active = false
	s.image = nil
	s.saved = nil
	s.size = fyne.Size{}
	return restored, true
}

// objects returns what should be drawn given the live children.
func (s *snapshot) objects(live []fyne.CanvasObject) []fyne.CanvasObject {
	if s.active && s.image != nil {
		return []fyne.CanvasObject{s.image}
	}
	return live
}

func (s *snapshot) frozen() bool {
	return s.active && s.image != nil
}
