package gallery

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// overlaySurface is a canvas wide overlay that shows one piece of content at
// a position. Taps that miss the content dismiss it, like a popup does.
type overlaySurface struct {
	widget.BaseWidget

	content fyne.CanvasObject
	bg      *canvas.Rectangle

	canvas fyne.Canvas
	pos    fyne.Position
	size   fyne.Size
	shown  bool

	onDismiss func()
}

func newOverlaySurface(onDismiss func()) *overlaySurface {
	s := &overlaySurface{
		bg:        canvas.NewRectangle(theme.Color(theme.ColorNameOverlayBackground)),
		onDismiss: onDismiss,
	}
	s.bg.StrokeColor = theme.Color(theme.ColorNameShadow)
	s.bg.StrokeWidth = 1
	s.ExtendBaseWidget(s)
	return s
}

// setContent swaps what the surface presents. Passing nil detaches the
// previous content so it can be placed elsewhere.
func (s *overlaySurface) setContent(obj fyne.CanvasObject) {
	s.content = obj
	s.Refresh()
}

func (s *overlaySurface) showAt(c fyne.Canvas, pos fyne.Position, size fyne.Size) {
	s.pos, s.size = pos, size
	if c == nil {
		return
	}
	if s.shown && s.canvas != c {
		s.hide()
	}
	s.canvas = c
	if !s.shown {
		c.Overlays().Add(s)
		s.shown = true
	}
	s.Resize(c.Size())
	s.Show()
	s.Refresh()
}

func (s *overlaySurface) hide() {
	if !s.shown {
		return
	}
	s.shown = false
	s.Hide()
	if s.canvas != nil {
		s.canvas.Overlays().Remove(s)
	}
}

func (s *overlaySurface) visible() bool {
	return s.shown
}

func (s *overlaySurface) inside(p fyne.Position) bool {
	return p.X >= s.pos.X && p.Y >= s.pos.Y &&
		p.X <= s.pos.X+s.size.Width && p.Y <= s.pos.Y+s.size.Height
}

func (s *overlaySurface) Tapped(e *fyne.PointEvent) {
	if s.inside(e.Position) {
		return
	}
	if s.onDismiss != nil {
		s.onDismiss()
	}
}

func (s *overlaySurface) TappedSecondary(e *fyne.PointEvent) {
	s.Tapped(e)
}

func (s *overlaySurface) CreateRenderer() fyne.WidgetRenderer {
	return &overlaySurfaceRenderer{s: s}
}

type overlaySurfaceRenderer struct {
	s *overlaySurface
}

func (r *overlaySurfaceRenderer) Layout(fyne.Size) {
	r.s.bg.Move(r.s.pos)
	r.s.bg.Resize(r.s.size)
	if r.s.content != nil {
		r.s.content.Move(r.s.pos)
		r.s.content.Resize(r.s.size)
	}
}

func (r *overlaySurfaceRenderer) MinSize() fyne.Size {
	return fyne.NewSize(0, 0)
}

func (r *overlaySurfaceRenderer) Refresh() {
	r.s.bg.FillColor = theme.Color(theme.ColorNameOverlayBackground)
	r.s.bg.StrokeColor = theme.Color(theme.ColorNameShadow)
	r.Layout(r.s.Size())
	r.s.bg.Refresh()
	if r.s.content != nil {
		r.s.content.Refresh()
	}
}

func (r *overlaySurfaceRenderer) Objects() []fyne.CanvasObject {
	if r.s.content == nil {
		return []fyne.CanvasObject{r.s.bg}
	}
	return []fyne.CanvasObject{r.s.bg, r.s.content}
}

func (r *overlaySurfaceRenderer) Destroy() {}

// fitPanel grows want according to mode and keeps the panel inside area.
func fitPanel(area fyne.Size, pos fyne.Position, want fyne.Size, mode ResizeMode) (fyne.Position, fyne.Size) {
	size := want
	switch mode {
	case ResizeBoth:
		size.Width = fyne.Max(size.Width, area.Width-pos.X-panelGrowPadding)
		fallthrough
	case ResizeVertical:
		size.Height = fyne.Max(size.Height, area.Height-pos.Y-panelGrowPadding)
	}

	size.Width = fyne.Min(size.Width, area.Width)
	size.Height = fyne.Min(size.Height, area.Height)
	if pos.X+size.Width > area.Width {
		pos.X = area.Width - size.Width
	}
	if pos.Y+size.Height > area.Height {
		pos.Y = area.Height - size.Height
	}
	pos.X = fyne.Max(pos.X, 0)
	pos.Y = fyne.Max(pos.Y, 0)
	return pos, size
}

// anchorPosition places a panel below anchor when it is a collapsed button,
// or over the anchor otherwise.
func anchorPosition(anchor fyne.CanvasObject, below bool) fyne.Position {
	app := fyne.CurrentApp()
	if app == nil {
		return fyne.NewPos(0, 0)
	}
	pos := app.Driver().AbsolutePositionForObject(anchor)
	if below {
		pos.Y += anchor.Size().Height
	}
	return pos
}

func canvasFor(obj fyne.CanvasObject) fyne.Canvas {
	app := fyne.CurrentApp()
	if app == nil {
		return nil
	}
	return app.Driver().CanvasForObject(obj)
}
