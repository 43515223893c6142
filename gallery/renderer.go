package gallery

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"

	"github.com/alexballas/xgallery/internal/logging"
)

type galleryRenderer struct {
	g *InlineGallery
}

// live returns the visual children ignoring any snapshot.
func (r *galleryRenderer) live() []fyne.CanvasObject {
	if r.g.collapsed {
		return []fyne.CanvasObject{r.g.dropDown}
	}
	return []fyne.CanvasObject{r.g.inline.scroll, r.g.expand}
}

func (r *galleryRenderer) Layout(size fyne.Size) {
	g := r.g
	if g.snap.frozen() {
		g.snap.image.Move(fyne.NewPos(0, 0))
		g.snap.image.Resize(g.snap.size)
	}
	if g.collapsed {
		g.dropDown.Move(fyne.NewPos(0, 0))
		g.dropDown.Resize(size)
		return
	}

	ew := g.expand.MinSize().Width
	g.inline.scroll.Move(fyne.NewPos(0, 0))
	g.inline.scroll.Resize(fyne.NewSize(fyne.Max(size.Width-ew-theme.Padding(), 0), size.Height))
	g.expand.Move(fyne.NewPos(size.Width-ew, 0))
	g.expand.Resize(fyne.NewSize(ew, size.Height))
}

func (r *galleryRenderer) naturalSize() fyne.Size {
	inner := r.g.inline.scroll.MinSize()
	button := r.g.expand.MinSize()
	return fyne.NewSize(inner.Width+theme.Padding()+button.Width, fyne.Max(inner.Height, button.Height))
}

// MinSize runs one row fit pass.
func (r *galleryRenderer) MinSize() fyne.Size {
	g := r.g
	if g.snap.active {
		return g.snap.size
	}
	if g.collapsed {
		size := g.dropDown.MinSize()
		g.scaled(size)
		return size
	}

	natural := r.naturalSize()
	if g.v.Len() == 0 {
		return natural
	}
	if !g.fit.chromeValid {
		g.fit.setChrome(natural.Width - g.inline.innerWidth())
	}

	item := measureItem(g.hostConfig(), g.v.At(0))
	button := g.expand.MinSize()
	pad := theme.Padding()
	var size fyne.Size
	if g.Orientation == Vertical {
		rows := float32(g.fit.current())
		size = fyne.NewSize(item.Width+g.fit.chrome, fyne.Max(rows*(item.Height+pad)-pad, button.Height))
	} else {
		size = fyne.NewSize(g.fit.desiredWidth(item.Width+pad), fyne.Max(item.Height, button.Height))
	}
	g.scaled(size)
	return size
}

func (r *galleryRenderer) Refresh() {
	r.Layout(r.g.Size())
	for _, o := range r.live() {
		o.Refresh()
	}
	canvas.Refresh(r.g)
}

func (r *galleryRenderer) Objects() []fyne.CanvasObject {
	return r.g.snap.objects(r.live())
}

func (r *galleryRenderer) Destroy() {
	r.g.renderer = nil
}

// scaled notifies the parent when the desired size changed since the last pass.
func (g *InlineGallery) scaled(size fyne.Size) {
	if !g.fit.report(size) {
		return
	}
	logging.Logger().Debug("scaled", "width", size.Width, "height", size.Height)
	if g.OnScaled != nil {
		g.OnScaled(size)
	}
}
