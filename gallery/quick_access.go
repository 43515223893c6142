package gallery

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// QuickAccessButton is a compact proxy for a gallery, e.g. for a toolbar.
// Opening it borrows the gallery's items and menu items until it closes.
type QuickAccessButton struct {
	widget.BaseWidget

	gallery *InlineGallery
	button  *widget.Button
	surface *overlaySurface
}

// NewQuickAccessButton creates a proxy that mirrors this gallery.
func (g *InlineGallery) NewQuickAccessButton() *QuickAccessButton {
	q := &QuickAccessButton{gallery: g}
	q.button = widget.NewButtonWithIcon(g.Text, g.Icon, q.toggle)
	q.surface = newOverlaySurface(q.Close)
	q.ExtendBaseWidget(q)
	return q
}

func (q *QuickAccessButton) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(q.button)
}

func (q *QuickAccessButton) Refresh() {
	q.button.SetText(q.gallery.Text)
	q.button.SetIcon(q.gallery.Icon)
	q.BaseWidget.Refresh()
}

func (q *QuickAccessButton) IsOpen() bool {
	return q.gallery.qa != nil && q.gallery.qa.button == q
}

// Open moves the gallery's items into this button's popup.
func (q *QuickAccessButton) Open() {
	if q.IsOpen() {
		return
	}
	g := q.gallery
	g.openQuickAccess(q)
	q.surface.setContent(g.panel)

	if c := canvasFor(q); c != nil {
		want := g.panel.MinSize()
		want.Width = fyne.Max(want.Width, g.MenuMinWidth)
		pos, size := fitPanel(c.Size(), anchorPosition(q, true), want, g.panel.resizeMode)
		q.surface.showAt(c, pos, size)
		c.Unfocus()
	}
	q.button.Importance = widget.HighImportance
	q.button.Refresh()
}

// Close hands the items back to wherever they were taken from.
func (q *QuickAccessButton) Close() {
	if !q.IsOpen() {
		return
	}
	q.surface.hide()
	q.surface.setContent(nil)
	q.gallery.closeQuickAccess(q)
	q.button.Importance = widget.MediumImportance
	q.button.Refresh()
}

func (q *QuickAccessButton) toggle() {
	if q.IsOpen() {
		q.Close()
		return
	}
	q.Open()
}
