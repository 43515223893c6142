package gallery

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// inlineHost is the always visible wrap of items. All cells are realised,
// an inline gallery only ever shows a handful of items.
type inlineHost struct {
	cfg  hostConfig
	view *view

	index int
	item  any

	cells    []*galleryCell
	cellSize fyne.Size
	box      *fyne.Container
	scroll   *container.Scroll

	onTapped func(index int)
}

func newInlineHost(cfg hostConfig) *inlineHost {
	h := &inlineHost{cfg: cfg, index: -1}
	h.box = container.NewGridWrap(fyne.NewSize(0, 0))
	h.scroll = container.NewVScroll(h.box)
	h.scroll.Direction = cfg.scroll
	return h
}

func (h *inlineHost) applyConfig(cfg hostConfig) {
	rebuild := cfg.orientation != h.cfg.orientation || cfg.itemSize != h.cfg.itemSize ||
		cfg.displayFormat != h.cfg.displayFormat
	h.cfg = cfg
	h.scroll.Direction = cfg.scroll
	if !cfg.selectable && h.index >= 0 {
		h.index, h.item = -1, nil
		rebuild = true
	}
	if rebuild {
		h.rebuild()
	}
}

func (h *inlineHost) setSource(v *view) {
	h.view = v
	h.index, h.item = resolveSelection(v, h.index, h.item)
	h.rebuild()
}

func (h *inlineHost) source() *view {
	return h.view
}

func (h *inlineHost) sourceChanged() {
	h.index, h.item = resolveSelection(h.view, h.index, h.item)
	h.rebuild()
}

func (h *inlineHost) selection() (int, any) {
	return h.index, h.item
}

func (h *inlineHost) setSelection(index int, item any) {
	if !h.cfg.selectable {
		index, item = -1, nil
	}
	h.index, h.item = resolveSelection(h.view, index, item)
	h.refreshSelection()
}

// innerWidth is the raw width of the item area without any chrome.
func (h *inlineHost) innerWidth() float32 {
	return h.scroll.MinSize().Width
}

func (h *inlineHost) rebuild() {
	h.cells = h.cells[:0]
	var objects []fyne.CanvasObject

	size := fyne.Size{}
	for i := 0; i < h.view.Len(); i++ {
		cell := newGalleryCell(h.cfg, i, h.tapped)
		h.cfg.bind(h.view.At(i), cell.frame.content)
		size = size.Max(cell.frame.MinSize())
		h.cells = append(h.cells, cell)
		objects = append(objects, cell)
	}
	h.cellSize = applyFixedSize(size, h.cfg.itemSize)

	if h.cfg.orientation == Vertical {
		h.box.Layout = layout.NewVBoxLayout()
	} else {
		h.box.Layout = layout.NewGridWrapLayout(h.cellSize)
	}
	h.box.Objects = objects
	h.refreshSelection()
	h.box.Refresh()
}

func (h *inlineHost) refreshSelection() {
	for i, c := range h.cells {
		c.setSelected(i == h.index)
	}
}

func (h *inlineHost) tapped(index int) {
	if !h.cfg.selectable || h.view == nil {
		return
	}
	h.index, h.item = resolveSelection(h.view, index, nil)
	h.refreshSelection()
	if h.onTapped != nil {
		h.onTapped(h.index)
	}
}

// galleryCell is one realised inline item with selection and hover feedback.
type galleryCell struct {
	widget.BaseWidget
	index int
	frame *itemFrame

	bg       *canvas.Rectangle
	hover    *canvas.Rectangle
	selected bool

	onTapped func(index int)
}

func newGalleryCell(cfg hostConfig, index int, onTapped func(int)) *galleryCell {
	c := &galleryCell{
		index:    index,
		frame:    newItemFrame(cfg),
		bg:       canvas.NewRectangle(theme.Color(theme.ColorNameSelection)),
		hover:    canvas.NewRectangle(theme.Color(theme.ColorNameHover)),
		onTapped: onTapped,
	}
	c.bg.Hide()
	c.hover.Hide()
	c.ExtendBaseWidget(c)
	return c
}

func (c *galleryCell) setSelected(selected bool) {
	if c.selected == selected {
		return
	}
	c.selected = selected
	if selected {
		c.bg.Show()
	} else {
		c.bg.Hide()
	}
	c.bg.Refresh()
}

func (c *galleryCell) Tapped(*fyne.PointEvent) {
	if c.onTapped != nil {
		c.onTapped(c.index)
	}
}

var _ desktop.Hoverable = (*galleryCell)(nil)

func (c *galleryCell) MouseIn(*desktop.MouseEvent) {
	c.hover.Show()
	c.hover.Refresh()
}

func (c *galleryCell) MouseMoved(*desktop.MouseEvent) {}

func (c *galleryCell) MouseOut() {
	c.hover.Hide()
	c.hover.Refresh()
}

func (c *galleryCell) CreateRenderer() fyne.WidgetRenderer {
	return &galleryCellRenderer{cell: c}
}

type galleryCellRenderer struct {
	cell *galleryCell
}

func (r *galleryCellRenderer) Layout(size fyne.Size) {
	r.cell.bg.Resize(size)
	r.cell.hover.Resize(size)
	r.cell.frame.Resize(size)
	r.cell.frame.Move(fyne.NewPos(0, 0))
}

func (r *galleryCellRenderer) MinSize() fyne.Size {
	return r.cell.frame.MinSize()
}

func (r *galleryCellRenderer) Refresh() {
	r.cell.bg.FillColor = theme.Color(theme.ColorNameSelection)
	r.cell.hover.FillColor = theme.Color(theme.ColorNameHover)
	r.cell.bg.Refresh()
	r.cell.hover.Refresh()
	r.cell.frame.Refresh()
}

func (r *galleryCellRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.cell.bg, r.cell.hover, r.cell.frame}
}

func (r *galleryCellRenderer) Destroy() {}
