package gallery

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// itemHost is a surface that shows the gallery's view with a single selection.
// Hosts are written only by the gallery.
type itemHost interface {
	setSource(v *view)
	source() *view
	// sourceChanged re-reads the view after a refresh. The selected item is
	// kept if it is still visible, otherwise the selection is cleared.
	sourceChanged()
	selection() (int, any)
	setSelection(index int, item any)
	applyConfig(cfg hostConfig)
}

// resolveSelection picks the index and item a host should select. An index
// that is in range and still holds item is kept, so duplicates stay where
// they were. Otherwise the item is looked up again.
func resolveSelection(v *view, index int, item any) (int, any) {
	if v == nil {
		return -1, nil
	}
	if index >= 0 && index < v.Len() {
		if at := v.At(index); item == nil || sameItem(at, item) {
			return index, at
		}
	}
	if item != nil {
		if i := v.IndexOf(item); i >= 0 {
			return i, v.At(i)
		}
	}
	return -1, nil
}

func (c hostConfig) format(item any) string {
	if c.displayFormat != "" {
		return fmt.Sprintf(c.displayFormat, item)
	}
	return fmt.Sprint(item)
}

func (c hostConfig) newItem() fyne.CanvasObject {
	if c.createItem != nil {
		return c.createItem()
	}
	l := widget.NewLabel("")
	l.Alignment = fyne.TextAlignCenter
	l.Truncation = fyne.TextTruncateEllipsis
	return l
}

func (c hostConfig) bind(item any, obj fyne.CanvasObject) {
	if c.updateItem != nil {
		c.updateItem(item, obj)
		return
	}
	if l, ok := obj.(*widget.Label); ok {
		l.SetText(c.format(item))
	}
}

// itemFrame holds one item template and enforces the configured item size.
type itemFrame struct {
	widget.BaseWidget
	content fyne.CanvasObject
	fixed   fyne.Size
}

func newItemFrame(cfg hostConfig) *itemFrame {
	f := &itemFrame{content: cfg.newItem(), fixed: cfg.itemSize}
	f.ExtendBaseWidget(f)
	return f
}

func (f *itemFrame) MinSize() fyne.Size {
	f.ExtendBaseWidget(f)
	return applyFixedSize(f.content.MinSize(), f.fixed)
}

func (f *itemFrame) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(f.content)
}

// applyFixedSize overrides the measured dimensions that are configured.
func applyFixedSize(measured, fixed fyne.Size) fyne.Size {
	if fixed.Width > 0 {
		measured.Width = fixed.Width
	}
	if fixed.Height > 0 {
		measured.Height = fixed.Height
	}
	return measured
}

// measureItem returns the desired size of item, materialising a throwaway
// frame for it. Nothing is cached so template changes show up next pass.
func measureItem(cfg hostConfig, item any) fyne.Size {
	if cfg.itemSize.Width > 0 && cfg.itemSize.Height > 0 {
		return cfg.itemSize
	}
	probe := newItemFrame(cfg)
	cfg.bind(item, probe.content)
	return probe.MinSize()
}
