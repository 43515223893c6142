package gallery

import (
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/lang"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// panelHost is the overlay presentation: filter bar, the full item gallery
// and the auxiliary menu bar. One panel exists per gallery and it travels
// between the dropdown overlay and quick access surfaces.
type panelHost struct {
	widget.BaseWidget

	cfg  hostConfig
	view *view

	index   int
	item    any
	syncing bool

	grid *widget.GridWrap
	list *widget.List

	// filters mirrors the gallery's filters for the panel's own filter bar.
	filters      []*GroupFilter
	active       *GroupFilter
	filterSelect *widget.Select
	filterIcon   *widget.Icon
	filterBar    *fyne.Container
	iconFor      func(group string) fyne.Resource

	menuBar *fyne.Container
	body    *fyne.Container

	resizeMode ResizeMode
	minSize    fyne.Size

	onSelected     func(index int)
	onFilterChosen func(f *GroupFilter)
}

func newPanelHost(cfg hostConfig) *panelHost {
	p := &panelHost{cfg: cfg, index: -1}

	p.grid = widget.NewGridWrap(
		func() int { return p.view.Len() },
		func() fyne.CanvasObject { return newItemFrame(p.cfg) },
		func(id widget.GridWrapItemID, o fyne.CanvasObject) {
			p.cfg.bind(p.view.At(id), o.(*itemFrame).content)
		},
	)
	p.grid.OnSelected = func(id widget.GridWrapItemID) {
		p.userSelected(id)
	}

	p.list = widget.NewList(
		func() int { return p.view.Len() },
		func() fyne.CanvasObject { return newItemFrame(p.cfg) },
		func(id widget.ListItemID, o fyne.CanvasObject) {
			p.cfg.bind(p.view.At(id), o.(*itemFrame).content)
		},
	)
	p.list.OnSelected = func(id widget.ListItemID) {
		p.userSelected(id)
	}

	p.filterSelect = widget.NewSelect(nil, func(title string) {
		if p.syncing {
			return
		}
		for _, f := range p.filters {
			if f.Title == title && p.onFilterChosen != nil {
				p.onFilterChosen(f)
				return
			}
		}
	})
	p.filterSelect.PlaceHolder = filterPlaceholder(cfg)
	p.filterIcon = widget.NewIcon(nil)
	p.filterIcon.Hide()
	p.filterBar = container.NewBorder(nil, nil, p.filterIcon, nil, p.filterSelect)
	p.filterBar.Hide()

	p.menuBar = container.NewVBox()
	p.body = container.NewBorder(p.filterBar, p.menuBar, nil, nil, p.items())

	p.ExtendBaseWidget(p)
	return p
}

func filterPlaceholder(cfg hostConfig) string {
	if cfg.groupBy != "" {
		return cfg.groupBy
	}
	return lang.L("Filter")
}

func (p *panelHost) items() fyne.CanvasObject {
	if p.cfg.orientation == Vertical {
		return p.list
	}
	return p.grid
}

func (p *panelHost) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.body)
}

func (p *panelHost) MinSize() fyne.Size {
	p.ExtendBaseWidget(p)
	return p.BaseWidget.MinSize().Max(p.minSize)
}

func (p *panelHost) setMinSize(size fyne.Size) {
	p.minSize = size
}

func (p *panelHost) applyConfig(cfg hostConfig) {
	relayout := cfg.orientation != p.cfg.orientation
	p.cfg = cfg
	p.filterSelect.PlaceHolder = filterPlaceholder(cfg)
	if !cfg.selectable && p.index >= 0 {
		p.setSelection(-1, nil)
	}
	if relayout {
		p.body.Objects = []fyne.CanvasObject{p.filterBar, p.menuBar, p.items()}
		p.body.Layout = layout.NewBorderLayout(p.filterBar, p.menuBar, nil, nil)
		p.body.Refresh()
	}
	p.refreshItems()
}

func (p *panelHost) refreshItems() {
	if p.cfg.orientation == Vertical {
		p.list.Refresh()
	} else {
		p.grid.Refresh()
	}
}

func (p *panelHost) setSource(v *view) {
	p.view = v
	p.index, p.item = resolveSelection(v, p.index, p.item)
	p.refreshItems()
	p.syncVisualSelection()
}

func (p *panelHost) source() *view {
	return p.view
}

func (p *panelHost) sourceChanged() {
	p.index, p.item = resolveSelection(p.view, p.index, p.item)
	p.refreshItems()
	p.syncVisualSelection()
}

func (p *panelHost) selection() (int, any) {
	return p.index, p.item
}

func (p *panelHost) setSelection(index int, item any) {
	if !p.cfg.selectable {
		index, item = -1, nil
	}
	p.index, p.item = resolveSelection(p.view, index, item)
	p.syncVisualSelection()
}

func (p *panelHost) syncVisualSelection() {
	p.syncing = true
	defer func() { p.syncing = false }()

	if p.index < 0 {
		p.grid.UnselectAll()
		p.list.UnselectAll()
		return
	}
	if p.cfg.orientation == Vertical {
		p.list.Select(p.index)
	} else {
		p.grid.Select(p.index)
	}
}

func (p *panelHost) userSelected(id int) {
	if p.syncing {
		return
	}
	if !p.cfg.selectable {
		p.syncVisualSelection()
		return
	}
	p.index, p.item = resolveSelection(p.view, id, nil)
	if p.onSelected != nil {
		p.onSelected(p.index)
	}
}

func (p *panelHost) setMenuItems(items []fyne.CanvasObject) {
	p.menuBar.Objects = slices.Clone(items)
	p.menuBar.Refresh()
}

func (p *panelHost) menuItems() []fyne.CanvasObject {
	return slices.Clone(p.menuBar.Objects)
}

func (p *panelHost) filterAdded(f *GroupFilter) {
	p.filters = append(p.filters, f)
	p.refreshFilterBar()
}

func (p *panelHost) filterRemoved(f *GroupFilter) {
	if i := slices.Index(p.filters, f); i >= 0 {
		p.filters = slices.Delete(p.filters, i, i+1)
	}
	p.refreshFilterBar()
}

// showActiveFilter reflects the gallery's active filter without raising a
// filter chosen callback.
func (p *panelHost) showActiveFilter(f *GroupFilter) {
	p.active = f
	p.refreshFilterBar()
}

func (p *panelHost) refreshFilterBar() {
	p.syncing = true
	defer func() { p.syncing = false }()

	titles := make([]string, 0, len(p.filters))
	for _, f := range p.filters {
		titles = append(titles, f.Title)
	}
	p.filterSelect.SetOptions(titles)
	if p.active != nil {
		p.filterSelect.SetSelected(p.active.Title)
	} else {
		p.filterSelect.ClearSelected()
	}

	var icon fyne.Resource
	if p.active != nil && len(p.active.Groups) > 0 && p.iconFor != nil {
		icon = p.iconFor(p.active.Groups[0])
	}
	p.filterIcon.SetResource(icon)
	if icon == nil {
		p.filterIcon.Hide()
	} else {
		p.filterIcon.Show()
	}

	if len(p.filters) == 0 {
		p.filterBar.Hide()
	} else {
		p.filterBar.Show()
	}
}
