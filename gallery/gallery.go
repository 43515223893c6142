package gallery

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/alexballas/xgallery/internal/logging"
)

var (
	// ErrItemSourceInUse is returned when the owned item collection is
	// mutated while an external item source is bound.
	ErrItemSourceInUse = errors.New("items are bound to an external source")
	// ErrUnknownFilter is returned when selecting a filter that was never added.
	ErrUnknownFilter = errors.New("filter is not registered")
)

var _ Scalable = (*InlineGallery)(nil)

// InlineGallery shows a row of items inline and promotes them into an overlay
// panel on demand. When its parent shrinks it collapses into a single button.
type InlineGallery struct {
	widget.BaseWidget

	// Text and Icon are shown on the collapsed button and quick access proxies.
	Text string
	Icon fyne.Resource

	Orientation   Orientation
	MinItemsInRow int
	MaxItemsInRow int
	CanCollapse   bool
	Selectable    bool

	ResizeMode   ResizeMode
	MenuMinWidth float32

	// ItemSize fixes the item dimensions that are non zero, the rest are measured.
	ItemSize        fyne.Size
	DisplayFormat   string
	ScrollDirection container.ScrollDirection
	CreateItem      func() fyne.CanvasObject
	UpdateItem      func(item any, obj fyne.CanvasObject)

	// Snapshotter freezes the inline items while they move to the overlay.
	// CanvasSnapshotter is used when nil.
	Snapshotter Snapshotter

	OnOpened   func()
	OnClosed   func()
	OnScaled   func(size fyne.Size)
	OnSelected func(index int, item any)

	items          []any
	source         binding.UntypedList
	sourceListener binding.DataListener

	groupBy  string
	accessor GroupAccessor
	filters  filterSet
	v        *view

	inline *inlineHost
	panel  *panelHost
	menu   []fyne.CanvasObject

	selIndex    int
	selItem     any
	selBinding  binding.Int
	selListener binding.DataListener

	scale     ScaleSize
	fit       *rowFit
	chromeKey chromeKey
	collapsed bool

	state   overlayState
	owner   owner
	session *overlaySession
	qa      *quickAccessSession
	surface *overlaySurface

	snap     snapshot
	renderer *galleryRenderer
	expand   *widget.Button
	dropDown *widget.Button
}

// NewInlineGallery creates a gallery that owns a copy of items.
func NewInlineGallery(items []any) *InlineGallery {
	g := newGallery()
	g.items = slices.Clone(items)
	if err := g.v.rebind(g.items); err != nil {
		logging.Logger().Error("initial items", "error", err)
	}
	return g
}

// NewInlineGalleryWithData creates a gallery bound to an external item source.
func NewInlineGalleryWithData(source binding.UntypedList) *InlineGallery {
	g := newGallery()
	if err := g.SetItemSource(source); err != nil {
		logging.Logger().Error("initial item source", "error", err)
	}
	return g
}

func newGallery() *InlineGallery {
	g := &InlineGallery{
		MinItemsInRow:   DefaultMinItemsInRow,
		MaxItemsInRow:   DefaultMaxItemsInRow,
		CanCollapse:     true,
		Selectable:      true,
		ScrollDirection: container.ScrollVerticalOnly,
		selIndex:        -1,
	}
	g.fit = newRowFit(g.MinItemsInRow, g.MaxItemsInRow)
	g.v = newView(g.accepts)
	g.inline = newInlineHost(g.hostConfig())
	g.inline.onTapped = func(int) {
		g.publish(g.inline.selection())
	}
	g.inline.setSource(g.v)
	g.v.observe(g.viewChanged)

	g.expand = widget.NewButtonWithIcon("", theme.MenuDropDownIcon(), g.toggleOpen)
	g.dropDown = widget.NewButtonWithIcon("", theme.MenuDropDownIcon(), g.toggleOpen)
	g.ExtendBaseWidget(g)
	return g
}

// SetLogLevel sets the level of the package logger. It is error by default.
func SetLogLevel(level slog.Level) {
	logging.SetLevel(level)
}

// SetRawLogLevel accepts a level name such as "debug", e.g. from an
// environment variable.
func SetRawLogLevel(raw string) {
	logging.SetRawLevel(raw)
}

// SetLogOutput redirects log records. Call it before the first gallery is created.
func SetLogOutput(w io.Writer) {
	logging.SetOutput(w)
}

func (g *InlineGallery) CreateRenderer() fyne.WidgetRenderer {
	g.ExtendBaseWidget(g)
	g.fit.invalidateChrome()
	g.applyConfig()
	g.renderer = &galleryRenderer{g: g}
	return g.renderer
}

// Refresh pushes the current configuration into both hosts and redraws.
func (g *InlineGallery) Refresh() {
	g.applyConfig()
	g.BaseWidget.Refresh()
}

func (g *InlineGallery) hostConfig() hostConfig {
	return hostConfig{
		displayFormat: g.DisplayFormat,
		createItem:    g.CreateItem,
		updateItem:    g.UpdateItem,
		itemSize:      g.ItemSize,
		scroll:        g.ScrollDirection,
		groupBy:       g.groupBy,
		orientation:   g.Orientation,
		selectable:    g.Selectable,
	}
}

func (g *InlineGallery) applyConfig() {
	g.fit.setBounds(g.MinItemsInRow, g.MaxItemsInRow)
	if key := g.currentChromeKey(); key != g.chromeKey {
		g.chromeKey = key
		g.fit.invalidateChrome()
	}
	if !g.CanCollapse {
		g.setCollapsed(false)
	}

	cfg := g.hostConfig()
	g.inline.applyConfig(cfg)
	if g.panel != nil {
		g.panel.applyConfig(cfg)
		g.panel.resizeMode = g.ResizeMode
	}
	g.publish(g.hostFor(g.owner).selection())

	icon := g.Icon
	if icon == nil {
		icon = theme.MenuDropDownIcon()
	}
	g.dropDown.Text = g.Text
	g.dropDown.Icon = icon
}

// chromeKey covers what the cached chrome width depends on: the theme
// metrics, the item template and the orientation.
type chromeKey struct {
	orientation Orientation
	itemSize    fyne.Size
	format      string
	template    uintptr
	padding     float32
	scrollBar   float32
}

func (g *InlineGallery) currentChromeKey() chromeKey {
	return chromeKey{
		orientation: g.Orientation,
		itemSize:    g.ItemSize,
		format:      g.DisplayFormat,
		template:    reflect.ValueOf(g.CreateItem).Pointer(),
		padding:     theme.Padding(),
		scrollBar:   theme.ScrollBarSize(),
	}
}

// Items returns the items of the gallery before filtering.
func (g *InlineGallery) Items() []any {
	return slices.Clone(g.sourceItems())
}

// VisibleItems returns the items that pass the active filter.
func (g *InlineGallery) VisibleItems() []any {
	return g.v.Items()
}

// SetItems replaces the items and unbinds any external item source.
func (g *InlineGallery) SetItems(items []any) error {
	g.unbindSource()
	g.items = slices.Clone(items)
	return g.rebindView()
}

// Append adds items to the owned collection.
func (g *InlineGallery) Append(items ...any) error {
	if g.source != nil {
		return ErrItemSourceInUse
	}
	g.items = append(g.items, items...)
	return g.rebindView()
}

// Remove deletes the first occurrence of item from the owned collection.
func (g *InlineGallery) Remove(item any) error {
	if g.source != nil {
		return ErrItemSourceInUse
	}
	i := slices.IndexFunc(g.items, func(o any) bool { return sameItem(o, item) })
	if i < 0 {
		return nil
	}
	g.items = slices.Delete(g.items, i, i+1)
	return g.rebindView()
}

// SetItemSource binds the gallery to an external list. The owned items are
// dropped; a later SetItems unbinds the source again.
func (g *InlineGallery) SetItemSource(source binding.UntypedList) error {
	g.unbindSource()
	g.items = nil
	g.source = source
	if source == nil {
		return g.rebindView()
	}
	g.sourceListener = binding.NewDataListener(func() {
		if err := g.rebindView(); err != nil {
			logging.Logger().Error("item source changed", "error", err)
		}
	})
	err := g.rebindView()
	source.AddListener(g.sourceListener)
	return err
}

func (g *InlineGallery) unbindSource() {
	if g.source != nil && g.sourceListener != nil {
		g.source.RemoveListener(g.sourceListener)
	}
	g.source = nil
	g.sourceListener = nil
}

func (g *InlineGallery) sourceItems() []any {
	if g.source == nil {
		return g.items
	}
	items, err := g.source.Get()
	if err != nil {
		logging.Logger().Error("read item source", "error", err)
		return nil
	}
	return items
}

func (g *InlineGallery) rebindView() error {
	return g.v.rebind(g.sourceItems())
}

// RefreshView re-evaluates the active filter against every item.
func (g *InlineGallery) RefreshView() error {
	return g.v.refresh()
}

// Err returns the configuration error of the last view refresh, including
// refreshes triggered by a bound item source.
func (g *InlineGallery) Err() error {
	return g.v.Err()
}

func (g *InlineGallery) accepts(item any) (bool, error) {
	return g.filters.accepts(g.accessor, item)
}

func (g *InlineGallery) viewChanged() {
	host := g.hostFor(g.owner)
	host.sourceChanged()
	g.publish(host.selection())
	if g.panel != nil {
		g.panel.showActiveFilter(g.filters.active)
	}
	g.BaseWidget.Refresh()
}

// SetGroupBy groups items by the named field, method or map key. An empty
// name disables grouping and every item is shown.
func (g *InlineGallery) SetGroupBy(name string) error {
	g.groupBy = name
	g.accessor = nil
	if name != "" {
		g.accessor = NewFieldAccessor(name)
	}
	g.applyConfig()
	return g.v.refresh()
}

// SetGroupAccessor replaces the group key lookup with a custom accessor.
func (g *InlineGallery) SetGroupAccessor(a GroupAccessor) error {
	g.accessor = a
	g.groupBy = ""
	if fa, ok := a.(*FieldAccessor); ok {
		g.groupBy = fa.Name()
	}
	g.applyConfig()
	return g.v.refresh()
}

func (g *InlineGallery) GroupBy() string {
	return g.groupBy
}

// AddFilter registers f. The first filter added becomes the active one.
func (g *InlineGallery) AddFilter(f *GroupFilter) error {
	if !g.filters.add(f) {
		return nil
	}
	return g.filterChanged()
}

func (g *InlineGallery) RemoveFilter(f *GroupFilter) error {
	if !g.filters.remove(f) {
		return nil
	}
	return g.filterChanged()
}

func (g *InlineGallery) Filters() []*GroupFilter {
	return slices.Clone(g.filters.filters)
}

// SetSelectedFilter activates f and refreshes the view. A nil filter falls
// back to the first registered filter.
func (g *InlineGallery) SetSelectedFilter(f *GroupFilter) error {
	if !g.filters.setActive(f) && f != nil && f != g.filters.active {
		return fmt.Errorf("%w: %q", ErrUnknownFilter, f.Title)
	}
	return g.filterChanged()
}

// SelectFilterByTitle activates the registered filter with title.
func (g *InlineGallery) SelectFilterByTitle(title string) error {
	f := g.filters.byTitle(title)
	if f == nil {
		return fmt.Errorf("%w: %q", ErrUnknownFilter, title)
	}
	return g.SetSelectedFilter(f)
}

func (g *InlineGallery) filterChanged() error {
	logging.Logger().Debug("filter changed", "filter", g.filters.activeTitle())
	if g.panel != nil {
		g.panel.showActiveFilter(g.filters.active)
	}
	return g.v.refresh()
}

func (g *InlineGallery) SelectedFilter() *GroupFilter {
	return g.filters.active
}

// SelectedFilterTitle is the title of the active filter, or empty without one.
func (g *InlineGallery) SelectedFilterTitle() string {
	return g.filters.activeTitle()
}

func (g *InlineGallery) HasFilter() bool {
	return g.filters.hasFilter()
}

// AddGroupIcon sets the icon shown next to the overlay filter for a group.
func (g *InlineGallery) AddGroupIcon(group string, icon fyne.Resource) {
	for i := range g.filters.icons {
		if g.filters.icons[i].Group == group {
			g.filters.icons[i].Icon = icon
			g.groupIconsChanged()
			return
		}
	}
	g.filters.icons = append(g.filters.icons, GroupIcon{Group: group, Icon: icon})
	g.groupIconsChanged()
}

func (g *InlineGallery) GroupIcons() []GroupIcon {
	return slices.Clone(g.filters.icons)
}

func (g *InlineGallery) groupIconsChanged() {
	if g.panel != nil {
		g.panel.showActiveFilter(g.filters.active)
	}
}

// AddMenuItem appends an object to the menu bar under the overlay items.
func (g *InlineGallery) AddMenuItem(obj fyne.CanvasObject) {
	if obj == nil || slices.Contains(g.menu, obj) {
		return
	}
	g.menu = append(g.menu, obj)
	if g.panel != nil {
		g.panel.setMenuItems(g.menu)
	}
}

func (g *InlineGallery) RemoveMenuItem(obj fyne.CanvasObject) {
	i := slices.Index(g.menu, obj)
	if i < 0 {
		return
	}
	g.menu = slices.Delete(g.menu, i, i+1)
	if g.panel != nil {
		g.panel.setMenuItems(g.menu)
	}
}

func (g *InlineGallery) MenuItems() []fyne.CanvasObject {
	return slices.Clone(g.menu)
}

// SelectedIndex is the index of the selection in the visible items, or -1.
func (g *InlineGallery) SelectedIndex() int {
	return g.selIndex
}

func (g *InlineGallery) SelectedItem() any {
	return g.selItem
}

func (g *InlineGallery) SetSelectedIndex(index int) {
	host := g.hostFor(g.owner)
	host.setSelection(index, nil)
	g.publish(host.selection())
}

func (g *InlineGallery) SetSelectedItem(item any) {
	host := g.hostFor(g.owner)
	host.setSelection(-1, item)
	g.publish(host.selection())
}

func (g *InlineGallery) UnselectAll() {
	g.SetSelectedIndex(-1)
}

func (g *InlineGallery) SetSelectable(selectable bool) {
	g.Selectable = selectable
	g.Refresh()
}

// BindSelectedIndex keeps the selected index and data in step both ways.
func (g *InlineGallery) BindSelectedIndex(data binding.Int) {
	g.UnbindSelectedIndex()
	g.selBinding = data
	g.selListener = binding.NewDataListener(func() {
		index, err := data.Get()
		if err != nil {
			logging.Logger().Error("read selected index", "error", err)
			return
		}
		if index != g.selIndex {
			g.SetSelectedIndex(index)
		}
	})
	data.AddListener(g.selListener)
}

func (g *InlineGallery) UnbindSelectedIndex() {
	if g.selBinding != nil {
		g.selBinding.RemoveListener(g.selListener)
	}
	g.selBinding = nil
	g.selListener = nil
}

// publish mirrors the owning host's selection into the public selection.
func (g *InlineGallery) publish(index int, item any) {
	if index == g.selIndex && sameItem(item, g.selItem) {
		return
	}
	g.selIndex, g.selItem = index, item
	if g.selBinding != nil {
		if current, err := g.selBinding.Get(); err == nil && current != index {
			if err := g.selBinding.Set(index); err != nil {
				logging.Logger().Error("write selected index", "error", err)
			}
		}
	}
	if g.OnSelected != nil {
		g.OnSelected(index, item)
	}
}

func (g *InlineGallery) panelSelected(int) {
	g.publish(g.panel.selection())
}

// Scale returns the size tier last set by SetScaleSize.
func (g *InlineGallery) Scale() ScaleSize {
	return g.scale
}

func (g *InlineGallery) IsCollapsed() bool {
	return g.collapsed
}

// ItemsInRow is the number of items the inline row is sized for.
func (g *InlineGallery) ItemsInRow() int {
	return g.fit.current()
}

// SetItemsInRow sets the bounds of the inline row.
func (g *InlineGallery) SetItemsInRow(min, max int) {
	g.MinItemsInRow, g.MaxItemsInRow = min, max
	g.Refresh()
}

// SetCanCollapse allows or forbids collapsing into a single button.
func (g *InlineGallery) SetCanCollapse(canCollapse bool) {
	g.CanCollapse = canCollapse
	g.setCollapsed(collapseForSize(canCollapse, g.scale, g.fit))
	g.Refresh()
}

// SetScaleSize is called by the parent when its size tier changes.
func (g *InlineGallery) SetScaleSize(size ScaleSize) {
	g.scale = size
	g.setCollapsed(collapseForSize(g.CanCollapse, size, g.fit))
	g.Refresh()
}

// Enlarge grows the inline row by one item.
func (g *InlineGallery) Enlarge() {
	g.fit.enlarge()
	g.setCollapsed(collapseAfterEnlarge(g.collapsed, g.CanCollapse, g.scale, g.fit))
	g.Refresh()
}

// Reduce shrinks the inline row by one item, collapsing below the minimum.
func (g *InlineGallery) Reduce() {
	g.fit.reduce()
	g.setCollapsed(collapseAfterReduce(g.collapsed, g.CanCollapse, g.fit))
	g.Refresh()
}

func (g *InlineGallery) setCollapsed(collapsed bool) {
	if g.collapsed == collapsed {
		return
	}
	g.collapsed = collapsed
	logging.Logger().Debug("collapse changed",
		"collapsed", collapsed,
		"scale", g.scale.String(),
		"items_in_row", g.fit.current())
}

// LogicalObjects lists the children of the gallery regardless of any frozen
// snapshot: the presentation that owns the items and the toggle. Menu items
// belong to the panel once it exists.
func (g *InlineGallery) LogicalObjects() []fyne.CanvasObject {
	var objs []fyne.CanvasObject
	switch {
	case g.owner != ownerInline:
		objs = append(objs, g.panel)
	case g.collapsed:
		objs = append(objs, g.dropDown)
	default:
		objs = append(objs, g.inline.scroll, g.expand)
	}
	if g.panel == nil {
		objs = append(objs, g.menu...)
	}
	return objs
}
