package gallery

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"github.com/alexballas/xgallery/internal/logging"
)

type overlayState int

const (
	overlayClosed overlayState = iota
	overlayOpening
	overlayOpen
	overlayClosing
)

func (s overlayState) String() string {
	switch s {
	case overlayClosed:
		return "closed"
	case overlayOpening:
		return "opening"
	case overlayOpen:
		return "open"
	case overlayClosing:
		return "closing"
	}
	return "unknown"
}

// owner names the surface that currently presents the live items.
// Exactly one owner exists at any time.
type owner int

const (
	ownerInline owner = iota
	ownerOverlay
	ownerQuickAccess
)

func (o owner) String() string {
	switch o {
	case ownerInline:
		return "inline"
	case ownerOverlay:
		return "overlay"
	case ownerQuickAccess:
		return "quick access"
	}
	return "unknown"
}

// overlaySession lives from Open until Close.
type overlaySession struct {
	id      string
	snapped bool
}

// newSessionID returns a short id that pairs the open and close log records.
func newSessionID() string {
	return uuid.New().String()[:8]
}

// quickAccessSession records where the items came from so closing the quick
// access surface restores exactly that owner.
type quickAccessSession struct {
	id       string
	button   *QuickAccessButton
	previous owner
	snapped  bool
}

func (g *InlineGallery) hostFor(o owner) itemHost {
	if o == ownerInline {
		return g.inline
	}
	return g.panel
}

// transfer moves the view from one owner to another, carrying the selection
// across. It panics when from is not the current owner.
func (g *InlineGallery) transfer(from, to owner) {
	if g.owner != from {
		panic(fmt.Sprintf("xgallery: items are owned by %s, cannot move them from %s to %s", g.owner, from, to))
	}
	src, dst := g.hostFor(from), g.hostFor(to)
	index, item := src.selection()
	if src != dst {
		src.setSource(nil)
		dst.setSource(g.v)
		dst.setSelection(index, item)
	}
	g.owner = to
	g.checkOwnership()
	g.publish(dst.selection())
	logging.Logger().Debug("items moved", "from", from.String(), "to", to.String(), "selected", g.selIndex)
}

// checkOwnership panics if the hosts disagree with the owner token.
func (g *InlineGallery) checkOwnership() {
	inline := g.inline.source() != nil
	panel := g.panel != nil && g.panel.source() != nil
	switch {
	case inline && panel:
		panic("xgallery: inline and overlay hosts both own the items")
	case g.owner == ownerInline && !inline:
		panic("xgallery: inline host lost the items it owns")
	case g.owner != ownerInline && !panel:
		panic(fmt.Sprintf("xgallery: %s owns the items but the panel has none", g.owner))
	}
}

func (g *InlineGallery) ensurePanel() {
	if g.panel != nil {
		return
	}
	p := newPanelHost(g.hostConfig())
	p.resizeMode = g.ResizeMode
	p.iconFor = g.filters.iconFor
	p.onSelected = g.panelSelected
	p.onFilterChosen = func(f *GroupFilter) {
		if err := g.SetSelectedFilter(f); err != nil {
			logging.Logger().Error("filter from overlay", "filter", f.Title, "error", err)
		}
	}
	for _, f := range g.filters.filters {
		p.filterAdded(f)
	}
	p.showActiveFilter(g.filters.active)
	p.setMenuItems(g.menu)
	g.filters.mirror = p
	g.panel = p
}

// IsOpen reports whether the overlay is showing.
func (g *InlineGallery) IsOpen() bool {
	return g.state == overlayOpen
}

// SetOpen opens or closes the overlay. A close request that arrives while the
// overlay is still being opened is ignored.
func (g *InlineGallery) SetOpen(open bool) {
	if open {
		g.Open()
		return
	}
	if g.state == overlayOpening {
		logging.Logger().Debug("close ignored while opening")
		return
	}
	g.Close()
}

// Open promotes the items into the overlay panel.
func (g *InlineGallery) Open() {
	if g.state != overlayClosed {
		return
	}
	if g.qa != nil {
		g.qa.button.Close()
	}
	g.state = overlayOpening
	session := &overlaySession{id: newSessionID()}

	g.ensurePanel()
	g.sizePanel()
	if g.surface == nil {
		g.surface = newOverlaySurface(g.dismiss)
	}
	if !g.collapsed {
		session.snapped = g.freeze()
	}
	if g.collapsed {
		g.dropDown.Importance = widget.HighImportance
		g.dropDown.Refresh()
	}
	g.transfer(ownerInline, ownerOverlay)
	g.expand.Importance = widget.HighImportance
	g.expand.Refresh()

	g.surface.setContent(g.panel)
	g.showSurface()
	if c := canvasFor(g); c != nil {
		c.Unfocus()
	}

	g.session = session
	g.state = overlayOpen
	logging.Logger().Debug("overlay opened", "session", session.id, "collapsed", g.collapsed, "snapped", session.snapped)
	if g.OnOpened != nil {
		g.OnOpened()
	}
}

// sizePanel makes the panel at least as large as the control it replaces.
func (g *InlineGallery) sizePanel() {
	size := g.Size()
	g.panel.setMinSize(fyne.NewSize(
		fyne.Max(size.Width, g.MenuMinWidth),
		fyne.Max(size.Height, panelMinHeight),
	))
}

func (g *InlineGallery) showSurface() {
	c := canvasFor(g)
	if c == nil {
		return
	}
	pos := anchorPosition(g, g.collapsed)
	pos, size := fitPanel(c.Size(), pos, g.panel.MinSize(), g.panel.resizeMode)
	g.surface.showAt(c, pos, size)
}

// Close returns the items to the inline host. Closing an overlay that is not
// open does nothing.
func (g *InlineGallery) Close() {
	if g.state != overlayOpen {
		return
	}
	if g.qa != nil && g.qa.previous == ownerOverlay {
		g.qa.button.Close()
	}
	g.state = overlayClosing

	g.transfer(ownerOverlay, ownerInline)
	g.surface.hide()
	g.surface.setContent(nil)
	session := g.session
	g.session = nil

	if g.OnClosed != nil {
		g.OnClosed()
	}
	if session.snapped {
		g.thaw()
	}
	g.dropDown.Importance = widget.MediumImportance
	g.expand.Importance = widget.MediumImportance
	g.state = overlayClosed
	logging.Logger().Debug("overlay closed", "session", session.id, "selected", g.selIndex)
	g.Refresh()
}

func (g *InlineGallery) toggleOpen() {
	if g.state == overlayOpen {
		g.Close()
		return
	}
	g.Open()
}

// dismiss is a forced close from the surface and always completes.
func (g *InlineGallery) dismiss() {
	g.Close()
}

// freeze engages the snapshot of the inline presentation. It reports whether
// a snapshot was engaged.
func (g *InlineGallery) freeze() bool {
	if g.renderer == nil || g.snap.active {
		return false
	}
	snapper := g.Snapshotter
	if snapper == nil {
		snapper = CanvasSnapshotter{}
	}
	size := g.Size()
	img := snapper.Snapshot(g, size)
	if !g.snap.engage(g.renderer.live(), img, size) {
		return false
	}
	g.renderer.Layout(size)
	g.Refresh()
	return true
}

func (g *InlineGallery) thaw() {
	if _, ok := g.snap.disengage(); !ok {
		return
	}
	g.Refresh()
}

func (g *InlineGallery) openQuickAccess(b *QuickAccessButton) {
	if g.qa != nil {
		if g.qa.button == b {
			return
		}
		g.qa.button.Close()
	}
	g.ensurePanel()
	g.sizePanel()

	s := &quickAccessSession{id: newSessionID(), button: b, previous: g.owner}
	switch g.owner {
	case ownerOverlay:
		g.surface.hide()
		g.surface.setContent(nil)
	case ownerInline:
		if !g.collapsed {
			s.snapped = g.freeze()
		}
	}
	g.transfer(s.previous, ownerQuickAccess)
	g.qa = s
	logging.Logger().Debug("quick access opened", "session", s.id, "from", s.previous.String())
}

func (g *InlineGallery) closeQuickAccess(b *QuickAccessButton) {
	s := g.qa
	if s == nil || s.button != b {
		return
	}
	g.qa = nil
	g.transfer(ownerQuickAccess, s.previous)
	if s.previous == ownerOverlay {
		g.surface.setContent(g.panel)
		g.showSurface()
	}
	if s.snapped {
		g.thaw()
	}
	logging.Logger().Debug("quick access closed", "session", s.id, "to", s.previous.String())
}
