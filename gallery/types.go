// Package gallery provides an adaptive item gallery for Fyne. The gallery
// shows a row of items inline, collapses into a single button when space runs
// out, and promotes its items into an overlay panel with filters and menu
// items on demand.
package gallery

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// ScaleSize is the discrete size tier a ribbon-like parent assigns to the gallery.
type ScaleSize int

const (
	// SizeLarge is the only tier at which the gallery renders its items inline
	SizeLarge ScaleSize = iota
	SizeMiddle
	SizeSmall
)

func (s ScaleSize) String() string {
	switch s {
	case SizeLarge:
		return "large"
	case SizeMiddle:
		return "middle"
	case SizeSmall:
		return "small"
	}
	return "unknown"
}

// Orientation controls how items flow inside both hosts.
type Orientation int

const (
	// Horizontal wraps items into rows
	Horizontal Orientation = iota
	// Vertical stacks items in a single column
	Vertical
)

// ResizeMode controls how the overlay panel follows the size of its canvas.
type ResizeMode int

const (
	ResizeNone ResizeMode = iota
	ResizeVertical
	ResizeBoth
)

const (
	DefaultMaxItemsInRow = 8
	DefaultMinItemsInRow = 1

	panelMinHeight   = 240
	panelGrowPadding = 4
)

// Scalable is implemented by widgets that a layout coordinator can grow or
// shrink one discrete step at a time.
type Scalable interface {
	SetScaleSize(size ScaleSize)
	Enlarge()
	Reduce()
}

// hostConfig is the configuration pushed one-way into both item hosts.
type hostConfig struct {
	displayFormat string
	createItem    func() fyne.CanvasObject
	updateItem    func(item any, obj fyne.CanvasObject)
	itemSize      fyne.Size
	scroll        container.ScrollDirection
	groupBy       string
	orientation   Orientation
	selectable    bool
}
