package gallery

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func groceries() []any {
	return []any{
		produce{Name: "Apple", Category: "Fruit"},
		produce{Name: "Leek", Category: "Veg"},
		produce{Name: "Beef", Category: "Meat"},
	}
}

func TestInlineGallery_Defaults(t *testing.T) {
	test.NewApp()
	g := NewInlineGallery(nil)

	assert.Equal(t, DefaultMaxItemsInRow, g.MaxItemsInRow)
	assert.Equal(t, DefaultMinItemsInRow, g.MinItemsInRow)
	assert.True(t, g.CanCollapse)
	assert.True(t, g.Selectable)
	assert.False(t, g.IsCollapsed())
	assert.False(t, g.IsOpen())
	assert.Equal(t, -1, g.SelectedIndex())
	assert.False(t, g.HasFilter())
	assert.Equal(t, DefaultMaxItemsInRow, g.ItemsInRow())
}

func TestInlineGallery_FilterByGroup(t *testing.T) {
	test.NewApp()
	g := NewInlineGallery(groceries())
	require.NoError(t, g.SetGroupBy("Category"))

	plants := NewGroupFilter("Plants", "Fruit,Veg")
	meat := NewGroupFilter("Meat", "Meat")
	require.NoError(t, g.AddFilter(plants))
	require.NoError(t, g.AddFilter(meat))

	assert.Same(t, plants, g.SelectedFilter())
	assert.Equal(t, "Plants", g.SelectedFilterTitle())
	assert.Len(t, g.VisibleItems(), 2)
	assert.NotContains(t, g.VisibleItems(), produce{Name: "Beef", Category: "Meat"})

	require.NoError(t, g.SelectFilterByTitle("Meat"))
	assert.Equal(t, []any{produce{Name: "Beef", Category: "Meat"}}, g.VisibleItems())

	require.NoError(t, g.SetSelectedFilter(nil))
	assert.Same(t, plants, g.SelectedFilter(), "clearing the filter falls back to the first one")

	err := g.SetSelectedFilter(NewGroupFilter("Stray", "x"))
	assert.ErrorIs(t, err, ErrUnknownFilter)
	assert.Same(t, plants, g.SelectedFilter())

	require.NoError(t, g.RemoveFilter(plants))
	assert.Same(t, meat, g.SelectedFilter())
	require.NoError(t, g.RemoveFilter(meat))
	assert.False(t, g.HasFilter())
	assert.Equal(t, "", g.SelectedFilterTitle())
	assert.Len(t, g.VisibleItems(), 3)
	assert.Len(t, g.Items(), 3)
}

func TestInlineGallery_NoGroupingShowsEverything(t *testing.T) {
	test.NewApp()
	g := NewInlineGallery(groceries())
	require.NoError(t, g.AddFilter(NewGroupFilter("Meat", "Meat")))

	assert.Len(t, g.VisibleItems(), 3)
}

func TestInlineGallery_MissingGroupKeyIsReported(t *testing.T) {
	test.NewApp()
	g := NewInlineGallery(groceries())
	require.NoError(t, g.AddFilter(NewGroupFilter("Meat", "Meat")))

	err := g.SetGroupBy("Colour")
	assert.ErrorIs(t, err, ErrGroupKeyNotFound)
	assert.ErrorIs(t, g.Err(), ErrGroupKeyNotFound)
	assert.ErrorIs(t, g.RefreshView(), ErrGroupKeyNotFound)

	require.NoError(t, g.SetGroupBy(""))
	assert.NoError(t, g.Err())
}

func TestInlineGallery_CustomAccessor(t *testing.T) {
	test.NewApp()
	g := NewInlineGallery([]any{"apple", "avocado", "beet"})
	require.NoError(t, g.AddFilter(NewGroupFilter("A", "a")))
	require.NoError(t, g.SetGroupAccessor(GroupAccessorFunc(func(item any) (string, error) {
		return item.(string)[:1], nil
	})))

	assert.Equal(t, []any{"apple", "avocado"}, g.VisibleItems())
	assert.Equal(t, "", g.GroupBy())
}

func TestInlineGallery_OwnedItems(t *testing.T) {
	test.NewApp()
	g := NewInlineGallery([]any{"a"})

	require.NoError(t, g.Append("b", "c"))
	assert.Equal(t, []any{"a", "b", "c"}, g.VisibleItems())

	require.NoError(t, g.Remove("b"))
	require.NoError(t, g.Remove("missing"))
	assert.Equal(t, []any{"a", "c"}, g.Items())

	require.NoError(t, g.SetItems([]any{"x"}))
	assert.Equal(t, []any{"x"}, g.VisibleItems())
}

func TestInlineGallery_ItemSourceWins(t *testing.T) {
	test.NewApp()
	list := binding.NewUntypedList()
	require.NoError(t, list.Set([]any{"a", "b"}))

	g := NewInlineGallery([]any{"owned"})
	require.NoError(t, g.SetItemSource(list))
	assert.Equal(t, []any{"a", "b"}, g.VisibleItems())
	assert.ErrorIs(t, g.Append("c"), ErrItemSourceInUse)
	assert.ErrorIs(t, g.Remove("a"), ErrItemSourceInUse)

	require.NoError(t, list.Append("c"))
	assert.Eventually(t, func() bool {
		return len(g.VisibleItems()) == 3
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, g.SetItems([]any{"owned"}))
	assert.NoError(t, g.Append("more"))
	assert.Equal(t, []any{"owned", "more"}, g.Items())
}

func TestInlineGallery_Selection(t *testing.T) {
	test.NewApp()
	g := NewInlineGallery([]any{"a", "b", "c"})

	var events []int
	g.OnSelected = func(index int, _ any) { events = append(events, index) }

	g.SetSelectedIndex(1)
	g.SetSelectedIndex(1)
	assert.Equal(t, "b", g.SelectedItem())

	g.SetSelectedItem("c")
	assert.Equal(t, 2, g.SelectedIndex())

	g.SetSelectedIndex(7)
	assert.Equal(t, -1, g.SelectedIndex())
	assert.Nil(t, g.SelectedItem())
	assert.Equal(t, []int{1, 2, -1}, events)
}

func TestInlineGallery_SelectionDroppedByFilter(t *testing.T) {
	test.NewApp()
	g := NewInlineGallery(groceries())
	require.NoError(t, g.SetGroupBy("Category"))
	g.SetSelectedItem(produce{Name: "Beef", Category: "Meat"})
	require.Equal(t, 2, g.SelectedIndex())

	require.NoError(t, g.AddFilter(NewGroupFilter("Plants", "Fruit,Veg")))
	assert.Equal(t, -1, g.SelectedIndex())

	g.SetSelectedItem(produce{Name: "Leek", Category: "Veg"})
	require.NoError(t, g.Append(produce{Name: "Kale", Category: "Veg"}))
	assert.Equal(t, 1, g.SelectedIndex(), "refresh keeps a visible selection")
}

func TestInlineGallery_RemoveStructWithSlice(t *testing.T) {
	test.NewApp()
	g := NewInlineGallery([]any{tagged{"a", []string{"x"}}, tagged{"b", []string{"y"}}})

	require.NoError(t, g.Remove(tagged{"a", []string{"x"}}))
	assert.Equal(t, []any{tagged{"b", []string{"y"}}}, g.Items())

	g.SetSelectedItem(tagged{"b", []string{"y"}})
	assert.Equal(t, 0, g.SelectedIndex())
}

func TestInlineGallery_ChromeCachedUntilLayoutChanges(t *testing.T) {
	g, _ := newTestGallery(t, "a", "b")
	g.MinSize()
	require.True(t, g.fit.chromeValid)

	g.SetScaleSize(SizeLarge)
	g.Enlarge()
	g.applyConfig()
	assert.True(t, g.fit.chromeValid, "plain refreshes keep the chrome")

	g.Orientation = Vertical
	g.applyConfig()
	assert.False(t, g.fit.chromeValid)
}

func TestInlineGallery_NotSelectable(t *testing.T) {
	test.NewApp()
	g := NewInlineGallery([]any{"a", "b"})
	g.SetSelectedIndex(0)

	g.SetSelectable(false)
	assert.Equal(t, -1, g.SelectedIndex())

	g.SetSelectedIndex(1)
	assert.Equal(t, -1, g.SelectedIndex())
}

func TestInlineGallery_TapSelects(t *testing.T) {
	g, _ := newTestGallery(t, "a", "b", "c")
	require.Len(t, g.inline.cells, 3)

	test.Tap(g.inline.cells[2])
	assert.Equal(t, 2, g.SelectedIndex())
	assert.Equal(t, "c", g.SelectedItem())
}

func TestInlineGallery_BindSelectedIndex(t *testing.T) {
	test.NewApp()
	g := NewInlineGallery([]any{"a", "b", "c"})
	selected := binding.NewInt()
	require.NoError(t, selected.Set(-1))
	g.BindSelectedIndex(selected)

	g.SetSelectedIndex(2)
	got, err := selected.Get()
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	require.NoError(t, selected.Set(1))
	assert.Eventually(t, func() bool {
		return g.SelectedIndex() == 1
	}, time.Second, 10*time.Millisecond)

	g.UnbindSelectedIndex()
	require.NoError(t, selected.Set(0))
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, g.SelectedIndex())
}

func TestInlineGallery_CollapseFollowsScale(t *testing.T) {
	g, _ := newTestGallery(t, "a", "b")

	g.SetScaleSize(SizeMiddle)
	assert.True(t, g.IsCollapsed())
	assert.Equal(t, []fyne.CanvasObject{g.dropDown}, g.renderer.Objects())

	g.SetScaleSize(SizeLarge)
	assert.False(t, g.IsCollapsed())

	g.SetCanCollapse(false)
	g.SetScaleSize(SizeSmall)
	assert.False(t, g.IsCollapsed())
	for i := 0; i < 10; i++ {
		g.Reduce()
	}
	assert.False(t, g.IsCollapsed())

	g.SetCanCollapse(true)
	assert.True(t, g.IsCollapsed())
}

func TestInlineGallery_ReduceEnlargeBoundary(t *testing.T) {
	g, _ := newTestGallery(t, "a", "b")
	g.SetItemsInRow(2, 3)

	g.Reduce()
	assert.Equal(t, 2, g.ItemsInRow())
	assert.False(t, g.IsCollapsed(), "current == min stays expanded")

	g.Reduce()
	assert.Equal(t, 2, g.ItemsInRow())
	assert.True(t, g.IsCollapsed())

	g.Enlarge()
	assert.False(t, g.IsCollapsed())
	assert.Equal(t, 2, g.ItemsInRow())
}

func TestInlineGallery_ScaledFiresOncePerChange(t *testing.T) {
	test.NewApp()
	g := NewInlineGallery([]any{"a", "b", "c"})
	g.ItemSize = fyne.NewSize(40, 30)
	g.MaxItemsInRow = 4

	var sizes []fyne.Size
	g.OnScaled = func(s fyne.Size) { sizes = append(sizes, s) }
	test.NewTempWindow(t, g)

	g.MinSize()
	g.MinSize()
	require.Len(t, sizes, 1)
	wide := sizes[0]

	g.Reduce()
	g.MinSize()
	g.MinSize()
	require.Len(t, sizes, 2)
	assert.InDelta(t, wide.Width-(40+theme.Padding()), sizes[1].Width, 0.01)

	g.SetScaleSize(SizeSmall)
	assert.Equal(t, g.dropDown.MinSize(), g.MinSize())
	require.Len(t, sizes, 3)
	assert.Equal(t, g.dropDown.MinSize(), sizes[2])
}

func TestInlineGallery_EmptyUsesNaturalSize(t *testing.T) {
	test.NewApp()
	g := NewInlineGallery(nil)
	fired := 0
	g.OnScaled = func(fyne.Size) { fired++ }
	test.NewTempWindow(t, g)

	assert.Equal(t, g.renderer.naturalSize(), g.MinSize())
	assert.Equal(t, 0, fired)
}

func TestInlineGallery_PanelMirrorsFilters(t *testing.T) {
	g, _ := newTestGallery(t, groceries()...)
	require.NoError(t, g.SetGroupBy("Category"))
	icon := theme.WarningIcon()
	g.AddGroupIcon("Meat", icon)
	require.NoError(t, g.AddFilter(NewGroupFilter("Plants", "Fruit,Veg")))

	g.Open()
	require.NotNil(t, g.panel)
	assert.Len(t, g.panel.filters, 1)
	assert.Equal(t, "Plants", g.panel.filterSelect.Selected)

	require.NoError(t, g.AddFilter(NewGroupFilter("Meat", "Meat")))
	assert.Equal(t, []string{"Plants", "Meat"}, g.panel.filterSelect.Options)

	g.panel.filterSelect.SetSelected("Meat")
	assert.Equal(t, "Meat", g.SelectedFilterTitle())
	assert.Equal(t, 1, g.panel.source().Len())
	assert.Equal(t, icon, g.panel.filterIcon.Resource)
	assert.True(t, g.panel.filterIcon.Visible())

	g.Close()
	assert.Len(t, g.VisibleItems(), 1)
}
