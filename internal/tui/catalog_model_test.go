package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/greencart/internal/carbon"
	"github.com/rshade/greencart/internal/catalog"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case keyEnter:
		return tea.KeyMsg{Type: tea.KeyEnter}
	case keyEsc:
		return tea.KeyMsg{Type: tea.KeyEsc}
	case keyCtrlC:
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestNewCatalogModel_SortsByFootprint(t *testing.T) {
	m := NewCatalogModel(catalog.SeedProducts())

	assert.Equal(t, ViewStateList, m.State())
	products := m.Products()
	require.Len(t, products, 16)
	for i := 1; i < len(products); i++ {
		assert.LessOrEqual(t, products[i-1].Footprint(), products[i].Footprint())
	}

	sel, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, products[0].ID, sel.ID)
}

func TestCatalogModel_CycleSort(t *testing.T) {
	m := NewCatalogModel(catalog.SeedProducts())

	m.Update(keyMsg(keyS))
	assert.Equal(t, SortByPrice, m.SortBy())
	products := m.Products()
	for i := 1; i < len(products); i++ {
		assert.False(t, products[i].Price.LessThan(products[i-1].Price))
	}

	m.Update(keyMsg(keyS))
	assert.Equal(t, SortByName, m.SortBy())

	m.Update(keyMsg(keyS))
	assert.Equal(t, SortByFootprint, m.SortBy())
}

func TestCatalogModel_DetailNavigation(t *testing.T) {
	m := NewCatalogModel(catalog.SeedProducts())

	m.Update(keyMsg(keyEnter))
	assert.Equal(t, ViewStateDetail, m.State())
	view := m.View()
	sel, _ := m.Selected()
	assert.Contains(t, view, sel.Name)
	assert.Contains(t, view, "Production:")

	m.Update(keyMsg(keyEsc))
	assert.Equal(t, ViewStateList, m.State())
	assert.Contains(t, m.View(), "GreenCart catalog (16 products)")
	assert.Contains(t, m.View(), "sorted by footprint")
}

func TestCatalogModel_EmptyCatalogHasNoDetail(t *testing.T) {
	m := NewCatalogModel(nil)

	m.Update(keyMsg(keyEnter))
	assert.Equal(t, ViewStateList, m.State())
	_, ok := m.Selected()
	assert.False(t, ok)
}

func TestCatalogModel_Quit(t *testing.T) {
	m := NewCatalogModel(catalog.SeedProducts())

	_, cmd := m.Update(keyMsg(keyQuit))
	require.NotNil(t, cmd)
	assert.Equal(t, ViewStateQuitting, m.State())
	assert.Empty(t, m.View())
}

func TestCatalogModel_Loading(t *testing.T) {
	want := catalog.SeedProducts()[:3]
	m := NewCatalogModelWithLoading(context.Background(), func(context.Context) ([]catalog.Product, error) {
		return want, nil
	})

	assert.Equal(t, ViewStateLoading, m.State())
	assert.Contains(t, m.View(), "Loading catalog")
	require.NotNil(t, m.Init())

	msg := m.fetchCmd()
	m.Update(msg)
	assert.Equal(t, ViewStateList, m.State())
	assert.Len(t, m.Products(), 3)
}

func TestCatalogModel_LoadingError(t *testing.T) {
	boom := errors.New("store unavailable")
	m := NewCatalogModelWithLoading(context.Background(), func(context.Context) ([]catalog.Product, error) {
		return nil, boom
	})

	_, cmd := m.Update(m.fetchCmd())
	require.NotNil(t, cmd)
	assert.Equal(t, ViewStateError, m.State())
	require.ErrorIs(t, m.Err(), boom)
	assert.Contains(t, m.View(), "store unavailable")
}

func TestCatalogModel_WindowResize(t *testing.T) {
	m := NewCatalogModel(catalog.SeedProducts())

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	assert.Equal(t, 80, m.width)
	assert.Equal(t, minHeight, m.tableHeight())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}

func TestRenderGrade_Plain(t *testing.T) {
	r := carbon.RatingFor(5)
	assert.Equal(t, "C (Fair)", RenderGrade(r, false))
	assert.Contains(t, RenderGrade(r, true), "Fair")
	assert.Equal(t, "medium", RenderClass(carbon.ClassMedium, false))
}
