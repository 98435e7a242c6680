package tui

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/greencart/internal/carbon"
	"github.com/rshade/greencart/internal/catalog"
)

// CatalogSortField is the column the catalog table is ordered by.
type CatalogSortField int

const (
	// SortByFootprint orders by footprint, lowest first.
	SortByFootprint CatalogSortField = iota
	// SortByPrice orders by price, cheapest first.
	SortByPrice
	// SortByName orders alphabetically.
	SortByName

	numCatalogSortFields = 3
)

func (f CatalogSortField) String() string {
	switch f {
	case SortByFootprint:
		return "footprint"
	case SortByPrice:
		return "price"
	case SortByName:
		return "name"
	default:
		return "unknown"
	}
}

// Table layout.
const (
	colWidthName      = 34
	colWidthBrand     = 14
	colWidthCategory  = 16
	colWidthPrice     = 9
	colWidthFootprint = 16
	colWidthRating    = 14
	catalogChrome     = 6 // title, sort line, help line and borders
	borderPadding     = 2
	truncateSuffix    = "..."
)

// CatalogFetcher loads products for the browser. It should honour ctx
// cancellation.
type CatalogFetcher func(ctx context.Context) ([]catalog.Product, error)

type catalogLoadedMsg struct {
	products []catalog.Product
	err      error
}

// CatalogModel is the Bubble Tea model for browsing the product catalog.
type CatalogModel struct {
	state    ViewState
	products []catalog.EnrichedProduct
	table    table.Model
	spinner  spinner.Model
	sortBy   CatalogSortField
	width    int
	height   int
	fetchCmd tea.Cmd
	err      error
}

// NewCatalogModel creates a browser over an already loaded product list.
func NewCatalogModel(products []catalog.Product) *CatalogModel {
	m := &CatalogModel{
		state:   ViewStateList,
		spinner: newSpinner(),
		width:   defaultWidth,
		height:  defaultHeight,
	}
	m.setProducts(products)
	return m
}

// NewCatalogModelWithLoading creates a browser that shows a spinner until
// fetcher returns.
func NewCatalogModelWithLoading(ctx context.Context, fetcher CatalogFetcher) *CatalogModel {
	return &CatalogModel{
		state:   ViewStateLoading,
		spinner: newSpinner(),
		width:   defaultWidth,
		height:  defaultHeight,
		fetchCmd: func() tea.Msg {
			products, err := fetcher(ctx)
			return catalogLoadedMsg{products: products, err: err}
		},
	}
}

func newSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = HeaderStyle
	return s
}

// Init starts loading when the model was created with a fetcher.
func (m *CatalogModel) Init() tea.Cmd {
	if m.state == ViewStateLoading {
		return tea.Batch(m.spinner.Tick, m.fetchCmd)
	}
	return nil
}

// Update handles messages and updates the model state.
func (m *CatalogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(m.tableHeight())
		return m, nil
	case catalogLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = ViewStateError
			return m, tea.Quit
		}
		m.state = ViewStateList
		m.setProducts(msg.products)
		return m, nil
	}

	switch m.state {
	case ViewStateLoading:
		return m.handleLoadingUpdate(msg)
	case ViewStateList:
		return m.handleListUpdate(msg)
	case ViewStateDetail:
		return m.handleDetailUpdate(msg)
	case ViewStateQuitting, ViewStateError:
		return m, nil
	default:
		return m, nil
	}
}

func (m *CatalogModel) handleLoadingUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == keyCtrlC {
		m.state = ViewStateQuitting
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m *CatalogModel) handleListUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyQuit, keyCtrlC:
			m.state = ViewStateQuitting
			return m, tea.Quit
		case keyEnter:
			if len(m.products) > 0 {
				m.state = ViewStateDetail
			}
			return m, nil
		case keyS:
			m.cycleSort()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *CatalogModel) handleDetailUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyQuit, keyCtrlC:
			m.state = ViewStateQuitting
			return m, tea.Quit
		case keyEsc, keyEnter:
			m.state = ViewStateList
		}
	}
	return m, nil
}

// State returns the current view state.
func (m *CatalogModel) State() ViewState { return m.state }

// SortBy returns the active sort field.
func (m *CatalogModel) SortBy() CatalogSortField { return m.sortBy }

// Err returns the loading error, if any.
func (m *CatalogModel) Err() error { return m.err }

// Products returns the products in display order.
func (m *CatalogModel) Products() []catalog.EnrichedProduct {
	out := make([]catalog.EnrichedProduct, len(m.products))
	copy(out, m.products)
	return out
}

// Selected returns the highlighted product.
func (m *CatalogModel) Selected() (catalog.EnrichedProduct, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.products) {
		return catalog.EnrichedProduct{}, false
	}
	return m.products[i], true
}

func (m *CatalogModel) setProducts(products []catalog.Product) {
	m.products = catalog.EnrichAll(products)
	m.applySort()
	m.table = NewCatalogTable(m.products, m.tableHeight())
}

func (m *CatalogModel) cycleSort() {
	m.sortBy = (m.sortBy + 1) % numCatalogSortFields
	m.applySort()
	m.table.SetRows(catalogRows(m.products))
	m.table.GotoTop()
}

func (m *CatalogModel) applySort() {
	sort.SliceStable(m.products, func(i, j int) bool {
		a, b := m.products[i], m.products[j]
		switch m.sortBy {
		case SortByFootprint:
			return a.Footprint() < b.Footprint()
		case SortByPrice:
			return a.Price.LessThan(b.Price)
		case SortByName:
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		default:
			return false
		}
	})
}

func (m *CatalogModel) tableHeight() int {
	return max(m.height-catalogChrome, minHeight)
}

// View renders the current view.
func (m *CatalogModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateError:
		return ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n"
	case ViewStateLoading:
		return m.spinner.View() + " Loading catalog...\n"
	case ViewStateDetail:
		if p, ok := m.Selected(); ok {
			return RenderProductDetail(p, m.width) + "\n" +
				SubtleStyle.Render("esc back • q quit") + "\n"
		}
		return ""
	case ViewStateList:
		return m.renderList()
	default:
		return ""
	}
}

func (m *CatalogModel) renderList() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render(fmt.Sprintf("GreenCart catalog (%d products)", len(m.products))))
	b.WriteString("\n")
	b.WriteString(SubtleStyle.Render("sorted by " + m.sortBy.String()))
	b.WriteString("\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")
	b.WriteString(SubtleStyle.Render("↑/↓ move • enter details • s sort • q quit"))
	b.WriteString("\n")
	return b.String()
}

// NewCatalogTable creates the table model for the catalog list.
func NewCatalogTable(products []catalog.EnrichedProduct, height int) table.Model {
	columns := []table.Column{
		{Title: "Product", Width: colWidthName},
		{Title: "Brand", Width: colWidthBrand},
		{Title: "Category", Width: colWidthCategory},
		{Title: "Price", Width: colWidthPrice},
		{Title: "Footprint", Width: colWidthFootprint},
		{Title: "Rating", Width: colWidthRating},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(catalogRows(products)),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)

	return t
}

func catalogRows(products []catalog.EnrichedProduct) []table.Row {
	rows := make([]table.Row, len(products))
	for i, p := range products {
		rows[i] = table.Row{
			truncate(p.Name, colWidthName),
			truncate(p.Brand, colWidthBrand),
			truncate(p.Category, colWidthCategory),
			"$" + p.Price.StringFixed(2),
			carbon.FormatKg(p.Footprint()),
			p.Rating.String(),
		}
	}
	return rows
}

// RenderProductDetail renders one product's carbon analysis in a box.
func RenderProductDetail(p catalog.EnrichedProduct, width int) string {
	var content strings.Builder

	content.WriteString(HeaderStyle.Render(p.Name))
	content.WriteString("\n")
	content.WriteString(SubtleStyle.Render(fmt.Sprintf("%s • %s • $%s", p.Brand, p.Category, p.Price.StringFixed(2))))
	content.WriteString("\n\n")

	if p.Description != "" {
		content.WriteString(p.Description)
		content.WriteString("\n\n")
	}

	fp := p.Footprint()
	fmt.Fprintf(&content, "Footprint:  %s  %s\n", carbon.FormatKg(fp), RenderGrade(p.Rating, true))
	fmt.Fprintf(&content, "Production: %s\n", carbon.FormatKg(p.Estimate.Breakdown.Production))
	fmt.Fprintf(&content, "Transport:  %s\n", carbon.FormatKg(p.Estimate.Breakdown.Transport))
	fmt.Fprintf(&content, "Packaging:  %s\n", carbon.FormatKg(p.Estimate.Breakdown.Packaging))
	fmt.Fprintf(&content, "Confidence: %s\n", p.Estimate.Confidence)

	if eq, err := carbon.Equivalencies(fp); err == nil && !eq.Empty {
		content.WriteString("\n")
		content.WriteString(SubtleStyle.Render(eq.Text))
		content.WriteString("\n")
	}

	if len(p.Suggestions) > 0 {
		content.WriteString("\nSuggestions:\n")
		for _, s := range p.Suggestions {
			content.WriteString("  • " + s + "\n")
		}
	}

	return BoxStyle.Width(max(width-borderPadding, 0)).Render(strings.TrimRight(content.String(), "\n"))
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-len(truncateSuffix)]) + truncateSuffix
}

// RunCatalogBrowser runs the interactive catalog browser until the user
// quits or ctx is cancelled.
func RunCatalogBrowser(ctx context.Context, fetcher CatalogFetcher) error {
	m := NewCatalogModelWithLoading(ctx, fetcher)
	final, err := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("running catalog browser: %w", err)
	}
	if cm, ok := final.(*CatalogModel); ok && cm.Err() != nil {
		return cm.Err()
	}
	return nil
}
