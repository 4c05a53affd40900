package cmd

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-mosaic/mosaic/cmd/mosaic/internal/config"
	"github.com/go-mosaic/mosaic/pkg/engine"
	"github.com/go-mosaic/mosaic/pkg/gallery"
	"github.com/go-mosaic/mosaic/pkg/pool"
	"github.com/go-mosaic/mosaic/pkg/viewport"
)

func init() {
	RegisterCommand(&Command{
		Name:  "demo",
		Short: "Browse a synthetic gallery grid in the terminal",
		Long: `Drive the engine interactively with a terminal renderer.

Cells stand in for thumbnails; a cell marked WIDE has reported a
landscape shape and occupies two columns after the next relayout.
Discoveries arrive on a timer to mimic asynchronous image loads.

Keys:
  up/down, j/k   scroll by half a row
  pgup/pgdn      scroll by a viewport
  g / G          jump to top / bottom
  r              reshuffle the collection (new epoch)
  q              quit`,
		Usage: "mosaic demo [--items N] [--config DIR]",
		Run:   runDemo,
	})
}

var (
	demoTitleStyle   = lipgloss.NewStyle().Bold(true)
	demoStatusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	demoCellStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	demoWideStyle    = demoCellStyle.BorderForeground(lipgloss.Color("212"))
	demoLeadingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("117"))
)

// Cell geometry in terminal character units.
const (
	demoRowExtent     = 4.0
	demoColumnExtent  = 22.0
	demoLeadingExtent = 1.0
)

const discoveryInterval = 700 * time.Millisecond

type discoveryTickMsg time.Time

func discoveryTick() tea.Cmd {
	return tea.Tick(discoveryInterval, func(t time.Time) tea.Msg {
		return discoveryTickMsg(t)
	})
}

// demoCell is the handle the demo's mount callback returns. It remembers the
// epoch current at mount time so a report issued after a reshuffle exercises
// the stale-epoch guard the way a slow image decode would.
type demoCell struct {
	target pool.Target
	epoch  uint64
}

type demoModel struct {
	cfg       *config.Config
	engine    *engine.Engine
	scroll    *viewport.Controller
	summaries []gallery.Summary
	folders   []gallery.Folder
	cells     map[string]*demoCell
	rng       *rand.Rand
	width     int
	height    int
	ready     bool
}

// demoModel doubles as the engine's host: the scroll controller holds the
// offset and the terminal size is the viewport.
func (m *demoModel) ScrollOffset() float64          { return m.scroll.Offset() }
func (m *demoModel) SetScrollOffset(offset float64) { m.scroll.JumpTo(offset) }
func (m *demoModel) ViewportSize() (float64, float64) {
	return float64(m.width), float64(m.height - 2) // minus header and status line
}

func (m *demoModel) mount(t pool.Target) pool.Handle {
	cell := &demoCell{target: t, epoch: m.engine.Epoch()}
	m.cells[t.Item.Key] = cell
	return cell
}

func (m *demoModel) unmount(h pool.Handle) {
	if cell, ok := h.(*demoCell); ok {
		delete(m.cells, cell.target.Item.Key)
	}
}

func newDemoModel(cfg *config.Config, items int) *demoModel {
	m := &demoModel{
		cfg:       cfg,
		scroll:    &viewport.Controller{},
		summaries: syntheticCollection(items),
		folders: []gallery.Folder{
			{Name: "favorites", Path: "/library/favorites"},
			{Name: "unsorted", Path: "/library/unsorted"},
		},
		cells: make(map[string]*demoCell),
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	m.engine = engine.New(m, m.mount, m.unmount, engine.Options{
		RowExtent:        demoRowExtent,
		ColumnExtent:     demoColumnExtent,
		LeadingRowExtent: demoLeadingExtent,
		BufferRows:       cfg.Grid.BufferRows,
	})
	return m
}

func (m *demoModel) Init() tea.Cmd {
	return discoveryTick()
}

func (m *demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scroll.SetViewportExtent(float64(msg.Height - 2))
		if !m.ready {
			m.ready = true
			m.engine.SetItems(gallery.ToItems(m.summaries), gallery.ToLeading(m.folders))
		} else {
			m.engine.NotifyResize()
		}
		m.settle()

	case discoveryTickMsg:
		m.reportRandomWide()
		m.settle()
		return m, discoveryTick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			m.scrollBy(-demoRowExtent / 2)
		case "down", "j":
			m.scrollBy(demoRowExtent / 2)
		case "pgup":
			m.scrollBy(-m.scroll.ViewportExtent())
		case "pgdown":
			m.scrollBy(m.scroll.ViewportExtent())
		case "g":
			m.scroll.JumpTo(0)
			m.engine.NotifyScroll()
			m.settle()
		case "G":
			m.scroll.JumpTo(m.engine.ContentExtent())
			m.engine.NotifyScroll()
			m.settle()
		case "r":
			m.reshuffle()
			m.settle()
		}
	}
	return m, nil
}

func (m *demoModel) scrollBy(delta float64) {
	m.scroll.ScrollBy(delta)
	m.engine.NotifyScroll()
	m.settle()
}

// settle drains the coalesced work queued by the preceding events and keeps
// the scroll range in step with the content extent.
func (m *demoModel) settle() {
	for m.engine.NeedsStep() {
		m.engine.Step()
	}
	max := m.engine.ContentExtent() - m.scroll.ViewportExtent()
	if max < 0 {
		max = 0
	}
	m.scroll.SetExtents(0, max)
}

func (m *demoModel) reportRandomWide() {
	for _, key := range m.engine.MountedKeys() {
		cell, ok := m.cells[key]
		if !ok || cell.target.Kind != pool.KindPrimary {
			continue
		}
		if cell.target.Position.Span == 2 {
			continue
		}
		if m.rng.Intn(3) != 0 {
			continue
		}
		m.engine.ReportWide(key, cell.epoch)
		return
	}
}

func (m *demoModel) reshuffle() {
	m.rng.Shuffle(len(m.summaries), func(i, j int) {
		m.summaries[i], m.summaries[j] = m.summaries[j], m.summaries[i]
	})
	m.engine.SetItems(gallery.ToItems(m.summaries), gallery.ToLeading(m.folders))
	m.scroll.JumpTo(0)
}

func (m *demoModel) View() string {
	if !m.ready {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(demoTitleStyle.Render("mosaic demo"))
	b.WriteString("\n")
	b.WriteString(m.renderGrid())
	b.WriteString("\n")
	b.WriteString(demoStatusStyle.Render(fmt.Sprintf(
		"offset %.0f/%.0f  cols %d  mounted %d  epoch %d  [j/k scroll, r reshuffle, q quit]",
		m.scroll.Offset(), m.engine.ContentExtent(),
		m.engine.Geometry().ColumnCount, len(m.cells), m.engine.Epoch(),
	)))
	return b.String()
}

// renderGrid paints the mounted cells row by row, clipped to the viewport.
func (m *demoModel) renderGrid() string {
	geom := m.engine.Geometry()
	byRow := make(map[int][]*demoCell)
	var leading []*demoCell
	for _, cell := range m.cells {
		if cell.target.Kind == pool.KindLeading {
			leading = append(leading, cell)
			continue
		}
		row := cell.target.Position.Row
		byRow[row] = append(byRow[row], cell)
	}

	viewportExtent := m.scroll.ViewportExtent()
	first, last := viewport.VisibleRows(
		m.scroll.Offset(), viewportExtent, geom.LeadingExtent, geom.RowExtent,
		m.engine.RowCount(), 0,
	)

	var rows []string
	if m.scroll.Offset() < geom.LeadingExtent {
		rows = append(rows, m.renderLeading(leading))
	}
	for row := first; row < last; row++ {
		rows = append(rows, m.renderRow(byRow[row], geom.ColumnCount))
	}
	out := lipgloss.JoinVertical(lipgloss.Left, rows...)

	// Clip to the viewport height so the status line stays put.
	lines := strings.Split(out, "\n")
	if len(lines) > int(viewportExtent) {
		lines = lines[:int(viewportExtent)]
	}
	return strings.Join(lines, "\n")
}

func (m *demoModel) renderLeading(cells []*demoCell) string {
	titles := make(map[string]string, len(m.folders))
	for _, f := range m.folders {
		titles[f.Path] = f.Name
	}
	parts := make([]string, 0, len(cells))
	for _, cell := range cells {
		parts = append(parts, demoLeadingStyle.Render("▸ "+titles[cell.target.Item.Key]))
	}
	return strings.Join(parts, "   ")
}

func (m *demoModel) renderRow(cells []*demoCell, columnCount int) string {
	byColumn := make(map[int]*demoCell, len(cells))
	for _, cell := range cells {
		byColumn[cell.target.Position.Column] = cell
	}
	var parts []string
	for col := 0; col < columnCount; col++ {
		cell, ok := byColumn[col]
		if !ok {
			continue
		}
		span := cell.target.Position.Span
		width := int(demoColumnExtent)*span - 2
		label := cell.target.Item.Key
		style := demoCellStyle
		if span == 2 {
			label += "  WIDE"
			style = demoWideStyle
			col++
		}
		parts = append(parts, style.Width(width).Render(label))
	}
	if len(parts) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func runDemo(args []string) error {
	items := 120
	configDir := "."
	for i := 0; i < len(args); i++ {
		name, inline, hasInline := strings.Cut(args[i], "=")
		value := inline
		if !hasInline {
			if i+1 >= len(args) {
				return fmt.Errorf("%s requires a value", args[i])
			}
			value = args[i+1]
			i++
		}
		switch name {
		case "--items":
			n, err := parseCount(value)
			if err != nil {
				return fmt.Errorf("--items: %w", err)
			}
			items = n
		case "--config":
			configDir = value
		default:
			return fmt.Errorf("unknown flag: %s", name)
		}
	}

	cfg, err := config.LoadOptional(configDir)
	if err != nil {
		return err
	}

	p := tea.NewProgram(newDemoModel(cfg, items), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func parseCount(s string) (int, error) {
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil || n < 0 {
		return 0, fmt.Errorf("expected a non-negative integer, got %q", s)
	}
	return n, nil
}
