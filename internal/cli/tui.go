package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/stackrow/pkg/row"
)

// Screen geometry. Engine coordinates are terminal cells: x grows right from
// the left margin and y is 0 on the row's top edge.
const (
	headerLines  = 3 // title, help, blank
	marginX      = 2
	defaultWidth = 80
)

// newItemWidths cycles the widths of items added with the "a" key.
var newItemWidths = []int{8, 10, 12}

// =============================================================================
// Canvas
// =============================================================================

type paint uint8

const (
	paintNone paint = iota
	paintBaseline
	paintShadow
	paintItem
	paintFree
	paintDrag
)

var paintStyles = map[paint]lipgloss.Style{
	paintNone:     lipgloss.NewStyle(),
	paintBaseline: lipgloss.NewStyle().Foreground(colorDim),
	paintShadow:   lipgloss.NewStyle().Foreground(colorDim),
	paintItem:     lipgloss.NewStyle().Foreground(colorWhite),
	paintFree:     lipgloss.NewStyle().Foreground(colorYellow),
	paintDrag:     lipgloss.NewStyle().Bold(true).Foreground(colorCyan),
}

// canvas is a fixed grid of cells that is rendered line by line, grouping
// runs of equal paint into a single styled segment.
type canvas struct {
	w, h   int
	runes  [][]rune
	paints [][]paint
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, runes: make([][]rune, h), paints: make([][]paint, h)}
	for y := range h {
		c.runes[y] = []rune(strings.Repeat(" ", w))
		c.paints[y] = make([]paint, w)
	}
	return c
}

func (c *canvas) set(x, y int, r rune, p paint) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.runes[y][x] = r
	c.paints[y][x] = p
}

func (c *canvas) hline(x, y, w int, r rune, p paint) {
	for i := range w {
		c.set(x+i, y, r, p)
	}
}

// box draws a w×h frame at (x, y) with label on its middle line.
func (c *canvas) box(x, y, w, h int, label string, p paint, dashed bool) {
	if w <= 0 || h <= 0 {
		return
	}
	tl, tr, bl, br, hz, vt := '╭', '╮', '╰', '╯', '─', '│'
	if dashed {
		tl, tr, bl, br, hz, vt = '┌', '┐', '└', '┘', '┄', '┆'
	}

	if h == 1 {
		c.set(x, y, '[', p)
		c.hline(x+1, y, w-2, ' ', p)
		if w > 1 {
			c.set(x+w-1, y, ']', p)
		}
	} else {
		c.set(x, y, tl, p)
		c.hline(x+1, y, w-2, hz, p)
		c.set(x+w-1, y, tr, p)
		for dy := 1; dy < h-1; dy++ {
			c.set(x, y+dy, vt, p)
			c.hline(x+1, y+dy, w-2, ' ', p)
			c.set(x+w-1, y+dy, vt, p)
		}
		c.set(x, y+h-1, bl, p)
		c.hline(x+1, y+h-1, w-2, hz, p)
		c.set(x+w-1, y+h-1, br, p)
	}

	if label == "" || w <= 2 {
		return
	}
	text := []rune(label)
	if len(text) > w-2 {
		text = text[:w-2]
	}
	lx := x + 1 + (w-2-len(text))/2
	for i, r := range text {
		c.set(lx+i, y+h/2, r, p)
	}
}

func (c *canvas) String() string {
	var b strings.Builder
	for y := range c.h {
		if y > 0 {
			b.WriteByte('\n')
		}
		start := 0
		for x := 1; x <= c.w; x++ {
			if x < c.w && c.paints[y][x] == c.paints[y][start] {
				continue
			}
			b.WriteString(paintStyles[c.paints[y][start]].Render(string(c.runes[y][start:x])))
			start = x
		}
	}
	return b.String()
}

// =============================================================================
// termLayout - row.Layout for the terminal
// =============================================================================

// termLayout keeps the visual state the engine notifies it about. Geometry is
// already applied by the engine, so motion takes effect on the next frame.
type termLayout struct {
	shadows  map[*row.Item]int
	dragging *row.Item
	moves    int
}

func newTermLayout() *termLayout {
	return &termLayout{shadows: make(map[*row.Item]int)}
}

func (l *termLayout) PositionRightOf(*row.Item, *row.Item, bool) { l.moves++ }
func (l *termLayout) AnimateTo(*row.Item, row.Target)            { l.moves++ }
func (l *termLayout) CreateShadow(it *row.Item)                  { l.shadows[it] = it.X0() }
func (l *termLayout) RemoveShadow(it *row.Item)                  { delete(l.shadows, it) }
func (l *termLayout) UpdateShadowX(it *row.Item, x int)          { l.shadows[it] = x }

func (l *termLayout) MarkDragging(it *row.Item, dragging bool) {
	switch {
	case dragging:
		l.dragging = it
	case l.dragging == it:
		l.dragging = nil
	}
}

// =============================================================================
// rowModel - Interactive drag-to-reorder row
// =============================================================================

// rowModel is the bubbletea model hosting a row engine.
type rowModel struct {
	engine     *row.Engine
	layout     *termLayout
	itemHeight int
	detach     int
	width      int
	added      int
	status     string
}

// newRowModel creates a model for e. The layout must be the one e was built
// with so shadows and drag state are drawn.
func newRowModel(e *row.Engine, l *termLayout, itemHeight, detach int) rowModel {
	return rowModel{
		engine:     e,
		layout:     l,
		itemHeight: itemHeight,
		detach:     detach,
		width:      defaultWidth,
	}
}

func (m rowModel) Init() tea.Cmd {
	return nil
}

func (m rowModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.engine.Cancel()
			return m, tea.Quit
		case "esc":
			if it := m.engine.Dragging(); it != nil {
				m.engine.Cancel()
				m.status = "cancelled drag of " + it.Label
			}
		case "a":
			m.added++
			cfg := row.ItemConfig{
				Label: fmt.Sprintf("item-%d", m.added),
				Width: newItemWidths[(m.added-1)%len(newItemWidths)],
			}
			if _, err := m.engine.AddItem(cfg); err != nil {
				m.status = err.Error()
			} else {
				m.status = "added " + cfg.Label
			}
		}
	case tea.MouseMsg:
		m = m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if m.width < 1 {
			m.width = defaultWidth
		}
	}
	return m, nil
}

func (m rowModel) handleMouse(msg tea.MouseMsg) rowModel {
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown, tea.MouseButtonWheelLeft, tea.MouseButtonWheelRight:
		return m
	}
	x, y := m.toEngine(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if m.engine.Press(m.hitTest(x, y), buttonFor(msg.Button), x, y) {
			m.status = "dragging " + m.engine.Dragging().Label
		}
	case tea.MouseActionMotion:
		m.engine.Move(x, y)
	case tea.MouseActionRelease:
		if it := m.engine.Dragging(); it != nil {
			m.engine.Release()
			m.status = "dropped " + it.Label
		}
	}
	return m
}

func buttonFor(b tea.MouseButton) row.Button {
	switch b {
	case tea.MouseButtonLeft:
		return row.ButtonPrimary
	case tea.MouseButtonMiddle:
		return row.ButtonMiddle
	default:
		return row.ButtonSecondary
	}
}

// rowTop is the canvas line of the row's top edge. It leaves room above the
// row for an item dragged just past the detach distance.
func (m rowModel) rowTop() int {
	return m.detach + m.itemHeight + 1
}

func (m rowModel) canvasHeight() int {
	return 2*m.rowTop() + m.itemHeight
}

func (m rowModel) toEngine(sx, sy int) (int, int) {
	return sx - marginX, sy - headerLines - m.rowTop()
}

// hitTest returns the ID of the topmost item under (x, y), or "".
func (m rowModel) hitTest(x, y int) string {
	hit := func(it *row.Item) bool {
		return x >= it.X0() && x < it.X1() && y >= it.Y0() && y < it.Y0()+m.itemHeight
	}
	pool := m.engine.Pool()
	for i := len(pool) - 1; i >= 0; i-- {
		if hit(pool[i]) {
			return pool[i].ID
		}
	}
	for _, it := range m.engine.Order() {
		if hit(it) {
			return it.ID
		}
	}
	return ""
}

func (m rowModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(appName))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("drag to reorder · drag off the row to park · a add  esc cancel  q quit"))
	b.WriteString("\n\n")

	c := newCanvas(m.width, m.canvasHeight())
	top := m.rowTop()
	c.hline(0, top+m.itemHeight, m.width, '┈', paintBaseline)

	for it, x := range m.layout.shadows {
		c.box(marginX+x, top, it.Width(), m.itemHeight, "", paintShadow, true)
	}
	drag := m.layout.dragging
	draw := func(it *row.Item, p paint) {
		c.box(marginX+it.X0(), top+it.Y0(), it.Width(), m.itemHeight, it.Label, p, false)
	}
	for _, it := range m.engine.Order() {
		if it != drag {
			draw(it, paintItem)
		}
	}
	for _, it := range m.engine.Pool() {
		if it != drag {
			draw(it, paintFree)
		}
	}
	if drag != nil {
		draw(drag, paintDrag)
	}
	b.WriteString(c.String())
	b.WriteString("\n\n")

	b.WriteString(StyleDim.Render("row  ") + StyleValue.Render(strings.Join(orderLabels(m.engine), " "+iconArrow+" ")))
	b.WriteString("\n")
	pool := m.engine.Pool()
	labels := make([]string, len(pool))
	for i, it := range pool {
		labels[i] = it.Label
	}
	b.WriteString(StyleDim.Render("pool ") + StyleWarning.Render(strings.Join(labels, ", ")))
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(StyleHighlight.Render(m.status))
	}
	b.WriteString("\n")
	return b.String()
}
