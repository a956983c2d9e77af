package dashboard

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const highlightSymbol = ">> "

// tableState carries the selection and scroll-follow bookkeeping for a
// panel table. Callers hold the panel's state lock around every method.
type tableState struct {
	selected int // -1 means no selection
	offset   int
}

func newTableState() tableState {
	return tableState{selected: -1}
}

// moveDown advances the selection by one, saturating at the last row.
func (t *tableState) moveDown(rows int) {
	if rows == 0 {
		return
	}
	if t.selected < 0 {
		t.selected = 0
		return
	}
	if t.selected < rows-1 {
		t.selected++
	}
}

// moveUp retreats the selection by one, saturating at the first row.
func (t *tableState) moveUp() {
	if t.selected > 0 {
		t.selected--
	}
}

// clampAfterReplace adjusts the selection after the row set was replaced
// wholesale. A selection past the new end clamps to the last row; an
// empty row set clears it.
func (t *tableState) clampAfterReplace(rows int) {
	if rows == 0 {
		t.selected = -1
		t.offset = 0
		return
	}
	if t.selected >= rows {
		t.selected = rows - 1
	}
}

// ensureVisible scrolls the window so the selection stays on screen.
func (t *tableState) ensureVisible(visible, rows int) {
	if visible <= 0 {
		return
	}
	if t.offset > rows-1 {
		t.offset = max(0, rows-1)
	}
	if t.selected < 0 {
		return
	}
	if t.selected < t.offset {
		t.offset = t.selected
	}
	if t.selected >= t.offset+visible {
		t.offset = t.selected - visible + 1
	}
}

// column is one fixed-width table column. A zero width marks the column
// flexible: it shares whatever space the fixed columns leave over.
type column struct {
	title string
	width int
}

const (
	cellGap         = 2
	minFlexWidth    = 8
	truncationRunes = "…"
)

func fitWidths(cols []column, available int) []int {
	widths := make([]int, len(cols))
	fixed := 0
	flex := 0
	for i, c := range cols {
		if c.width > 0 {
			widths[i] = c.width
			fixed += c.width
		} else {
			flex++
		}
	}
	fixed += cellGap * (len(cols) - 1)

	if flex > 0 {
		share := (available - fixed) / flex
		if share < minFlexWidth {
			share = minFlexWidth
		}
		for i, c := range cols {
			if c.width == 0 {
				widths[i] = share
			}
		}
	}
	return widths
}

func padCell(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, truncationRunes), width)
}

func joinCells(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = padCell(c, widths[i])
	}
	return strings.Join(parts, strings.Repeat(" ", cellGap))
}

// renderTable lays out a header plus the visible row window, marking the
// selected row. It mutates ts's scroll offset, which is why panel render
// paths take the state lock exclusively.
func renderTable(st Styles, cols []column, rows [][]string, ts *tableState, width, height int) []string {
	widths := fitWidths(cols, width-len(highlightSymbol))

	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.title
	}
	lines := make([]string, 0, height)
	lines = append(lines, st.Header.Render(strings.Repeat(" ", len(highlightSymbol))+joinCells(headers, widths)))

	visible := height - 1
	if visible < 1 {
		visible = 1
	}
	ts.ensureVisible(visible, len(rows))

	end := ts.offset + visible
	if end > len(rows) {
		end = len(rows)
	}
	for i := ts.offset; i < end; i++ {
		line := joinCells(rows[i], widths)
		if i == ts.selected {
			lines = append(lines, st.Selected.Render(highlightSymbol+line))
		} else {
			lines = append(lines, st.Text.Render(strings.Repeat(" ", len(highlightSymbol))+line))
		}
	}
	return lines
}
