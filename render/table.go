package render

import (
	"fmt"
	"io"
	"math"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/katalvlaran/gaitwarp/dtw"
)

// DefaultTableLimit is the number of samples per axis shown by Table.
const DefaultTableLimit = 15

// TableCells formats the top-left corner of the cost matrix for display:
// limit samples per axis plus the sentinel row and column.
//
// The header is "Ref" for the sentinel column and "P<j>" for patient sample
// columns. Values use one decimal, +Inf is shown as "∞", and cells on the
// warping path are wrapped in brackets.
func TableCells(res *dtw.Result, limit int) (header []string, rows [][]string, err error) {
	if res == nil || res.Matrix == nil {
		return nil, nil, ErrNilResult
	}
	if limit <= 0 {
		return nil, nil, fmt.Errorf("%w: table limit %d", ErrBadOption, limit)
	}

	block := res.Matrix.Block(limit+1, limit+1)
	if len(block) == 0 {
		return nil, nil, fmt.Errorf("%w: empty matrix", ErrNilResult)
	}
	header = make([]string, len(block[0]))
	for j := range header {
		if j == 0 {
			header[j] = "Ref"
			continue
		}
		header[j] = fmt.Sprintf("P%d", j)
	}

	onPath := make(map[dtw.Coord]bool, len(res.Path))
	for _, c := range res.Path {
		onPath[c] = true
	}

	rows = make([][]string, len(block))
	for i, line := range block {
		rows[i] = make([]string, len(line))
		for j, v := range line {
			s := formatCost(v)
			if onPath[dtw.Coord{I: i - 1, J: j - 1}] {
				s = "[" + s + "]"
			}
			rows[i][j] = s
		}
	}

	return header, rows, nil
}

// Table writes the TableCells view of res to w as a text table.
func Table(w io.Writer, res *dtw.Result, limit int) error {
	header, rows, err := TableCells(res, limit)
	if err != nil {
		return err
	}

	t := NewTextTable(w)
	t.Header(header)
	if err := t.Bulk(rows); err != nil {
		return fmt.Errorf("render: table rows: %w", err)
	}

	return t.Render()
}

// NewTextTable returns a table writer that prints headers verbatim and never
// wraps cells.
func NewTextTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w,
		tablewriter.WithHeaderAutoFormat(tw.Off),
		tablewriter.WithRowAutoWrap(tw.WrapNone),
	)
}

// formatCost renders one matrix cell.
func formatCost(v float64) string {
	if math.IsInf(v, 1) {
		return "∞"
	}

	return fmt.Sprintf("%.1f", v)
}
