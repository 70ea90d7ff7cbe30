package main

import (
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/buhanec/yafwi"
)

var headerColor = color.New(color.Bold, color.FgCyan)

var limitsHeader = []string{"type", "width", "sign", "min", "max", "aliases"}

// typeRow renders one type. Grouping applies to bounds that fit in 64 bits;
// wider bounds are printed as plain digits.
func typeRow(t *yafwi.Type, aliases []string, group bool) []string {
	sign := "signed"
	if t.Unsigned() {
		sign = "unsigned"
	}
	return []string{
		t.String(),
		strconv.FormatUint(uint64(t.Width()), 10),
		sign,
		formatBound(t.Min(), group),
		formatBound(t.Max(), group),
		strings.Join(aliases, ","),
	}
}

var groupPrinter = message.NewPrinter(language.English)

func formatBound(v yafwi.Value, group bool) string {
	if group {
		if n, ok := v.Int64(); ok {
			return groupPrinter.Sprintf("%d", n)
		}
		if n, ok := v.Uint64(); ok {
			return groupPrinter.Sprintf("%d", n)
		}
	}
	return v.Decimal()
}

// aliasIndex inverts the registry's alias table.
func aliasIndex(reg *yafwi.Registry) map[*yafwi.Type][]string {
	out := make(map[*yafwi.Type][]string)
	for name, t := range reg.Aliases() {
		out[t] = append(out[t], name)
	}
	for _, names := range out {
		slices.Sort(names)
	}
	return out
}

// writeTable prints rows in aligned columns; numeric columns are
// right-aligned.
func writeTable(w io.Writer, header []string, rows [][]string) error {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	var b strings.Builder
	for i, h := range header {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(headerColor.Sprint(pad(h, widths[i], i)))
	}
	b.WriteString("\n")
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(pad(cell, widths[i], i))
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func pad(cell string, width, column int) string {
	switch column {
	case 1, 3, 4:
		return runewidth.FillLeft(cell, width)
	case len(limitsHeader) - 1:
		return cell
	default:
		return runewidth.FillRight(cell, width)
	}
}
