package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/buhanec/yafwi"
)

func withoutColor(t *testing.T) {
	t.Helper()
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })
}

func TestLimitsRows(t *testing.T) {
	reg := yafwi.NewRegistry()
	list, err := limitsTypes(reg, []string{"int8", "ulong", "uint24"})
	if err != nil {
		t.Fatalf("limitsTypes: %v", err)
	}
	rows := limitsRows(reg, list, false)
	want := [][]string{
		{"int8", "8", "signed", "-128", "127", "sbyte"},
		{"uint64", "64", "unsigned", "0", "18446744073709551615", "ulong"},
		{"uint24", "24", "unsigned", "0", "16777215", ""},
	}
	for i := range want {
		if strings.Join(rows[i], "|") != strings.Join(want[i], "|") {
			t.Fatalf("row %d = %q, want %q", i, rows[i], want[i])
		}
	}

	if _, err := limitsTypes(reg, []string{"nope"}); err == nil {
		t.Fatalf("expected error for unknown type")
	}
	all, err := limitsTypes(reg, nil)
	if err != nil || len(all) != len(yafwi.Predefined())+1 {
		t.Fatalf("default listing = %d types, %v", len(all), err)
	}
}

func TestFormatBoundGroups64BitValues(t *testing.T) {
	cases := []struct {
		v    yafwi.Value
		want string
	}{
		{yafwi.Int32.Min(), "-2,147,483,648"},
		{yafwi.Uint64.Max(), "18,446,744,073,709,551,615"},
		{yafwi.Int8.Max(), "127"},
		{yafwi.Uint128.Max(), "340282366920938463463374607431768211455"},
	}
	for _, tc := range cases {
		if got := formatBound(tc.v, true); got != tc.want {
			t.Fatalf("formatBound(%s) = %q, want %q", tc.v, got, tc.want)
		}
	}
	if got := formatBound(yafwi.Int32.Min(), false); got != "-2147483648" {
		t.Fatalf("ungrouped bound = %q", got)
	}
}

func TestWriteTableAligns(t *testing.T) {
	withoutColor(t)
	reg := yafwi.NewRegistry()
	var buf bytes.Buffer
	if err := writeTable(&buf, limitsHeader, limitsRows(reg, []*yafwi.Type{yafwi.Int8, yafwi.Uint16}, false)); err != nil {
		t.Fatalf("writeTable: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and two rows, got %q", buf.String())
	}
	if !strings.HasPrefix(lines[0], "type    width  sign") {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "int8        8  signed  ") || !strings.HasPrefix(lines[2], "uint16     16  unsigned") {
		t.Fatalf("columns not aligned:\n%s", buf.String())
	}
	maxCol := strings.Index(lines[0], "  max") + len("  max")
	if !strings.HasSuffix(lines[1][:maxCol], " 127") || !strings.HasSuffix(lines[2][:maxCol], " 65535") {
		t.Fatalf("max column not right-aligned:\n%s", buf.String())
	}
}
