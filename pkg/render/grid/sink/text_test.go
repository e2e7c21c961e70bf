package sink

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ganttgrid/ganttgrid/pkg/render/grid"
)

func TestTextGolden(t *testing.T) {
	axis, placements := researchChart(t)

	var buf bytes.Buffer
	if err := grid.Draw(axis, placements, NewText(&buf)); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	bar := strings.Repeat("█", 10)
	want := strings.Join([]string{
		"          06-01-2021  07-01-2021  08-01-2021  11-01-2021  12-01-2021",
		"Research  " + bar + "  " + bar + "  " + bar + "  " + bar + "  " + bar,
		"",
	}, "\n")

	if got := buf.String(); got != want {
		t.Errorf("text output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestTextSymbol(t *testing.T) {
	axis, placements := researchChart(t)

	var buf bytes.Buffer
	if err := grid.Draw(axis, placements, NewText(&buf), grid.WithSymbol("=")); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	if !strings.Contains(buf.String(), strings.Repeat("=", 10)) {
		t.Errorf("output does not repeat the symbol across the span:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "█") {
		t.Error("default bar rune used despite a configured symbol")
	}
}

func TestTextDeterministic(t *testing.T) {
	axis, placements := researchChart(t)

	var a, b bytes.Buffer
	if err := grid.Draw(axis, placements, NewText(&a)); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if err := grid.Draw(axis, placements, NewText(&b)); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if a.String() != b.String() {
		t.Error("repeated renders differ")
	}
}
