package export

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/matzehuels/stackrow/pkg/row"
)

func newEngine(t *testing.T) *row.Engine {
	t.Helper()
	eng := row.New(nil)
	for _, id := range []string{"a", "b", "c"} {
		if _, err := eng.AddItem(row.ItemConfig{ID: id, Label: strings.ToUpper(id), Width: 10}); err != nil {
			t.Fatal(err)
		}
	}
	if err := eng.Detach(eng.Locate("c")); err != nil {
		t.Fatal(err)
	}
	return eng
}

func TestToJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := ToJSON(&buf, newEngine(t)); err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	var snap row.Snapshot
	if err := json.Unmarshal(buf.Bytes(), &snap); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if len(snap.Order) != 2 || snap.Order[0].ID != "a" || snap.Order[1].ID != "b" {
		t.Errorf("Order = %+v, want [a b]", snap.Order)
	}
	if len(snap.Pool) != 1 || !snap.Pool[0].Free {
		t.Errorf("Pool = %+v, want free c", snap.Pool)
	}
}

func TestToDOT(t *testing.T) {
	eng := newEngine(t)
	eng.Press("a", row.ButtonPrimary, 0, 0)
	dot := ToDOT(eng, Options{})

	for _, want := range []string{
		"digraph row {",
		"subgraph cluster_row",
		"subgraph cluster_pool",
		`"a" -> "b" [label="next"];`,
		`"b" -> "a" [label="prev", style=dotted];`,
		`"c" [label="C", style="rounded,filled,dashed", fillcolor=lightgrey];`,
		`"a" [label="A", penwidth=2, color=teal];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q\n%s", want, dot)
		}
	}
	if strings.Contains(dot, `"c" ->`) {
		t.Errorf("pool items should have no edges\n%s", dot)
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(newEngine(t), Options{Detailed: true})
	if !strings.Contains(dot, `label="B\nx0: 10\nwidth: 10"`) {
		t.Errorf("detailed label missing\n%s", dot)
	}
}

func TestToDOTEmpty(t *testing.T) {
	dot := ToDOT(row.New(nil), Options{})
	if strings.Contains(dot, "cluster") {
		t.Errorf("empty engine should have no clusters\n%s", dot)
	}
}

func TestRenderSVG(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz rendering is slow")
	}
	svg, err := RenderSVG(context.Background(), ToDOT(newEngine(t), Options{}))
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Error("RenderSVG() output is not SVG")
	}
}
