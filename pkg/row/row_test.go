package row

import (
	"fmt"
	"slices"
	"testing"

	"github.com/matzehuels/stackrow/pkg/errors"
)

// buildRow appends items named a, b, c, ... each width wide.
func buildRow(t *testing.T, l Layout, n, width int) (*Row, []*Item) {
	t.Helper()
	r := NewRow(l)
	items := make([]*Item, n)
	for i := range items {
		items[i] = r.Append(newItem(string(rune('a'+i)), ItemConfig{Width: width}), true)
	}
	mustValidate(t, r)
	return r, items
}

func mustValidate(t *testing.T, r *Row) {
	t.Helper()
	if err := r.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
}

func ids(items []*Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

// chainOrder walks the chain from the head.
func chainOrder(r *Row) []string {
	var out []string
	for cur := r.Head(); cur != nil; cur = cur.next {
		out = append(out, cur.ID)
		if len(out) > r.Len()+len(r.pool) {
			break
		}
	}
	return out
}

func TestAppend(t *testing.T) {
	l := newRecordingLayout()
	r, items := buildRow(t, l, 3, 100)

	for i, it := range items {
		if it.x0 != i*100 {
			t.Errorf("%s.x0 = %d, want %d", it.ID, it.x0, i*100)
		}
	}
	if got := ids(r.Items()); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("Items() = %v, want [a b c]", got)
	}
	if r.Head() != items[0] || r.Tail() != items[2] {
		t.Errorf("Head/Tail = %v/%v, want a/c", r.Head(), r.Tail())
	}
	// The first item is not positioned; each later one is positioned once.
	if got := l.repositions(); got != 2 {
		t.Errorf("reposition calls = %d, want 2", got)
	}
}

func TestAppendExistingIsNoop(t *testing.T) {
	r, items := buildRow(t, nil, 2, 10)
	r.Append(items[0], true)
	mustValidate(t, r)
	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2", r.Len())
	}
}

func TestDetachCascade(t *testing.T) {
	const n = 5
	for k := 0; k < n; k++ {
		t.Run(fmt.Sprintf("detach index %d", k), func(t *testing.T) {
			l := newRecordingLayout()
			r, items := buildRow(t, l, n, 10)
			l.reset()

			moved, err := r.Detach(items[k])
			if err != nil {
				t.Fatalf("Detach() error = %v", err)
			}
			mustValidate(t, r)

			want := n - k - 1
			if moved != want {
				t.Errorf("Detach() moved = %d, want %d", moved, want)
			}
			if got := l.repositions(); got != want {
				t.Errorf("reposition calls = %d, want %d", got, want)
			}
			if r.Len() != n-1 {
				t.Errorf("Len() = %d, want %d", r.Len(), n-1)
			}
			if !slices.Equal(chainOrder(r), ids(r.Items())) {
				t.Errorf("chain %v != sequence %v", chainOrder(r), ids(r.Items()))
			}
			for i, it := range r.Items() {
				if it.x0 != i*10 {
					t.Errorf("%s.x0 = %d, want %d", it.ID, it.x0, i*10)
				}
			}

			d := items[k]
			if !d.free || d.prev != nil || d.next != nil {
				t.Errorf("detached item = free:%v prev:%v next:%v, want free and unlinked", d.free, d.prev, d.next)
			}
		})
	}
}

func TestDetachHead(t *testing.T) {
	l := newRecordingLayout()
	r, items := buildRow(t, l, 3, 100)
	a, b := items[0], items[1]
	l.reset()

	if _, err := r.Detach(a); err != nil {
		t.Fatalf("Detach() error = %v", err)
	}
	mustValidate(t, r)

	if r.Head() != b || b.prev != nil {
		t.Errorf("head = %v (prev %v), want b with no prev", r.Head(), b.prev)
	}
	want := []string{"animateTo b x=0", "positionRightOf c b x=100"}
	if !slices.Equal(l.calls, want) {
		t.Errorf("calls = %v, want %v", l.calls, want)
	}
	if got := ids(r.Pool()); !slices.Equal(got, []string{"a"}) {
		t.Errorf("Pool() = %v, want [a]", got)
	}
}

func TestDetachNotInRow(t *testing.T) {
	r, items := buildRow(t, nil, 3, 10)
	if _, err := r.Detach(items[1]); err != nil {
		t.Fatalf("first Detach() error = %v", err)
	}

	tests := []struct {
		name string
		item *Item
	}{
		{"already pooled", items[1]},
		{"never added", newItem("x", ItemConfig{Width: 10})},
		{"nil", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := ids(r.Items())
			_, err := r.Detach(tt.item)
			if !errors.Is(err, errors.ErrCodeNotInRow) {
				t.Errorf("Detach() error = %v, want %s", err, errors.ErrCodeNotInRow)
			}
			mustValidate(t, r)
			if got := ids(r.Items()); !slices.Equal(got, before) {
				t.Errorf("Items() = %v, want %v", got, before)
			}
			if len(r.Pool()) != 1 {
				t.Errorf("Pool() has %d items, want 1", len(r.Pool()))
			}
		})
	}
}

func TestAppendFromPool(t *testing.T) {
	r, items := buildRow(t, nil, 3, 10)
	if _, err := r.Detach(items[0]); err != nil {
		t.Fatal(err)
	}
	r.Append(items[0], false)
	mustValidate(t, r)

	if got := ids(r.Items()); !slices.Equal(got, []string{"b", "c", "a"}) {
		t.Errorf("Items() = %v, want [b c a]", got)
	}
	if len(r.Pool()) != 0 {
		t.Errorf("Pool() = %v, want empty", ids(r.Pool()))
	}
	if items[0].x0 != 20 {
		t.Errorf("a.x0 = %d, want 20", items[0].x0)
	}
}

func TestLocate(t *testing.T) {
	r, items := buildRow(t, nil, 3, 10)
	if _, err := r.Detach(items[2]); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		id   string
		want *Item
	}{
		{"a", items[0]},
		{"c", items[2]},
		{"missing", nil},
		{"", nil},
	}
	for _, tt := range tests {
		if got := r.Locate(tt.id); got != tt.want {
			t.Errorf("Locate(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestSwap(t *testing.T) {
	tests := []struct {
		name string
		a, b int
		want []string
	}{
		{"head with next", 0, 1, []string{"b", "a", "c", "d"}},
		{"next with head", 1, 0, []string{"b", "a", "c", "d"}},
		{"middle pair", 1, 2, []string{"a", "c", "b", "d"}},
		{"tail with prev", 3, 2, []string{"a", "b", "d", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, items := buildRow(t, nil, 4, 10)
			if err := r.Swap(items[tt.a], items[tt.b]); err != nil {
				t.Fatalf("Swap() error = %v", err)
			}
			mustValidate(t, r)
			if got := chainOrder(r); !slices.Equal(got, tt.want) {
				t.Errorf("chain = %v, want %v", got, tt.want)
			}
			if got := ids(r.Items()); !slices.Equal(got, tt.want) {
				t.Errorf("Items() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSwapSymmetry(t *testing.T) {
	r, items := buildRow(t, nil, 4, 10)
	b, c := items[1], items[2]

	type links struct{ prev, next *Item }
	before := make(map[*Item]links)
	for _, it := range items {
		before[it] = links{it.prev, it.next}
	}

	if err := r.Swap(b, c); err != nil {
		t.Fatal(err)
	}
	if err := r.Swap(c, b); err != nil {
		t.Fatal(err)
	}
	mustValidate(t, r)

	for _, it := range items {
		if got := (links{it.prev, it.next}); got != before[it] {
			t.Errorf("%s links = (%v,%v), want (%v,%v)", it.ID, got.prev, got.next, before[it].prev, before[it].next)
		}
	}
}

func TestSwapRejected(t *testing.T) {
	r, items := buildRow(t, nil, 4, 10)
	if _, err := r.Detach(items[3]); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		a, b *Item
		code errors.Code
	}{
		{"not neighbours", items[0], items[2], errors.ErrCodeNotNeighbors},
		{"same item", items[1], items[1], errors.ErrCodeInvalidInput},
		{"nil item", items[1], nil, errors.ErrCodeInvalidInput},
		{"pooled item", items[2], items[3], errors.ErrCodeNotInRow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.Swap(tt.a, tt.b)
			if !errors.Is(err, tt.code) {
				t.Errorf("Swap() error = %v, want %s", err, tt.code)
			}
			mustValidate(t, r)
			if got := chainOrder(r); !slices.Equal(got, []string{"a", "b", "c"}) {
				t.Errorf("chain = %v, want [a b c]", got)
			}
		})
	}
}

func TestValidateDetectsCorruption(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(r *Row, items []*Item)
	}{
		{"row item marked free", func(r *Row, items []*Item) { items[1].free = true }},
		{"broken next", func(r *Row, items []*Item) { items[0].next = items[2] }},
		{"broken prev", func(r *Row, items []*Item) { items[2].prev = items[0] }},
		{"head has prev", func(r *Row, items []*Item) { items[0].prev = items[2] }},
		{"tail has next", func(r *Row, items []*Item) { items[2].next = items[0] }},
		{"stale slot", func(r *Row, items []*Item) { items[1].slot = 2 }},
		{"in row and pool", func(r *Row, items []*Item) { r.pool = append(r.pool, items[1]) }},
		{"linked pool item", func(r *Row, items []*Item) {
			p := newItem("p", ItemConfig{Width: 1})
			p.free, p.next = true, items[0]
			r.pool = append(r.pool, p)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, items := buildRow(t, nil, 3, 10)
			tt.corrupt(r, items)
			if err := r.Validate(); !errors.Is(err, errors.ErrCodeCorruptChain) {
				t.Errorf("Validate() = %v, want %s", err, errors.ErrCodeCorruptChain)
			}
		})
	}
}
