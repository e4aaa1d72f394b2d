package row_test

import (
	"fmt"

	"github.com/matzehuels/stackrow/pkg/row"
)

func Example() {
	eng := row.New(row.NopLayout{})
	for _, id := range []string{"a", "b", "c"} {
		eng.AddItem(row.ItemConfig{ID: id, Label: id, Width: 100})
	}

	// Grab c by its middle and drag it left past b's centre.
	eng.Press("c", row.ButtonPrimary, 250, 0)
	eng.Move(90, 0)
	eng.Release()

	for _, it := range eng.Order() {
		fmt.Println(it.ID, it.X0())
	}
	// Output:
	// a 0
	// c 100
	// b 200
}

func ExampleEngine_Move_detach() {
	eng := row.New(row.NopLayout{}, row.WithBounds(row.VerticalBounds(3)))
	for _, id := range []string{"a", "b", "c"} {
		eng.AddItem(row.ItemConfig{ID: id, Label: id, Width: 10})
	}

	// Pull a well below the row: it drops into the pool.
	eng.Press("a", row.ButtonPrimary, 5, 0)
	eng.Move(5, 8)
	eng.Release()

	for _, it := range eng.Order() {
		fmt.Println("row", it.ID, it.X0())
	}
	for _, it := range eng.Pool() {
		fmt.Println("pool", it.ID, it.Free())
	}
	// Output:
	// row b 0
	// row c 10
	// pool a true
}
