package export

import (
	"encoding/json"
	"io"

	"github.com/matzehuels/stackrow/pkg/row"
)

// Snapshotter is anything that can report its row state.
type Snapshotter interface {
	Snapshot() row.Snapshot
}

// ToJSON writes the snapshot of s as indented JSON.
func ToJSON(w io.Writer, s Snapshotter) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s.Snapshot())
}
