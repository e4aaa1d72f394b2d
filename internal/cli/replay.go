package cli

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/stackrow/pkg/errors"
	"github.com/matzehuels/stackrow/pkg/row"
)

// event is one line of a replay script. Target and ID name an item by ID or,
// failing that, by label.
//
//	{"type":"press","target":"beta","x":13,"y":1}
//	{"type":"move","x":5,"y":1}
//	{"type":"release"}
type event struct {
	Type   string `json:"type"`
	Target string `json:"target,omitempty"`
	Button string `json:"button,omitempty"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	ID     string `json:"id,omitempty"`
	Label  string `json:"label,omitempty"`
	Width  int    `json:"width,omitempty"`
}

// replayFile applies the events in path to e.
func replayFile(e *row.Engine, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "open events")
	}
	defer f.Close()
	return replay(e, f)
}

// replay applies one JSON event per line of r to e and returns the number of
// events applied. Blank lines and lines starting with '#' are skipped. The
// first failing line stops the replay.
func replay(e *row.Engine, r io.Reader) (int, error) {
	sc := bufio.NewScanner(r)
	n, line := 0, 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		var ev event
		dec := json.NewDecoder(strings.NewReader(text))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&ev); err != nil {
			return n, errors.Wrap(errors.ErrCodeInvalidInput, err, "line %d", line)
		}
		if err := apply(e, ev); err != nil {
			code := errors.GetCode(err)
			if code == "" {
				code = errors.ErrCodeInvalidInput
			}
			return n, errors.Wrap(code, err, "line %d", line)
		}
		n++
	}
	if err := sc.Err(); err != nil {
		return n, errors.Wrap(errors.ErrCodeInvalidInput, err, "read events")
	}
	return n, nil
}

func apply(e *row.Engine, ev event) error {
	switch ev.Type {
	case "press":
		button, err := row.ParseButton(ev.Button)
		if err != nil {
			return err
		}
		// An unresolved target is ignored by the engine, as for a real press.
		e.Press(resolve(e, ev.Target), button, ev.X, ev.Y)
	case "move":
		e.Move(ev.X, ev.Y)
	case "release":
		e.Release()
	case "cancel":
		e.Cancel()
	case "detach":
		it := e.Locate(resolve(e, ev.Target))
		if it == nil {
			return errors.New(errors.ErrCodeNotFound, "item %q not found", ev.Target)
		}
		return e.Detach(it)
	case "remove":
		return e.Remove(resolve(e, ev.Target))
	case "add":
		_, err := e.AddItem(row.ItemConfig{ID: ev.ID, Label: ev.Label, Width: ev.Width})
		return err
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown event type %q", ev.Type)
	}
	return nil
}

// resolve maps ref to an item ID, trying IDs before labels.
func resolve(e *row.Engine, ref string) string {
	if e.Locate(ref) != nil {
		return ref
	}
	for _, it := range append(e.Order(), e.Pool()...) {
		if it.Label == ref {
			return it.ID
		}
	}
	return ref
}
