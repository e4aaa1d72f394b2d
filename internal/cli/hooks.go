package cli

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stackrow/pkg/observability"
)

// logHooks reports engine activity at debug level.
type logHooks struct {
	logger *log.Logger
}

func newLogHooks(l *log.Logger) observability.EngineHooks {
	return logHooks{logger: l.WithPrefix("hooks")}
}

func (h logHooks) OnPress(itemID string, inRow bool) {
	h.logger.Debug("press", "item", itemID, "in_row", inRow)
}

func (h logHooks) OnRelease(itemID string, inRow bool, held time.Duration) {
	h.logger.Debug("release", "item", itemID, "in_row", inRow, "held", held.Round(time.Millisecond))
}

func (h logHooks) OnSwap(itemID, neighborID, direction string) {
	h.logger.Debug("swap", "item", itemID, "neighbor", neighborID, "direction", direction)
}

func (h logHooks) OnDetach(itemID string, repositioned int) {
	h.logger.Debug("detach", "item", itemID, "repositioned", repositioned)
}

func (h logHooks) OnReenter(itemID string) {
	h.logger.Debug("reenter", "item", itemID)
}

func (h logHooks) OnRejected(op string, err error) {
	h.logger.Debug("rejected", "op", op, "err", err)
}
