package output

import (
	"fmt"
	"io"

	"github.com/iwvelando/price-projection/internal/render"
	"go.uber.org/zap"
)

// StatusPrinter is the command-line display collaborator. Loading states are
// only logged; resolved states are printed.
type StatusPrinter struct {
	w      io.Writer
	logger *zap.Logger
}

// NewStatusPrinter returns a StatusPrinter writing to w.
func NewStatusPrinter(w io.Writer, logger *zap.Logger) *StatusPrinter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatusPrinter{w: w, logger: logger}
}

// ShowCustomRateInput implements render.Display. The command line has no
// input field to toggle.
func (p *StatusPrinter) ShowCustomRateInput(visible bool) {
	p.logger.Debug("custom rate input visibility",
		zap.String("op", "output.ShowCustomRateInput"),
		zap.Bool("visible", visible),
	)
}

// SetStatus implements render.Display.
func (p *StatusPrinter) SetStatus(status render.Status) {
	if status.State == render.StateLoading {
		p.logger.Debug(status.Message, zap.String("op", "output.SetStatus"))
		return
	}
	if _, err := fmt.Fprintln(p.w, status.Message); err != nil {
		p.logger.Warn("failed to write status",
			zap.String("op", "output.SetStatus"),
			zap.Error(err),
		)
	}
}
