// Package highlight turns an active pathway selection into render styles.
package highlight

import (
	"errors"
	"log/slog"

	"campusmap/internal/logger"
	"campusmap/internal/pathway"
	"campusmap/internal/render"
)

// Result summarizes one ApplySelection call.
type Result struct {
	Highlighted []string
	Skipped     []string
}

// Controller applies selections with a reset-then-apply pass. It keeps no
// state between calls.
type Controller struct {
	registry *pathway.Registry
	state    *render.State
	log      *slog.Logger
}

func NewController(reg *pathway.Registry, st *render.State, l *slog.Logger) *Controller {
	if l == nil {
		l = logger.L()
	}
	return &Controller{registry: reg, state: st, log: l}
}

// ApplySelection resets every registry pathway to Normal, then highlights
// and raises each id of active in order, so the last one ends frontmost.
// Unknown ids are skipped. Without a ready surface nothing happens.
func (c *Controller) ApplySelection(active []string) Result {
	var res Result
	if !c.state.Ready() {
		c.log.Debug("highlight_skipped", "reason", "surface not ready", "active", len(active))
		return res
	}
	for _, id := range c.registry.AllIDs() {
		_ = c.state.SetStyle(id, render.Normal)
	}
	seen := make(map[string]struct{}, len(active))
	for _, id := range active {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if err := c.state.SetStyle(id, render.Highlighted); err != nil {
			if errors.Is(err, render.ErrNotFound) {
				res.Skipped = append(res.Skipped, id)
			}
			continue
		}
		_ = c.state.BringToFront(id)
		res.Highlighted = append(res.Highlighted, id)
	}
	c.log.Debug("highlight_applied", "highlighted", len(res.Highlighted), "skipped", len(res.Skipped))
	return res
}
