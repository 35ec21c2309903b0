package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/livecheck/internal/core/ports"
)

// NodeID identifies the diagnostics logger in the graft graph.
// The CLI switches it to JSON output when --json-logs is set.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(context.Context) (ports.Logger, error) {
			return New(), nil
		},
	})
}
