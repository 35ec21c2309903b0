package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/livecheck/internal/adapters/logger"
	"go.trai.ch/livecheck/internal/core/ports"
)

// NodeID identifies the package definition loader in the graft graph.
const NodeID graft.ID = "adapter.config_loader"

func init() {
	graft.Register(graft.Node[ports.DefinitionLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.DefinitionLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
