package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/livecheck/internal/adapters/config"
	"go.trai.ch/livecheck/internal/adapters/logger"
	"go.trai.ch/livecheck/internal/core/ports"
)

// Graft node IDs provided by this package.
const (
	AppNodeID        graft.ID = "app.main"
	ComponentsNodeID graft.ID = "app.components"
)

// Components is everything cmd/livecheck needs to build its commands.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run:       runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{AppNodeID, logger.NodeID},
		Run:       runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.DefinitionLoader](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return New(loader, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return &Components{App: a, Logger: log}, nil
}
