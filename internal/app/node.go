package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wodl/internal/adapters/cachefs"   //nolint:depguard // Wired in app layer
	"go.trai.ch/wodl/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/wodl/internal/adapters/csvexport" //nolint:depguard // Wired in app layer
	"go.trai.ch/wodl/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/wodl/internal/adapters/prompt"    //nolint:depguard // Wired in app layer
	"go.trai.ch/wodl/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/wodl/internal/adapters/upkeep"    //nolint:depguard // Wired in app layer
	"go.trai.ch/wodl/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			upkeep.NodeID,
			cachefs.NodeID,
			csvexport.NodeID,
			prompt.NodeID,
			telemetry.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	upstream, err := graft.Dep[ports.Upstream](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.CacheStore](ctx)
	if err != nil {
		return nil, err
	}

	sink, err := graft.Dep[ports.RecordSink](ctx)
	if err != nil {
		return nil, err
	}

	prompter, err := graft.Dep[ports.Prompter](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, upstream, store, sink, prompter, tel), nil
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

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       a,
		Logger:    log,
		Telemetry: tel,
	}, nil
}
