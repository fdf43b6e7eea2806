package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/osw/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/osw/internal/adapters/idf"       //nolint:depguard // Wired in app layer
	"go.trai.ch/osw/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/osw/internal/adapters/osm"       //nolint:depguard // Wired in app layer
	"go.trai.ch/osw/internal/adapters/results"   //nolint:depguard // Wired in app layer
	"go.trai.ch/osw/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/osw/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/osw/internal/core/ports"
	"go.trai.ch/osw/internal/engine/measures"
	"go.trai.ch/osw/internal/engine/workflow"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles what the command line needs from the graph.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			measures.NodeID,
			workflow.NodeID,
			results.NodeID,
			osm.NodeID,
			idf.LoaderNodeID,
			idf.TranslatorNodeID,
			telemetry.TracerNodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[*config.Loader](ctx)
	if err != nil {
		return nil, err
	}

	manager, err := graft.Dep[*measures.Manager](ctx)
	if err != nil {
		return nil, err
	}

	runner, err := graft.Dep[*workflow.Runner](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ResultStore](ctx)
	if err != nil {
		return nil, err
	}

	models, err := graft.Dep[ports.ModelLoader](ctx)
	if err != nil {
		return nil, err
	}

	workspaces, err := graft.Dep[ports.WorkspaceLoader](ctx)
	if err != nil {
		return nil, err
	}

	translator, err := graft.Dep[ports.Translator](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	newWatcher, err := graft.Dep[watcher.Factory](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, manager, runner, store, models, workspaces, translator, tracer, log, newWatcher), nil
}
