// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/osw/internal/adapters/bcl"
	_ "go.trai.ch/osw/internal/adapters/config"
	_ "go.trai.ch/osw/internal/adapters/fs"
	_ "go.trai.ch/osw/internal/adapters/idf"
	_ "go.trai.ch/osw/internal/adapters/logger"
	_ "go.trai.ch/osw/internal/adapters/osm"
	_ "go.trai.ch/osw/internal/adapters/results"
	_ "go.trai.ch/osw/internal/adapters/script"
	_ "go.trai.ch/osw/internal/adapters/telemetry"
	_ "go.trai.ch/osw/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/osw/internal/app"
	_ "go.trai.ch/osw/internal/engine/measures"
	_ "go.trai.ch/osw/internal/engine/resolver"
	_ "go.trai.ch/osw/internal/engine/workflow"
)
