// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/wodl/internal/adapters/cachefs"
	_ "go.trai.ch/wodl/internal/adapters/config"
	_ "go.trai.ch/wodl/internal/adapters/csvexport"
	_ "go.trai.ch/wodl/internal/adapters/logger"
	_ "go.trai.ch/wodl/internal/adapters/prompt"
	_ "go.trai.ch/wodl/internal/adapters/telemetry"
	_ "go.trai.ch/wodl/internal/adapters/upkeep"
	// Register app nodes.
	_ "go.trai.ch/wodl/internal/app"
)
