package app

import "go.trai.ch/wodl/internal/core/ports"

// Components contains the initialized components the CLI layer needs.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}
