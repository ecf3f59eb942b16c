// Package app wires repositories and services over one database connection.
// The server, CLI and seed binaries share it.
package app

import (
	"database/sql"

	"go.opentelemetry.io/otel/trace"

	"carbon-footprint/backend/internal/activity"
	energyrepo "carbon-footprint/backend/internal/energy/repository"
	energyservice "carbon-footprint/backend/internal/energy/service"
	"carbon-footprint/backend/internal/footprint"
	packagingrepo "carbon-footprint/backend/internal/packaging/repository"
	packagingservice "carbon-footprint/backend/internal/packaging/service"
	printingrepo "carbon-footprint/backend/internal/printing/repository"
	printingservice "carbon-footprint/backend/internal/printing/service"
	"carbon-footprint/backend/internal/report"
	"carbon-footprint/backend/internal/telemetry"
	transportrepo "carbon-footprint/backend/internal/transport/repository"
	transportservice "carbon-footprint/backend/internal/transport/service"
	userrepo "carbon-footprint/backend/internal/user/repository"
	userservice "carbon-footprint/backend/internal/user/service"
	warehouserepo "carbon-footprint/backend/internal/warehouse/repository"
	warehouseservice "carbon-footprint/backend/internal/warehouse/service"
	wasterepo "carbon-footprint/backend/internal/waste/repository"
	wasteservice "carbon-footprint/backend/internal/waste/service"
)

// Options carries optional telemetry. The zero value disables it.
type Options struct {
	Metrics *telemetry.Metrics
	Emitter telemetry.EventEmitter
	Tracer  trace.Tracer
}

// Services holds every service of the engine.
type Services struct {
	Users     *userservice.UserService
	Transport *transportservice.Service
	Warehouse *warehouseservice.Service
	Packaging *packagingservice.Service
	Waste     *wasteservice.Service
	Energy    *energyservice.Service
	Printing  *printingservice.Service
	Footprint *footprint.Service
	Reports   *report.Service
}

// NewServices builds SQL repositories on conn and the services on top of them.
func NewServices(conn *sql.DB, opts Options) *Services {
	recordOpts := []activity.Option{activity.WithMetrics(opts.Metrics)}
	s := &Services{
		Users:     userservice.NewUserService(userrepo.NewSQLRepository(conn)),
		Transport: transportservice.NewService(transportrepo.NewSQLRepository(conn), recordOpts...),
		Warehouse: warehouseservice.NewService(warehouserepo.NewSQLRepository(conn), recordOpts...),
		Packaging: packagingservice.NewService(packagingrepo.NewSQLRepository(conn), recordOpts...),
		Waste:     wasteservice.NewService(wasterepo.NewSQLRepository(conn), recordOpts...),
		Energy:    energyservice.NewService(energyrepo.NewSQLRepository(conn), recordOpts...),
		Printing:  printingservice.NewService(printingrepo.NewSQLRepository(conn), recordOpts...),
	}

	fpOpts := []footprint.Option{
		footprint.WithMetrics(opts.Metrics),
		footprint.WithEventEmitter(opts.Emitter),
	}
	if opts.Tracer != nil {
		fpOpts = append(fpOpts, footprint.WithTracer(opts.Tracer))
	}
	s.Footprint = footprint.NewService(footprint.Sources{
		Transport: s.Transport,
		Warehouse: s.Warehouse,
		Packaging: s.Packaging,
		Waste:     s.Waste,
		Energy:    s.Energy,
		Printing:  s.Printing,
	}, fpOpts...)
	s.Reports = report.NewService(s.Footprint, opts.Emitter)
	return s
}
