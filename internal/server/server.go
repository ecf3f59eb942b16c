// Package server exposes the engine over HTTP with gin.
//
// Route → handler mapping:
//   - /healthz                                  → internal/health/handler
//   - /api/v1/users[/:userId]                   → users.go
//   - /api/v1/users/:userId/<category>[/:id]    → records.go (one route set per category)
//   - /api/v1/emissions/<category>/preview      → records.go
//   - /api/v1/users/:userId/footprint[/...]     → footprint.go
//   - /api/v1/users/:userId/report              → footprint.go
package server

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"

	"carbon-footprint/backend/internal/app"
	energydomain "carbon-footprint/backend/internal/energy/domain"
	healthhandler "carbon-footprint/backend/internal/health/handler"
	packagingdomain "carbon-footprint/backend/internal/packaging/domain"
	printingdomain "carbon-footprint/backend/internal/printing/domain"
	transportdomain "carbon-footprint/backend/internal/transport/domain"
	warehousedomain "carbon-footprint/backend/internal/warehouse/domain"
	wastedomain "carbon-footprint/backend/internal/waste/domain"
)

// Deps holds the dependencies of the HTTP handlers.
type Deps struct {
	// Services is required.
	Services *app.Services
	// HealthPinger is pinged by /healthz (e.g. *sql.DB). If nil, /healthz reports liveness only.
	HealthPinger healthhandler.Pinger
	// Logger receives one line per request and is attached to each request context.
	Logger zerolog.Logger
	// Tracer starts a span per request. If nil, requests are not traced.
	Tracer trace.Tracer
}

// New returns a gin engine with every route registered.
func New(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(deps.Logger, healthPath))
	if deps.Tracer != nil {
		r.Use(Tracing(deps.Tracer, healthPath))
	}

	healthhandler.NewHandler(deps.HealthPinger).Register(r)

	svc := deps.Services
	api := r.Group("/api/v1")
	uh := &userHandler{users: svc.Users}
	api.POST("/users", uh.create)

	user := api.Group("/users/:userId", uh.load)
	user.GET("", uh.get)
	user.DELETE("", uh.delete)

	emissions := api.Group("/emissions")
	registerRecords(user, emissions, svc.Transport, newRecord[transportdomain.Record])
	registerRecords(user, emissions, svc.Warehouse, newRecord[warehousedomain.Record])
	registerRecords(user, emissions, svc.Packaging, newRecord[packagingdomain.Record])
	registerRecords(user, emissions, svc.Waste, newRecord[wastedomain.Record])
	registerRecords(user, emissions, svc.Energy, newRecord[energydomain.Record])
	registerRecords(user, emissions, svc.Printing, newRecord[printingdomain.Record])

	fh := &footprintHandler{footprints: svc.Footprint, reports: svc.Reports}
	fh.register(user)
	return r
}

const healthPath = "/healthz"

func newRecord[T any]() *T { return new(T) }
