// seed inserts development sample data for local testing.
// Idempotent: skips inserts if the demo user (demo@example.com) already exists.
package main

import (
	"context"
	"errors"
	"os"
	"time"

	"carbon-footprint/backend/internal/app"
	"carbon-footprint/backend/internal/config"
	"carbon-footprint/backend/internal/db"
	"carbon-footprint/backend/internal/db/migrate"
	energydomain "carbon-footprint/backend/internal/energy/domain"
	"carbon-footprint/backend/internal/logging"
	packagingdomain "carbon-footprint/backend/internal/packaging/domain"
	printingdomain "carbon-footprint/backend/internal/printing/domain"
	transportdomain "carbon-footprint/backend/internal/transport/domain"
	userservice "carbon-footprint/backend/internal/user/service"
	warehousedomain "carbon-footprint/backend/internal/warehouse/domain"
	wastedomain "carbon-footprint/backend/internal/waste/domain"
)

const demoUserEmail = "demo@example.com"

func main() {
	log := logging.ComponentLogger(logging.New("info", logging.FormatConsole, os.Stderr), "seed")
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	conn, err := db.Open(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("db")
	}
	defer conn.Close()
	if cfg.MigrateOnStart {
		if err := migrate.Apply(conn, cfg.DatabaseDriver); err != nil {
			log.Fatal().Err(err).Msg("migrate")
		}
	}

	ctx := logging.WithContext(context.Background(), log)
	svc := app.NewServices(conn, app.Options{})

	u, err := svc.Users.Create(ctx, demoUserEmail, "Demo User")
	if errors.Is(err, userservice.ErrEmailAlreadyRegistered) {
		log.Info().Msg("Seed already applied (demo@example.com exists). Skipping.")
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("create demo user")
	}

	day := time.Now().UTC().Truncate(24 * time.Hour)
	weight := 120.0
	pallets := 4

	must := func(what string, err error) {
		if err != nil {
			log.Fatal().Err(err).Str("record", what).Msg("seed")
		}
	}

	tr := &transportdomain.Record{Distance: 100, Consumption: 30, FuelType: "diesel", VehicleType: "truck", LoadFactor: 0.8,
		DepartureLocation: "Lyon", ArrivalLocation: "Grenoble"}
	tr.UserID, tr.RecordedAt = u.ID, day.Add(-72*time.Hour)
	_, err = svc.Transport.Create(ctx, tr)
	must("transport", err)

	van := &transportdomain.Record{Distance: 40, Consumption: 18, FuelType: "electric", VehicleType: "van"}
	van.UserID, van.RecordedAt = u.ID, day.Add(-48*time.Hour)
	_, err = svc.Transport.Create(ctx, van)
	must("transport", err)

	wh := &warehousedomain.Record{Area: 1500, EnergyType: "Gas", ElectricityConsumption: 200, HeatingConsumption: 100}
	wh.UserID, wh.RecordedAt = u.ID, day.Add(-48*time.Hour)
	_, err = svc.Warehouse.Create(ctx, wh)
	must("warehouse", err)

	pk := &packagingdomain.Record{PackagingType: "carton", Weight: &weight, Quantity: 300, PalletCount: &pallets, PalletType: "EUR"}
	pk.UserID, pk.RecordedAt = u.ID, day.Add(-24*time.Hour)
	_, err = svc.Packaging.Create(ctx, pk)
	must("packaging", err)

	ws := &wastedomain.Record{WasteType: "plastic", Quantity: 50, TreatmentMethod: "recycling"}
	ws.UserID, ws.RecordedAt = u.ID, day.Add(-24*time.Hour)
	_, err = svc.Waste.Create(ctx, ws)
	must("waste", err)

	en := &energydomain.Record{EnergyType: "electricity", ElectricityConsumption: 800, HeatingConsumption: 0, Unit: "kWh"}
	en.UserID, en.RecordedAt = u.ID, day
	_, err = svc.Energy.Create(ctx, en)
	must("energy", err)

	pr := &printingdomain.Record{PrintType: "brochure", PaperType: "recycled", Quantity: 2000}
	pr.UserID, pr.RecordedAt = u.ID, day
	_, err = svc.Printing.Create(ctx, pr)
	must("printing", err)

	fp, err := svc.Footprint.Aggregate(ctx, u.ID)
	if err != nil {
		log.Fatal().Err(err).Msg("aggregate")
	}
	log.Info().Str("user_id", u.ID).Float64("total", fp.Total).Msg("Seed applied")
}
