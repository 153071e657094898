package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/traslados-api/internal/application/monitor"
	"github.com/jhoicas/traslados-api/internal/application/transfer"
	"github.com/jhoicas/traslados-api/internal/application/validation"
	"github.com/jhoicas/traslados-api/internal/coordination"
	"github.com/jhoicas/traslados-api/internal/domain/entity"
	"github.com/jhoicas/traslados-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/traslados-api/internal/interfaces/http"
	"github.com/jhoicas/traslados-api/pkg/config"
	"github.com/jhoicas/traslados-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando motor de traslados")

	validator := validation.NewStockValidator(log.Zerolog())
	coordinator := transfer.NewCoordinator(transfer.Policy{
		RetentionRatio:     cfg.Engine.RetentionRatio,
		AlternativeDivisor: cfg.Engine.AlternativeDivisor,
	}, validator, log.Zerolog())

	mode := entity.OperationMode(cfg.Engine.Mode)
	if mode != entity.ModeAutonomous && mode != entity.ModeSupervised {
		mode = entity.ModeSupervised
	}
	coordinator.SetApprovalConfig(entity.ApprovalConfig{
		HighValueThreshold:    decimal.NewFromFloat(cfg.Engine.HighValueThreshold),
		HighQuantityThreshold: cfg.Engine.HighQuantityThreshold,
		Mode:                  mode,
	})

	bus := coordination.NewMessageBus(log.Zerolog())
	bus.SetLockTimeout(time.Duration(cfg.Engine.LockTimeoutSeconds) * time.Second)
	bus.RegisterHandler(transfer.ActorName, coordinator.HandleMessage)

	invMonitor := monitor.NewInventoryMonitor(bus, log.Zerolog())

	// Siembra inicial desde el almacén externo; tras esto, el ledger en
	// memoria del coordinador es autoritativo.
	if cfg.DB.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			cancel()
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		snapshots := postgres.NewSnapshotRepository(pool)

		items, err := snapshots.LoadStock(ctx)
		if err != nil {
			cancel()
			log.Fatal().Err(err).Msg("cargar stock inicial")
		}
		totals := make(map[string]int)
		for _, item := range items {
			coordinator.SetStock(item.WarehouseID, item.SKU, item.Quantity)
			invMonitor.UpdateStock(item.WarehouseID, item.SKU, item.Quantity)
			totals[item.SKU] += item.Quantity
		}
		for sku, total := range totals {
			validator.RegisterTotalStock(sku, total)
		}

		products, err := snapshots.LoadProducts(ctx)
		if err != nil {
			cancel()
			log.Fatal().Err(err).Msg("cargar catálogo de productos")
		}
		for _, p := range products {
			coordinator.SetProductPrice(p.SKU, p.Price)
		}

		warehouses, err := snapshots.LoadWarehouses(ctx)
		if err != nil {
			cancel()
			log.Fatal().Err(err).Msg("cargar bodegas")
		}
		for _, w := range warehouses {
			invMonitor.RegisterWarehouse(w)
		}

		cancel()
		pool.Close()
		log.Info().
			Int("celdas", len(items)).
			Int("productos", len(products)).
			Int("bodegas", len(warehouses)).
			Msg("siembra inicial cargada")
	}

	// Ciclo de monitoreo: detecta stock crítico y difunde alertas por el bus.
	monitorStop := make(chan struct{})
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				summary := invMonitor.Process(cfg.Engine.DefaultThreshold)
				if len(summary.Alerts) > 0 {
					log.Warn().
						Int("alertas", len(summary.Alerts)).
						Int("revisados", summary.ItemsChecked).
						Msg("ciclo de monitoreo con stock crítico")
				}
			case <-monitorStop:
				return
			}
		}
	}()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		Coordinator:      coordinator,
		Validator:        validator,
		Monitor:          invMonitor,
		DefaultThreshold: cfg.Engine.DefaultThreshold,
		JWTSecret:        cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	close(monitorStop)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("motor detenido")
}
