package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/daehan-dev/fleetworks-go/internal/adapters/httpapi"
	"github.com/daehan-dev/fleetworks-go/internal/adapters/metrics"
	"github.com/daehan-dev/fleetworks-go/internal/adapters/persistence"
	catalogqueries "github.com/daehan-dev/fleetworks-go/internal/application/catalog/queries"
	"github.com/daehan-dev/fleetworks-go/internal/application/common"
	factorycommands "github.com/daehan-dev/fleetworks-go/internal/application/factory/commands"
	factoryqueries "github.com/daehan-dev/fleetworks-go/internal/application/factory/queries"
	fleetcommands "github.com/daehan-dev/fleetworks-go/internal/application/fleet/commands"
	fleetqueries "github.com/daehan-dev/fleetworks-go/internal/application/fleet/queries"
	playerqueries "github.com/daehan-dev/fleetworks-go/internal/application/player/queries"
	shipqueries "github.com/daehan-dev/fleetworks-go/internal/application/ship/queries"
	sortiecommands "github.com/daehan-dev/fleetworks-go/internal/application/sortie/commands"
	"github.com/daehan-dev/fleetworks-go/internal/domain/factory"
	"github.com/daehan-dev/fleetworks-go/internal/domain/shared"
	"github.com/daehan-dev/fleetworks-go/internal/infrastructure/config"
	"github.com/daehan-dev/fleetworks-go/internal/infrastructure/database"
	"github.com/daehan-dev/fleetworks-go/internal/infrastructure/logging"
	"github.com/daehan-dev/fleetworks-go/internal/infrastructure/pidfile"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:   "fleetworks-server",
		Short: "FleetWorks game server",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default: search ./config.yaml)")

	root.AddCommand(serveCmd(), migrateCmd(), seedCmd(), provisionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the game API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.MustLoadConfig(configPath)

			if cfg.Server.PIDFile != "" {
				pf := pidfile.New(cfg.Server.PIDFile)
				if err := pf.Acquire(); err != nil {
					return fmt.Errorf("failed to acquire PID file lock: %w", err)
				}
				defer func() {
					_ = pf.Release()
				}()
			}

			return runServer(cfg)
		},
	}
}

func runServer(cfg *config.Config) error {
	zapLogger, err := logging.NewZapLogger(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()
	logger := logging.NewRequestLogger(zapLogger)

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		_ = database.Close(db)
	}()

	if err := database.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if cfg.Metrics.Enabled {
		metrics.InitRegistry()
		metrics.SetGlobalRecorder(metrics.NewPrometheusFactoryCollector(metrics.Registry))
	}

	med, err := buildMediator(db)
	if err != nil {
		return fmt.Errorf("failed to wire handlers: %w", err)
	}

	server := httpapi.NewServer(cfg, med, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Log("INFO", "shutting down", map[string]interface{}{"signal": sig.String()})
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(ctx)
}

// buildMediator wires every command and query handler onto the dispatcher.
func buildMediator(db *gorm.DB) (common.Mediator, error) {
	clock := shared.NewRealClock()
	resolver := factory.NewResolver(shared.NewSystemRand())
	uow := persistence.NewGormUnitOfWork(db)

	playerRepo := persistence.NewGormPlayerRepository(db)
	dockRepo := persistence.NewGormDockRepository(db)
	shipRepo := persistence.NewGormShipRepository(db)
	templateRepo := persistence.NewGormTemplateRepository(db)
	fleetRepo := persistence.NewGormFleetRepository(db)
	equipmentRepo := persistence.NewGormEquipmentRepository(db)

	med := common.NewMediator()

	if err := common.RegisterHandler[*factorycommands.BeginBuildCommand](med, factorycommands.NewBeginBuildHandler(uow, resolver, clock)); err != nil {
		return nil, err
	}
	if err := common.RegisterHandler[*factorycommands.SkipBuildCommand](med, factorycommands.NewSkipBuildHandler(uow, clock)); err != nil {
		return nil, err
	}
	if err := common.RegisterHandler[*factorycommands.CompleteBuildCommand](med, factorycommands.NewCompleteBuildHandler(uow, clock)); err != nil {
		return nil, err
	}
	if err := common.RegisterHandler[*factoryqueries.ListDocksQuery](med, factoryqueries.NewListDocksHandler(dockRepo, templateRepo, clock)); err != nil {
		return nil, err
	}
	if err := common.RegisterHandler[*fleetcommands.UpdateFleetCommand](med, fleetcommands.NewUpdateFleetHandler(uow)); err != nil {
		return nil, err
	}
	if err := common.RegisterHandler[*fleetqueries.ListFleetsQuery](med, fleetqueries.NewListFleetsHandler(fleetRepo, shipRepo, templateRepo)); err != nil {
		return nil, err
	}
	if err := common.RegisterHandler[*shipqueries.GetShipQuery](med, shipqueries.NewGetShipHandler(shipRepo, templateRepo, equipmentRepo)); err != nil {
		return nil, err
	}
	if err := common.RegisterHandler[*catalogqueries.ListTemplatesQuery](med, catalogqueries.NewListTemplatesHandler(templateRepo)); err != nil {
		return nil, err
	}
	if err := common.RegisterHandler[*playerqueries.GetPlayerQuery](med, playerqueries.NewGetPlayerHandler(playerRepo)); err != nil {
		return nil, err
	}
	if err := common.RegisterHandler[*sortiecommands.StartSortieCommand](med, sortiecommands.NewStartSortieHandler(uow, clock)); err != nil {
		return nil, err
	}

	return med, nil
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.MustLoadConfig(configPath)
			db, err := database.NewConnection(&cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer func() {
				_ = database.Close(db)
			}()
			if err := database.AutoMigrate(db); err != nil {
				return err
			}
			fmt.Println("migrations applied")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load ship and equipment master data",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.MustLoadConfig(configPath)
			db, err := database.NewConnection(&cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer func() {
				_ = database.Close(db)
			}()
			if err := database.AutoMigrate(db); err != nil {
				return err
			}
			if err := database.Seed(db); err != nil {
				return err
			}
			fmt.Println("master data seeded")
			return nil
		},
	}
}

func provisionCmd() *cobra.Command {
	var nickname string
	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Create a player with starter docks and fleets",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.MustLoadConfig(configPath)
			db, err := database.NewConnection(&cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer func() {
				_ = database.Close(db)
			}()
			p, err := database.ProvisionPlayer(cmd.Context(), db, nickname)
			if err != nil {
				return err
			}
			fmt.Printf("player %d (%s) provisioned\n", p.ID.Value(), p.Nickname)
			return nil
		},
	}
	cmd.Flags().StringVar(&nickname, "nickname", "", "nickname for the new player")
	_ = cmd.MarkFlagRequired("nickname")
	return cmd
}
