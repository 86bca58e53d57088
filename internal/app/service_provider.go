package app

import (
	authAPI "baccarat_backend/internal/api/auth"
	roadAPI "baccarat_backend/internal/api/road"
	tableAPI "baccarat_backend/internal/api/table"
	"baccarat_backend/internal/config"
	"baccarat_backend/internal/config/env"
	"baccarat_backend/internal/middleware"
	"baccarat_backend/internal/repository"
	"baccarat_backend/internal/repository/auth_repo"
	"baccarat_backend/internal/repository/road_state_repo"
	"baccarat_backend/internal/repository/round_repo"
	"baccarat_backend/internal/repository/table_repo"
	"baccarat_backend/internal/repository/user_repo"
	"baccarat_backend/internal/service"
	"baccarat_backend/internal/service/auth"
	"baccarat_backend/internal/service/road"
	"baccarat_backend/internal/service/table"
	"context"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceProvider struct {
	// TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Auth bits
	jwtCfg   config.JWTConfig
	authRepo repository.AuthRepository
	userRepo repository.UserRepository
	authServ service.AuthService
	authHand *authAPI.Handler

	// Table bits
	tableRepo repository.TableRepository
	tableServ service.TableService
	tableHand *tableAPI.Handler

	// Road bits
	roadCfg       config.RoadConfig
	roundRepo     repository.RoundRepository
	roadStatsRepo repository.RoadStatsRepository
	roadServ      service.RoadService
	roadHand      *roadAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx))
	}
	return sp.authRepo
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewService(sp.TXManager(ctx), sp.UserRepo(ctx), sp.AuthRepo(ctx), sp.JWTCfg())
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv: sp.AuthService(ctx),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) TableRepository(ctx context.Context) repository.TableRepository {
	if sp.tableRepo == nil {
		sp.tableRepo = table_repo.NewTableRepository(sp.DBClient(ctx))
	}
	return sp.tableRepo
}

func (sp *ServiceProvider) TableService(ctx context.Context) service.TableService {
	if sp.tableServ == nil {
		sp.tableServ = table.NewTableService(sp.TableRepository(ctx))
	}
	return sp.tableServ
}

func (sp *ServiceProvider) TableHandler(ctx context.Context) *tableAPI.Handler {
	if sp.tableHand == nil {
		sp.tableHand = tableAPI.NewHandler(tableAPI.HandlerDeps{Serv: sp.TableService(ctx)})
	}
	return sp.tableHand
}

func (sp *ServiceProvider) RoadCfg() config.RoadConfig {
	if sp.roadCfg == nil {
		cfg, err := env.NewRoadConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get road config: " + err.Error())
		}
		sp.roadCfg = cfg
	}
	return sp.roadCfg
}

func (sp *ServiceProvider) RoundRepository(ctx context.Context) repository.RoundRepository {
	if sp.roundRepo == nil {
		sp.roundRepo = round_repo.NewRoundRepository(sp.DBClient(ctx))
	}
	return sp.roundRepo
}

func (sp *ServiceProvider) RoadStatsRepository() repository.RoadStatsRepository {
	if sp.roadStatsRepo == nil {
		sp.roadStatsRepo = road_state_repo.NewRoadStatsRepository()
	}
	return sp.roadStatsRepo
}

func (sp *ServiceProvider) RoadService(ctx context.Context) service.RoadService {
	if sp.roadServ == nil {
		sp.roadServ = road.NewRoadService(
			sp.RoadCfg(),
			sp.RoundRepository(ctx),
			sp.TableRepository(ctx),
			sp.RoadStatsRepository(),
			sp.TXManager(ctx),
		)
	}
	return sp.roadServ
}

func (sp *ServiceProvider) RoadHandler(ctx context.Context) *roadAPI.Handler {
	if sp.roadHand == nil {
		sp.roadHand = roadAPI.NewHandler(roadAPI.HandlerDeps{Serv: sp.RoadService(ctx)})
	}
	return sp.roadHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
		})

		// Table and road endpoints, под аутентификацией
		tableHandler := sp.TableHandler(ctx)
		roadHandler := sp.RoadHandler(ctx)
		r.Route("/tables", func(rr chi.Router) {
			rr.Use(middleware.Auth(sp.JWTCfg()))

			rr.Post("/", tableHandler.Create)
			rr.Get("/", tableHandler.List)

			rr.Route("/{tableID}", func(rt chi.Router) {
				rt.Get("/board", roadHandler.Board)
				rt.Get("/rounds", roadHandler.Rounds)
				rt.Get("/stats", roadHandler.Stats)
				rt.Post("/rounds", roadHandler.AddRound)
				rt.Delete("/rounds/last", roadHandler.UndoRound)
				rt.Delete("/rounds", roadHandler.ResetRounds)
			})
		})

		sp.router = r
	}

	return sp.router
}
