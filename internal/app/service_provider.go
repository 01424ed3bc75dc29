package app

import (
	authAPI "bowling_backend/internal/api/auth"
	gameAPI "bowling_backend/internal/api/game"
	"bowling_backend/internal/config"
	"bowling_backend/internal/config/env"
	"bowling_backend/internal/middleware"
	"bowling_backend/internal/repository"
	"bowling_backend/internal/repository/auth_repo"
	"bowling_backend/internal/repository/game_repo"
	"bowling_backend/internal/repository/pin_state_repo"
	"bowling_backend/internal/repository/user_repo"
	"bowling_backend/internal/service"
	"bowling_backend/internal/service/auth"
	"bowling_backend/internal/service/game"
	"context"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceProvider struct {
	configPath string

	//TXManager
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

	// Game bits
	gameCfg      config.GameConfig
	gameRepo     repository.GameRepository
	pinStateRepo repository.PinStateRepository
	gameServ     service.GameService
	gameHand     *gameAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider(configPath string) *ServiceProvider {
	return &ServiceProvider{configPath: configPath}
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
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.authRepo
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
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
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{Serv: sp.AuthService(ctx)})
	}
	return sp.authHand
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfigFromYAML(sp.configPath)
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) GameRepository(ctx context.Context) repository.GameRepository {
	if sp.gameRepo == nil {
		sp.gameRepo = game_repo.NewGameRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.gameRepo
}

func (sp *ServiceProvider) PinStateRepository() repository.PinStateRepository {
	if sp.pinStateRepo == nil {
		sp.pinStateRepo = pin_state_repo.NewPinStateRepository()
	}
	return sp.pinStateRepo
}

func (sp *ServiceProvider) GameService(ctx context.Context) service.GameService {
	if sp.gameServ == nil {
		sp.gameServ = game.NewGameService(sp.GameCfg(), sp.GameRepository(ctx), sp.PinStateRepository(), sp.TXManager(ctx))
	}
	return sp.gameServ
}

func (sp *ServiceProvider) GameHandler(ctx context.Context) *gameAPI.Handler {
	if sp.gameHand == nil {
		sp.gameHand = gameAPI.NewHandler(gameAPI.HandlerDeps{Serv: sp.GameService(ctx)})
	}
	return sp.gameHand
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

		// Game endpoints, только с access токеном
		gameHandler := sp.GameHandler(ctx)
		r.Group(func(rr chi.Router) {
			rr.Use(middleware.Auth(sp.JWTCfg().AccessTokenSecretKey()))
			gameHandler.Routes(rr)
		})

		sp.router = r
	}

	return sp.router
}

// Close освобождает пул соединений
func (sp *ServiceProvider) Close() {
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
}
