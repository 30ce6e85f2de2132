// Package httpserver manages server creation and api routing.
package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/gustavoschneider/simple-code-challenge/internal/accountdelivery"
	"github.com/gustavoschneider/simple-code-challenge/internal/accountrepo"
	"github.com/gustavoschneider/simple-code-challenge/internal/accountservice"
	"github.com/gustavoschneider/simple-code-challenge/internal/membank"
	"github.com/gustavoschneider/simple-code-challenge/internal/middleware"
	"github.com/gustavoschneider/simple-code-challenge/internal/movementdelivery"
	"github.com/gustavoschneider/simple-code-challenge/internal/movementrepo"
	"github.com/gustavoschneider/simple-code-challenge/internal/movementservice"
	"github.com/gustavoschneider/simple-code-challenge/pkg/configpkg"
)

// Server holds the process-memory database, handlers router and configuration.
type Server struct {
	DB     *membank.DB
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(db *membank.DB, logger zerolog.Logger, config configpkg.Config) *Server {
	accountRepo := accountrepo.NewRepoMem(db)
	movementRepo := movementrepo.NewRepoMem(db)

	accountService := accountservice.New(accountRepo)
	movementService := movementservice.New(movementRepo, accountService, db.Now)

	accountHandler := accountdelivery.NewHandler(accountService)
	movementHandler := movementdelivery.NewHandler(movementService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.GET("/", hello)
	engine.GET("/:id", accountHandler.Get)
	engine.GET("/:id/movements", movementHandler.ListForMonth)
	engine.POST("/:id/savings", movementHandler.DepositToSavings)
	engine.POST("/:id/withdraw", movementHandler.WithdrawFromSavings)

	return &Server{
		DB:     db,
		Engine: engine,
		Config: config,
	}
}

func hello(gctx *gin.Context) {
	gctx.JSON(http.StatusOK, gin.H{"message": "Hello"})
}
