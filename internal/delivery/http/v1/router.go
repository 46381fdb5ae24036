package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"go-jobmatch-backend/config"
	"go-jobmatch-backend/internal/delivery/http/middleware"
	"go-jobmatch-backend/internal/delivery/http/response"
	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/auth"
)

type RouterDeps struct {
	AuthUC    domain.AuthUsecase
	JobUC     domain.JobUsecase
	ProfileUC domain.ProfileUsecase
	MatchUC   domain.MatchUsecase
	Tokens    *auth.TokenManager
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
	r.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Limit:  deps.Config.RateLimitGlobalThreshold,
		Window: window,
	}))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Credential endpoints get a stricter limit than the global one
	authPublic := v1.Group("")
	authPublic.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Limit:     deps.Config.RateLimitLoginThreshold,
		Window:    window,
		KeyPrefix: "rl:login:",
	}))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.AuthUC))
	{
		NewAuthHandler(authPublic, protected, deps.AuthUC)
		NewJobHandler(v1, protected, deps.JobUC)
		NewProfileHandler(protected, deps.ProfileUC)
		NewMatchHandler(v1, protected, deps.MatchUC)
	}

	return r
}
