package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"ambassador-ledger/internal/domain/user"
	"ambassador-ledger/internal/handler/api"
	"ambassador-ledger/internal/handler/middleware"
	"ambassador-ledger/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	ambassadorHandler *api.AmbassadorHandler,
	ledgerHandler *api.LedgerHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, ambassadorHandler, ledgerHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	ambassadorHandler *api.AmbassadorHandler,
	ledgerHandler *api.LedgerHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		ambassadors := apiGroup.Group("/ambassadors")
		{
			// Application submission is the only public ambassador route.
			addRoutes(ambassadors, []route{
				{Method: http.MethodPost, Path: "", Handler: ambassadorHandler.Create},
			})

			admin := ambassadors.Group("")
			admin.Use(authMiddleware.RequireAuth())
			{
				operatorUp := authMiddleware.RequireRoleAtLeast(user.RoleOperator)
				addRoutes(admin, []route{
					{Method: http.MethodGet, Path: "", Handler: ambassadorHandler.List},
					{Method: http.MethodGet, Path: "/:id", Handler: ambassadorHandler.Get},
					{Method: http.MethodPatch, Path: "/:id", Handler: ambassadorHandler.UpdateProfile, Mw: []gin.HandlerFunc{operatorUp}},
					{Method: http.MethodPatch, Path: "/:id/status", Handler: ambassadorHandler.UpdateStatus, Mw: []gin.HandlerFunc{operatorUp}},
					{Method: http.MethodPatch, Path: "/:id/orders/:orderId", Handler: ledgerHandler.SetOrderPaid, Mw: []gin.HandlerFunc{operatorUp}},
					{Method: http.MethodPatch, Path: "/:id/orders", Handler: ledgerHandler.SetAllOrdersStatus, Mw: []gin.HandlerFunc{operatorUp}},
				})
			}
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/redemptions", Handler: ledgerHandler.Redeem},
			{Method: http.MethodGet, Path: "/codes", Handler: ledgerHandler.ListActiveCodes},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
