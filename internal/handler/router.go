package handler

import (
	"net/http"

	"pet-resort-api/internal/domain/auth"
	"pet-resort-api/internal/handler/api"
	"pet-resort-api/internal/handler/middleware"
	"pet-resort-api/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine             *gin.Engine
	Config             config.Config
	Logger             *middleware.Logger
	AuthMiddleware     *middleware.AuthMiddleware
	LoginLimiter       middleware.RateLimiter `optional:"true"`
	UserHandler        *api.UserHandler
	ResortHandler      *api.ResortHandler
	ReservationHandler *api.ReservationHandler
	PetHandler         *api.PetHandler
	NoteHandler        *api.NoteHandler
	EmployeeHandler    *api.EmployeeHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Logger)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

// setupRoutes binds exactly one access policy per endpoint. Everything under a group that
// uses RequireAuth rejects a missing or invalid token with 401 before the policy runs.
func setupRoutes(p RouterParams) {
	engine := p.Engine
	am := p.AuthMiddleware

	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	superUser := am.RequirePolicy(auth.PolicySuperUser)
	admin := am.RequirePolicy(auth.PolicyAdmin)

	apiGroup := engine.Group("/api")
	{
		users := apiGroup.Group("/users")
		{
			addRoutes(users, []route{
				{Method: http.MethodPost, Path: "/register", Handler: p.UserHandler.Register},
				{Method: http.MethodPost, Path: "/authenticate", Handler: p.UserHandler.Authenticate,
					Mw: []gin.HandlerFunc{middleware.RateLimit(p.LoginLimiter, "authenticate")}},
			})

			authRequired := users.Group("")
			authRequired.Use(am.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "", Handler: p.UserHandler.List, Mw: []gin.HandlerFunc{admin}},
				{Method: http.MethodGet, Path: "/:id", Handler: p.UserHandler.Get,
					Mw: []gin.HandlerFunc{am.RequireSelfOrAdmin(middleware.ParamTarget("id"))}},
				{Method: http.MethodDelete, Path: "/:id", Handler: p.UserHandler.Delete,
					Mw: []gin.HandlerFunc{am.RequireSelfOrAdmin(middleware.ParamTarget("id"))}},
			})
		}

		resorts := apiGroup.Group("/resorts")
		{
			addRoutes(resorts, []route{
				{Method: http.MethodGet, Path: "", Handler: p.ResortHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: p.ResortHandler.Get},
				{Method: http.MethodGet, Path: "/:id/hours", Handler: p.ResortHandler.ListHours},
			})

			authRequired := resorts.Group("")
			authRequired.Use(am.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "", Handler: p.ResortHandler.Create, Mw: []gin.HandlerFunc{admin}},
				{Method: http.MethodPut, Path: "/:id", Handler: p.ResortHandler.Update, Mw: []gin.HandlerFunc{admin}},
				{Method: http.MethodDelete, Path: "/:id", Handler: p.ResortHandler.Delete, Mw: []gin.HandlerFunc{admin}},
				{Method: http.MethodPut, Path: "/:id/hours/:weekday", Handler: p.ResortHandler.SetHours, Mw: []gin.HandlerFunc{admin}},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(am.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodGet, Path: "", Handler: p.ReservationHandler.ListRecent, Mw: []gin.HandlerFunc{superUser}},
				{Method: http.MethodGet, Path: "/user", Handler: p.ReservationHandler.ListByUser,
					Mw: []gin.HandlerFunc{am.RequireSelfOrAdmin(middleware.QueryTarget("userId"))}},
				{Method: http.MethodGet, Path: "/resort/:id", Handler: p.ReservationHandler.ListByResort, Mw: []gin.HandlerFunc{superUser}},
				{Method: http.MethodGet, Path: "/availability", Handler: p.ReservationHandler.Availability},
				// Owner-or-superuser is decided by the workflow, which needs the request body.
				{Method: http.MethodPost, Path: "", Handler: p.ReservationHandler.Create},
				// Owner-or-superuser: the lookup itself is scoped to the caller unless superuser.
				{Method: http.MethodGet, Path: "/:id", Handler: p.ReservationHandler.Get},
				{Method: http.MethodDelete, Path: "/:id", Handler: p.ReservationHandler.Delete},
			})
		}

		pets := apiGroup.Group("/pets")
		pets.Use(am.RequireAuth())
		{
			addRoutes(pets, []route{
				{Method: http.MethodGet, Path: "", Handler: p.PetHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: p.PetHandler.Get},
				{Method: http.MethodPost, Path: "", Handler: p.PetHandler.Create},
				{Method: http.MethodDelete, Path: "/:id", Handler: p.PetHandler.Delete},
			})
		}

		notes := apiGroup.Group("/notes")
		notes.Use(am.RequireAuth())
		{
			addRoutes(notes, []route{
				{Method: http.MethodGet, Path: "", Handler: p.NoteHandler.ListRecent, Mw: []gin.HandlerFunc{superUser}},
				{Method: http.MethodGet, Path: "/employee/:id", Handler: p.NoteHandler.ListByEmployee, Mw: []gin.HandlerFunc{superUser}},
				{Method: http.MethodGet, Path: "/owner/:id", Handler: p.NoteHandler.ListByOwner,
					Mw: []gin.HandlerFunc{am.RequireSelfOrSuperUser(middleware.ParamTarget("id"))}},
				// Owner-or-superuser: both lookups are scoped to the caller's pets unless superuser.
				{Method: http.MethodGet, Path: "/pet/:id", Handler: p.NoteHandler.ListByPet},
				{Method: http.MethodGet, Path: "/:id", Handler: p.NoteHandler.Get},
				{Method: http.MethodPost, Path: "", Handler: p.NoteHandler.Create, Mw: []gin.HandlerFunc{superUser}},
				{Method: http.MethodPut, Path: "/:id", Handler: p.NoteHandler.Update, Mw: []gin.HandlerFunc{superUser}},
				{Method: http.MethodDelete, Path: "/:id", Handler: p.NoteHandler.Delete, Mw: []gin.HandlerFunc{superUser}},
			})
		}

		employees := apiGroup.Group("/employees")
		employees.Use(am.RequireAuth())
		{
			addRoutes(employees, []route{
				{Method: http.MethodGet, Path: "", Handler: p.EmployeeHandler.List, Mw: []gin.HandlerFunc{superUser}},
				{Method: http.MethodGet, Path: "/:id", Handler: p.EmployeeHandler.Get, Mw: []gin.HandlerFunc{superUser}},
				{Method: http.MethodPost, Path: "", Handler: p.EmployeeHandler.Create, Mw: []gin.HandlerFunc{admin}},
				{Method: http.MethodPut, Path: "/:id", Handler: p.EmployeeHandler.Update, Mw: []gin.HandlerFunc{admin}},
				{Method: http.MethodDelete, Path: "/:id", Handler: p.EmployeeHandler.Delete, Mw: []gin.HandlerFunc{admin}},
			})
		}
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
