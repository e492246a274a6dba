package router

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/pandey-i/note-taking-app/internal/api/http/handler"
	"github.com/pandey-i/note-taking-app/internal/api/http/middleware"
	"github.com/pandey-i/note-taking-app/internal/logger"
	"github.com/pandey-i/note-taking-app/internal/model"
)

// Router wires HTTP handlers and middleware into a gin engine.
type Router struct {
	authService    handler.AuthService
	sessionService middleware.SessionService
	noteService    handler.NoteService
	exportService  handler.ExportService
	pinger         model.Pinger
	contextManager model.ContextManager
	corsOrigins    []string
	logger         *logger.Logger
}

// New creates a Router. A nil exportService leaves the export routes
// unregistered.
func New(
	authService handler.AuthService,
	sessionService middleware.SessionService,
	noteService handler.NoteService,
	exportService handler.ExportService,
	pinger model.Pinger,
	contextManager model.ContextManager,
	corsOrigins []string,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		sessionService: sessionService,
		noteService:    noteService,
		exportService:  exportService,
		pinger:         pinger,
		contextManager: contextManager,
		corsOrigins:    corsOrigins,
		logger:         logger,
	}
}

// Register builds the engine with every route and middleware.
func (r *Router) Register() *gin.Engine {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.sessionService, r.contextManager, r.logger)

	e := gin.New()
	e.Use(gin.Recovery(), logging.Handle, cors.New(r.corsConfig()))
	e.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})

	health := handler.NewHealth(r.pinger, r.logger)
	e.GET("/", health.Root)
	e.GET("/healthz", health.Ready)

	r.registerAuthRoutes(e.Group("/api/auth"), authenticate)

	notes := e.Group("/api/notes", authenticate.Handle)
	if r.exportService != nil {
		r.registerExportRoutes(notes.Group("/exports"))
	}
	r.registerNoteRoutes(notes)

	return e
}

func (r *Router) registerAuthRoutes(g *gin.RouterGroup, authenticate *middleware.Authenticate) {
	h := handler.NewAuth(r.authService, r.contextManager, r.logger)
	g.POST("/register", h.Register)
	g.POST("/verify-otp", h.VerifyOTP)
	g.POST("/login", h.Login)
	g.POST("/google", h.Google)
	g.GET("/me", authenticate.Handle, h.Me)
}

func (r *Router) registerNoteRoutes(g *gin.RouterGroup) {
	h := handler.NewNote(r.noteService, r.contextManager, r.logger)
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (r *Router) registerExportRoutes(g *gin.RouterGroup) {
	h := handler.NewExport(r.exportService, r.contextManager, r.logger)
	g.POST("", h.Create)
	g.GET("/:id", h.Download)
}

func (r *Router) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}
	if len(r.corsOrigins) == 0 || slices.Contains(r.corsOrigins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = r.corsOrigins
	}
	return cfg
}
