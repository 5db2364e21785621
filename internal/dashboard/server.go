// Package dashboard serves the admin web app and its JSON API. Every
// /api route is gated by the Telegram WebApp init data check.
package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/colpuxase-art/shasitter-sub000/internal/models"
	"github.com/colpuxase-art/shasitter-sub000/internal/store"
	"github.com/colpuxase-art/shasitter-sub000/internal/webapp"
)

// InitDataHeader carries the raw Telegram WebApp init data on API requests.
const InitDataHeader = "X-Admin-InitData"

// Repository is the read side of the store the dashboard exposes.
type Repository interface {
	ListPrestations(ctx context.Context) ([]models.Prestation, error)
	ListClients(ctx context.Context) ([]models.Client, error)
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	UpcomingBookings(ctx context.Context, today string) ([]models.Booking, error)
	PastBookings(ctx context.Context, today string) ([]models.Booking, error)
	Summarize(ctx context.Context) (store.Summary, error)
}

// Server bundles the router with its dependencies.
type Server struct {
	auth *webapp.Authenticator
	repo Repository
	now  func() time.Time
}

// New builds a dashboard server.
func New(auth *webapp.Authenticator, repo Repository) *Server {
	return &Server{auth: auth, repo: repo, now: time.Now}
}

// Router assembles the gin engine: CORS, the auth middleware and the
// API routes, plus static files when webAppDir is set (tests pass "").
func (s *Server) Router(webAppDir string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", InitDataHeader},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	api := r.Group("/api")
	api.Use(s.authMiddleware())
	{
		api.GET("/prestations", s.handlePrestations)
		api.GET("/clients", s.handleClients)
		api.GET("/employees", s.handleEmployees)
		api.GET("/bookings/upcoming", s.handleUpcoming)
		api.GET("/bookings/past", s.handlePast)
		api.GET("/compta/summary", s.handleSummary)
	}

	if webAppDir != "" {
		r.Static("/app", webAppDir)
		r.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusMovedPermanently, "/app/")
		})
	}

	return r
}

// authMiddleware validates the init data header on every API request.
// The signature is checked each time, nothing is cached between calls.
func (s *Server) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		initData := c.GetHeader(InitDataHeader)
		if initData == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing init data"})
			return
		}

		id, err := s.auth.Authenticate(initData)
		if err != nil {
			if errors.Is(err, webapp.ErrForbidden) {
				slog.Warn("Dashboard access by non-admin", "user_id", id)
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "not an admin"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid init data"})
			return
		}

		c.Set("callerID", id)
		c.Next()
	}
}

func (s *Server) handlePrestations(c *gin.Context) {
	list, err := s.repo.ListPrestations(c.Request.Context())
	if err != nil {
		s.fail(c, "list prestations", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) handleClients(c *gin.Context) {
	list, err := s.repo.ListClients(c.Request.Context())
	if err != nil {
		s.fail(c, "list clients", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) handleEmployees(c *gin.Context) {
	list, err := s.repo.ListEmployees(c.Request.Context())
	if err != nil {
		s.fail(c, "list employees", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) handleUpcoming(c *gin.Context) {
	today := s.now().UTC().Format(time.DateOnly)
	list, err := s.repo.UpcomingBookings(c.Request.Context(), today)
	if err != nil {
		s.fail(c, "upcoming bookings", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) handlePast(c *gin.Context) {
	today := s.now().UTC().Format(time.DateOnly)
	list, err := s.repo.PastBookings(c.Request.Context(), today)
	if err != nil {
		s.fail(c, "past bookings", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) handleSummary(c *gin.Context) {
	summary, err := s.repo.Summarize(c.Request.Context())
	if err != nil {
		s.fail(c, "summary", err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// fail logs the repository error and returns a generic body so internal
// details never reach the client.
func (s *Server) fail(c *gin.Context, op string, err error) {
	slog.Error("Dashboard query failed", "op", op, "error", err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
