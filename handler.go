package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"lg/fitness-plan-go-api/internal/config"
	"lg/fitness-plan-go-api/internal/openai"
	"lg/fitness-plan-go-api/internal/planner"
)

// maxRateLimitedClients bounds the per-client limiter table.
const maxRateLimitedClients = 4096

// Handler holds shared dependencies (plan requester, config) for all route handlers.
type Handler struct {
	requester   *planner.Requester
	apiKey      string // pre-configured OpenAI secret; X-OpenAI-Key overrides it
	planTimeout time.Duration
	accessHash  []byte         // bcrypt hash of the access token; nil disables the gate
	limiter     *clientLimiter // nil disables rate limiting
	log         zerolog.Logger
}

// newHandler wires the plan requester to the OpenAI client described by cfg.
// OPENAI_BASE_URL is overridable so tests can point it at a mock server.
func newHandler(cfg *config.Config, log zerolog.Logger) (*Handler, error) {
	client := openai.NewClient(openai.Options{BaseURL: cfg.OpenAIBaseURL})

	h := &Handler{
		requester:   planner.NewRequester(client, cfg.CompletionParams()),
		apiKey:      cfg.OpenAIAPIKey,
		planTimeout: cfg.PlanTimeout,
		log:         log,
	}

	if cfg.AccessTokenHash != "" {
		if _, err := bcrypt.Cost([]byte(cfg.AccessTokenHash)); err != nil {
			return nil, fmt.Errorf("ACCESS_TOKEN_HASH is not a bcrypt hash: %w", err)
		}
		h.accessHash = []byte(cfg.AccessTokenHash)
	}

	if cfg.RateLimitPerMin > 0 {
		limiter, err := newClientLimiter(cfg.RateLimitPerMin, maxRateLimitedClients)
		if err != nil {
			return nil, fmt.Errorf("create rate limiter: %w", err)
		}
		h.limiter = limiter
	}

	return h, nil
}

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

/* ─── Server setup ────────────────────────────────────────────────────── */

// newRouter builds the gin engine with middleware and all routes.
func newRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.SetTrustedProxies(nil)
	router.Use(gin.Recovery(), requestID(), requestLogger(h.log))
	h.registerRoutes(router)
	return router
}

// registerRoutes registers all API routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	// Public routes
	router.GET("/api/healthz", h.health)
	router.GET("/api/options", h.getOptions)
	router.GET("/api/videos", h.getVideos)

	// Gated routes
	api := router.Group("/api", h.accessMiddleware())
	api.POST("/tdee", h.postTDEE)
	api.POST("/plan", h.rateLimitMiddleware(), h.postPlan)
	api.POST("/plan/download", h.downloadPlan)
}

// health handles GET /api/healthz.
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
