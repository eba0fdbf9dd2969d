package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"attendlog/internal/attendance"
	"attendlog/internal/httpmiddleware"
	"attendlog/internal/queue"
	"attendlog/internal/store"
)

// Deps carries everything the router needs.
type Deps struct {
	Service         *attendance.Service
	DB              *store.DB
	Redis           *store.Redis
	Queue           queue.Queue
	RateLimitPerMin int
}

// NewRouter builds the gin engine with all routes and middleware.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/healthz", "/metrics"},
	}))
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}))
	r.Use(securityHeaders())
	if d.RateLimitPerMin > 0 {
		r.Use(httpmiddleware.NewPerIPLimiter(d.RateLimitPerMin).Middleware())
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/healthz", d.health)

	h := handlers{svc: d.Service, q: d.Queue}
	r.POST("/users", h.createUser)
	r.GET("/users", h.listUsers)
	r.GET("/users/:id", h.getUser)
	r.POST("/logs", h.createLog)
	r.GET("/logs", h.listLogs)
	r.GET("/report", h.report)

	return r
}

func (d Deps) health(c *gin.Context) {
	redisHealthy := d.Redis.Healthy(c.Request.Context())
	dbHealthy := d.DB != nil && d.DB.Client != nil && d.DB.Client.PingContext(c.Request.Context()) == nil
	status := http.StatusOK
	if !redisHealthy || !dbHealthy {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"status": "ok", "redis": redisHealthy, "db": dbHealthy})
}

func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		if gin.Mode() == gin.ReleaseMode {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}
		c.Next()
	}
}
