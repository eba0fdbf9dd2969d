package httpapi

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"attendlog/internal/attendance"
	"attendlog/internal/queue"
)

type handlers struct {
	svc *attendance.Service
	q   queue.Queue
}

type createUserRequest struct {
	Name       string `json:"name" binding:"required"`
	RollNo     string `json:"rollNo" binding:"required"`
	MacAddress string `json:"macaddress"`
}

func (h handlers) createUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and rollNo are required"})
		return
	}

	u, err := h.svc.RegisterUser(c.Request.Context(), req.Name, req.RollNo, req.MacAddress)
	if err != nil {
		respondError(c, err)
		return
	}

	usersCreated.Inc()
	c.JSON(http.StatusCreated, gin.H{"user": u})
}

func (h handlers) listUsers(c *gin.Context) {
	users, err := h.svc.Users(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h handlers) getUser(c *gin.Context) {
	u, err := h.svc.User(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}

type createLogRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	Timestamp string `json:"timestamp"`
}

func (h handlers) createLog(c *gin.Context) {
	var req createLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	var ts *time.Time
	if req.Timestamp != "" {
		parsed, err := time.Parse(time.RFC3339, req.Timestamp)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "timestamp must be RFC 3339"})
			return
		}
		ts = &parsed
	}

	l, err := h.svc.RecordLog(c.Request.Context(), req.UserID, ts)
	if err != nil {
		respondError(c, err)
		return
	}

	logsCreated.Inc()
	if h.q != nil {
		if err := h.q.Publish(c.Request.Context(), queue.Message{Type: "log", Body: []byte(l.ID)}); err != nil {
			log.Printf("queue publish failed: %v", err)
		}
	}

	c.JSON(http.StatusCreated, gin.H{"log": l})
}

func (h handlers) listLogs(c *gin.Context) {
	logs, err := h.svc.Logs(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

func (h handlers) report(c *gin.Context) {
	reportRequests.Inc()
	days, cached, err := h.svc.Report(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if cached {
		reportCacheHits.Inc()
	}
	c.JSON(http.StatusOK, gin.H{"dates": days})
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, attendance.ErrInvalidInput),
		errors.Is(err, attendance.ErrDuplicateRollNo):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, attendance.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.Printf("request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
