package httpapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	usersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "attendlog_users_created_total",
		Help: "Users registered since process start.",
	})
	logsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "attendlog_logs_created_total",
		Help: "Attendance logs recorded since process start.",
	})
	reportRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "attendlog_report_requests_total",
		Help: "Report requests served.",
	})
	reportCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "attendlog_report_cache_hits_total",
		Help: "Report requests served from the Redis snapshot.",
	})
)
