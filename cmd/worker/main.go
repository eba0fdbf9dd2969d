package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"attendlog/internal/attendance"
	"attendlog/internal/config"
	"attendlog/internal/queue"
	"attendlog/internal/store"
)

// Worker consumes log events and keeps the cached report snapshot warm so
// report requests hit Redis instead of recomputing the aggregation.
func main() {
	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("shutdown signal received")
		cancel()
	}()

	db, err := store.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer db.Close()

	redisClient := store.NewRedis(cfg.RedisAddr)
	defer redisClient.Close()

	var q queue.Queue
	if cfg.QueueBackend == "memory" {
		q = queue.NewInMemory(64)
	} else {
		q = queue.NewRedisQueue(redisClient.Client, "attendlog:logs")
	}

	repo := attendance.NewRepository(db.Client)
	cache := store.NewReportCache(redisClient.Client, cfg.ReportCacheTTL)
	svc := attendance.NewService(repo, cache)

	messages, err := q.Consume(ctx)
	if err != nil {
		log.Fatalf("queue consume init failed: %v", err)
	}

	log.Println("worker started, waiting for log events...")
	for msg := range messages {
		if msg.Type != "log" {
			continue
		}

		id := string(msg.Body)
		if _, err := svc.RebuildReport(ctx); err != nil {
			log.Printf("report rebuild after log %s failed: %v", id, err)
			continue
		}
		log.Printf("report rebuilt after log %s", id)
	}

	log.Println("worker stopped")
}
