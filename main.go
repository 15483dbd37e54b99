package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"warung-pos/config"
	"warung-pos/internal/analytics"
	httpapi "warung-pos/internal/api/http"
	"warung-pos/internal/offline"
	"warung-pos/internal/service"
	"warung-pos/internal/storage"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

const salesTopic = "pos-orders"

func main() {
	var (
		mode = flag.String("mode", "pos-server", "run mode: pos-server, analytics-consumer or sync-agent")
		port = flag.Int("port", 8080, "HTTP port (pos-server)")
	)
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Received shutdown signal")
		cancel()
	}()

	switch *mode {
	case "pos-server":
		runPosServer(ctx, *port)
	case "analytics-consumer":
		runAnalyticsConsumer(ctx)
	case "sync-agent":
		runSyncAgent(ctx)
	default:
		fmt.Fprintf(os.Stderr, "Unknown mode: %s\n", *mode)
		flag.Usage()
		os.Exit(1)
	}
}

func runPosServer(ctx context.Context, port int) {
	db := config.MustInitPostgres()
	defer db.Close()

	if err := storage.EnsureSchema(db); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	rdb := config.MustInitRedis()
	defer rdb.Close()

	kafkaWriter := config.NewKafkaWriter(salesTopic)
	defer kafkaWriter.Close()

	receipts := service.NewReceiptFormatter(
		config.Getenv("STORE_NAME", "Bakmi Jowo Palur"),
		config.Getenv("CASHIER_NAME", "Cashier"),
	)
	qrEncoder := storage.NewReceiptQRGenerator(config.Getenv("PUBLIC_URL", "http://localhost:8080"))

	orderStore := storage.NewOrderStore(db)
	menuStore := storage.NewMenuStore(db)
	reportStore := storage.NewReportStore(db)
	reportCache := storage.NewReportRedisCache(rdb, 30*time.Second)
	publisher := storage.NewKafkaPublisher(kafkaWriter)

	orderService := service.NewOrderService(orderStore, menuStore, publisher, qrEncoder, receipts)
	menuService := service.NewMenuService(menuStore)
	reportService := service.NewReportService(reportStore, reportCache, receipts.StoreName)

	handler := httpapi.NewHandler(orderService, menuService, reportService)
	r := mux.NewRouter()
	handler.RegisterRoutes(r)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: cors.Default().Handler(r),
	}

	go func() {
		log.Printf("POS server starting on port %d", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed:", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	log.Println("POS server stopped")
}

func runAnalyticsConsumer(ctx context.Context) {
	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader(salesTopic, "pos-analytics")
	defer reader.Close()

	consumer := analytics.NewConsumer(reader, analytics.NewStore(rdb))
	consumer.Start(ctx)
	log.Println("Analytics consumer stopped")
}

// runSyncAgent drains the terminal's offline queue file against the POS
// server, driving the queue's online state from the server health check.
func runSyncAgent(ctx context.Context) {
	serverURL := config.Getenv("POS_SERVER_URL", "http://localhost:8080")
	queuePath := config.Getenv("OFFLINE_QUEUE_PATH", "offline-queue.json")

	submitter := offline.NewHTTPSubmitter(serverURL)
	queue, err := offline.NewQueue(offline.NewFileStore(queuePath), submitter, 1*time.Second)
	if err != nil {
		log.Fatal("Failed to open offline queue:", err)
	}

	log.Printf("Sync agent watching %s (%d pending)", queuePath, queue.Len())

	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		queue.SetOnline(submitter.Ping(ctx))
		if resp, err := queue.SyncNow(ctx); err != nil {
			log.Printf("Sync attempt failed: %v", err)
		} else if resp != nil {
			log.Printf("Synced %d orders, %d still pending", resp.SyncedCount, queue.Len())
		}

		select {
		case <-ctx.Done():
			log.Println("Sync agent stopped")
			return
		case <-ticker.C:
		}
	}
}
