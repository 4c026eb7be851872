package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/jardinverde/gardenia/internal/auth"
	"github.com/jardinverde/gardenia/internal/common"
	"github.com/jardinverde/gardenia/internal/http/health"
	"github.com/jardinverde/gardenia/internal/http/v1/routes"
	appmiddleware "github.com/jardinverde/gardenia/internal/middleware"
	"github.com/jardinverde/gardenia/internal/platform/firebase"
	"github.com/jardinverde/gardenia/internal/respond"
	advicesvc "github.com/jardinverde/gardenia/internal/service/advice"
	agendasvc "github.com/jardinverde/gardenia/internal/service/agenda"
	catalogsvc "github.com/jardinverde/gardenia/internal/service/catalog"
	crmsvc "github.com/jardinverde/gardenia/internal/service/crm"
	imagesvc "github.com/jardinverde/gardenia/internal/service/images"
	requestssvc "github.com/jardinverde/gardenia/internal/service/requests"
	shopsvc "github.com/jardinverde/gardenia/internal/service/shop"
	"github.com/jardinverde/gardenia/internal/session"
	"github.com/jardinverde/gardenia/internal/store"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	defer func() {
		if err := common.Sync(); err != nil {
			appmiddleware.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := common.Err(); err != nil {
		appmiddleware.LogError(context.Background(), "logger init error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	clients, err := firebase.InitializeClients(ctx, firebase.Config{
		ProjectID:                    os.Getenv("FIREBASE_PROJECT_ID"),
		GoogleApplicationCredentials: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
	})
	if err != nil {
		appmiddleware.LogError(ctx, "firebase init failed", err)
		os.Exit(1)
	}
	defer func() {
		if err := clients.Close(); err != nil {
			appmiddleware.LogError(context.Background(), "firebase close error", err)
		}
	}()

	remote := store.NewFirestoreRemote(clients.Firestore)
	hub := store.NewHub(remote)
	if err := hub.Start(ctx); err != nil {
		appmiddleware.LogError(ctx, "public subscriptions failed", err)
		os.Exit(1)
	}
	defer hub.Close()

	httpClient := &http.Client{Timeout: 30 * time.Second}
	provider := auth.NewFirebaseProvider(httpClient, os.Getenv("FIREBASE_WEB_API_KEY"))
	manager := session.NewManager(ctx, provider, hub, splitList(os.Getenv("ADMIN_EMAILS")))
	defer manager.Close()

	gate := session.NewGate(remote)

	cartPath := os.Getenv("CART_DB_PATH")
	if cartPath == "" {
		cartPath = "carts.db"
	}
	carts, err := shopsvc.OpenCartStore(cartPath)
	if err != nil {
		appmiddleware.LogError(ctx, "cart store open failed", err, zap.String("path", cartPath))
		os.Exit(1)
	}
	defer func() {
		if err := carts.Close(); err != nil {
			appmiddleware.LogError(context.Background(), "cart store close error", err)
		}
	}()

	deps := routes.Deps{
		Sessions: manager,
		Catalog:  catalogsvc.NewService(hub, gate),
		Requests: requestssvc.NewService(hub, gate),
		Clients:  crmsvc.NewService(hub, gate),
		Agenda:   agendasvc.NewService(hub, gate),
		Carts:    carts,
		Sales:    shopsvc.NewRecorder(hub, gate),
		Advice:   advicesvc.NewClient(httpClient, os.Getenv("GEMINI_API_KEY")),
		Uploader: imagesvc.NewCloudinaryClient(httpClient,
			os.Getenv("CLOUDINARY_CLOUD_NAME"), os.Getenv("CLOUDINARY_UPLOAD_PRESET")),
	}

	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	// Base middleware stack
	router.Use(
		appmiddleware.Security("/api-docs"),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP extracts client IP from X-Real-IP or X-Forwarded-For headers.
		// SECURITY: Only use behind a trusted reverse proxy (e.g., Cloud Run, nginx).
		// Without a trusted proxy, clients can spoof their IP address.
		chimiddleware.RealIP,
		// RequestSize limits request body size to prevent memory exhaustion from large payloads.
		chimiddleware.RequestSize(5<<20), // 5 MB, image uploads included
		appmiddleware.RequestLogger(),
		appmiddleware.AccessLogger(),
		respond.Recoverer(),
	)

	router.Get("/health", health.Handler(Version))

	respond.Install()
	cfg := huma.DefaultConfig("Gardenia API", Version)
	cfg.DocsPath = "/api-docs"
	api := humachi.New(router, cfg)

	// Add CBOR content type to OpenAPI requests and responses
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation,
		func(_ *huma.OpenAPI, op *huma.Operation) {
			if op.RequestBody != nil && op.RequestBody.Content != nil {
				if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
					op.RequestBody.Content["application/cbor"] = jsonContent
				}
			}
			for _, resp := range op.Responses {
				if resp.Content == nil {
					continue
				}
				if jsonContent, ok := resp.Content["application/json"]; ok {
					resp.Content["application/cbor"] = jsonContent
				}
			}
		},
	)

	routes.Register(api, deps)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}

	listenErr := make(chan error, 1)
	go func() {
		appmiddleware.LogInfo(context.Background(), "server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			listenErr <- err
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		appmiddleware.LogError(context.Background(), "listen failed", err, zap.String("addr", srv.Addr))
		os.Exit(1)
	case <-stop:
		appmiddleware.LogInfo(context.Background(), "shutdown signal received")
	}
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appmiddleware.LogError(shutdownCtx, "server shutdown error", err)
	}
	appmiddleware.LogInfo(context.Background(), "server exited")
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
