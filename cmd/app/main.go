package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/tuan-design/miniappdesign/pkg/gateway"
	"github.com/tuan-design/miniappdesign/pkg/handlers"
	"github.com/tuan-design/miniappdesign/pkg/handlers/keywords"
	"github.com/tuan-design/miniappdesign/pkg/handlers/transactions"
	"github.com/tuan-design/miniappdesign/pkg/handlers/views"
	"github.com/tuan-design/miniappdesign/pkg/middleware"
	"github.com/tuan-design/miniappdesign/pkg/viewcache"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	apiURL := os.Getenv("GATEWAY_API_URL")
	sheetID := os.Getenv("SHEET_ID")
	relayURL := os.Getenv("RELAY_URL")
	if apiURL == "" || sheetID == "" || relayURL == "" {
		log.Fatal("GATEWAY_API_URL, SHEET_ID and RELAY_URL environment variables must be set")
	}

	gw := gateway.NewHTTPClient(relayURL, apiURL, sheetID)
	cache := viewcache.NewManager()
	state := handlers.NewAppState()

	viewsHandler := views.NewViewsHandler(gw, cache, state)
	txHandler := transactions.NewTransactionsHandler(gw, cache, viewsHandler)
	kwHandler := keywords.NewKeywordsHandler(gw, cache, viewsHandler)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.NewStructuredLogger(logger))

	router.Route("/views", func(r chi.Router) {
		r.Get("/daily", viewsHandler.Daily)
		r.Get("/monthly", viewsHandler.Monthly)
		r.Get("/search", viewsHandler.Search)
		r.Get("/search/live", viewsHandler.LiveSearch)
		r.Get("/stats", viewsHandler.Stats)
		r.Get("/monthly-chart", viewsHandler.MonthlyChart)
		r.Get("/keywords", viewsHandler.Keywords)
	})
	router.Get("/categories", viewsHandler.Categories)

	router.Route("/transactions", func(r chi.Router) {
		r.Post("/", txHandler.Add)
		r.Put("/", txHandler.Update)
		r.Post("/delete", txHandler.RequestDelete)
		r.Post("/delete/confirm", txHandler.ConfirmDelete)
		r.Post("/delete/cancel", txHandler.CancelDelete)
	})

	router.Route("/keywords", func(r chi.Router) {
		r.Post("/", kwHandler.Add)
		r.Post("/delete", kwHandler.Delete)
	})

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080" // Default port if not specified
	}

	log.Printf("Starting server on port %s", port)

	err = http.ListenAndServe(":"+port, router)
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
