package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"glassblog/cmd/app"
	"glassblog/internal/config"
	"glassblog/internal/guard"
	handlers "glassblog/internal/handler"
	"glassblog/internal/middleware"
	"glassblog/internal/session"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if cfg.JWTSecretKey == "" {
		logger.Error("JWT_SECRET_KEY is not set")
		os.Exit(1)
	}

	kv, sessions, store, err := app.App(cfg, logger)
	if err != nil {
		logger.Error("failed to wire application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer kv.Close()

	handler := handlers.NewHandlers(sessions, store, cfg, logger)

	router := buildRouter(handler, sessions)

	handlerChain := middleware.Chain(
		router,
		middleware.Logging(logger),
		middleware.CORS,
		middleware.RequestID,
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	logger.Info("server listening", slog.String("addr", addr))

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func buildRouter(handler *handlers.Handlers, sessions session.Service) *mux.Router {
	router := mux.NewRouter()

	// API routes
	api := router.PathPrefix("/api").Subrouter()
	api.Use(mux.MiddlewareFunc(middleware.APIAuth(sessions)))

	api.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/register", handler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", handler.Logout).Methods(http.MethodPost)
	api.HandleFunc("/me", handler.GetCurrentUser).Methods(http.MethodGet)

	api.HandleFunc("/posts", handler.GetPosts).Methods(http.MethodGet)
	api.HandleFunc("/posts", handler.CreatePost).Methods(http.MethodPost)
	api.HandleFunc("/posts/{id:[0-9]+}", handler.GetPost).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id:[0-9]+}", handler.UpdatePost).Methods(http.MethodPut)
	api.HandleFunc("/posts/{id:[0-9]+}", handler.DeletePost).Methods(http.MethodDelete)
	api.HandleFunc("/posts/{id:[0-9]+}/views", handler.IncrementViews).Methods(http.MethodPost)

	api.HandleFunc("/categories", handler.GetCategories).Methods(http.MethodGet)
	api.HandleFunc("/tags", handler.GetTags).Methods(http.MethodGet)
	api.HandleFunc("/search", handler.Search).Methods(http.MethodGet)

	// page routes, gated by the navigation guard
	pages := router.NewRoute().Subrouter()
	pages.Use(mux.MiddlewareFunc(middleware.Guard(sessions, guard.RoutesByName())))

	pageHandlers := map[string]http.HandlerFunc{
		"Login":          handler.LoginPage,
		"Register":       handler.RegisterPage,
		"PostList":       handler.PostListPage,
		"PostDetail":     handler.PostDetailPage,
		"PostCreate":     handler.PostCreatePage,
		"PostEdit":       handler.PostEditPage,
		"CategoryManage": handler.CategoriesPage,
		"TagManage":      handler.TagsPage,
		"Search":         handler.SearchPage,
	}

	for _, route := range guard.Routes() {
		pages.HandleFunc(route.Path, pageHandlers[route.Name]).
			Methods(http.MethodGet).
			Name(route.Name)
	}

	return router
}
