package storefront

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tair/growshop/pkg/middleware"
)

// healthTimeout bounds each dependency check of /health
const healthTimeout = 2 * time.Second

// Router builds the HTTP handler with every route and the middleware chain
func (a *App) Router() http.Handler {
	router := mux.NewRouter()

	a.catalogHandler.RegisterRoutes(router)
	a.orderHandler.RegisterRoutes(router)
	a.userHandler.RegisterRoutes(router)
	a.cartHandler.RegisterRoutes(router)
	a.wishlistHandler.RegisterRoutes(router)
	a.contentHandler.RegisterRoutes(router)

	router.HandleFunc("/health", a.health).Methods("GET")
	if a.infra.Gatherer != nil {
		router.Handle("/metrics", promhttp.HandlerFor(a.infra.Gatherer, promhttp.HandlerOpts{}))
	}
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	var handler http.Handler = router
	handler = a.responseCache.Middleware(handler)
	handler = a.rateLimiter.Middleware(handler)
	handler = a.sessions.OptionalSession(handler)
	handler = middleware.Logging(handler)
	handler = middleware.Tracing("storefront")(handler)
	handler = middleware.Recovery(handler)

	origins := a.opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	return c.Handler(handler)
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// health reports the data directory and the optional backing services
func (a *App) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	resp := healthResponse{Status: "ok", Checks: map[string]string{}}
	fail := func(name string, err error) {
		resp.Status = "unavailable"
		resp.Checks[name] = err.Error()
	}

	if _, err := os.Stat(a.store.Dir()); err != nil {
		fail("data", err)
	} else {
		resp.Checks["data"] = "ok"
	}

	if a.infra.DB != nil {
		if sqlDB, err := a.infra.DB.DB(); err != nil {
			fail("database", err)
		} else if err := sqlDB.PingContext(ctx); err != nil {
			fail("database", err)
		} else {
			resp.Checks["database"] = "ok"
		}
	}

	if a.infra.Redis != nil {
		if err := a.infra.Redis.Ping(ctx).Err(); err != nil {
			fail("redis", err)
		} else {
			resp.Checks["redis"] = "ok"
		}
	}

	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}
