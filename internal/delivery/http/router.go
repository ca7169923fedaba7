package http

import (
	"net/http"

	"github.com/LavaJover/shvark-exchange-service/internal/auth"
	"github.com/LavaJover/shvark-exchange-service/internal/delivery/http/handlers"
	"github.com/LavaJover/shvark-exchange-service/internal/delivery/http/middleware"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	userHandler *handlers.UserHandler,
	exchangeHandler *handlers.ExchangeHandler,
	tokenManager *auth.TokenManager,
) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logging)

	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/users/register/", userHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login/", userHandler.Login).Methods("POST")

	protected := api.PathPrefix("/").Subrouter()
	protected.Use(middleware.Auth(tokenManager))
	protected.HandleFunc("/users/balance/", userHandler.Balance).Methods("GET")
	protected.HandleFunc("/exchange/currency/", exchangeHandler.Currency).Methods("POST")
	protected.HandleFunc("/exchange/history/", exchangeHandler.History).Methods("GET")

	return r
}
