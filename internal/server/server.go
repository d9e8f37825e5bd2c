package server

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"

	"fintrack/internal/model"
	"fintrack/internal/service"
)

// Reporter derives the dashboard summary for one owner
type Reporter interface {
	Summary(ctx context.Context, ownerID int64, granularity model.Granularity, filter *model.TransactionFilter) (*model.Summary, error)
}

type Server struct {
	auth         service.Authorization
	categories   service.CategoryStore
	transactions service.TransactionStore
	reporter     Reporter
	validator    *validator.Validate
}

func New(auth service.Authorization, categories service.CategoryStore, transactions service.TransactionStore,
	reporter Reporter, validator *validator.Validate) *Server {
	return &Server{
		auth:         auth,
		categories:   categories,
		transactions: transactions,
		reporter:     reporter,
		validator:    validator,
	}
}

// Handler wires up all routes. Everything under /api except register and
// login requires a bearer token.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/users/register", s.handleRegister)
	mux.HandleFunc("POST /api/users/login", s.handleLogin)

	mux.Handle("GET /api/users/profile", s.authorized(s.handleProfile))
	mux.Handle("PUT /api/users/profile", s.authorized(s.handleUpdateProfile))
	mux.Handle("PUT /api/users/password", s.authorized(s.handleChangePassword))

	mux.Handle("POST /api/categories", s.authorized(s.handleCreateCategory))
	mux.Handle("GET /api/categories", s.authorized(s.handleListCategories))
	mux.Handle("GET /api/categories/{id}", s.authorized(s.handleGetCategory))
	mux.Handle("PUT /api/categories/{id}", s.authorized(s.handleUpdateCategory))
	mux.Handle("DELETE /api/categories/{id}", s.authorized(s.handleDeleteCategory))

	mux.Handle("POST /api/transactions", s.authorized(s.handleCreateTransaction))
	mux.Handle("GET /api/transactions", s.authorized(s.handleListTransactions))
	mux.Handle("PUT /api/transactions/{id}", s.authorized(s.handleUpdateTransaction))
	mux.Handle("DELETE /api/transactions/{id}", s.authorized(s.handleDeleteTransaction))

	mux.Handle("GET /api/dashboard", s.authorized(s.handleDashboard))

	return requestID(logRequests(mux))
}
