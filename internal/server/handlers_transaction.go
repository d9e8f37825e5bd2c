package server

import (
	"fmt"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"fintrack/internal/model"
	"fintrack/internal/service"
)

const dateLayout = "2006-01-02"

type transactionRequest struct {
	CategoryID  string  `json:"categoryId" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Date        string  `json:"date" validate:"required"`
	Description string  `json:"description"`
}

func (req *transactionRequest) toInput() (*service.TransactionInput, error) {
	categoryID, err := primitive.ObjectIDFromHex(req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed category id %q", model.ErrValidation, req.CategoryID)
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must look like %s", model.ErrValidation, dateLayout)
	}
	return &service.TransactionInput{
		CategoryID:  categoryID,
		Amount:      req.Amount,
		Date:        date,
		Description: req.Description,
	}, nil
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	input, err := s.decodeTransaction(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	ownerID, _ := ownerFromContext(r.Context())
	transaction, err := s.transactions.Create(r.Context(), ownerID, input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, transaction)
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := pathObjectID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	input, err := s.decodeTransaction(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	ownerID, _ := ownerFromContext(r.Context())
	transaction, err := s.transactions.Update(r.Context(), ownerID, id, input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, transaction)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := pathObjectID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	ownerID, _ := ownerFromContext(r.Context())
	if err = s.transactions.Delete(r.Context(), ownerID, id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "transaction removed"})
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	ownerID, _ := ownerFromContext(r.Context())
	transactions, err := s.transactions.List(r.Context(), ownerID, filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if transactions == nil {
		transactions = []model.Transaction{}
	}
	writeJSON(w, http.StatusOK, transactions)
}

func (s *Server) decodeTransaction(r *http.Request) (*service.TransactionInput, error) {
	var req transactionRequest
	if err := s.decode(r, &req); err != nil {
		return nil, err
	}
	return req.toInput()
}

// filterFromQuery reads optional start, end and category query parameters
func filterFromQuery(r *http.Request) (*model.TransactionFilter, error) {
	var filter model.TransactionFilter
	query := r.URL.Query()

	if v := query.Get("start"); v != "" {
		from, err := time.Parse(dateLayout, v)
		if err != nil {
			return nil, fmt.Errorf("%w: start must look like %s", model.ErrValidation, dateLayout)
		}
		filter.From = from
	}
	if v := query.Get("end"); v != "" {
		to, err := time.Parse(dateLayout, v)
		if err != nil {
			return nil, fmt.Errorf("%w: end must look like %s", model.ErrValidation, dateLayout)
		}
		filter.To = to
	}
	if v := query.Get("category"); v != "" {
		categoryID, err := primitive.ObjectIDFromHex(v)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed category id %q", model.ErrValidation, v)
		}
		filter.CategoryID = categoryID
	}
	return &filter, nil
}
