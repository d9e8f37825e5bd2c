package server

import (
	"fmt"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"fintrack/internal/model"
)

type createCategoryRequest struct {
	Name string `json:"name" validate:"required"`
	Type string `json:"type" validate:"required,oneof=income expense"`
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := s.decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	ownerID, _ := ownerFromContext(r.Context())
	category, err := s.categories.Create(r.Context(), ownerID, req.Name, req.Type)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := ownerFromContext(r.Context())
	categories, err := s.categories.List(r.Context(), ownerID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if categories == nil {
		categories = []model.Category{}
	}
	writeJSON(w, http.StatusOK, categories)
}

func (s *Server) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathObjectID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	ownerID, _ := ownerFromContext(r.Context())
	category, err := s.categories.Get(r.Context(), ownerID, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathObjectID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req createCategoryRequest
	if err = s.decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	ownerID, _ := ownerFromContext(r.Context())
	category, err := s.categories.Update(r.Context(), ownerID, id, req.Name, req.Type)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathObjectID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	ownerID, _ := ownerFromContext(r.Context())
	if err = s.categories.Delete(r.Context(), ownerID, id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "category removed"})
}

func pathObjectID(r *http.Request) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: malformed id %q", model.ErrValidation, r.PathValue("id"))
	}
	return id, nil
}
