package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/paysinc/paysinc/internal/apperrors"
	"github.com/paysinc/paysinc/internal/handlers/render"
	"github.com/paysinc/paysinc/internal/logger"
	"github.com/paysinc/paysinc/internal/models"
	"github.com/paysinc/paysinc/internal/repository"
)

type categoryRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description" validate:"omitempty,max=255"`
}

func (req categoryRequest) params() repository.CreateCategoryParams {
	return repository.CreateCategoryParams{Name: req.Name, Description: req.Description}
}

type categoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toCategoryResponse(c models.Category) categoryResponse {
	return categoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}

func handleListCategories(categoryService categoryService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := requestIdentity(w, r)
		if !ok {
			return
		}

		categories, err := categoryService.List(r.Context(), id.UserID)
		if err != nil {
			l.Error("Failed to list categories", "error", err)
			render.DomainError(w, err)
			return
		}

		response := make([]categoryResponse, 0, len(categories))
		for _, c := range categories {
			response = append(response, toCategoryResponse(c))
		}
		render.JSON(w, response)
	})
}

func handleCreateCategory(categoryService categoryService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := requestIdentity(w, r)
		if !ok {
			return
		}

		data, err := render.BindAndValidate[categoryRequest](w, r)
		if err != nil {
			return
		}

		category, err := categoryService.Create(r.Context(), id.UserID, data.params())
		if err != nil {
			l.Error("Failed to create category", "error", err)
			render.DomainError(w, err)
			return
		}

		render.JSONStatus(w, toCategoryResponse(category), http.StatusCreated)
	})
}

func handleGetCategory(categoryService categoryService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := requestIdentity(w, r)
		if !ok {
			return
		}

		categoryID, err := pathUUID(r)
		if err != nil {
			render.DomainError(w, apperrors.ErrCategoryNotFound)
			return
		}

		category, err := categoryService.Get(r.Context(), id.UserID, categoryID)
		if err != nil {
			if render.ErrorStatus(err) == http.StatusInternalServerError {
				l.Error("Failed to get category", "error", err)
			}
			render.DomainError(w, err)
			return
		}

		render.JSON(w, toCategoryResponse(category))
	})
}

func handleUpdateCategory(categoryService categoryService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := requestIdentity(w, r)
		if !ok {
			return
		}

		categoryID, err := pathUUID(r)
		if err != nil {
			render.DomainError(w, apperrors.ErrCategoryNotFound)
			return
		}

		data, err := render.BindAndValidate[categoryRequest](w, r)
		if err != nil {
			return
		}

		category, err := categoryService.Update(r.Context(), id.UserID, categoryID, data.params())
		if err != nil {
			if render.ErrorStatus(err) == http.StatusInternalServerError {
				l.Error("Failed to update category", "error", err)
			}
			render.DomainError(w, err)
			return
		}

		render.JSON(w, toCategoryResponse(category))
	})
}

func handleDeleteCategory(categoryService categoryService, l logger.Logger) http.Handler {
	type response struct {
		Message string `json:"message"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := requestIdentity(w, r)
		if !ok {
			return
		}

		categoryID, err := pathUUID(r)
		if err != nil {
			render.DomainError(w, apperrors.ErrCategoryNotFound)
			return
		}

		if _, err := categoryService.Delete(r.Context(), id.UserID, categoryID); err != nil {
			if render.ErrorStatus(err) == http.StatusInternalServerError {
				l.Error("Failed to delete category", "error", err)
			}
			render.DomainError(w, err)
			return
		}

		render.JSON(w, response{Message: "Category deleted successfully"})
	})
}
