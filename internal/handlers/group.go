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

type groupRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description" validate:"omitempty,max=255"`
}

func (req groupRequest) params() repository.CreateGroupParams {
	return repository.CreateGroupParams{Name: req.Name, Description: req.Description}
}

type groupResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toGroupResponse(g models.Group) groupResponse {
	return groupResponse{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		CreatedAt:   g.CreatedAt,
	}
}

func handleListGroups(groupService groupService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := requestIdentity(w, r)
		if !ok {
			return
		}

		groups, err := groupService.List(r.Context(), id.UserID)
		if err != nil {
			l.Error("Failed to list groups", "error", err)
			render.DomainError(w, err)
			return
		}

		response := make([]groupResponse, 0, len(groups))
		for _, g := range groups {
			response = append(response, toGroupResponse(g))
		}
		render.JSON(w, response)
	})
}

func handleCreateGroup(groupService groupService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := requestIdentity(w, r)
		if !ok {
			return
		}

		data, err := render.BindAndValidate[groupRequest](w, r)
		if err != nil {
			return
		}

		group, err := groupService.Create(r.Context(), id.UserID, data.params())
		if err != nil {
			l.Error("Failed to create group", "error", err)
			render.DomainError(w, err)
			return
		}

		render.JSONStatus(w, toGroupResponse(group), http.StatusCreated)
	})
}

func handleGetGroup(groupService groupService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := requestIdentity(w, r)
		if !ok {
			return
		}

		groupID, err := pathUUID(r)
		if err != nil {
			render.DomainError(w, apperrors.ErrGroupNotFound)
			return
		}

		group, err := groupService.Get(r.Context(), id.UserID, groupID)
		if err != nil {
			if render.ErrorStatus(err) == http.StatusInternalServerError {
				l.Error("Failed to get group", "error", err)
			}
			render.DomainError(w, err)
			return
		}

		render.JSON(w, toGroupResponse(group))
	})
}

func handleUpdateGroup(groupService groupService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := requestIdentity(w, r)
		if !ok {
			return
		}

		groupID, err := pathUUID(r)
		if err != nil {
			render.DomainError(w, apperrors.ErrGroupNotFound)
			return
		}

		data, err := render.BindAndValidate[groupRequest](w, r)
		if err != nil {
			return
		}

		group, err := groupService.Update(r.Context(), id.UserID, groupID, data.params())
		if err != nil {
			if render.ErrorStatus(err) == http.StatusInternalServerError {
				l.Error("Failed to update group", "error", err)
			}
			render.DomainError(w, err)
			return
		}

		render.JSON(w, toGroupResponse(group))
	})
}

func handleDeleteGroup(groupService groupService, l logger.Logger) http.Handler {
	type response struct {
		Message string        `json:"message"`
		Group   groupResponse `json:"group"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := requestIdentity(w, r)
		if !ok {
			return
		}

		groupID, err := pathUUID(r)
		if err != nil {
			render.DomainError(w, apperrors.ErrGroupNotFound)
			return
		}

		group, err := groupService.Delete(r.Context(), id.UserID, groupID)
		if err != nil {
			if render.ErrorStatus(err) == http.StatusInternalServerError {
				l.Error("Failed to delete group", "error", err)
			}
			render.DomainError(w, err)
			return
		}

		render.JSON(w, response{Message: "Group deleted", Group: toGroupResponse(group)})
	})
}
