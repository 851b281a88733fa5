package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-gaming-platform/internal/models"
)

// PackCreator adds recharge packs.
type PackCreator interface {
	Create(ctx context.Context, req models.CreateRechargePackRequest) (*models.RechargePackDB, error)
}

// PackLister lists recharge packs.
type PackLister interface {
	List(ctx context.Context, activeOnly bool) ([]models.RechargePackDB, error)
}

// PackGetter returns a single recharge pack.
type PackGetter interface {
	Get(ctx context.Context, packID string) (*models.RechargePackDB, error)
}

// PackUpdater applies partial updates to recharge packs.
type PackUpdater interface {
	Update(ctx context.Context, packID string, upd models.RechargePackUpdate) (*models.RechargePackDB, error)
}

// PackDeleter removes recharge packs.
type PackDeleter interface {
	Delete(ctx context.Context, packID string, hard bool) error
}

// NewCreatePackHandler returns an HTTP handler that creates a recharge pack.
// @Summary Create recharge pack
// @Tags packs
// @Accept json
// @Produce json
// @Param request body models.CreateRechargePackRequest true "Pack"
// @Success 201 {object} models.RechargePackResponse "Pack created successfully"
// @Failure 400 {object} models.RechargePackErrorResponse "Invalid pack or duplicate pack_id"
// @Failure 500 {object} models.RechargePackErrorResponse "Internal server error"
// @Router /admin/create-recharge-pack [post]
// @Security BearerAuth
func NewCreatePackHandler(svc PackCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateRechargePackRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrorMessage(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		pack, err := svc.Create(r.Context(), req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, models.RechargePackResponse{
			Success: true,
			Data:    *pack,
			Message: "Pack created successfully",
		})
	}
}

// NewListPacksHandler returns an HTTP handler that lists recharge packs.
// @Summary List recharge packs
// @Tags packs
// @Produce json
// @Param active_only query bool false "Only active packs" default(true)
// @Success 200 {object} models.RechargePacksResponse "Packs"
// @Failure 400 {object} models.RechargePackErrorResponse "Invalid active_only"
// @Failure 500 {object} models.RechargePackErrorResponse "Internal server error"
// @Router /admin/get-recharge-packs [get]
func NewListPacksHandler(svc PackLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		activeOnly, err := queryBool(r, "active_only", true)
		if err != nil {
			writeErrorMessage(w, http.StatusBadRequest, "Invalid active_only")
			return
		}

		packs, err := svc.List(r.Context(), activeOnly)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.RechargePacksResponse{Success: true, Data: packs, Count: len(packs)})
	}
}

// NewGetPackHandler returns an HTTP handler that returns a recharge pack.
// @Summary Get recharge pack
// @Tags packs
// @Produce json
// @Param pack_id path string true "Pack id"
// @Success 200 {object} models.RechargePackResponse "Pack"
// @Failure 404 {object} models.RechargePackErrorResponse "Pack not found"
// @Failure 500 {object} models.RechargePackErrorResponse "Internal server error"
// @Router /admin/packs/{pack_id} [get]
func NewGetPackHandler(svc PackGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pack, err := svc.Get(r.Context(), chi.URLParam(r, "pack_id"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, models.RechargePackResponse{Success: true, Data: *pack})
	}
}

// NewUpdatePackHandler returns an HTTP handler that updates a recharge pack.
// @Summary Update recharge pack
// @Tags packs
// @Accept json
// @Produce json
// @Param pack_id path string true "Pack id"
// @Param request body models.RechargePackUpdate true "Fields to change"
// @Success 200 {object} models.RechargePackResponse "Pack updated successfully"
// @Failure 400 {object} models.RechargePackErrorResponse "Invalid request body"
// @Failure 404 {object} models.RechargePackErrorResponse "Pack not found"
// @Failure 500 {object} models.RechargePackErrorResponse "Internal server error"
// @Router /admin/packs/{pack_id} [put]
// @Security BearerAuth
func NewUpdatePackHandler(svc PackUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var upd models.RechargePackUpdate
		if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
			writeErrorMessage(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		pack, err := svc.Update(r.Context(), chi.URLParam(r, "pack_id"), upd)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.RechargePackResponse{
			Success: true,
			Data:    *pack,
			Message: "Pack updated successfully",
		})
	}
}

// NewDeletePackHandler returns an HTTP handler that deletes a recharge pack.
// @Summary Delete recharge pack
// @Description Deactivate a pack, or remove it when hard_delete is set
// @Tags packs
// @Produce json
// @Param pack_id path string true "Pack id"
// @Param hard_delete query bool false "Remove instead of deactivating" default(false)
// @Success 200 {object} models.RechargePackDeleteResponse "Pack deleted successfully"
// @Failure 404 {object} models.RechargePackErrorResponse "Pack not found"
// @Failure 500 {object} models.RechargePackErrorResponse "Internal server error"
// @Router /admin/packs/{pack_id} [delete]
// @Security BearerAuth
func NewDeletePackHandler(svc PackDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hard, err := queryBool(r, "hard_delete", false)
		if err != nil {
			writeErrorMessage(w, http.StatusBadRequest, "Invalid hard_delete")
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "pack_id"), hard); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.RechargePackDeleteResponse{Success: true, Message: "Pack deleted successfully"})
	}
}
