package http

import (
	"encoding/json"
	"net/http"

	commonerrors "github.com/versionverse/backend/internal/common/errors"
	commonhttp "github.com/versionverse/backend/internal/common/http"
	"github.com/versionverse/backend/internal/common/jwtverify"
	"github.com/versionverse/backend/internal/common/logger"
	"github.com/versionverse/backend/internal/common/validate"
	"github.com/versionverse/backend/internal/track/service"
)

type Handler struct {
	svc    *service.Service
	errors *commonhttp.ErrorHandler
	log    *logger.Logger
}

func NewHandler(svc *service.Service, errors *commonhttp.ErrorHandler, log *logger.Logger) *Handler {
	return &Handler{svc: svc, errors: errors, log: log}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/product", h.listProducts)
	mux.HandleFunc("GET /api/product/{id}", h.getProduct)
	mux.HandleFunc("POST /api/product", h.createProduct)
	mux.HandleFunc("PUT /api/product/{id}", h.updateProduct)
	mux.HandleFunc("DELETE /api/product/{id}", h.deleteProduct)

	mux.HandleFunc("GET /api/update", h.listUpdates)
	mux.HandleFunc("GET /api/update/{id}", h.getUpdate)
	mux.HandleFunc("POST /api/update", h.createUpdate)
	mux.HandleFunc("PUT /api/update/{id}", h.updateUpdate)
	mux.HandleFunc("DELETE /api/update/{id}", h.deleteUpdate)

	mux.HandleFunc("GET /api/updatepoint", h.listUpdatePoints)
	mux.HandleFunc("GET /api/updatepoint/{id}", h.getUpdatePoint)
	mux.HandleFunc("POST /api/updatepoint", h.createUpdatePoint)
	mux.HandleFunc("PUT /api/updatepoint/{id}", h.updateUpdatePoint)
	mux.HandleFunc("DELETE /api/updatepoint/{id}", h.deleteUpdatePoint)
}

// identity returns the caller's claims; the jwtverify middleware guarantees
// they exist on every /api route.
func (h *Handler) identity(w http.ResponseWriter, r *http.Request) (jwtverify.Claims, bool) {
	claims, ok := jwtverify.FromContext(r.Context())
	if !ok {
		h.errors.HandleError(w, r, commonerrors.ErrNotAuthorized)
		return jwtverify.Claims{}, false
	}
	return claims, true
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeInvalidJSON, "invalid json", "")
		return false
	}
	return true
}

// Products

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.identity(w, r)
	if !ok {
		return
	}

	products, err := h.svc.ListProducts(r.Context(), claims.UserID)
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	commonhttp.WriteData(w, http.StatusOK, products)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.identity(w, r)
	if !ok {
		return
	}

	product, err := h.svc.GetProduct(r.Context(), claims.UserID, r.PathValue("id"))
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	commonhttp.WriteData(w, http.StatusOK, product)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.identity(w, r)
	if !ok {
		return
	}

	var req productRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	product, err := h.svc.CreateProduct(r.Context(), claims.UserID, req.Name)
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	commonhttp.WriteData(w, http.StatusOK, product)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.identity(w, r)
	if !ok {
		return
	}

	var req productRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	product, err := h.svc.UpdateProduct(r.Context(), claims.UserID, r.PathValue("id"), req.Name)
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	commonhttp.WriteData(w, http.StatusOK, product)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.identity(w, r)
	if !ok {
		return
	}

	product, err := h.svc.DeleteProduct(r.Context(), claims.UserID, r.PathValue("id"))
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	commonhttp.WriteData(w, http.StatusOK, product)
}

// Updates

func (h *Handler) listUpdates(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.identity(w, r)
	if !ok {
		return
	}

	updates, err := h.svc.ListUpdates(r.Context(), claims.UserID)
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	commonhttp.WriteData(w, http.StatusOK, updates)
}

func (h *Handler) getUpdate(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.identity(w, r)
	if !ok {
		return
	}

	update, err := h.svc.GetUpdate(r.Context(), claims.UserID, r.PathValue("id"))
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	commonhttp.WriteData(w, http.StatusOK, update)
}

func (h *Handler) createUpdate(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.identity(w, r)
	if !ok {
		return
	}

	var req createUpdateRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	update, err := h.svc.CreateUpdate(r.Context(), claims.UserID, service.CreateUpdateInput{
		Title:     req.Title,
		Body:      req.Body,
		Status:    req.Status,
		Version:   req.Version,
		ProductID: req.ProductID,
	})
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	commonhttp.WriteData(w, http.StatusOK, update)
}

func (h *Handler) updateUpdate(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.identity(w, r)
	if !ok {
		return
	}

	var req updateUpdateRequest
	if !h.decode(w, r, &req) {
		return
	}

	update, err := h.svc.UpdateUpdate(r.Context(), claims.UserID, r.PathValue("id"), service.UpdateUpdateInput{
		Title:   req.Title,
		Body:    req.Body,
		Status:  req.Status,
		Version: req.Version,
	})
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	commonhttp.WriteData(w, http.StatusOK, update)
}

func (h *Handler) deleteUpdate(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.identity(w, r)
	if !ok {
		return
	}

	update, err := h.svc.DeleteUpdate(r.Context(), claims.UserID, r.PathValue("id"))
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	commonhttp.WriteData(w, http.StatusOK, update)
}

// Update points

func (h *Handler) listUpdatePoints(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.identity(w, r)
	if !ok {
		return
	}

	points, err := h.svc.ListUpdatePoints(r.Context(), claims.UserID)
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	commonhttp.WriteData(w, http.StatusOK, points)
}

func (h *Handler) getUpdatePoint(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.identity(w, r)
	if !ok {
		return
	}

	point, err := h.svc.GetUpdatePoint(r.Context(), claims.UserID, r.PathValue("id"))
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	commonhttp.WriteData(w, http.StatusOK, point)
}

func (h *Handler) createUpdatePoint(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.identity(w, r)
	if !ok {
		return
	}

	var req createUpdatePointRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	point, err := h.svc.CreateUpdatePoint(r.Context(), claims.UserID, service.CreateUpdatePointInput{
		Name:        req.Name,
		Description: req.Description,
		UpdateID:    req.UpdateID,
	})
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	commonhttp.WriteData(w, http.StatusOK, point)
}

func (h *Handler) updateUpdatePoint(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.identity(w, r)
	if !ok {
		return
	}

	var req updateUpdatePointRequest
	if !h.decode(w, r, &req) {
		return
	}

	point, err := h.svc.UpdateUpdatePoint(r.Context(), claims.UserID, r.PathValue("id"), service.UpdateUpdatePointInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	commonhttp.WriteData(w, http.StatusOK, point)
}

func (h *Handler) deleteUpdatePoint(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.identity(w, r)
	if !ok {
		return
	}

	point, err := h.svc.DeleteUpdatePoint(r.Context(), claims.UserID, r.PathValue("id"))
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	commonhttp.WriteData(w, http.StatusOK, point)
}
