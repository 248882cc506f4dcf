// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/stylist/internal/ingest"
	"github.com/tomtom215/stylist/internal/logging"
	"github.com/tomtom215/stylist/internal/wardrobe"
)

// maxIDLength bounds user and garment IDs taken from the path.
const maxIDLength = 128

// pathID reads a required path parameter.
func pathID(r *http.Request, name string) (string, bool) {
	id := strings.TrimSpace(chi.URLParam(r, name))
	return id, id != "" && len(id) <= maxIDLength
}

// ListGarments handles GET /api/v1/users/{userID}/garments.
func (h *Handler) ListGarments(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	userID, ok := pathID(r, "userID")
	if !ok {
		rw.BadRequest("invalid user ID")
		return
	}

	items, err := h.store.FetchWardrobe(r.Context(), userID)
	if err != nil {
		rw.BackendError(err, "Failed to load wardrobe")
		return
	}

	specs := make([]wardrobe.GarmentSpec, len(items))
	for i := range items {
		specs[i] = items[i].Spec()
	}
	rw.Success(map[string]any{"garments": specs, "count": len(specs)})
}

// GetGarment handles GET /api/v1/users/{userID}/garments/{garmentID}.
func (h *Handler) GetGarment(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	userID, okUser := pathID(r, "userID")
	garmentID, okGarment := pathID(r, "garmentID")
	if !okUser || !okGarment {
		rw.BadRequest("invalid user or garment ID")
		return
	}

	g, err := h.store.GetGarment(r.Context(), userID, garmentID)
	if err != nil {
		rw.BackendError(err, "Garment not found")
		return
	}
	rw.Success(g.Spec())
}

// PutGarment handles PUT /api/v1/users/{userID}/garments/{garmentID}. The
// body is raw classifier output; path IDs override any IDs in the body.
func (h *Handler) PutGarment(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	userID, okUser := pathID(r, "userID")
	garmentID, okGarment := pathID(r, "garmentID")
	if !okUser || !okGarment {
		rw.BadRequest("invalid user or garment ID")
		return
	}

	var raw wardrobe.RawGarment
	if err := decodeJSON(r, &raw); err != nil {
		rw.BadRequest(err.Error())
		return
	}
	raw.UserID, raw.ID = userID, garmentID

	ctx := logging.ContextWithUserID(r.Context(), userID)
	g, err := h.writer.ApplyGarment(ctx, raw)
	if err != nil {
		rw.BackendError(err, "Failed to store garment")
		return
	}

	logging.Ctx(ctx).Debug().Str("garment_id", g.ID()).Str("category", string(g.Category())).Msg("Garment stored")
	rw.Success(g.Spec())
}

// DeleteGarment handles DELETE /api/v1/users/{userID}/garments/{garmentID}.
func (h *Handler) DeleteGarment(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	userID, okUser := pathID(r, "userID")
	garmentID, okGarment := pathID(r, "garmentID")
	if !okUser || !okGarment {
		rw.BadRequest("invalid user or garment ID")
		return
	}

	if err := h.store.DeleteGarment(r.Context(), userID, garmentID); err != nil {
		rw.BackendError(err, "Failed to delete garment")
		return
	}
	invalidated := h.engine.InvalidateUser(userID)

	rw.Success(map[string]any{"deleted": garmentID, "invalidated_results": invalidated})
}

// PutProfile handles PUT /api/v1/users/{userID}/profile.
func (h *Handler) PutProfile(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	userID, ok := pathID(r, "userID")
	if !ok {
		rw.BadRequest("invalid user ID")
		return
	}

	var update ingest.ProfileUpdate
	if err := decodeJSON(r, &update); err != nil {
		rw.BadRequest(err.Error())
		return
	}
	update.UserID = userID

	p, err := h.writer.ApplyProfile(logging.ContextWithUserID(r.Context(), userID), update)
	if err != nil {
		rw.BackendError(err, "Failed to store profile")
		return
	}
	rw.Success(p)
}
