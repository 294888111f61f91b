package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/museum-guide/internal/models"
)

// WishlistAppender defines the interface for adding wishlist entries.
type WishlistAppender interface {
	AddWishlist(ctx context.Context, username string, museumID int) ([]models.WishlistEntry, error)
}

// WishlistRemover defines the interface for removing wishlist entries.
type WishlistRemover interface {
	RemoveWishlist(ctx context.Context, username string, museumID int) ([]models.WishlistEntry, error)
}

// WishlistRequest represents the JSON body for a wishlist add
// swagger:model WishlistRequest
type WishlistRequest struct {
	// Museum id
	// required: true
	// default: 1
	MuseumID int `json:"museumId"`
}

// WishlistResponse represents the wishlist after a mutation
// swagger:model WishlistResponse
type WishlistResponse struct {
	// Result message
	// default: Added to wishlist
	Message string `json:"message"`

	// Current wishlist
	Wishlist []models.WishlistEntry `json:"wishlist"`
}

// NewAddWishlistHandler returns an HTTP handler for adding to the wishlist.
// @Summary Add museum to wishlist
// @Description Adds a museum to the user's wishlist; adding a duplicate is a no-op
// @Tags user
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param wishlistRequest body handlers.WishlistRequest true "Museum to add"
// @Success 200 {object} handlers.WishlistResponse "Current wishlist"
// @Failure 404 {object} handlers.UserErrorResponse "User not found"
// @Router /api/user/wishlist/{username} [post]
// @Security BearerAuth
func NewAddWishlistHandler(svc WishlistAppender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")

		var req WishlistRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UserErrorResponse{
				Message: "museumId required",
			})
			return
		}

		wishlist, err := svc.AddWishlist(r.Context(), username, req.MuseumID)
		if err != nil {
			writeUserError(w, err)
			return
		}

		json.NewEncoder(w).Encode(WishlistResponse{
			Message:  "Added to wishlist",
			Wishlist: wishlist,
		})
	}
}

// NewRemoveWishlistHandler returns an HTTP handler for removing from the wishlist.
// @Summary Remove museum from wishlist
// @Description Removes a museum from the user's wishlist
// @Tags user
// @Produce json
// @Param username path string true "Username"
// @Param museumId path int true "Museum id"
// @Success 200 {object} handlers.WishlistResponse "Current wishlist"
// @Failure 404 {object} handlers.UserErrorResponse "User not found"
// @Router /api/user/wishlist/{username}/{museumId} [delete]
// @Security BearerAuth
func NewRemoveWishlistHandler(svc WishlistRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")
		museumID, _ := strconv.Atoi(chi.URLParam(r, "museumId"))

		wishlist, err := svc.RemoveWishlist(r.Context(), username, museumID)
		if err != nil {
			writeUserError(w, err)
			return
		}

		json.NewEncoder(w).Encode(WishlistResponse{
			Message:  "Removed from wishlist",
			Wishlist: wishlist,
		})
	}
}
