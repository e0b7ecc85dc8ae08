package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/calebfernandez/levelup/internal/models"
	"github.com/calebfernandez/levelup/internal/responses"
	"github.com/calebfernandez/levelup/internal/store"
	"github.com/calebfernandez/levelup/internal/utils"
)

func GetDetails(users store.UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(userClaimsKey).(*utils.Claims)
		if !ok {
			responses.SendErrorResponse(w, http.StatusUnauthorized, "Invalid user context")
			return
		}

		user, err := users.GetUserByID(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				responses.SendErrorResponse(w, http.StatusNotFound, "User not found")
			} else {
				responses.SendErrorResponse(w, http.StatusInternalServerError, "Database error")
			}
			return
		}

		responses.SendSuccessResponse(w, http.StatusOK, models.UserDetails{
			Age:      user.Age,
			Height:   user.Height,
			Weight:   user.Weight,
			BodyType: user.BodyType,
		})
	}
}

func UpdateDetails(users store.UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(userClaimsKey).(*utils.Claims)
		if !ok {
			responses.SendErrorResponse(w, http.StatusUnauthorized, "Invalid user context")
			return
		}

		var req models.UpdateDetailsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			responses.SendErrorResponse(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := utils.Validate.Struct(req); err != nil {
			responses.SendValidationError(w, err)
			return
		}

		// Only the supplied fields are written; the update is always scoped
		// to the authenticated caller.
		if err := users.UpdateDetails(r.Context(), claims.UserID, req); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				responses.SendErrorResponse(w, http.StatusNotFound, "User not found")
			} else {
				responses.SendErrorResponse(w, http.StatusInternalServerError, "Failed to update details")
			}
			return
		}

		responses.SendSuccessResponse(w, http.StatusOK, map[string]string{
			"message": "Details updated successfully",
		})
	}
}

func DeleteAccount(users store.UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(userClaimsKey).(*utils.Claims)
		if !ok {
			responses.SendErrorResponse(w, http.StatusUnauthorized, "Invalid user context")
			return
		}

		// Owned logs and plans are removed by the schema's cascade rule.
		if err := users.DeleteUser(r.Context(), claims.UserID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				responses.SendErrorResponse(w, http.StatusNotFound, "User not found")
			} else {
				responses.SendErrorResponse(w, http.StatusInternalServerError, "Failed to delete account")
			}
			return
		}

		responses.SendSuccessResponse(w, http.StatusOK, map[string]string{
			"message": "Account deleted successfully",
		})
	}
}
