package handlers

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/calebfernandez/levelup/internal/models"
	"github.com/calebfernandez/levelup/internal/responses"
	"github.com/calebfernandez/levelup/internal/store"
	"github.com/calebfernandez/levelup/internal/utils"
)

var errInvalidWeight = errors.New("invalid weight format")

// parseWeight coerces a decoded JSON value into a finite weight. Clients send
// the field either as a number or as a numeric string; the decoder hands us
// float64 for the former.
func parseWeight(value interface{}) (float64, error) {
	var weight float64

	switch v := value.(type) {
	case float64:
		weight = v
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, errInvalidWeight
		}
		weight = parsed
	default:
		return 0, errInvalidWeight
	}

	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return 0, errInvalidWeight
	}

	return weight, nil
}

func AppendLog(logs store.LogStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(userClaimsKey).(*utils.Claims)
		if !ok {
			responses.SendErrorResponse(w, http.StatusUnauthorized, "Invalid user context")
			return
		}

		var req models.AppendLogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			responses.SendErrorResponse(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.Weight == nil {
			responses.SendErrorResponse(w, http.StatusBadRequest, "Missing weight field")
			return
		}

		weight, err := parseWeight(req.Weight)
		if err != nil {
			responses.SendErrorResponse(w, http.StatusBadRequest, "Invalid weight format")
			return
		}

		log := &models.Log{
			Weight: weight,
			UserID: claims.UserID,
		}

		if err := logs.CreateLog(r.Context(), log); err != nil {
			responses.SendErrorResponse(w, http.StatusInternalServerError, "Failed to add log")
			return
		}

		responses.SendSuccessResponse(w, http.StatusCreated, map[string]interface{}{
			"message": "Log added successfully",
			"log": map[string]interface{}{
				"id":     log.ID,
				"weight": log.Weight,
				"date":   log.DateLogged.Format("2006-01-02 15:04:05"),
			},
		})
	}
}

func ListLogs(logs store.LogStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(userClaimsKey).(*utils.Claims)
		if !ok {
			responses.SendErrorResponse(w, http.StatusUnauthorized, "Invalid user context")
			return
		}

		userLogs, err := logs.ListLogsByUser(r.Context(), claims.UserID)
		if err != nil {
			responses.SendErrorResponse(w, http.StatusInternalServerError, "Failed to fetch logs")
			return
		}

		entries := []map[string]interface{}{}
		for _, log := range userLogs {
			entries = append(entries, map[string]interface{}{
				"id":     log.ID,
				"weight": log.Weight,
				"date":   log.DateLogged.Format("2006-01-02 15:04:05"),
			})
		}

		responses.SendSuccessResponse(w, http.StatusOK, entries)
	}
}
