package handlers

import (
	"encoding/json"
	"net/http"
	"time"
	"unicode"

	"github.com/calebfernandez/levelup/internal/models"
	"github.com/calebfernandez/levelup/internal/plans"
	"github.com/calebfernandez/levelup/internal/responses"
	"github.com/calebfernandez/levelup/internal/store"
	"github.com/calebfernandez/levelup/internal/utils"
)

func GeneratePlan() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.GeneratePlanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			responses.SendErrorResponse(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		bundle, err := plans.Select(req.BodyType)
		if err != nil {
			responses.SendErrorResponse(w, http.StatusBadRequest, "Invalid body type specified")
			return
		}

		responses.SendSuccessResponse(w, http.StatusOK, bundle)
	}
}

func SavePlan(planStore store.PlanStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(userClaimsKey).(*utils.Claims)
		if !ok {
			responses.SendErrorResponse(w, http.StatusUnauthorized, "Invalid user context")
			return
		}

		var req models.SavePlanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			responses.SendErrorResponse(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		// Absent keys and explicit nulls both count as missing.
		if isMissingJSON(req.PlanData) || isMissingJSON(req.UserDetails) {
			responses.SendErrorResponse(w, http.StatusBadRequest, "Missing plan data")
			return
		}

		var details struct {
			BodyType string `json:"bodyType"`
		}
		// Body type is optional in the snapshot; anything unreadable falls
		// back to the "Custom" label.
		_ = json.Unmarshal(req.UserDetails, &details)

		label := details.BodyType
		if label == "" {
			label = "Custom"
		}
		planName := capitalize(label) + " Plan - " + time.Now().UTC().Format("2006-01-02")

		// The stored blob echoes the request payload verbatim.
		blob, err := json.Marshal(map[string]json.RawMessage{
			"planData":    req.PlanData,
			"userDetails": req.UserDetails,
		})
		if err != nil {
			responses.SendErrorResponse(w, http.StatusInternalServerError, "Failed to save plan")
			return
		}

		plan := &models.Plan{
			Name:     planName,
			PlanData: string(blob),
			UserID:   claims.UserID,
		}

		if err := planStore.CreatePlan(r.Context(), plan); err != nil {
			responses.SendErrorResponse(w, http.StatusInternalServerError, "Failed to save plan")
			return
		}

		responses.SendSuccessResponse(w, http.StatusCreated, map[string]string{
			"message":   "Plan saved successfully",
			"plan_name": planName,
		})
	}
}

func ListPlans(planStore store.PlanStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(userClaimsKey).(*utils.Claims)
		if !ok {
			responses.SendErrorResponse(w, http.StatusUnauthorized, "Invalid user context")
			return
		}

		userPlans, err := planStore.ListPlansByUser(r.Context(), claims.UserID)
		if err != nil {
			responses.SendErrorResponse(w, http.StatusInternalServerError, "Failed to fetch plans")
			return
		}

		results := []models.PlanResponse{}
		for _, plan := range userPlans {
			results = append(results, models.PlanResponse{
				ID:          plan.ID,
				Name:        plan.Name,
				DateCreated: plan.DateCreated.Format("2006-01-02"),
				Data:        json.RawMessage(plan.PlanData),
			})
		}

		responses.SendSuccessResponse(w, http.StatusOK, results)
	}
}

func isMissingJSON(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	for i := 1; i < len(runes); i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}
