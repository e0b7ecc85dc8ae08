// internal/models/fitness.go
package models

import (
	"encoding/json"
	"time"
)

// Log is a single body-weight measurement. Logs are append-only: there is no
// update or delete operation.
type Log struct {
	ID         int       `json:"id"`
	Weight     float64   `json:"weight"`
	DateLogged time.Time `json:"date"`
	UserID     int       `json:"-"`
}

// Plan is a saved diet/workout bundle. PlanData stores the generated plan plus
// the user-detail snapshot it was built from, verbatim, as an opaque blob.
type Plan struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	PlanData    string    `json:"-"`
	DateCreated time.Time `json:"-"`
	UserID      int       `json:"-"`
}

type PlanResponse struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	DateCreated string          `json:"date_created"`
	Data        json.RawMessage `json:"data"`
}

type AppendLogRequest struct {
	// Weight is accepted as a JSON number or a numeric string; the handler
	// coerces it to a finite float64.
	Weight interface{} `json:"weight"`
}

type GeneratePlanRequest struct {
	BodyType string `json:"bodyType"`
}

type SavePlanRequest struct {
	PlanData    json.RawMessage `json:"planData"`
	UserDetails json.RawMessage `json:"userDetails"`
}
