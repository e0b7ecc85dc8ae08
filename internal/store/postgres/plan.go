// internal/store/postgres/plan.go
package postgres

import (
	"context"
	"database/sql"

	"github.com/calebfernandez/levelup/internal/models"
)

type PlanStore struct {
	db *sql.DB
}

func NewPlanStore(db *sql.DB) *PlanStore {
	return &PlanStore{db: db}
}

func (s *PlanStore) CreatePlan(ctx context.Context, plan *models.Plan) error {
	return s.db.QueryRowContext(ctx, `
		INSERT INTO plans (name, plan_data, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, date_created
	`, plan.Name, plan.PlanData, plan.UserID).Scan(&plan.ID, &plan.DateCreated)
}

func (s *PlanStore) ListPlansByUser(ctx context.Context, userID int) ([]models.Plan, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, plan_data, date_created, user_id
		FROM plans
		WHERE user_id = $1
		ORDER BY date_created DESC, id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []models.Plan
	for rows.Next() {
		var plan models.Plan
		if err := rows.Scan(&plan.ID, &plan.Name, &plan.PlanData, &plan.DateCreated, &plan.UserID); err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}

	return plans, rows.Err()
}
