package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/shift"
	"github.com/mannerishivardhan/workforce-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	if !validID(id) {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, job_role, COALESCE(department_id::text, ''), start_time, end_time,
			work_duration_hours, overtime_allowed, overtime_multiplier, is_active, created_at, updated_at
		FROM shifts
		WHERE id = $1
	`

	var s shift.Shift
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.JobRole, &s.DepartmentID, &s.StartTime, &s.EndTime,
		&s.WorkDurationHours, &s.OvertimeAllowed, &s.OvertimeMultiplier, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift with id %s: %w", id, err)
	}

	return s, nil
}
