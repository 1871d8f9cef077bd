package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/attendance"
	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/employee"
	"github.com/mannerishivardhan/workforce-backend-go/internal/pkg/database"
	"github.com/mannerishivardhan/workforce-backend-go/internal/pkg/timeutil"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, employee_id, date, status, entry_time, exit_time, work_duration_minutes,
	is_corrected, correction_reason, corrected_by, corrected_at, created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.Status, &att.EntryTime, &att.ExitTime, &att.WorkDurationMinutes,
		&att.IsCorrected, &att.CorrectionReason, &att.CorrectedBy, &att.CorrectedAt, &att.CreatedAt, &att.UpdatedAt,
	)
	return att, err
}

// ListByEmployeeMonth implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployeeMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]attendance.Attendance, error) {
	if !validID(employeeID) {
		return nil, nil
	}
	q := GetQuerier(ctx, a.db)

	m := timeutil.NewMonth(year, month)
	query := `SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1 AND date >= $2 AND date < $3
		ORDER BY date, updated_at, created_at
	`

	rows, err := q.Query(ctx, query, employeeID, m.Start(), m.End())
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for employee %s in %s: %w", employeeID, m, err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendance: %w", err)
	}

	return records, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	if !validID(id) {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE id = $1`

	att, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance with id %s: %w", id, err)
	}

	return att, nil
}

// Upsert implements attendance.AttendanceRepository.
// Re-marking a day replaces the record and clears any earlier correction.
func (a *attendanceRepository) Upsert(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	id, err := newID()
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to generate attendance id: %w", err)
	}

	query := `
		INSERT INTO attendances (id, employee_id, date, status, entry_time, exit_time, work_duration_minutes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			status = EXCLUDED.status,
			entry_time = EXCLUDED.entry_time,
			exit_time = EXCLUDED.exit_time,
			work_duration_minutes = EXCLUDED.work_duration_minutes,
			is_corrected = FALSE,
			correction_reason = NULL,
			corrected_by = NULL,
			corrected_at = NULL,
			updated_at = NOW()
		RETURNING ` + attendanceColumns

	saved, err := scanAttendance(q.QueryRow(ctx, query,
		id,
		att.EmployeeID,
		att.Date,
		att.Status,
		att.EntryTime,
		att.ExitTime,
		att.WorkDurationMinutes,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23503": // foreign_key_violation
				return attendance.Attendance{}, employee.ErrEmployeeNotFound
			}
		}
		return attendance.Attendance{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return saved, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	if !validID(att.ID) {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances SET
			status = $2,
			entry_time = $3,
			exit_time = $4,
			work_duration_minutes = $5,
			is_corrected = $6,
			correction_reason = $7,
			corrected_by = $8,
			corrected_at = $9,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + attendanceColumns

	updated, err := scanAttendance(q.QueryRow(ctx, query,
		att.ID,
		att.Status,
		att.EntryTime,
		att.ExitTime,
		att.WorkDurationMinutes,
		att.IsCorrected,
		att.CorrectionReason,
		att.CorrectedBy,
		att.CorrectedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance with id %s: %w", att.ID, err)
	}

	return updated, nil
}
