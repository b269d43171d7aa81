package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"shift-payroll/internal/domain"
	"shift-payroll/pkg/calendar"
)

const (
	insertShiftSQL     = `INSERT INTO shifts (date, shift, hours, salary, user_type) VALUES (?, ?, ?, ?, ?)`
	selectShiftsSQL    = `SELECT id, date, shift, hours, salary, user_type FROM shifts WHERE date BETWEEN ? AND ? ORDER BY date, id`
	deleteAllShiftsSQL = `DELETE FROM shifts`
)

type SqliteShiftRepo struct {
	db *sql.DB
}

func NewSqliteShiftRepo(db *sql.DB) *SqliteShiftRepo {
	return &SqliteShiftRepo{db: db}
}

func (r *SqliteShiftRepo) AddShift(ctx context.Context, shift domain.ShiftRecord) error {
	_, err := r.db.ExecContext(ctx, insertShiftSQL,
		calendar.FormatDate(shift.Date),
		string(shift.Shift),
		shift.Hours,
		shift.Salary,
		string(shift.EmployeeType),
	)
	if err != nil {
		return fmt.Errorf("insert shift: %w", err)
	}
	return nil
}

// GetShifts returns the shifts dated within [from, to], oldest first.
func (r *SqliteShiftRepo) GetShifts(ctx context.Context, from, to time.Time) ([]domain.ShiftRecord, error) {
	rows, err := r.db.QueryContext(ctx, selectShiftsSQL, calendar.FormatDate(from), calendar.FormatDate(to))
	if err != nil {
		return nil, fmt.Errorf("query shifts: %w", err)
	}
	defer rows.Close()

	var shifts []domain.ShiftRecord
	for rows.Next() {
		var s domain.ShiftRecord
		var dateStr, code, userType string
		if err := rows.Scan(&s.ID, &dateStr, &code, &s.Hours, &s.Salary, &userType); err != nil {
			return nil, fmt.Errorf("scan shift: %w", err)
		}
		s.Date, err = calendar.ParseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("shift %d has bad date %q: %w", s.ID, dateStr, err)
		}
		s.Shift = domain.ShiftCode(code)
		s.EmployeeType = domain.EmployeeType(userType)
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shifts: %w", err)
	}
	return shifts, nil
}

func (r *SqliteShiftRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, deleteAllShiftsSQL); err != nil {
		return fmt.Errorf("delete shifts: %w", err)
	}
	return nil
}
