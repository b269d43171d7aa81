package domain

import (
	"context"
	"time"
)

type ShiftRepo interface {
	AddShift(ctx context.Context, shift ShiftRecord) error
	GetShifts(ctx context.Context, from, to time.Time) ([]ShiftRecord, error)
	DeleteAll(ctx context.Context) error
}
