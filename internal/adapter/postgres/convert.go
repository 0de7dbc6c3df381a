package postgres

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
)

// Conversions between domain value types and pgtype for DATE and TIME columns.

func Date(d domain.Date) pgtype.Date {
	return pgtype.Date{Time: d.Time(), Valid: true}
}

func NullDate(d *domain.Date) pgtype.Date {
	if d == nil {
		return pgtype.Date{}
	}
	return Date(*d)
}

func ToDate(v pgtype.Date) domain.Date {
	return domain.DateOf(v.Time)
}

func ToDatePtr(v pgtype.Date) *domain.Date {
	if !v.Valid {
		return nil
	}
	d := ToDate(v)
	return &d
}

const microsPerMinute = int64(time.Minute / time.Microsecond)

func Time(c domain.Clock) pgtype.Time {
	return pgtype.Time{Microseconds: int64(c) * microsPerMinute, Valid: true}
}

func NullTime(c *domain.Clock) pgtype.Time {
	if c == nil {
		return pgtype.Time{}
	}
	return Time(*c)
}

func ToClock(v pgtype.Time) domain.Clock {
	return domain.Clock(v.Microseconds / microsPerMinute)
}

func ToClockPtr(v pgtype.Time) *domain.Clock {
	if !v.Valid {
		return nil
	}
	c := ToClock(v)
	return &c
}
