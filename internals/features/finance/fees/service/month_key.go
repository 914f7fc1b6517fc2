package service

import (
	"fmt"
	"time"
)

// Kunci bulan dipakai di kolom student_due_month: 'YYYY-MM', zero-padded,
// sehingga perbandingan leksikografis == perbandingan kronologis.
const monthKeyLayout = "2006-01"

// tanggal jatuh tempo: tanggal 15 di bulan target (konvensi sistem)
const dueDayOfMonth = 15

func ParseMonthKey(s string) (time.Time, error) {
	t, err := time.Parse(monthKeyLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("month_year harus berformat YYYY-MM: %w", err)
	}
	return t, nil
}

func MonthKeyOf(t time.Time) string {
	return t.Format(monthKeyLayout)
}

// DueDateFor mengembalikan tanggal 15 dari bulan target.
func DueDateFor(monthKey string) (time.Time, error) {
	first, err := ParseMonthKey(monthKey)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(first.Year(), first.Month(), dueDayOfMonth, 0, 0, 0, 0, time.UTC), nil
}
