package members

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// ErrMissingFields is returned when the two mandatory columns are empty.
var ErrMissingFields = errors.New("Name and MC Name are required")

// Record carries one mc_members row. Everything is kept as strings because the
// legacy table stores flags and dates that way.
type Record struct {
	Name      string
	Email     string
	Phone     string
	IsActive  string
	JoinDate  string
	Gender    string
	MCName    string
	DOB       string
	DLMMember string
}

// Add inserts one row into mc_members with a raw statement and returns the new
// id. Defaults mirror the legacy intake form: active, joined today, gender
// "Other", not a DLM member.
func Add(ctx context.Context, gdb *gorm.DB, rec Record) (int64, error) {
	if rec.Name == "" || rec.MCName == "" {
		return 0, ErrMissingFields
	}

	if rec.IsActive == "" {
		rec.IsActive = "1"
	}
	if rec.JoinDate == "" {
		rec.JoinDate = time.Now().Format("2006-01-02")
	}
	// ISO datetimes are truncated to the date part.
	if i := strings.Index(rec.JoinDate, "T"); i >= 0 {
		rec.JoinDate = rec.JoinDate[:i]
	}
	if rec.Gender == "" {
		rec.Gender = "Other"
	}
	if rec.DLMMember == "" {
		rec.DLMMember = "0"
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return 0, err
	}
	res, err := sqlDB.ExecContext(ctx,
		"INSERT INTO mc_members (name, email, phone, isActive, joinDate, gender, mcName, dob, dlm_member) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		rec.Name, rec.Email, rec.Phone, rec.IsActive, rec.JoinDate, rec.Gender, rec.MCName, rec.DOB, rec.DLMMember,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
