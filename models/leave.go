package models

import (
	"strings"
	"time"
)

type LeaveType string

const (
	LeaveTypeAnnual LeaveType = "Annual"
	LeaveTypeStudy  LeaveType = "Study"
	LeaveTypeNOC    LeaveType = "NOC"
)

var LeaveTypes = []LeaveType{LeaveTypeAnnual, LeaveTypeStudy, LeaveTypeNOC}

// NormalizeLeaveType maps any casing of a known type to its canonical spelling.
// Unknown values come back trimmed but otherwise unchanged.
func NormalizeLeaveType(value string) LeaveType {
	value = strings.TrimSpace(value)
	for _, t := range LeaveTypes {
		if strings.EqualFold(value, string(t)) {
			return t
		}
	}
	return LeaveType(value)
}

func (t LeaveType) IsValid() bool {
	for _, known := range LeaveTypes {
		if t == known {
			return true
		}
	}
	return false
}

const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02T15:04:05Z"
)

// LeaveRequest is the record kept in the request store, one file per request.
type LeaveRequest struct {
	RequestID string    `json:"request_id"`
	Name      string    `json:"name"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	LeaveType LeaveType `json:"leave_type"`
	Approved  bool      `json:"approved"`
	Notes     string    `json:"notes"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

func (r LeaveRequest) Start() (time.Time, error) {
	return time.Parse(DateLayout, r.StartDate)
}

func (r LeaveRequest) End() (time.Time, error) {
	return time.Parse(DateLayout, r.EndDate)
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(TimestampLayout)
}
