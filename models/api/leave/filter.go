package leaveapimodels

import (
	"strings"

	"github.com/pkg/errors"
	"leave-tools-backend/models"
)

type ApprovalFilter string

const (
	ApprovalAll         ApprovalFilter = "all"
	ApprovalApproved    ApprovalFilter = "approved"
	ApprovalNotApproved ApprovalFilter = "not_approved"
)

type LeaveFilter struct {
	Name      string         `query:"name"`      // exact consultant name
	LeaveType string         `query:"leave_type"` // case-insensitive
	Approval  ApprovalFilter `query:"approval"`  // all, approved, not_approved
	Search    string         `query:"search"`    // substring of name or notes
}

func (f LeaveFilter) Validate() error {
	switch f.Approval {
	case "", ApprovalAll, ApprovalApproved, ApprovalNotApproved:
		return nil
	}
	return errors.Errorf("unknown approval filter %q", f.Approval)
}

func (f LeaveFilter) Match(rec models.LeaveRequest) bool {
	if f.Name != "" && rec.Name != f.Name {
		return false
	}
	if f.LeaveType != "" && !strings.EqualFold(string(rec.LeaveType), strings.TrimSpace(f.LeaveType)) {
		return false
	}
	switch f.Approval {
	case ApprovalApproved:
		if !rec.Approved {
			return false
		}
	case ApprovalNotApproved:
		if rec.Approved {
			return false
		}
	}
	if s := strings.ToLower(strings.TrimSpace(f.Search)); s != "" {
		if !strings.Contains(strings.ToLower(rec.Name), s) && !strings.Contains(strings.ToLower(rec.Notes), s) {
			return false
		}
	}
	return true
}
