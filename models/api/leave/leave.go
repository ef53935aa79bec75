package leaveapimodels

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"leave-tools-backend/models"
)

var validate = validator.New()

type LeaveData struct {
	Name      string `json:"name" validate:"required"`                          // Consultant name
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"` // YYYY-MM-DD
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`   // YYYY-MM-DD
	LeaveType string `json:"leave_type" validate:"required"`                     // Annual, Study, NOC
	Approved  *bool  `json:"approved"`                                           // defaults to true
	Notes     string `json:"notes"`
}

func (r *LeaveData) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Notes = strings.TrimSpace(r.Notes)
	r.StartDate = strings.TrimSpace(r.StartDate)
	r.EndDate = strings.TrimSpace(r.EndDate)
	r.LeaveType = string(models.NormalizeLeaveType(r.LeaveType))
}

func (r *LeaveData) Validate() error {
	r.Normalize()
	if err := validate.Struct(r); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) && len(vErrs) != 0 {
			return fieldError(vErrs[0])
		}
		return errors.Wrap(err, "invalid request")
	}
	if !models.LeaveType(r.LeaveType).IsValid() {
		return errors.Errorf("unknown leave type %q", r.LeaveType)
	}
	start, _ := time.Parse(models.DateLayout, r.StartDate)
	end, _ := time.Parse(models.DateLayout, r.EndDate)
	if end.Before(start) {
		return errors.New("date to cannot be earlier than date from")
	}
	return nil
}

func (r LeaveData) IsApproved() bool {
	if r.Approved == nil {
		return true
	}
	return *r.Approved
}

func fieldError(fe validator.FieldError) error {
	field := map[string]string{
		"Name":      "consultant name",
		"StartDate": "date from",
		"EndDate":   "date to",
		"LeaveType": "leave type",
	}[fe.Field()]
	if field == "" {
		field = fe.Field()
	}
	switch fe.Tag() {
	case "required":
		return errors.Errorf("%s is required", field)
	case "datetime":
		return errors.Errorf("%s must be a date in YYYY-MM-DD format", field)
	}
	return errors.Errorf("%s is invalid", field)
}

type LeaveView struct {
	LeaveData
	RequestID string `json:"request_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func LeaveConvert(rec models.LeaveRequest) LeaveView {
	approved := rec.Approved
	return LeaveView{
		LeaveData: LeaveData{
			Name:      rec.Name,
			StartDate: rec.StartDate,
			EndDate:   rec.EndDate,
			LeaveType: string(rec.LeaveType),
			Approved:  &approved,
			Notes:     rec.Notes,
		},
		RequestID: rec.RequestID,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}
