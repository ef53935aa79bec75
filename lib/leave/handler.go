package leavehandler

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	leavestore "leave-tools-backend/lib/leave/store"
	initchecker "leave-tools-backend/lib/utils/init-checker"
	"leave-tools-backend/models"
	leaveapimodels "leave-tools-backend/models/api/leave"
)

// ValidationError is a user-correctable problem with submitted data.
type ValidationError struct {
	msg string
}

func (e ValidationError) Error() string {
	return e.msg
}

func IsValidation(err error) bool {
	var vErr ValidationError
	return errors.As(err, &vErr)
}

// RosterFunc returns the names allowed in strict mode; an empty roster disables the check.
type RosterFunc func() ([]string, error)

type Provider interface {
	Create(data leaveapimodels.LeaveData) (leaveapimodels.LeaveView, error)
	Get(id string) (leaveapimodels.LeaveView, error)
	// Update replaces every editable field; an omitted approved keeps the stored value.
	Update(id string, data leaveapimodels.LeaveData) (leaveapimodels.LeaveView, error)
	Delete(id string) error
	List(filter leaveapimodels.LeaveFilter) ([]leaveapimodels.LeaveView, error)
	Records(filter leaveapimodels.LeaveFilter) ([]models.LeaveRequest, error)
}

var Instance Provider

func NewHandler(store leavestore.Provider, strictNames bool, roster RosterFunc) {
	Instance = New(store, strictNames, roster)
}

func New(store leavestore.Provider, strictNames bool, roster RosterFunc) Provider {
	instance := impl{
		store:       store,
		strictNames: strictNames,
		roster:      roster,
		now:         time.Now,
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	return instance
}

type impl struct {
	store       leavestore.Provider
	strictNames bool
	roster      RosterFunc
	now         func() time.Time
}

func (i impl) Create(data leaveapimodels.LeaveData) (leaveapimodels.LeaveView, error) {
	if err := i.validate(&data); err != nil {
		return leaveapimodels.LeaveView{}, err
	}
	ts := models.FormatTimestamp(i.now())
	rec := models.LeaveRequest{
		RequestID: uuid.NewString(),
		Name:      data.Name,
		StartDate: data.StartDate,
		EndDate:   data.EndDate,
		LeaveType: models.LeaveType(data.LeaveType),
		Approved:  data.IsApproved(),
		Notes:     data.Notes,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	if err := i.store.Create(rec); err != nil {
		return leaveapimodels.LeaveView{}, err
	}
	log.WithFields(log.Fields{
		"request_id": rec.RequestID,
		"name":       rec.Name,
		"start_date": rec.StartDate,
		"end_date":   rec.EndDate,
	}).Info("leave request created")
	return leaveapimodels.LeaveConvert(rec), nil
}

func (i impl) Get(id string) (leaveapimodels.LeaveView, error) {
	rec, err := i.store.Get(id)
	if err != nil {
		return leaveapimodels.LeaveView{}, err
	}
	return leaveapimodels.LeaveConvert(*rec), nil
}

func (i impl) Update(id string, data leaveapimodels.LeaveData) (leaveapimodels.LeaveView, error) {
	if err := i.validate(&data); err != nil {
		return leaveapimodels.LeaveView{}, err
	}
	rec, err := i.store.Get(id)
	if err != nil {
		return leaveapimodels.LeaveView{}, err
	}
	rec.Name = data.Name
	rec.StartDate = data.StartDate
	rec.EndDate = data.EndDate
	rec.LeaveType = models.LeaveType(data.LeaveType)
	if data.Approved != nil {
		rec.Approved = *data.Approved
	}
	rec.Notes = data.Notes
	rec.UpdatedAt = models.FormatTimestamp(i.now())
	if err := i.store.Update(*rec); err != nil {
		return leaveapimodels.LeaveView{}, err
	}
	log.WithField("request_id", id).Info("leave request updated")
	return leaveapimodels.LeaveConvert(*rec), nil
}

func (i impl) Delete(id string) error {
	if err := i.store.Delete(id); err != nil {
		return err
	}
	log.WithField("request_id", id).Info("leave request deleted")
	return nil
}

func (i impl) List(filter leaveapimodels.LeaveFilter) ([]leaveapimodels.LeaveView, error) {
	list, err := i.Records(filter)
	if err != nil {
		return nil, err
	}
	result := make([]leaveapimodels.LeaveView, 0, len(list))
	for _, rec := range list {
		result = append(result, leaveapimodels.LeaveConvert(rec))
	}
	return result, nil
}

func (i impl) Records(filter leaveapimodels.LeaveFilter) ([]models.LeaveRequest, error) {
	if err := filter.Validate(); err != nil {
		return nil, ValidationError{msg: err.Error()}
	}
	list, err := i.store.ReadAll()
	if err != nil {
		return nil, err
	}
	result := make([]models.LeaveRequest, 0, len(list))
	for _, rec := range list {
		if filter.Match(rec) {
			result = append(result, rec)
		}
	}
	SortRecords(result)
	return result, nil
}

// SortRecords orders by start date, then name, then id.
func SortRecords(list []models.LeaveRequest) {
	sort.SliceStable(list, func(a, b int) bool {
		if list[a].StartDate != list[b].StartDate {
			return list[a].StartDate < list[b].StartDate
		}
		if list[a].Name != list[b].Name {
			return list[a].Name < list[b].Name
		}
		return list[a].RequestID < list[b].RequestID
	})
}

func (i impl) validate(data *leaveapimodels.LeaveData) error {
	if err := data.Validate(); err != nil {
		return ValidationError{msg: err.Error()}
	}
	if !i.strictNames || i.roster == nil {
		return nil
	}
	names, err := i.roster()
	if err != nil {
		log.WithError(err).Warn("unable to read consultants roster, name check skipped")
		return nil
	}
	if len(names) == 0 {
		return nil
	}
	for _, name := range names {
		if name == data.Name {
			return nil
		}
	}
	return ValidationError{msg: "unknown consultant " + data.Name}
}
