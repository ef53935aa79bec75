package leavestore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"leave-tools-backend/models"
)

var (
	ErrNotFound      = errors.New("leave request not found")
	ErrAlreadyExists = errors.New("leave request already exists")
	ErrInvalidID     = errors.New("invalid leave request id")
)

// Provider is the request store contract shared by every backend.
// ReadAll gives no ordering guarantee.
type Provider interface {
	Create(rec models.LeaveRequest) error
	ReadAll() ([]models.LeaveRequest, error)
	Get(id string) (*models.LeaveRequest, error)
	Update(rec models.LeaveRequest) error
	Delete(id string) error
}

// NewInstance returns a store keeping one JSON file per request in dir.
func NewInstance(dir string) (Provider, error) {
	if dir == "" {
		return nil, errors.New("leave requests directory is not configured")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "unable to create leave requests directory")
	}
	return &impl{dir: dir}, nil
}

type impl struct {
	dir string
}

func (i impl) Create(rec models.LeaveRequest) error {
	path, err := i.filePath(rec.RequestID)
	if err != nil {
		return err
	}
	data, err := marshal(rec)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return ErrAlreadyExists
		}
		return errors.Wrap(err, "unable to create leave request file")
	}
	_, err = f.Write(data)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return errors.Wrap(err, "unable to write leave request file")
	}
	return nil
}

func (i impl) ReadAll() ([]models.LeaveRequest, error) {
	paths, err := filepath.Glob(filepath.Join(i.dir, "*.json"))
	if err != nil {
		return nil, errors.Wrap(err, "unable to list leave requests")
	}
	result := make([]models.LeaveRequest, 0, len(paths))
	for _, path := range paths {
		rec, err := readFile(path)
		if err != nil {
			log.WithError(err).WithField("path", path).Warn("skipping unreadable leave request file")
			continue
		}
		result = append(result, *rec)
	}
	return result, nil
}

func (i impl) Get(id string) (*models.LeaveRequest, error) {
	path, err := i.filePath(id)
	if err != nil {
		return nil, err
	}
	rec, err := readFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) Update(rec models.LeaveRequest) error {
	path, err := i.filePath(rec.RequestID)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return errors.Wrap(err, "unable to access leave request file")
	}
	data, err := marshal(rec)
	if err != nil {
		return err
	}
	return writeFileReplace(path, data)
}

func (i impl) Delete(id string) error {
	path, err := i.filePath(id)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return errors.Wrap(err, "unable to delete leave request file")
	}
	return nil
}

func (i impl) filePath(id string) (string, error) {
	if id == "" || id != filepath.Base(id) || strings.HasPrefix(id, ".") {
		return "", ErrInvalidID
	}
	return filepath.Join(i.dir, id+".json"), nil
}

func readFile(path string) (*models.LeaveRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read leave request file")
	}
	rec := models.LeaveRequest{}
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, errors.Wrap(err, "unable to parse leave request file")
	}
	if rec.RequestID == "" {
		rec.RequestID = strings.TrimSuffix(filepath.Base(path), ".json")
	}
	return &rec, nil
}

func marshal(rec models.LeaveRequest) ([]byte, error) {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "unable to encode leave request")
	}
	return data, nil
}

// writeFileReplace writes to a sibling temp file and renames it over path,
// so a failed write keeps the previous content.
func writeFileReplace(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "unable to create temp file")
	}
	tmpName := tmp.Name()
	_, err = tmp.Write(data)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmpName)
		return errors.Wrap(err, "unable to write leave request file")
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return errors.Wrap(err, "unable to replace leave request file")
	}
	return nil
}
