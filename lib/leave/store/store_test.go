package leavestore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"leave-tools-backend/models"
)

func sampleRec(id string) models.LeaveRequest {
	return models.LeaveRequest{
		RequestID: id,
		Name:      "Dr Smith",
		StartDate: "2024-01-01",
		EndDate:   "2024-01-05",
		LeaveType: models.LeaveTypeAnnual,
		Approved:  false,
		Notes:     "ski trip",
		CreatedAt: "2024-01-01T09:00:00Z",
		UpdatedAt: "2024-01-01T09:00:00Z",
	}
}

func TestStore(t *testing.T) {
	t.Run(`create then read all round trip`, func(t *testing.T) {
		dir := t.TempDir()
		s, err := NewInstance(dir)
		require.NoError(t, err)
		rec := sampleRec("r1")
		require.NoError(t, s.Create(rec))

		list, err := s.ReadAll()
		require.NoError(t, err)
		require.Equal(t, []models.LeaveRequest{rec}, list)

		_, err = os.Stat(filepath.Join(dir, "r1.json"))
		require.NoError(t, err)
	})

	t.Run(`create collision`, func(t *testing.T) {
		s, err := NewInstance(t.TempDir())
		require.NoError(t, err)
		require.NoError(t, s.Create(sampleRec("r1")))
		err = s.Create(sampleRec("r1"))
		require.True(t, errors.Is(err, ErrAlreadyExists))
	})

	t.Run(`update only touches the target`, func(t *testing.T) {
		s, err := NewInstance(t.TempDir())
		require.NoError(t, err)
		r1, r2 := sampleRec("r1"), sampleRec("r2")
		require.NoError(t, s.Create(r1))
		require.NoError(t, s.Create(r2))

		r1.Approved = true
		r1.UpdatedAt = "2024-01-02T10:00:00Z"
		require.NoError(t, s.Update(r1))

		got1, err := s.Get("r1")
		require.NoError(t, err)
		require.Equal(t, r1, *got1)
		got2, err := s.Get("r2")
		require.NoError(t, err)
		require.Equal(t, r2, *got2)
	})

	t.Run(`not found`, func(t *testing.T) {
		s, err := NewInstance(t.TempDir())
		require.NoError(t, err)
		require.True(t, errors.Is(s.Update(sampleRec("missing")), ErrNotFound))
		require.True(t, errors.Is(s.Delete("missing"), ErrNotFound))
		_, err = s.Get("missing")
		require.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run(`delete`, func(t *testing.T) {
		s, err := NewInstance(t.TempDir())
		require.NoError(t, err)
		require.NoError(t, s.Create(sampleRec("r1")))
		require.NoError(t, s.Delete("r1"))
		list, err := s.ReadAll()
		require.NoError(t, err)
		require.Empty(t, list)
	})

	t.Run(`corrupt files are skipped`, func(t *testing.T) {
		dir := t.TempDir()
		s, err := NewInstance(dir)
		require.NoError(t, err)
		require.NoError(t, s.Create(sampleRec("r1")))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0o644))
		list, err := s.ReadAll()
		require.NoError(t, err)
		require.Len(t, list, 1)
	})

	t.Run(`path like ids are rejected`, func(t *testing.T) {
		s, err := NewInstance(t.TempDir())
		require.NoError(t, err)
		require.True(t, errors.Is(s.Create(sampleRec("../r1")), ErrInvalidID))
		require.True(t, errors.Is(s.Delete(""), ErrInvalidID))
	})
}
