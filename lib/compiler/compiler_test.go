package compiler

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"leave-tools-backend/lib/gate"
	leavestore "leave-tools-backend/lib/leave/store"
	"leave-tools-backend/lib/utils/lock"
	"leave-tools-backend/lib/workbook"
	"leave-tools-backend/models"
	dbmodels "leave-tools-backend/models/db"
)

var unlocked = gate.Session{ID: "admin", Unlocked: true}

type fixture struct {
	dir      string
	path     string
	store    leavestore.Provider
	compiler impl
}

func newFixture(t *testing.T, backup bool) fixture {
	dir := t.TempDir()
	path := filepath.Join(dir, "Rota.xlsx")
	require.NoError(t, workbook.CreateTemplate(path, "Leave", "Consultants"))
	store, err := leavestore.NewInstance(filepath.Join(dir, "requests"))
	require.NoError(t, err)
	c := New(store, Options{WorkbookPath: path, Sheet: "Leave", Backup: backup, UseLockFile: true}, Deps{}).(impl)
	c.now = func() time.Time { return time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC) }
	return fixture{dir: dir, path: path, store: store, compiler: c}
}

// sheetState returns the raw rows of the leave sheet.
func (fx fixture) sheetState(t *testing.T) [][]string {
	f, err := workbook.Open(fx.path)
	require.NoError(t, err)
	defer workbook.Close(f)
	rows, err := f.GetRows("Leave")
	require.NoError(t, err)
	return rows
}

func (fx fixture) cell(t *testing.T, axis string) string {
	f, err := workbook.Open(fx.path)
	require.NoError(t, err)
	defer workbook.Close(f)
	value, err := f.GetCellValue("Leave", axis)
	require.NoError(t, err)
	return value
}

func leave(id, name, start, end string) models.LeaveRequest {
	return models.LeaveRequest{
		RequestID: id,
		Name:      name,
		StartDate: start,
		EndDate:   end,
		LeaveType: models.LeaveTypeAnnual,
		CreatedAt: "2024-01-01T09:00:00Z",
		UpdatedAt: "2024-01-01T09:00:00Z",
	}
}

func TestCompile(t *testing.T) {
	ctx := context.TODO()

	t.Run(`R1 add, approve, delete scenario`, func(t *testing.T) {
		fx := newFixture(t, false)
		r1 := leave("R1", "Dr Smith", "2024-01-01", "2024-01-05")
		require.NoError(t, fx.store.Create(r1))

		result, err := fx.compiler.Compile(ctx, unlocked)
		require.NoError(t, err)
		require.Equal(t, 1, result.Total)
		require.Equal(t, 1, result.Appended)
		require.Equal(t, "Dr Smith", fx.cell(t, "A2"))
		require.Equal(t, "2024-01-01", fx.cell(t, "B2"))
		require.Equal(t, "2024-01-05", fx.cell(t, "C2"))
		require.Equal(t, "Annual", fx.cell(t, "D2"))
		require.Equal(t, "FALSE", fx.cell(t, "E2"))
		require.Equal(t, "R1", fx.cell(t, "G2"))

		r1.Approved = true
		r1.UpdatedAt = "2024-01-02T10:00:00Z"
		require.NoError(t, fx.store.Update(r1))
		result, err = fx.compiler.Compile(ctx, unlocked)
		require.NoError(t, err)
		require.Equal(t, 1, result.Updated)
		require.Equal(t, 0, result.Appended)
		require.Equal(t, "TRUE", fx.cell(t, "E2"))
		require.Equal(t, "2024-01-02T10:00:00Z", fx.cell(t, "I2"))

		require.NoError(t, fx.store.Delete("R1"))
		result, err = fx.compiler.Compile(ctx, unlocked)
		require.NoError(t, err)
		require.Equal(t, 1, result.Cleared)
		for _, axis := range []string{"A2", "B2", "C2", "D2", "E2", "F2", "H2", "I2"} {
			require.Empty(t, fx.cell(t, axis), axis)
		}
		require.Equal(t, "R1", fx.cell(t, "G2"))
	})

	t.Run(`delete does not renumber other rows`, func(t *testing.T) {
		fx := newFixture(t, false)
		require.NoError(t, fx.store.Create(leave("a", "Dr A", "2024-01-01", "2024-01-02")))
		require.NoError(t, fx.store.Create(leave("b", "Dr B", "2024-02-01", "2024-02-02")))
		require.NoError(t, fx.store.Create(leave("c", "Dr C", "2024-03-01", "2024-03-02")))
		_, err := fx.compiler.Compile(ctx, unlocked)
		require.NoError(t, err)
		require.Equal(t, "b", fx.cell(t, "G3"))
		require.Equal(t, "c", fx.cell(t, "G4"))

		require.NoError(t, fx.store.Delete("b"))
		require.NoError(t, fx.store.Create(leave("d", "Dr D", "2024-01-15", "2024-01-16")))
		_, err = fx.compiler.Compile(ctx, unlocked)
		require.NoError(t, err)
		require.Equal(t, "Dr A", fx.cell(t, "A2"))
		require.Empty(t, fx.cell(t, "A3"))
		require.Equal(t, "Dr C", fx.cell(t, "A4"))
		require.Equal(t, "Dr D", fx.cell(t, "A5"))
		require.Equal(t, "d", fx.cell(t, "G5"))
	})

	t.Run(`compile is idempotent`, func(t *testing.T) {
		fx := newFixture(t, false)
		require.NoError(t, fx.store.Create(leave("a", "Dr A", "2024-01-01", "2024-01-02")))
		require.NoError(t, fx.store.Create(leave("b", "Dr B", "2024-02-01", "2024-02-02")))
		_, err := fx.compiler.Compile(ctx, unlocked)
		require.NoError(t, err)
		require.NoError(t, fx.store.Delete("a"))
		_, err = fx.compiler.Compile(ctx, unlocked)
		require.NoError(t, err)
		first := fx.sheetState(t)

		result, err := fx.compiler.Compile(ctx, unlocked)
		require.NoError(t, err)
		require.Equal(t, 0, result.Cleared)
		require.Equal(t, first, fx.sheetState(t))
	})

	t.Run(`hand entered rows are left alone`, func(t *testing.T) {
		fx := newFixture(t, false)
		f, err := workbook.Open(fx.path)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Leave", "A2", &[]interface{}{"Dr Manual", "2024-05-01", "2024-05-03", "Study", true}))
		require.NoError(t, workbook.Save(f, fx.path))
		workbook.Close(f)

		require.NoError(t, fx.store.Create(leave("a", "Dr A", "2024-01-01", "2024-01-02")))
		_, err = fx.compiler.Compile(ctx, unlocked)
		require.NoError(t, err)
		require.Equal(t, "Dr Manual", fx.cell(t, "A2"))
		require.Equal(t, "Dr A", fx.cell(t, "A3"))
	})

	t.Run(`legacy rows can be replaced on request`, func(t *testing.T) {
		fx := newFixture(t, false)
		fx.compiler.opts.ReplaceLegacyRows = true
		f, err := workbook.Open(fx.path)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Leave", "A2", &[]interface{}{"Dr A", "2024-01-01", "2024-01-02", "Annual", true}))
		require.NoError(t, workbook.Save(f, fx.path))
		workbook.Close(f)

		require.NoError(t, fx.store.Create(leave("a", "Dr A", "2024-01-01", "2024-01-02")))
		result, err := fx.compiler.Compile(ctx, unlocked)
		require.NoError(t, err)
		require.Equal(t, 1, result.Appended)
		require.Equal(t, 1, result.Cleared)
		require.Empty(t, fx.cell(t, "A2"))
		require.Equal(t, "Dr A", fx.cell(t, "A3"))

		// the cleared row is blank now, so a second run has nothing to replace
		result, err = fx.compiler.Compile(ctx, unlocked)
		require.NoError(t, err)
		require.Equal(t, 1, result.Updated)
		require.Equal(t, 0, result.Cleared)
	})

	t.Run(`locked session is refused`, func(t *testing.T) {
		fx := newFixture(t, false)
		before, err := os.ReadFile(fx.path)
		require.NoError(t, err)
		_, err = fx.compiler.Compile(ctx, gate.Session{ID: "user"})
		require.True(t, errors.Is(err, gate.ErrLocked))
		after, err := os.ReadFile(fx.path)
		require.NoError(t, err)
		require.Equal(t, before, after)
	})

	t.Run(`backup is written next to the workbook`, func(t *testing.T) {
		fx := newFixture(t, true)
		before, err := os.ReadFile(fx.path)
		require.NoError(t, err)
		require.NoError(t, fx.store.Create(leave("a", "Dr A", "2024-01-01", "2024-01-02")))
		result, err := fx.compiler.Compile(ctx, unlocked)
		require.NoError(t, err)
		require.Equal(t, filepath.Join(fx.dir, "Rota_backup_20240110_120000.xlsx"), result.BackupPath)
		backup, err := os.ReadFile(result.BackupPath)
		require.NoError(t, err)
		require.Equal(t, before, backup)
	})

	t.Run(`backup failure aborts without touching the workbook`, func(t *testing.T) {
		fx := newFixture(t, true)
		require.NoError(t, fx.store.Create(leave("a", "Dr A", "2024-01-01", "2024-01-02")))
		fx.compiler.deps.BackupStorage = failingStorage{}
		before, err := os.ReadFile(fx.path)
		require.NoError(t, err)
		_, err = fx.compiler.Compile(ctx, unlocked)
		require.Error(t, err)
		after, err := os.ReadFile(fx.path)
		require.NoError(t, err)
		require.Equal(t, before, after)
	})

	t.Run(`held lock aborts`, func(t *testing.T) {
		fx := newFixture(t, false)
		held, err := lock.AcquireFile(fx.path)
		require.NoError(t, err)
		defer held.Release()
		_, err = fx.compiler.Compile(ctx, unlocked)
		require.True(t, errors.Is(err, lock.ErrLocked))
	})

	t.Run(`missing workbook or sheet`, func(t *testing.T) {
		fx := newFixture(t, false)
		fx.compiler.opts.Sheet = "Other"
		_, err := fx.compiler.Compile(ctx, unlocked)
		require.True(t, errors.Is(err, workbook.ErrSheetNotFound))

		fx.compiler.opts.WorkbookPath = filepath.Join(fx.dir, "missing.xlsx")
		_, err = fx.compiler.Compile(ctx, unlocked)
		require.True(t, errors.Is(err, workbook.ErrWorkbookNotFound))
	})

	t.Run(`runs are recorded`, func(t *testing.T) {
		fx := newFixture(t, false)
		history := &memoryHistory{}
		fx.compiler.deps.History = history
		_, err := fx.compiler.Compile(ctx, unlocked)
		require.NoError(t, err)
		fx.compiler.opts.Sheet = "Other"
		_, err = fx.compiler.Compile(ctx, unlocked)
		require.Error(t, err)

		list, err := fx.compiler.History(0)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, dbmodels.CompileStatusSuccess, list[0].Status)
		require.Equal(t, dbmodels.CompileStatusFail, list[1].Status)
	})
}

type failingStorage struct{}

func (failingStorage) UploadBackup(ctx context.Context, path string) (string, error) {
	return "", errors.New("s3 unavailable")
}

func (failingStorage) MakeBucket(ctx context.Context) error {
	return nil
}

type memoryHistory struct {
	list []dbmodels.CompileRun
}

func (m *memoryHistory) Save(rec dbmodels.CompileRun) error {
	m.list = append(m.list, rec)
	return nil
}

func (m *memoryHistory) List(limit int) ([]dbmodels.CompileRun, error) {
	return m.list, nil
}
