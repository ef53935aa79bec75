package dbmodels

type CompileStatus string

const (
	CompileStatusSuccess CompileStatus = "success"
	CompileStatusFail    CompileStatus = "fail"
)

// CompileRun is one compile attempt, kept for the admin audit trail.
type CompileRun struct {
	BaseModel
	SessionID    string        `gorm:"type:varchar(64);index" json:"session_id"`
	WorkbookPath string        `gorm:"type:text" json:"workbook_path"`
	Status       CompileStatus `gorm:"type:varchar(16)" json:"status"`
	Error        string        `gorm:"type:text" json:"error,omitempty"`
	Total        int           `json:"total"`
	Updated      int           `json:"updated"`
	Appended     int           `json:"appended"`
	Cleared      int           `json:"cleared"`
	BackupPath   string        `gorm:"type:text" json:"backup_path,omitempty"`
}
