package compileapimodels

type CompileResult struct {
	Total      int    `json:"total"`       // records read from the store
	Updated    int    `json:"updated"`     // rows rewritten in place
	Appended   int    `json:"appended"`    // rows added at the end of the sheet
	Cleared    int    `json:"cleared"`     // rows blanked for deleted requests
	BackupPath string `json:"backup_path"` // empty when backup is disabled
}
