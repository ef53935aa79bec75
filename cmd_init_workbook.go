package main

import (
	"github.com/spf13/cobra"
	"leave-tools-backend/config"
	"leave-tools-backend/lib/workbook"
)

func newInitWorkbookCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "init-workbook",
		Short: "Create an empty rota workbook with the leave and consultants sheets",
		RunE: func(cmd *cobra.Command, args []string) error {
			config.InitConfig()
			if path == "" {
				path = config.Conf.Leave.WorkbookPath
			}
			path = config.ExpandHome(path)
			if err := workbook.CreateTemplate(path, config.Conf.Leave.SheetName, config.Conf.Leave.ConsultantsSheet); err != nil {
				return err
			}
			return writeJSON(map[string]string{"workbook": path})
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Workbook to create (defaults to leave.workbookpath)")
	return cmd
}
