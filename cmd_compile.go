package main

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"leave-tools-backend/config"
	"leave-tools-backend/initializers"
	"leave-tools-backend/lib/compiler"
	"leave-tools-backend/lib/gate"
)

func newCompileCmd() *cobra.Command {
	var (
		password      string
		replaceLegacy bool
	)

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile stored leave requests into the workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				password = os.Getenv("LEAVE_COMPILE_PASSWORD")
			}
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			config.InitConfig()
			if replaceLegacy {
				*config.Conf.Leave.ReplaceLegacyRows = true
			}
			initializers.InitAllServices(ctx)

			sess, _, err := gate.Instance.NewSession()
			if err != nil {
				return err
			}
			sess, _, err = gate.Instance.Unlock(sess, password)
			if err != nil {
				return errors.Wrap(err, "unable to unlock compile")
			}
			result, err := compiler.Instance.Compile(ctx, sess)
			if err != nil {
				return errors.Wrapf(err, "compile of %s failed", config.Conf.Leave.WorkbookPath)
			}
			return writeJSON(result)
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "Admin password (falls back to LEAVE_COMPILE_PASSWORD)")
	cmd.Flags().BoolVar(&replaceLegacy, "replace-legacy", false, "Clear leave rows that have no RequestID (first compile of an old workbook)")
	return cmd
}
