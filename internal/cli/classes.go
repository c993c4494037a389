// internal/cli/classes.go

package cli

import (
	"fmt"
	"strings"

	"github.com/kinvolk/coding-game-service/internal/bank"
	"github.com/kinvolk/coding-game-service/internal/log"
	"github.com/spf13/cobra"
)

func (a *app) classesCmd() *cobra.Command {
	var report bool
	cmd := &cobra.Command{
		Use:   "classes",
		Short: "Run the banking scenario and print who is overdrafted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, names := bank.RunScenario()
			log.Debug("scenario finished", "accounts", len(b.Reports()), "overdrafted", len(names))

			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, " "))
			if report {
				fmt.Fprintln(cmd.ErrOrStderr(), renderReports(b.Reports()))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&report, "report", false, "also print the final account table to stderr")
	return cmd
}
