// internal/cli/functions.go

package cli

import (
	"fmt"

	"github.com/kinvolk/coding-game-service/internal/log"
	"github.com/kinvolk/coding-game-service/internal/pipeline"
	"github.com/spf13/cobra"
)

func (a *app) functionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "functions [numbers...]",
		Short: "Encode numbers into a string",
		Long: `Encode numbers into a string: drop the even numbers, then for each number
subtract half of itself times five, square the result and map it to a letter,
and finally capitalise the vowels.

Negative numbers can be given directly, e.g. codinggame functions -3 5;
flags must come before the first negative number.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			numbers, err := pipeline.ParseNumbers(args)
			if err != nil {
				return err
			}
			enc, err := pipeline.NewEncoder(a.cfg.Pipeline.Wrap)
			if err != nil {
				return err
			}
			if enc.Wrap() != pipeline.AlphabetSize {
				log.Debug("letters wrap before the end of the alphabet", "wrap", enc.Wrap())
			}
			fmt.Fprintln(cmd.OutOrStdout(), enc.Encode(numbers))
			return nil
		},
	}
	cmd.Flags().Int("wrap", pipeline.DefaultWrap, "alphabet wrap-around length (1-26)")
	return cmd
}
