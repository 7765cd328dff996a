package cli

import (
	"github.com/spf13/cobra"

	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/model"
)

func newPlayCmd() *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "play <challenger> <pick>",
		Short: "Play one round against a challenger",
		Example: `  rpsls play python spock
  rpsls play dotnet 2 --user alice`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pick, err := model.ParsePick(args[1])
			if err != nil {
				return err
			}

			ctx, cancel := requestContext(cmd)
			defer cancel()

			result, err := backend.Play(ctx, PlayArgs{
				Challenger: args[0],
				Username:   username,
				Pick:       int(pick),
			})
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "user", "u", "", "Username to play as")

	return cmd
}
