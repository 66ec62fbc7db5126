package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded calculations, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		tool, _ := cmd.Flags().GetString("tool")
		limit, _ := cmd.Flags().GetInt("limit")

		a, err := newApp(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		calcs, err := a.calculators.History(cmd.Context(), tool, limit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput || yamlOutput {
			return render(out, "History", calcs)
		}
		if len(calcs) == 0 {
			fmt.Fprintln(out, keyStyle.Render("no calculations recorded"))
			return nil
		}
		for _, c := range calcs {
			fmt.Fprintf(out, "%s  %s  %s\n",
				keyStyle.Render(c.CreatedAt.Local().Format("2006-01-02 15:04:05")),
				titleStyle.Render(c.Tool),
				c.Result)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().String("tool", "", "only show calculations for this tool id")
	historyCmd.Flags().Int("limit", 20, "maximum number of entries")
}
