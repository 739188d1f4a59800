package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate numbers over all your tasks",
	RunE: withApp(func(a *app, cmd *cobra.Command, args []string) error {
		st, err := a.svc.GetTaskStats(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "Total tasks:\t%d\n", st.Total)
		fmt.Fprintf(w, "Created in last 24h:\t%d\n", st.Recent)
		fmt.Fprintf(w, "With description:\t%d\n", st.WithDescription)
		fmt.Fprintf(w, "Average word count:\t%d\n", st.AverageWordCount)
		return w.Flush()
	}),
}
