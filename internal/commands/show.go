package commands

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single task in detail",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(a *app, cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid task id %q", args[0])
		}

		task, err := a.svc.GetTask(cmd.Context(), id)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "ID:\t%d\n", task.ID)
		fmt.Fprintf(w, "Title:\t%s\n", task.Title)
		fmt.Fprintf(w, "Description:\t%s\n", task.Description)
		fmt.Fprintf(w, "Owner:\t%s\n", task.User)
		fmt.Fprintf(w, "Created:\t%s\n", task.CreatedAt.Time().Format("2006-01-02 15:04:05"))
		fmt.Fprintf(w, "Words:\t%d\n", task.WordCount)
		fmt.Fprintf(w, "Recent:\t%t\n", task.IsRecent)
		return w.Flush()
	}),
}
