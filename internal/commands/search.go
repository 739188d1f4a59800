package commands

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search tasks by title",
	Args:  cobra.MinimumNArgs(1),
	RunE: withApp(func(a *app, cmd *cobra.Command, args []string) error {
		tasks, err := a.svc.SearchTasksByTitle(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		if len(tasks) == 0 {
			fmt.Println("No matching tasks")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tCREATED")
		for _, t := range tasks {
			fmt.Fprintf(w, "%d\t%s\t%s\n", t.ID, t.Title, t.CreatedAt.Time().Format("2006-01-02 15:04"))
		}
		return w.Flush()
	}),
}
