package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Kenyi45/task-manager/internal/client/state"
	"github.com/Kenyi45/task-manager/internal/client/taskrepo"
	"github.com/Kenyi45/task-manager/pkg/paging"
)

var (
	listPage     int
	listSize     int
	listSearch   string
	listOrdering string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List your tasks, newest first",
	RunE: withApp(func(a *app, cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Explicit ordering bypasses the stateful pager and queries directly.
		if listOrdering != "" {
			page, err := a.svc.ListTasks(ctx, taskrepo.ListParams{
				Page:     listPage,
				PageSize: listSize,
				Search:   listSearch,
				Ordering: listOrdering,
			})
			if err != nil {
				return err
			}
			return renderTasks(page.Results, listPage, page.Count, listSize)
		}

		tl := state.New(ctx, a.svc, listSize)
		switch {
		case listSearch != "":
			if err := tl.SearchWithPagination(ctx, listSearch, listPage); err != nil {
				return err
			}
		case listPage > 1:
			if err := tl.LoadPage(ctx, listPage); err != nil {
				return err
			}
		default:
			if e := tl.Err(); e != nil {
				return e
			}
		}

		p := tl.Page()
		return renderTasks(tl.Tasks(), p.Page, p.TotalItems, p.PageSize)
	}),
}

func renderTasks(tasks []taskrepo.Task, page, total, size int) error {
	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCREATED")
	for _, t := range tasks {
		fmt.Fprintf(w, "%d\t%s\t%s\n", t.ID, t.Title, t.CreatedAt.Time().Format("2006-01-02 15:04"))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nPage %d of %d (%d tasks)\n", page, paging.TotalPages(total, size), total)
	return nil
}

func init() {
	listCmd.Flags().IntVar(&listPage, "page", 1, "page number to fetch")
	listCmd.Flags().IntVar(&listSize, "size", 10, "tasks per page")
	listCmd.Flags().StringVar(&listSearch, "search", "", "filter by title or description")
	listCmd.Flags().StringVar(&listOrdering, "ordering", "", "sort order, e.g. title or -created_at")
}
