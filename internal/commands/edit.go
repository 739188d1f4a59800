package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Kenyi45/task-manager/internal/client/taskrepo"
)

var (
	editTitle       string
	editDescription string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Update a task's title or description",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(a *app, cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid task id %q", args[0])
		}

		var input taskrepo.UpdateInput
		if cmd.Flags().Changed("title") {
			input.Title = &editTitle
		}
		if cmd.Flags().Changed("description") {
			input.Description = &editDescription
		}

		task, err := a.svc.UpdateTask(cmd.Context(), id, input)
		if err != nil {
			return err
		}
		fmt.Printf("Updated task %d: %s\n", task.ID, task.Title)
		return nil
	}),
}

func init() {
	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "new title")
	editCmd.Flags().StringVarP(&editDescription, "description", "d", "", "new description")
}
