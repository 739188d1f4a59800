package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Kenyi45/task-manager/internal/client/taskrepo"
)

var addDescription string

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a new task",
	Args:  cobra.MinimumNArgs(1),
	RunE: withApp(func(a *app, cmd *cobra.Command, args []string) error {
		task, err := a.svc.CreateTask(cmd.Context(), taskrepo.CreateInput{
			Title:       strings.Join(args, " "),
			Description: addDescription,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Created task %d: %s\n", task.ID, task.Title)
		return nil
	}),
}

func init() {
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "task description")
}
