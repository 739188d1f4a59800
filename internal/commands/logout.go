package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session tokens",
	RunE: withApp(func(a *app, cmd *cobra.Command, args []string) error {
		if err := a.auth.Logout(); err != nil {
			return err
		}
		fmt.Println("Logged out")
		return nil
	}),
}
