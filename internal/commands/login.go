package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginUsername string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the API and store the session tokens",
	RunE: withApp(func(a *app, cmd *cobra.Command, args []string) error {
		username := loginUsername
		if username == "" {
			fmt.Print("Username: ")
			reader := bufio.NewReader(os.Stdin)
			line, err := reader.ReadString('\n')
			if err != nil {
				return err
			}
			username = strings.TrimSpace(line)
		}
		if username == "" {
			return fmt.Errorf("username is required")
		}

		fmt.Print("Password: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return err
		}

		if err := a.auth.Login(cmd.Context(), username, string(raw)); err != nil {
			return err
		}
		fmt.Printf("Logged in as %s\n", username)
		return nil
	}),
}

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "username to authenticate as")
}
