package user

import (
	"os"

	"github.com/spf13/cobra"
)

func NewCommand() *cobra.Command {
	userCommand := &cobra.Command{
		Use:   "user",
		Short: "Commands for working with account profiles",
		Example: "  # Shows the profile of user alice\n" +
			"  " + os.Args[0] + " user show alice",
	}

	userCommand.AddCommand(initShowCommand())

	return userCommand
}
