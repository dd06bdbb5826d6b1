package post

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func NewCommand() *cobra.Command {
	postCommand := &cobra.Command{
		Use:   "post",
		Short: "Commands for working with individual posts",
		Example: "  # Shows the metadata and comments of post 1234\n" +
			"  " + os.Args[0] + " post show 1234",
	}

	postCommand.AddCommand(initCloudCommand())
	postCommand.AddCommand(initDownloadCommand())
	postCommand.AddCommand(initOpenCommand())
	postCommand.AddCommand(initShowCommand())

	return postCommand
}

func parsePostIDArg(arg string) (int, error) {
	return strconv.Atoi(arg)
}
