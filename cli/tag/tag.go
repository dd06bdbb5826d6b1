package tag

import (
	"os"

	"github.com/spf13/cobra"
)

func NewCommand() *cobra.Command {
	tagCommand := &cobra.Command{
		Use:   "tag",
		Short: "Commands for working with search tags",
		Example: "  # Shows the sidebar tags for a search\n" +
			"  " + os.Args[0] + " tag list 1girl",
	}

	tagCommand.AddCommand(initListCommand())

	return tagCommand
}
