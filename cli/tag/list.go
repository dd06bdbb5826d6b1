package tag

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/ryanuber/columnize"
	"github.com/spf13/cobra"

	"booruscrape/configuration"
)

func initListCommand() *cobra.Command {
	listCommand := &cobra.Command{
		Use:   "list <tag>...",
		Short: "Lists the sidebar tags shown for a search",
		Args:  cobra.MinimumNArgs(1),
		Run:   runListCommand,
	}

	return listCommand
}

func runListCommand(cmd *cobra.Command, args []string) {
	c := configuration.NewClient()
	defer c.Close()

	tags, err := c.GetSidebarTags(context.Background(), strings.Join(args, " "))
	if err != nil {
		log.Fatal(err)
	}

	output := []string{
		"Name | Type | Count",
	}
	for _, t := range tags {
		output = append(output, fmt.Sprintf("%s | %s | %d", t.Name, t.Type, t.Count))
	}
	fmt.Println(columnize.SimpleFormat(output))
}
