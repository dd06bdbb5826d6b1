package post

import (
	"fmt"
	"log"
	"strings"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func initOpenCommand() *cobra.Command {
	openCommand := &cobra.Command{
		Use:   "open <post_id | URL>",
		Short: "Opens a post in a browser.",
		Args:  cobra.ExactArgs(1),
		Run:   runOpenCommand,
	}
	return openCommand
}

func runOpenCommand(cmd *cobra.Command, args []string) {
	target := args[0]
	if !strings.HasPrefix(target, "http") {
		id, err := parsePostIDArg(target)
		if err != nil {
			log.Fatalf("Bad post id: %v", err)
		}
		target = fmt.Sprintf("%s?page=post&s=view&id=%d", viper.GetString("base_url"), id)
	}

	if err := browser.OpenURL(target); err != nil {
		log.Fatal(err)
	}
}
