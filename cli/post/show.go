package post

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"

	"github.com/bit101/go-ansi"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"booruscrape/configuration"
	"booruscrape/model"
)

func initShowCommand() *cobra.Command {
	showCommand := &cobra.Command{
		Use:   "show <post_id>",
		Short: "Formats the metadata and comments of a post for human consumption",
		Args:  cobra.ExactArgs(1),
		Run:   runShowCommand,
	}

	return showCommand
}

func paginateDetails(details *model.PostDetails) {
	cmd := exec.Command("/usr/bin/less", "-FRX")
	cmd.Stdout = os.Stdout

	if stdin, err := cmd.StdinPipe(); err == nil {
		go func() {
			defer stdin.Close()

			ansi.Fprintf(stdin, ansi.Green, "#%d", details.ID)
			ansi.Fprintf(stdin, ansi.Default, " %dx%d", details.Width, details.Height)
			ansi.Fprintf(stdin, ansi.Yellow, " %s", details.Rating)
			ansi.Fprintf(stdin, ansi.Purple, " score:%d\n", details.Score)
			ansi.Fprintf(stdin, ansi.Default, "posted %s by ", details.PostedAt)
			ansi.Fprintf(stdin, ansi.Red, "%s\n", details.Creator.Name)
			ansi.Fprintf(stdin, ansi.Cyan, "%s\n", details.ImageURL)
			if details.SourceURL != "" {
				ansi.Fprintf(stdin, ansi.Default, "source: %s\n", details.SourceURL)
			}
			ansi.Fprintln(stdin, ansi.Blue, "========")

			for _, c := range details.Comments {
				ansi.Fprintf(stdin, ansi.Red, "%s", c.Username)
				ansi.Fprintf(stdin, ansi.Default, " (%s)", c.Timestamp)
				ansi.Fprintf(stdin, ansi.Purple, " score:%d\n", c.Score)
				ansi.Fprintf(stdin, ansi.Default, "%s\n", c.Text)
				ansi.Fprintln(stdin, ansi.Blue, "--------")
			}
		}()
	} else {
		log.Fatal(err)
	}

	err := cmd.Run()
	if err != nil {
		log.Fatal(err)
	}
}

func printDetails(details *model.PostDetails) {
	fmt.Printf("#%d %dx%d %s score:%d\n", details.ID, details.Width, details.Height, details.Rating, details.Score)
	fmt.Printf("posted %s by %s\n%s\n", details.PostedAt, details.Creator.Name, details.ImageURL)
	for _, c := range details.Comments {
		fmt.Printf("%s (%s): %q\n", c.Username, c.Timestamp, c.Text)
	}
}

func runShowCommand(cmd *cobra.Command, args []string) {
	id, err := parsePostIDArg(args[0])
	if err != nil {
		log.Fatalf("Bad post id: %v", err)
	}

	c := configuration.NewClient()
	defer c.Close()

	details, err := c.GetPostDetails(context.Background(), id)
	if err != nil {
		log.Fatal(err)
	}
	if details == nil {
		log.Fatalf("Post %d not found", id)
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		paginateDetails(details)
	} else {
		printDetails(details)
	}
}
