package search

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"

	"github.com/bit101/go-ansi"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"booruscrape/configuration"
	"booruscrape/model"
)

var page int

func NewCommand() *cobra.Command {
	searchCommand := &cobra.Command{
		Use:   "search <tag>...",
		Short: "Searches the board and lists matching posts",
		Args:  cobra.MinimumNArgs(1),
		Example: "" +
			"  " + os.Args[0] + " search 1girl solo\n" +
			"  " + os.Args[0] + " search --page 3 landscape",
		Run: runSearchCommand,
	}

	searchCommand.Flags().IntVar(&page, "page", 1, "Listing page number (1-indexed)")

	return searchCommand
}

func paginatePosts(posts []model.Post) {
	cmd := exec.Command("/usr/bin/less", "-FRX")
	cmd.Stdout = os.Stdout

	if stdin, err := cmd.StdinPipe(); err == nil {
		go func() {
			defer stdin.Close()

			for _, p := range posts {
				ansi.Fprintf(stdin, ansi.Green, "#%d", p.ID)
				ansi.Fprintf(stdin, ansi.Purple, " score:%d", p.Score)
				ansi.Fprintf(stdin, ansi.Yellow, " %s", p.Rating)
				if p.IsVideo {
					ansi.Fprintf(stdin, ansi.Red, " [video]")
				}
				ansi.Fprintf(stdin, ansi.Default, "\n%s\n", strings.Join(p.Tags, " "))
				ansi.Fprintf(stdin, ansi.Cyan, "%s\n", p.DetailURL)
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

func printPosts(posts []model.Post) {
	for _, p := range posts {
		fmt.Printf("#%d score:%d %s\n%s\n", p.ID, p.Score, p.Rating, p.DetailURL)
		fmt.Println("--------")
	}
}

func runSearchCommand(cmd *cobra.Command, args []string) {
	c := configuration.NewClient()
	defer c.Close()

	posts, err := c.Search(context.Background(), strings.Join(args, " "), page)
	if err != nil {
		log.Fatal(err)
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		paginatePosts(posts)
	} else {
		printPosts(posts)
	}
}
