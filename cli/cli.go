package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"booruscrape/cli/crawl"
	"booruscrape/cli/post"
	"booruscrape/cli/search"
	"booruscrape/cli/tag"
	"booruscrape/cli/user"
	"booruscrape/client"
	"booruscrape/configuration"
)

var (
	baseURL      string
	postsPerPage int
)

func NewCommand() *cobra.Command {
	configuration.Init()

	booruCli := &cobra.Command{
		Use:     "booruscrape",
		Short:   "Booruscrape CLI",
		Long:    "Booru board scraping command line interface",
		Example: fmt.Sprintf("  %s <command> [flags...]", os.Args[0]),
	}

	booruCli.PersistentFlags().StringVar(&baseURL, "base-url", client.DefaultBaseURL, "Board endpoint URL")
	viper.BindPFlag("base_url", booruCli.PersistentFlags().Lookup("base-url"))
	booruCli.PersistentFlags().IntVar(&postsPerPage, "posts-per-page", client.DefaultPostsPerPage, "Listing page size used for pagination offsets")
	viper.BindPFlag("posts_per_page", booruCli.PersistentFlags().Lookup("posts-per-page"))

	booruCli.AddCommand(crawl.NewCommand())
	booruCli.AddCommand(post.NewCommand())
	booruCli.AddCommand(search.NewCommand())
	booruCli.AddCommand(tag.NewCommand())
	booruCli.AddCommand(user.NewCommand())

	return booruCli
}
