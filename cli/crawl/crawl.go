package crawl

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"booruscrape/configuration"
	"booruscrape/crawler"
)

var (
	maxPages    int
	download    bool
	downloadDir string
)

func NewCommand() *cobra.Command {
	crawlCommand := &cobra.Command{
		Use:   "crawl <tag>...",
		Short: "Walks consecutive listing pages for a search",
		Args:  cobra.MinimumNArgs(1),
		Example: "" +
			"  " + os.Args[0] + " crawl --pages 5 1girl solo\n" +
			"  " + os.Args[0] + " crawl --download --dir ./media landscape",
		Run: runCrawlCommand,
	}

	crawlCommand.Flags().IntVar(&maxPages, "pages", 3, "Maximum number of listing pages to walk")
	crawlCommand.Flags().BoolVar(&download, "download", false, "Download the media of every crawled post")
	crawlCommand.Flags().StringVar(&downloadDir, "dir", ".", "Directory to download into")

	return crawlCommand
}

func runCrawlCommand(cmd *cobra.Command, args []string) {
	tags := strings.Join(args, " ")
	ctx := context.Background()

	lc := crawler.NewListingCrawler(viper.GetString("base_url"), viper.GetInt("posts_per_page"))
	if err := lc.LoadPages(ctx, tags, maxPages); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Crawled %d posts for %q\n", len(lc.Posts), tags)

	if !download {
		for _, p := range lc.Posts {
			fmt.Printf("#%d %s\n", p.ID, p.DetailURL)
		}
		return
	}

	c := configuration.NewClient()
	defer c.Close()

	for _, p := range lc.Posts {
		path, err := c.DownloadPost(ctx, p, downloadDir, false)
		if err != nil {
			log.Printf("Failed to download %d: %v", p.ID, err)
			continue
		}
		fmt.Println(path)
	}
}
