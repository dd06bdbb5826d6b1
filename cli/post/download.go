package post

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/spf13/cobra"

	"booruscrape/configuration"
	"booruscrape/model"
	"booruscrape/utils"
)

var (
	downloadDir  string
	useSample    bool
	skipExisting bool
)

func initDownloadCommand() *cobra.Command {
	downloadCommand := &cobra.Command{
		Use:   "download <post_id>...",
		Short: "Downloads the media of one or more posts",
		Args:  cobra.MinimumNArgs(1),
		Run:   runDownloadCommand,
	}

	downloadCommand.Flags().StringVar(&downloadDir, "dir", ".", "Directory to download into")
	downloadCommand.Flags().BoolVar(&useSample, "sample", false, "Prefer the sample over the full-size media")
	downloadCommand.Flags().BoolVar(&skipExisting, "skip-existing", false, "Skip posts whose file is already present")

	return downloadCommand
}

func runDownloadCommand(cmd *cobra.Command, args []string) {
	c := configuration.NewClient()
	defer c.Close()

	ctx := context.Background()
	for _, arg := range args {
		id, err := parsePostIDArg(arg)
		if err != nil {
			log.Fatalf("Bad post id %q: %v", arg, err)
		}

		if skipExisting && alreadyDownloaded(id) {
			fmt.Printf("skipping %d, already downloaded\n", id)
			continue
		}

		path, err := c.DownloadPost(ctx, model.PostID(id), downloadDir, useSample)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(path)
	}
}

// alreadyDownloaded checks the common media extensions for a file named
// after the post, since the extension is only known after a detail
// fetch.
func alreadyDownloaded(id int) bool {
	for _, ext := range []string{"jpeg", "jpg", "png", "gif", "webm", "mp4"} {
		path := filepath.Join(downloadDir, fmt.Sprintf("%d.%s", id, ext))
		if exists, err := utils.PathExists(path); err == nil && exists {
			return true
		}
	}
	return false
}
