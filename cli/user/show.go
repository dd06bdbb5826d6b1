package user

import (
	"context"
	"fmt"
	"log"

	"github.com/ryanuber/columnize"
	"github.com/spf13/cobra"

	"booruscrape/configuration"
	"booruscrape/model"
)

func initShowCommand() *cobra.Command {
	showCommand := &cobra.Command{
		Use:   "show <username>",
		Short: "Shows the profile of an account",
		Args:  cobra.ExactArgs(1),
		Run:   runShowCommand,
	}

	return showCommand
}

func runShowCommand(cmd *cobra.Command, args []string) {
	c := configuration.NewClient()
	defer c.Close()

	profile, err := c.GetUserProfile(context.Background(), args[0])
	if err != nil {
		log.Fatal(err)
	}
	if profile == nil {
		log.Fatalf("No profile for %q", args[0])
	}

	output := []string{
		fmt.Sprintf("Username: | %s", profile.Username),
		fmt.Sprintf("Id: | %d", profile.ID),
		fmt.Sprintf("Join date: | %s", profile.JoinDate),
		fmt.Sprintf("Level: | %s", profile.Level),
		fmt.Sprintf("Posts: | %d", profile.PostCount),
		fmt.Sprintf("Deleted posts: | %d", profile.DeletedPostCount),
		fmt.Sprintf("Favorites: | %d", profile.FavoriteCount),
	}
	fmt.Println(columnize.SimpleFormat(output))

	printPostList("Recent favorites", profile.RecentFavorites)
	printPostList("Recent uploads", profile.RecentUploads)
}

func printPostList(title string, posts []model.Post) {
	if len(posts) == 0 {
		return
	}
	fmt.Printf("\n%s:\n", title)
	for _, p := range posts {
		fmt.Printf("  #%d %s (%s)\n", p.ID, p.Rating, p.DetailURL)
	}
}
