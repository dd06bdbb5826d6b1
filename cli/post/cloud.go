package post

import (
	"context"
	"fmt"
	"image/color"
	"image/png"
	"log"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/bbalet/stopwords"
	"github.com/psykhi/wordclouds"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"booruscrape/configuration"
)

var (
	configPath string
	outputPath string
)

var DefaultColors = []color.RGBA{
	{0x1b, 0x1b, 0x1b, 0xff},
	{0x48, 0x48, 0x4B, 0xff},
	{0x59, 0x3a, 0xee, 0xff},
	{0x65, 0xCD, 0xFA, 0xff},
	{0x70, 0xD6, 0xBF, 0xff},
}

type Conf struct {
	FontMaxSize     int    `yaml:"font_max_size"`
	FontMinSize     int    `yaml:"font_min_size"`
	RandomPlacement bool   `yaml:"random_placement"`
	FontFile        string `yaml:"font_file"`
	Colors          []color.RGBA
	BackgroundColor color.RGBA `yaml:"background_color"`
	Width           int
	Height          int
}

var DefaultConf = Conf{
	FontMaxSize:     700,
	FontMinSize:     10,
	RandomPlacement: false,
	FontFile:        "./fonts/roboto/Roboto-Regular.ttf",
	Colors:          DefaultColors,
	BackgroundColor: color.RGBA{255, 255, 255, 255},
	Width:           2048,
	Height:          2048,
}

func initCloudCommand() *cobra.Command {
	cloudCommand := &cobra.Command{
		Use:   "cloud <post_id>",
		Short: "Create a word cloud from the comments on a post",
		Args:  cobra.ExactArgs(1),
		Run:   runCloudCommand,
	}

	cloudCommand.Flags().StringVar(&configPath, "config", "config.yaml", "Path to word cloud config file")
	cloudCommand.Flags().StringVar(&outputPath, "output", "output.png", "Path to output image")

	return cloudCommand
}

func runCloudCommand(cmd *cobra.Command, args []string) {
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

	maxWords := 200
	wordRe := regexp.MustCompile("[A-Za-z]+")
	inputWords := map[string]int{}

	for _, comment := range details.Comments {
		relevant := stopwords.CleanString(comment.Text, "en", true)
		for _, w := range wordRe.FindAllString(relevant, -1) {
			lw := strings.ToLower(w)
			if len(lw) >= 3 {
				inputWords[lw] += 1
			}
		}
	}

	if len(inputWords) == 0 {
		log.Fatalf("Post %d has no comment text to cloud", id)
	}

	wordList := make([]string, len(inputWords))
	i := 0
	for w := range inputWords {
		wordList[i] = w
		i++
	}
	sort.Slice(wordList, func(i, j int) bool {
		return inputWords[wordList[i]] < inputWords[wordList[j]]
	})
	if len(wordList) > maxWords {
		wordList = wordList[len(wordList)-maxWords:]
	}

	displayWords := map[string]int{}
	for _, w := range wordList {
		displayWords[w] = inputWords[w]
	}

	conf := DefaultConf
	content, err := os.ReadFile(configPath)
	if err == nil {
		err = yaml.Unmarshal(content, &conf)
		if err != nil {
			fmt.Printf("Failed to decode config, using defaults instead: %s\n", err)
		}
	} else {
		fmt.Println("No config file. Using defaults")
	}

	colors := make([]color.Color, 0)
	for _, col := range conf.Colors {
		colors = append(colors, col)
	}

	w := wordclouds.NewWordcloud(displayWords,
		wordclouds.FontFile(conf.FontFile),
		wordclouds.FontMaxSize(conf.FontMaxSize),
		wordclouds.FontMinSize(conf.FontMinSize),
		wordclouds.Colors(colors),
		wordclouds.Height(conf.Height),
		wordclouds.Width(conf.Width),
		wordclouds.RandomPlacement(conf.RandomPlacement),
		wordclouds.BackgroundColor(conf.BackgroundColor),
	)

	img := w.Draw()
	outputFile, err := os.Create(outputPath)
	if err != nil {
		log.Fatal(err)
	}
	defer outputFile.Close()

	if err := png.Encode(outputFile, img); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Wrote %s from %d comments\n", outputPath, len(details.Comments))
}
