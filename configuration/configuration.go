package configuration

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"booruscrape/client"
)

// Init loads a .env file when one is present and installs defaults for
// every key. CLI flags bound to the same keys take precedence.
func Init() {
	godotenv.Load()

	viper.SetEnvPrefix("booru")
	viper.AutomaticEnv()

	viper.SetDefault("base_url", client.DefaultBaseURL)
	viper.SetDefault("posts_per_page", client.DefaultPostsPerPage)
	viper.SetDefault("timeout_seconds", 30)
	viper.SetDefault("user_agent", client.DefaultUserAgent)
}

// NewClient builds a board client from the current configuration.
// Callers own the client and must Close it.
func NewClient() *client.Client {
	return client.New(client.Options{
		BaseURL:      viper.GetString("base_url"),
		PostsPerPage: viper.GetInt("posts_per_page"),
		Timeout:      time.Duration(viper.GetInt("timeout_seconds")) * time.Second,
		UserAgent:    viper.GetString("user_agent"),
	})
}
