package config

import (
	"strings"

	"github.com/spf13/viper"
)

// init initialize default config params
func init() {
	// environment - could be "local", "prod", "dev"
	viper.SetDefault("env", "prod")

	// http server
	viper.SetDefault("http.host", "")
	viper.SetDefault("http.port", 3000)

	// upstream github api
	viper.SetDefault("github.token", "")
	viper.SetDefault("github.api_url", "https://api.github.com")
	viper.SetDefault("github.graphql_url", "")
	viper.SetDefault("github.timeout", "0s")
	viper.SetDefault("github.verify_token", false)

	// repository structure listing
	viper.SetDefault("tree.strategy", "nested")
	viper.SetDefault("tree.max_depth", 32)
	viper.SetDefault("tree.max_nodes", 10000)

	viper.SetDefault("metrics.enabled", true)
	viper.SetDefault("metrics.path", "/metrics")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// PORT is the conventional name used by most hosting platforms
	_ = viper.BindEnv("http.port", "HTTP_PORT", "PORT")
	_ = viper.BindEnv("github.token", "GITHUB_TOKEN")
}
