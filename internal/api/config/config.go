package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// LoadConfig 从文件加载配置并填充到 Cfg
func LoadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")

	viper.SetDefault("ranking.gravity", 1.8)
	viper.SetDefault("ranking.window_days", 7)
	viper.SetDefault("ranking.limit", 50)
	viper.SetDefault("jobs.movie_reconcile_cron", "0 0 4 * * *")
	viper.SetDefault("jobs.review_reconcile_cron", "0 0 * * * *")
	viper.SetDefault("jobs.comment_reconcile_cron", "0 30 4 * * *")
	viper.SetDefault("jobs.ranking_refresh_cron", "0 */10 * * * *")

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("config file not found: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	Cfg = &cfg

	return nil
}
