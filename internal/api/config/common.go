package config

// Config 配置主体
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	DB       DBConfig       `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Logstash LogstashConfig `mapstructure:"logstash"`
	Ranking  RankingConfig  `mapstructure:"ranking"`
	Jobs     JobsConfig     `mapstructure:"jobs"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

// RankingConfig 热榜配置
type RankingConfig struct {
	Gravity    float64 `mapstructure:"gravity"`
	WindowDays int     `mapstructure:"window_days"`
	Limit      int64   `mapstructure:"limit"`
}

// JobsConfig 定时任务配置，表达式为带秒位的 cron
type JobsConfig struct {
	MovieReconcileCron   string `mapstructure:"movie_reconcile_cron"`
	ReviewReconcileCron  string `mapstructure:"review_reconcile_cron"`
	CommentReconcileCron string `mapstructure:"comment_reconcile_cron"`
	RankingRefreshCron   string `mapstructure:"ranking_refresh_cron"`
	ReconcileOnStart     bool   `mapstructure:"reconcile_on_start"`
}
