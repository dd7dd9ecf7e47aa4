package config

import (
	"os"
	"sync"

	"github.com/spf13/viper"
)

var (
	configSingleton *Config
	muOnce          sync.Once
	loadErr         error
)

type Config struct {
	DbPath   string `mapstructure:"POS_DB_PATH"`
	LogLevel string `mapstructure:"POS_LOG_LEVEL"`
}

// GetConfig 讀取 .env 與環境變數，僅載入一次
// .env 不存在時只用環境變數與預設值
func GetConfig() (*Config, error) {
	muOnce.Do(func() {
		configSingleton, loadErr = loadConfig()
	})
	return configSingleton, loadErr
}

func loadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("POS_DB_PATH", "vendas.db")
	v.SetDefault("POS_LOG_LEVEL", "info")

	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(".env"); !os.IsNotExist(statErr) {
			return nil, err
		}
	}

	cf := &Config{}
	if err := v.Unmarshal(cf); err != nil {
		return nil, err
	}
	return cf, nil
}
