// internal/config/config.go

// Package config 載入程式設定：先讀取可選的 .env，再由 viper 合併預設值、設定檔與環境變數。
// 環境變數以 CODINGGAME_ 為前綴，巢狀鍵以底線連接，例如 CODINGGAME_SERVER_ADDR。
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kinvolk/coding-game-service/internal/log"
	"github.com/kinvolk/coding-game-service/internal/pipeline"
	"github.com/spf13/viper"
)

// EnvPrefix 為環境變數前綴。
const EnvPrefix = "CODINGGAME"

// 設定鍵，供 cli 綁定旗標使用。
const (
	KeyLogLevel     = "log_level"
	KeyServerAddr   = "server.addr"
	KeyDataFile     = "storage.data_file"
	KeyPipelineWrap = "pipeline.wrap"
)

// Config 為完整設定。
type Config struct {
	LogLevel string         `mapstructure:"log_level"`
	Server   ServerConfig   `mapstructure:"server"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Pipeline PipelineConfig `mapstructure:"pipeline"`
}

// ServerConfig 為 HTTP 伺服器設定。
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// StorageConfig 為快照檔設定。
type StorageConfig struct {
	DataFile string `mapstructure:"data_file"`
}

// PipelineConfig 為編碼函式鏈設定。
type PipelineConfig struct {
	Wrap int `mapstructure:"wrap"`
}

// LoadDotEnv 把 .env（或指定的檔案）載入行程環境，不覆寫已存在的變數；回報是否有載入成功。
// 必須在 New 之前呼叫。
func LoadDotEnv(filenames ...string) bool {
	return godotenv.Load(filenames...) == nil
}

// New 建立已套用預設值與環境變數的 viper 實例；cfgFile 非空時一併讀取（toml / yaml / json 依副檔名）。
// 指定的設定檔不存在或格式錯誤時回傳錯誤。
func New(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(KeyLogLevel, string(log.LevelInfo))
	v.SetDefault(KeyServerAddr, ":8080")
	v.SetDefault(KeyDataFile, "data.json")
	v.SetDefault(KeyPipelineWrap, pipeline.DefaultWrap)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}
	return v, nil
}

// Load 將 viper 內容解碼為 Config 並驗證。
func Load(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate 檢查設定值是否合法。
func (c *Config) Validate() error {
	var errs []error
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr must not be empty"))
	}
	if c.Storage.DataFile == "" {
		errs = append(errs, errors.New("storage.data_file must not be empty"))
	}
	if c.Pipeline.Wrap < 1 || c.Pipeline.Wrap > pipeline.AlphabetSize {
		errs = append(errs, fmt.Errorf("pipeline.wrap: %w: %d", pipeline.ErrBadWrap, c.Pipeline.Wrap))
	}
	return errors.Join(errs...)
}
