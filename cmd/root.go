package cmd

import (
	"errors"
	"io/fs"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app       = "answer-scorer"
	envPrefix = "ANSWER_SCORER"
)

type Config struct {
	Strategy string          `mapstructure:"strategy"`
	Embedder *EmbedderConfig `mapstructure:"embedder"`
	Batch    *BatchConfig    `mapstructure:"batch"`
	Log      *LogConfig      `mapstructure:"log"`
}

type EmbedderConfig struct {
	Provider string        `mapstructure:"provider"`
	Cache    bool          `mapstructure:"cache"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
	OpenAI   *OpenAIConfig `mapstructure:"openai"`
}

type GeminiConfig struct {
	APIKey     string `mapstructure:"api-key"`
	APIKeyFile string `mapstructure:"api-key-file"`
	Model      string `mapstructure:"model"`
	Dimensions int    `mapstructure:"dimensions"`
}

type OpenAIConfig struct {
	BaseURL    string `mapstructure:"base-url"`
	APIKey     string `mapstructure:"api-key"`
	APIKeyFile string `mapstructure:"api-key-file"`
	Model      string `mapstructure:"model"`
}

type BatchConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

type LogConfig struct {
	MaxLength int `mapstructure:"max-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "answer-scorer grades free-text interview answers against expected keywords",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is answer-scorer.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().StringP("strategy", "s", "", "scoring strategy: anchor or coverage")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("strategy", rootCmd.PersistentFlags().Lookup("strategy"))

	setDefaults(viper.GetViper())
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("strategy", "anchor")
	v.SetDefault("embedder.provider", "gemini")
	v.SetDefault("embedder.cache", true)
	v.SetDefault("embedder.gemini.api-key", "")
	v.SetDefault("embedder.gemini.api-key-file", "")
	v.SetDefault("embedder.gemini.model", "")
	v.SetDefault("embedder.gemini.dimensions", 0)
	v.SetDefault("embedder.openai.base-url", "")
	v.SetDefault("embedder.openai.api-key", "")
	v.SetDefault("embedder.openai.api-key-file", "")
	v.SetDefault("embedder.openai.model", "")
	v.SetDefault("batch.concurrency", 4)
	v.SetDefault("log.max-length", 200)
}

func initConfig() {
	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("loading .env: %v", err)
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		// An explicit config must be readable.
		if err := viper.ReadInConfig(); err != nil {
			log.Fatal(err)
		}
		return
	}

	viper.AddConfigPath(".")
	viper.SetConfigName(app)
	viper.SetConfigType("yaml")

	// Every command works with defaults and environment only, so the file is optional.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	return decodeConfig(viper.GetViper())
}

func decodeConfig(v *viper.Viper) (*Config, error) {
	var config *Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if config == nil {
		config = &Config{}
	}
	if config.Embedder == nil {
		config.Embedder = &EmbedderConfig{}
	}
	if config.Embedder.Gemini == nil {
		config.Embedder.Gemini = &GeminiConfig{}
	}
	if config.Embedder.OpenAI == nil {
		config.Embedder.OpenAI = &OpenAIConfig{}
	}
	if config.Batch == nil {
		config.Batch = &BatchConfig{}
	}
	if config.Log == nil {
		config.Log = &LogConfig{}
	}

	return config, nil
}
