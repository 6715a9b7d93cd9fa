package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Port      string `mapstructure:"port"`
	MongoURI  string `mapstructure:"MONGODB_URI"`
	DBName    string `mapstructure:"db_name"`
	UploadDir string `mapstructure:"upload_dir"`

	AIProvider     string   `mapstructure:"ai_provider"` // "openai" or "gemini"
	AIEndpoint     string   `mapstructure:"ai_endpoint"`
	OpenAIAPIKey   string   `mapstructure:"OPENAI_API_KEY"`
	GeminiAPIKeys  []string `mapstructure:"gemini_api_keys"`
	Model          string   `mapstructure:"model"`
	FilterModel    string   `mapstructure:"filter_model"`
	TimeoutSeconds int      `mapstructure:"completion_timeout_seconds"`

	Retrieval RetrievalConfig `mapstructure:"retrieval"`
	Chunk     ChunkConfig     `mapstructure:"chunk"`
	Commerce  CommerceConfig  `mapstructure:"commerce"`
	FTP       FTPConfig       `mapstructure:"ftp"`

	AnswerTemperature    float32 `mapstructure:"answer_temperature"`
	RecommendTemperature float32 `mapstructure:"recommend_temperature"`
}

// RetrievalConfig carries the retrieval tunables. The score cutoff drifted
// between 5 and 25 across deployments, so it is configuration, not code.
type RetrievalConfig struct {
	TopK         int `mapstructure:"top_k"`
	MinScore     int `mapstructure:"min_score"`
	AnswerWeight int `mapstructure:"answer_weight"`
}

type ChunkConfig struct {
	Size int `mapstructure:"size"`
}

type CommerceConfig struct {
	MallID       string `mapstructure:"CAFE24_MALLID"`
	ClientID     string `mapstructure:"CAFE24_CLIENT_ID"`
	ClientSecret string `mapstructure:"CAFE24_CLIENT_SECRET"`
	AccessToken  string `mapstructure:"CAFE24_ACCESS_TOKEN"`
	RefreshToken string `mapstructure:"CAFE24_REFRESH_TOKEN"`
	APIVersion   string `mapstructure:"api_version"`
}

type FTPConfig struct {
	Host       string `mapstructure:"FTP_HOST"`
	User       string `mapstructure:"FTP_USER"`
	Password   string `mapstructure:"FTP_PASSWORD"`
	PublicBase string `mapstructure:"FTP_PUBLIC_BASE"`
	RemoteDir  string `mapstructure:"remote_dir"`
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.BindEnv("MONGODB_URI")
	v.BindEnv("OPENAI_API_KEY")
	v.BindEnv("commerce.CAFE24_MALLID", "CAFE24_MALLID")
	v.BindEnv("commerce.CAFE24_CLIENT_ID", "CAFE24_CLIENT_ID")
	v.BindEnv("commerce.CAFE24_CLIENT_SECRET", "CAFE24_CLIENT_SECRET")
	v.BindEnv("commerce.CAFE24_ACCESS_TOKEN", "CAFE24_ACCESS_TOKEN")
	v.BindEnv("commerce.CAFE24_REFRESH_TOKEN", "CAFE24_REFRESH_TOKEN")
	v.BindEnv("ftp.FTP_HOST", "FTP_HOST")
	v.BindEnv("ftp.FTP_USER", "FTP_USER")
	v.BindEnv("ftp.FTP_PASSWORD", "FTP_PASSWORD")
	v.BindEnv("ftp.FTP_PUBLIC_BASE", "FTP_PUBLIC_BASE")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "5000")
	v.SetDefault("db_name", "support")
	v.SetDefault("upload_dir", "uploads")
	v.SetDefault("ai_provider", "openai")
	v.SetDefault("model", "gpt-3.5-turbo")
	v.SetDefault("filter_model", "gpt-3.5-turbo")
	v.SetDefault("completion_timeout_seconds", 30)
	v.SetDefault("retrieval.top_k", 3)
	v.SetDefault("retrieval.min_score", 20)
	v.SetDefault("retrieval.answer_weight", 1)
	v.SetDefault("chunk.size", 500)
	v.SetDefault("commerce.api_version", "2024-06-01")
	v.SetDefault("ftp.remote_dir", "web/chat")
	v.SetDefault("answer_temperature", 0.0)
	v.SetDefault("recommend_temperature", 0.4)
}
