package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Storage drivers.
const (
	DriverFile     = "file"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

// adminDefaultPassword is the classic master password; set admin.passwordHash to override it.
const adminDefaultPassword = "admin123"

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Storage struct {
		Driver        string `yaml:"driver"`
		Dir           string `yaml:"dir"`
		QuestionsFile string `yaml:"questionsFile"`
		PlayersFile   string `yaml:"playersFile"`
	} `yaml:"storage"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		Prefix   string `yaml:"prefix"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
	Quiz struct {
		QuestionTime        string `yaml:"questionTime"`
		QuestionsPerSession int    `yaml:"questionsPerSession"`
		MinQuestions        int    `yaml:"minQuestions"`
		MaxQuestions        int    `yaml:"maxQuestions"`
		MaxPlayers          int    `yaml:"maxPlayers"`
	} `yaml:"quiz"`
	Admin struct {
		Password     string `yaml:"password"`
		PasswordHash string `yaml:"passwordHash"` // bcrypt, wins over password
	} `yaml:"admin"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	cfg := Config{}
	cfg.Server.Port = "8080"
	cfg.Storage.Driver = DriverFile
	cfg.Storage.Dir = "."
	cfg.Storage.QuestionsFile = "quiz_questions.dat"
	cfg.Storage.PlayersFile = "quiz_players.dat"
	cfg.Quiz.QuestionTime = "30s"
	cfg.Quiz.QuestionsPerSession = 10
	cfg.Quiz.MinQuestions = 10
	cfg.Quiz.MaxQuestions = 100
	cfg.Quiz.MaxPlayers = 100
	cfg.Admin.Password = adminDefaultPassword
	return cfg
}

// Load reads YAML config from path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults restores defaults for fields a file set to zero values.
func (c *Config) applyDefaults() {
	def := Default()
	if c.Storage.Driver == "" {
		c.Storage.Driver = def.Storage.Driver
	}
	if c.Storage.Dir == "" {
		c.Storage.Dir = def.Storage.Dir
	}
	if c.Storage.QuestionsFile == "" {
		c.Storage.QuestionsFile = def.Storage.QuestionsFile
	}
	if c.Storage.PlayersFile == "" {
		c.Storage.PlayersFile = def.Storage.PlayersFile
	}
	if c.Quiz.QuestionsPerSession <= 0 {
		c.Quiz.QuestionsPerSession = def.Quiz.QuestionsPerSession
	}
	if c.Quiz.MinQuestions <= 0 {
		c.Quiz.MinQuestions = def.Quiz.MinQuestions
	}
	if c.Quiz.MaxQuestions <= 0 {
		c.Quiz.MaxQuestions = def.Quiz.MaxQuestions
	}
	if c.Quiz.MaxPlayers <= 0 {
		c.Quiz.MaxPlayers = def.Quiz.MaxPlayers
	}
	if c.Admin.Password == "" && c.Admin.PasswordHash == "" {
		c.Admin.Password = def.Admin.Password
	}
}

func (c Config) QuestionsPath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.QuestionsFile)
}

func (c Config) PlayersPath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.PlayersFile)
}

// QuestionTime is the per-question allowance, 30s unless configured.
func (c Config) QuestionTime() time.Duration {
	return Duration(c.Quiz.QuestionTime, 30*time.Second)
}

// Duration parses a duration string or returns the fallback if empty or invalid.
func Duration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	return fallback
}
