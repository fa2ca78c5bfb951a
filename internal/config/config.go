package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/competition"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	ModeHTTP     = "http"
	ModeTerminal = "terminal"
)

type Config struct {
	LogLevel          string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort          string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Mode              string `yaml:"mode" env:"MODE" env-default:"http"`
	Redis             Redis  `yaml:"redis"`
	SQLiteStoragePath string `yaml:"sqlite-storage-path" env:"SQLITE_STORAGE_PATH" env-default:"./data/competitions.db"`
	Game              Game   `yaml:"game"`
}

type Redis struct {
	Host       string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port       string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	SessionTTL time.Duration `yaml:"session-ttl" env:"REDIS_SESSION_TTL" env-default:"24h"`
}

// Game holds the settings of the session the terminal mode starts with.
type Game struct {
	PlayerXName   string        `yaml:"player-x-name" env:"GAME_PLAYER_X_NAME" env-default:"Player 1"`
	PlayerOName   string        `yaml:"player-o-name" env:"GAME_PLAYER_O_NAME" env-default:"Player 2"`
	VsComputer    bool          `yaml:"vs-computer" env:"GAME_VS_COMPUTER" env-default:"true"`
	ComputerMark  string        `yaml:"computer-mark" env:"GAME_COMPUTER_MARK" env-default:"O"`
	Difficulty    string        `yaml:"difficulty" env:"GAME_DIFFICULTY" env-default:"Medium"`
	Rounds        int           `yaml:"rounds" env:"GAME_ROUNDS" env-default:"3"`
	ComputerDelay time.Duration `yaml:"computer-delay" env:"GAME_COMPUTER_DELAY" env-default:"500ms"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads path, applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.Mode {
	case ModeHTTP, ModeTerminal:
	default:
		return fmt.Errorf("%w: unknown mode %q", apperror.ErrConfiguration, that.Mode)
	}

	if that.Redis.SessionTTL < 0 {
		return fmt.Errorf("%w: negative session ttl", apperror.ErrConfiguration)
	}

	return that.Game.Validate()
}

func (that *Game) Validate() error {
	if err := competition.ValidateRounds(that.Rounds); err != nil {
		return err
	}

	if _, err := entity.ParseDifficulty(that.Difficulty); err != nil {
		return err
	}

	if that.VsComputer && !entity.Mark(that.ComputerMark).IsPlayer() {
		return fmt.Errorf("%w: computer mark must be X or O, got %q", apperror.ErrConfiguration, that.ComputerMark)
	}

	if that.ComputerDelay < 0 {
		return fmt.Errorf("%w: negative computer delay", apperror.ErrConfiguration)
	}

	return nil
}

// Settings - the session settings described by the game section.
func (that *Game) Settings() entity.Settings {
	settings := entity.Settings{
		PlayerXName: that.PlayerXName,
		PlayerOName: that.PlayerOName,
		VsComputer:  that.VsComputer,
		Difficulty:  entity.Difficulty(that.Difficulty),
		Rounds:      that.Rounds,
	}

	if that.VsComputer {
		settings.ComputerMark = entity.Mark(that.ComputerMark)
	}

	return settings
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
