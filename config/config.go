package config

import (
	"strings"
	"time"

	"snake-minigame/game/types"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Config struct {
	Arena  ArenaConfig  `mapstructure:"arena"`
	Snake  SnakeConfig  `mapstructure:"snake"`
	Clock  ClockConfig  `mapstructure:"clock"`
	Food   FoodConfig   `mapstructure:"food"`
	Sound  SoundConfig  `mapstructure:"sound"`
	Window WindowConfig `mapstructure:"window"`
	Log    LogConfig    `mapstructure:"log"`
	// Seed for food placement; 0 seeds from the clock.
	Seed uint64 `mapstructure:"seed"`
}

type ArenaConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

type SnakeConfig struct {
	InitialLength int    `mapstructure:"initial_length"`
	SpawnX        int    `mapstructure:"spawn_x"`
	SpawnY        int    `mapstructure:"spawn_y"`
	Facing        string `mapstructure:"facing"`
}

type ClockConfig struct {
	BaseTick time.Duration `mapstructure:"base_tick"`
}

type FoodConfig struct {
	Green GreenFoodConfig `mapstructure:"green"`
	Red   RedFoodConfig   `mapstructure:"red"`
	Blue  BlueFoodConfig  `mapstructure:"blue"`
}

type GreenFoodConfig struct {
	Growth int `mapstructure:"growth"`
}

type RedFoodConfig struct {
	Growth          int     `mapstructure:"growth"`
	SpeedMultiplier float64 `mapstructure:"speed_multiplier"`
}

type BlueFoodConfig struct {
	SpeedMultiplier float64 `mapstructure:"speed_multiplier"`
}

// SoundConfig holds asset paths for audio cues. Empty paths are silent.
type SoundConfig struct {
	Green    string `mapstructure:"green"`
	Red      string `mapstructure:"red"`
	Blue     string `mapstructure:"blue"`
	GameOver string `mapstructure:"game_over"`
}

type WindowConfig struct {
	Width    int    `mapstructure:"width"`
	Height   int    `mapstructure:"height"`
	CellSize int    `mapstructure:"cell_size"`
	Title    string `mapstructure:"title"`
	FPS      int    `mapstructure:"fps"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("arena.width", types.DefaultWidth)
	v.SetDefault("arena.height", types.DefaultHeight)
	v.SetDefault("snake.initial_length", types.DefaultInitialLength)
	v.SetDefault("snake.spawn_x", types.DefaultWidth/2)
	v.SetDefault("snake.spawn_y", types.DefaultHeight/2)
	v.SetDefault("snake.facing", types.Left.String())
	v.SetDefault("clock.base_tick", 150*time.Millisecond)
	v.SetDefault("food.green.growth", 1)
	v.SetDefault("food.red.growth", 2)
	v.SetDefault("food.red.speed_multiplier", 1.25)
	v.SetDefault("food.blue.speed_multiplier", 0.85)
	v.SetDefault("sound.green", "sounds/eat_green.wav")
	v.SetDefault("sound.red", "sounds/eat_red.wav")
	v.SetDefault("sound.blue", "sounds/eat_blue.wav")
	v.SetDefault("sound.game_over", "sounds/game_over.wav")
	v.SetDefault("window.width", 800)
	v.SetDefault("window.height", 800)
	v.SetDefault("window.cell_size", 48)
	v.SetDefault("window.title", "Snake")
	v.SetDefault("window.fps", 60)
	v.SetDefault("log.level", "info")
	v.SetDefault("seed", 0)
}

// Default returns the built-in configuration.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic("config: default values do not decode: " + err.Error())
	}
	return &cfg
}

// LoadConfig reads config.yaml from path if present, applies SNAKE_*
// environment overrides and validates the result.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("snake")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read config")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the simulation cannot start with.
func (c *Config) Validate() error {
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return errors.Wrapf(types.ErrConfiguration, "arena %dx%d", c.Arena.Width, c.Arena.Height)
	}
	if c.Arena.Width*c.Arena.Height < 4 {
		return errors.Wrapf(types.ErrConfiguration, "arena %dx%d too small for a snake and three foods", c.Arena.Width, c.Arena.Height)
	}
	if c.Snake.InitialLength <= 0 {
		return errors.Wrapf(types.ErrConfiguration, "initial length %d", c.Snake.InitialLength)
	}
	if !c.Grid().Contains(c.SpawnPoint()) {
		return errors.Wrapf(types.ErrConfiguration, "spawn %v outside arena", c.SpawnPoint())
	}
	if _, err := types.ParseDirection(c.Snake.Facing); err != nil {
		return err
	}
	if c.Clock.BaseTick <= 0 {
		return errors.Wrapf(types.ErrConfiguration, "base tick %v", c.Clock.BaseTick)
	}
	if c.Food.Green.Growth < 0 || c.Food.Red.Growth < 0 {
		return errors.Wrap(types.ErrConfiguration, "negative food growth")
	}
	if c.Food.Red.SpeedMultiplier <= 0 || c.Food.Blue.SpeedMultiplier <= 0 {
		return errors.Wrapf(types.ErrConfiguration, "speed multipliers red=%v blue=%v", c.Food.Red.SpeedMultiplier, c.Food.Blue.SpeedMultiplier)
	}
	return nil
}

func (c *Config) Grid() types.Grid {
	return types.NewGrid(c.Arena.Width, c.Arena.Height)
}

func (c *Config) SpawnPoint() types.Point {
	return types.Point{X: c.Snake.SpawnX, Y: c.Snake.SpawnY}
}

// Facing returns the configured initial heading. Call Validate first.
func (c *Config) Facing() types.Direction {
	d, _ := types.ParseDirection(c.Snake.Facing)
	return d
}

// FoodEffects maps each kind to its configured effect. Green never changes
// speed; Blue never grows the snake.
func (c *Config) FoodEffects() map[types.FoodKind]types.FoodEffect {
	return map[types.FoodKind]types.FoodEffect{
		types.Green: {Growth: c.Food.Green.Growth},
		types.Red:   {Growth: c.Food.Red.Growth, SpeedMultiplier: c.Food.Red.SpeedMultiplier},
		types.Blue:  {SpeedMultiplier: c.Food.Blue.SpeedMultiplier},
	}
}

// SoundPaths maps each food kind to its cue.
func (c *Config) SoundPaths() map[types.FoodKind]string {
	return map[types.FoodKind]string{
		types.Green: c.Sound.Green,
		types.Red:   c.Sound.Red,
		types.Blue:  c.Sound.Blue,
	}
}
