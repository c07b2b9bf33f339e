package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"table-finder/internal/domain/outline"
)

type Config struct {
	TelegramToken string
	DBPath        string // пустой путь означает хранение в памяти

	MaxSide          int // изображения крупнее приводятся к этой стороне, 0 — без масштабирования
	MinSegmentLength float64
	KernelDivisor    int
	AreaFactor       float64
	ProximityFactor  float64
	DistanceWeight   float64
	LengthWeight     float64
	CornerWeight     float64

	Trace bool
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	defaults := outline.DefaultParams()
	env := &envReader{}

	cfg := &Config{
		TelegramToken: getEnv("TELEGRAM_TOKEN", ""),
		DBPath:        getEnv("DB_PATH", ""),

		MaxSide:          env.getEnvAsInt("MAX_SIDE", 2000),
		MinSegmentLength: env.getEnvAsFloat("MIN_SEGMENT_LENGTH", 20),
		KernelDivisor:    env.getEnvAsInt("KERNEL_DIVISOR", 40),
		AreaFactor:       env.getEnvAsFloat("AREA_FACTOR", defaults.AreaFactor),
		ProximityFactor:  env.getEnvAsFloat("PROXIMITY_FACTOR", defaults.ProximityFactor),
		DistanceWeight:   env.getEnvAsFloat("DISTANCE_WEIGHT", defaults.Weights.Distance),
		LengthWeight:     env.getEnvAsFloat("LENGTH_WEIGHT", defaults.Weights.Length),
		CornerWeight:     env.getEnvAsFloat("CORNER_WEIGHT", defaults.Weights.Corner),

		Trace: env.getEnvAsBool("TRACE", false),
	}

	if err := errors.Join(env.errs...); err != nil {
		return nil, err
	}
	if cfg.MaxSide < 0 {
		return nil, fmt.Errorf("MAX_SIDE must not be negative, got %d", cfg.MaxSide)
	}
	if cfg.KernelDivisor <= 0 {
		return nil, fmt.Errorf("KERNEL_DIVISOR must be positive, got %d", cfg.KernelDivisor)
	}

	return cfg, nil
}

// Params собирает параметры поиска таблицы из конфигурации.
func (c *Config) Params() outline.Params {
	return outline.Params{
		MinSegmentLength: c.MinSegmentLength,
		AreaFactor:       c.AreaFactor,
		ProximityFactor:  c.ProximityFactor,
		Weights: outline.Weights{
			Distance: c.DistanceWeight,
			Length:   c.LengthWeight,
			Corner:   c.CornerWeight,
		},
	}
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

// envReader копит ошибки разбора, чтобы сообщить обо всех неверных переменных сразу.
type envReader struct {
	errs []error
}

func (r *envReader) getEnvAsInt(key string, defaultVal int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultVal
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: invalid integer %q", key, value))
		return defaultVal
	}
	return intVal
}

func (r *envReader) getEnvAsFloat(key string, defaultVal float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultVal
	}
	floatVal, err := strconv.ParseFloat(value, 64)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: invalid number %q", key, value))
		return defaultVal
	}
	return floatVal
}

func (r *envReader) getEnvAsBool(key string, defaultVal bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultVal
	}
	boolVal, err := strconv.ParseBool(value)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: invalid boolean %q", key, value))
		return defaultVal
	}
	return boolVal
}
