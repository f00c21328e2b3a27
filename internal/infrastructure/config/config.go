package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/roadready/backend/internal/store"
)

type StoreDriver string

const (
	DriverSQLite StoreDriver = "sqlite"
	DriverRedis  StoreDriver = "redis"
	DriverMemory StoreDriver = "memory"
)

// Progress holds the settings that decide where progress is kept and which
// calendar days it is counted in. Every command that touches a progress
// store reads it the same way.
type Progress struct {
	StoreDriver   StoreDriver
	SQLitePath    string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	UserID        string // namespaces the progress keys when set

	// Calendar days for streaks and the weekly series are counted here
	Location *time.Location
}

// KeyPrefix is the store namespace for UserID, empty when unset.
func (p *Progress) KeyPrefix() string {
	if p.UserID == "" {
		return ""
	}
	return "user:" + p.UserID + ":"
}

func (p *Progress) StoreOptions() store.Options {
	return store.Options{
		Driver:        string(p.StoreDriver),
		SQLitePath:    p.SQLitePath,
		RedisAddr:     p.RedisAddr,
		RedisPassword: p.RedisPassword,
		RedisDB:       p.RedisDB,
	}
}

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	Progress

	// Sessions
	PracticeQuestions    int
	ExamQuestions        int
	ExamTimeLimit        time.Duration // informational, never enforced
	SessionIdleTimeout   time.Duration
	SessionSweepInterval time.Duration
}

// Load reads the environment (and an optional .env file) and exits the
// process on invalid configuration.
func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg, err := FromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}

// LoadProgress is Load for commands that only need the progress store. It
// does not require the server settings.
func LoadProgress() *Progress {
	_ = godotenv.Load()

	p, err := ProgressFromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return p
}

// FromEnv builds a Config from the current environment.
func FromEnv() (*Config, error) {
	e := &env{}
	cfg := &Config{
		ServerAddress:        e.mustGetenv("SERVER_ADDRESS"),
		ShutdownTimeout:      e.mustGetDuration("SHUTDOWN_TIMEOUT"),
		Progress:             e.progress(),
		PracticeQuestions:    e.getInt("PRACTICE_QUESTION_COUNT", 10),
		ExamQuestions:        e.getInt("EXAM_QUESTION_COUNT", 40),
		ExamTimeLimit:        e.getDuration("EXAM_TIME_LIMIT", 45*time.Minute),
		SessionIdleTimeout:   e.getDuration("SESSION_IDLE_TIMEOUT", 2*time.Hour),
		SessionSweepInterval: e.getDuration("SESSION_SWEEP_INTERVAL", 10*time.Minute),
	}

	if cfg.PracticeQuestions <= 0 || cfg.ExamQuestions <= 0 {
		e.fail(errors.New("question counts must be positive"))
	}

	if e.err != nil {
		return nil, e.err
	}
	return cfg, nil
}

// ProgressFromEnv builds the progress settings from the current environment.
func ProgressFromEnv() (*Progress, error) {
	e := &env{}
	p := e.progress()
	if e.err != nil {
		return nil, e.err
	}
	return &p, nil
}

// env remembers the first lookup error so FromEnv can report it once.
type env struct {
	err error
}

func (e *env) fail(err error) {
	if e.err == nil {
		e.err = err
	}
}

func (e *env) progress() Progress {
	p := Progress{
		StoreDriver:   StoreDriver(strings.ToLower(getenvDefault("STORE_DRIVER", string(DriverSQLite)))),
		SQLitePath:    getenvDefault("SQLITE_PATH", "roadready.db"),
		RedisAddr:     getenvDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       e.getInt("REDIS_DB", 0),
		UserID:        os.Getenv("USER_ID"),
		Location:      e.getLocation("TIMEZONE"),
	}
	switch p.StoreDriver {
	case DriverSQLite, DriverRedis, DriverMemory:
	default:
		e.fail(fmt.Errorf("STORE_DRIVER=%q must be sqlite, redis or memory", p.StoreDriver))
	}
	return p
}

func (e *env) mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		e.fail(fmt.Errorf("required environment variable %s is not set", k))
	}
	return v
}

func (e *env) mustGetDuration(k string) time.Duration {
	v := e.mustGetenv(k)
	if v == "" {
		return 0
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		e.fail(fmt.Errorf("%s=%q is not a valid duration: %w", k, v, err))
	}
	return d
}

func (e *env) getDuration(k string, fallback time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		e.fail(fmt.Errorf("%s=%q is not a valid duration: %w", k, v, err))
	}
	return d
}

func (e *env) getInt(k string, fallback int) int {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		e.fail(fmt.Errorf("%s=%q is not an integer", k, v))
	}
	return n
}

func (e *env) getLocation(k string) *time.Location {
	v := os.Getenv(k)
	if v == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(v)
	if err != nil {
		e.fail(fmt.Errorf("%s=%q: %w", k, v, err))
		return time.Local
	}
	return loc
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}
