package config

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// defaultEntities is the built-in canonical list, used when neither
// ENTITIES nor ENTITIES_FILE is set.
var defaultEntities = []string{
	"Büro AG",
	"Büro GmbH",
	"Büro Restaurants",
	"Büro Deutschland GmbH & Co. KG",
	"Büro Offices Berlin GmbH & Co. KG",
	"Büro Offices Solutions GmbH & Co. KG",
	"Büro Offices Solutions-Berlin GmbH & Co. KG",
}

type Config struct {
	Host         string
	Port         int
	AllowOrigins []string
	LogLevel     string
	MaxUploadMB  int
	LogFile      string

	// matching
	TfidfWeight       float64
	LevenshteinWeight float64
	TokenSetWeight    float64
	DefaultTopN       int
	Entities          []string
}

func Load() (Config, error) {
	port, _ := strconv.Atoi(getenv("PORT", "8082"))
	mb, _ := strconv.Atoi(getenv("MAX_UPLOAD_MB", "64"))
	origins := strings.Split(getenv("ALLOW_ORIGINS", "*"), ",")

	cfg := Config{
		Host:         getenv("HOST", "127.0.0.1"),
		Port:         port,
		AllowOrigins: origins,
		LogLevel:     getenv("LOG_LEVEL", "info"),
		MaxUploadMB:  mb,
		LogFile:      getenv("LOG_FILE", "logs/match-service.log"),

		TfidfWeight:       getfloat("TFIDF_WEIGHT", 0.4),
		LevenshteinWeight: getfloat("LEVENSHTEIN_WEIGHT", 0.4),
		TokenSetWeight:    getfloat("TOKEN_SET_WEIGHT", 0.2),
		DefaultTopN:       atoi(getenv("DEFAULT_TOP_N", "3"), 3),
	}

	entities, err := loadEntities()
	if err != nil {
		return Config{}, err
	}
	cfg.Entities = entities

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// validate enforces the matcher preconditions the engine leaves to its
// caller: non-negative weights summing to 1, positive top-N.
func (c Config) validate() error {
	weights := map[string]float64{
		"TFIDF_WEIGHT":       c.TfidfWeight,
		"LEVENSHTEIN_WEIGHT": c.LevenshteinWeight,
		"TOKEN_SET_WEIGHT":   c.TokenSetWeight,
	}
	for name, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("config: %s must be a non-negative number, got %v", name, w)
		}
	}
	sum := c.TfidfWeight + c.LevenshteinWeight + c.TokenSetWeight
	if math.Abs(sum-1.0) > 1e-6 {
		return fmt.Errorf("config: similarity weights must sum to 1.0, got %v", sum)
	}
	if c.DefaultTopN < 1 {
		return fmt.Errorf("config: DEFAULT_TOP_N must be >= 1, got %d", c.DefaultTopN)
	}
	return nil
}

// loadEntities resolves the canonical list: ENTITIES (";"-separated) wins,
// then ENTITIES_FILE (one name per line), then the built-in default.
func loadEntities() ([]string, error) {
	if raw := os.Getenv("ENTITIES"); raw != "" {
		var out []string
		for _, e := range strings.Split(raw, ";") {
			if e = strings.TrimSpace(e); e != "" {
				out = append(out, e)
			}
		}
		return out, nil
	}
	if path := os.Getenv("ENTITIES_FILE"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("config: ENTITIES_FILE: %w", err)
		}
		defer f.Close()
		var out []string
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			if line := strings.TrimSpace(sc.Text()); line != "" {
				out = append(out, line)
			}
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("config: ENTITIES_FILE: %w", err)
		}
		return out, nil
	}
	return defaultEntities, nil
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getfloat(k string, def float64) float64 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func atoi(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
