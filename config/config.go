package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
	ImplicitIdle          bool
	MaxProcesses          int
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads ./config.yaml once per process. Startup aborts on
// a malformed file; a missing one leaves the defaults in place.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		cfg, err := Load("")
		if err != nil {
			log.Fatalln(err)
		}
		config = cfg
	})

	return config
}

// Load reads the config file at path, or searches ./ for config.yaml when
// path is empty. SCHEDSIM_* environment variables override file values,
// e.g. SCHEDSIM_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM=4.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.implicit_idle", false)
	v.SetDefault("scheduler.max_processes", 100)

	v.SetEnvPrefix("schedsim")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		ImplicitIdle:          v.GetBool("scheduler.implicit_idle"),
		MaxProcesses:          v.GetInt("scheduler.max_processes"),
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", cfg.Port)
	}
	if cfg.RoundRobinTimeQuantum < 0 {
		return nil, fmt.Errorf("invalid round robin time quantum %d", cfg.RoundRobinTimeQuantum)
	}
	return cfg, nil
}
