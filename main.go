package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v2"

	qhttp "studentrisk/http"
	"studentrisk/logging"
	"studentrisk/ml"
	"studentrisk/monitoring"
	"studentrisk/predict"
)

type Config struct {
	Http struct {
		Port           int      `yaml:"port"`
		TimeoutSeconds int      `yaml:"timeout_seconds"`
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"http"`
	Log struct {
		Level      string `yaml:"level"`
		Path       string `yaml:"path"`
		MaxSizeMB  int    `yaml:"max_size_mb"`
		MaxBackups int    `yaml:"max_backups"`
		MaxAgeDays int    `yaml:"max_age_days"`
	} `yaml:"log"`
	Models struct {
		Dir          string `yaml:"dir"`
		Scaler       string `yaml:"scaler"`
		Logistic     string `yaml:"logistic"`
		DecisionTree string `yaml:"decision_tree"`
		Watch        bool   `yaml:"watch"`
	} `yaml:"models"`
	Cache struct {
		Size int `yaml:"size"`
	} `yaml:"cache"`
}

func main() {
	// 1. Load config
	config, err := loadConfig("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(logging.Config{
		Level:      config.Log.Level,
		Path:       config.Log.Path,
		MaxSizeMB:  config.Log.MaxSizeMB,
		MaxBackups: config.Log.MaxBackups,
		MaxAgeDays: config.Log.MaxAgeDays,
	})
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	// 2. Load model artifacts once at startup
	paths := ml.ArtifactPaths{
		Scaler:       config.Models.Scaler,
		Logistic:     config.Models.Logistic,
		DecisionTree: config.Models.DecisionTree,
	}.Resolve(config.Models.Dir)

	store, err := ml.NewStore(paths, predict.FeatureCount)
	if err != nil {
		logger.Fatal("failed to load model artifacts", zap.Error(err))
	}
	logger.Info("model artifacts loaded", zap.String("dir", config.Models.Dir))

	if config.Models.Watch {
		watcher, err := ml.NewWatcher(store, logger, monitoring.ModelReloads.Inc)
		if err != nil {
			logger.Fatal("failed to watch model artifacts", zap.Error(err))
		}
		defer watcher.Close()
	}

	// 3. Start event feed and prediction service
	hub := monitoring.NewHub(logger)
	go hub.Run()
	defer hub.Stop()

	service, err := predict.NewService(store, config.Cache.Size, hub, logger)
	if err != nil {
		logger.Fatal("failed to build prediction service", zap.Error(err))
	}

	// 4. Start HTTP server
	serverConfig := qhttp.DefaultServerConfig()
	if config.Http.Port > 0 {
		serverConfig.Port = config.Http.Port
	}
	if config.Http.TimeoutSeconds > 0 {
		serverConfig.Timeout = time.Duration(config.Http.TimeoutSeconds) * time.Second
	}
	if len(config.Http.AllowedOrigins) > 0 {
		serverConfig.AllowedOrigins = config.Http.AllowedOrigins
	}

	server := qhttp.NewServer(serverConfig, service, hub, logger)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// 5. Handle graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	if err := server.Stop(); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}

	logger.Info("exiting")
}

func loadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var config Config
	if err := yaml.NewDecoder(file).Decode(&config); err != nil {
		return nil, err
	}
	return &config, nil
}
