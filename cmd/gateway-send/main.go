package main

import (
	"context"
	"encoding/json"
	"flag"
	"time"

	"github.com/thelucius7/site-core/internal/config"
	"github.com/thelucius7/site-core/internal/modules/gateway/feed"
	pkgredis "github.com/thelucius7/site-core/internal/pkg/redis"
	"go.uber.org/zap"
)

// gateway-send publishes one gateway message, standing in for the blog
// backend when running the site locally.
func main() {
	configPath := flag.String("config", config.DefaultConfigPath, "Path to YAML config file")
	event := flag.String("event", feed.EventProcessUpdate, "Gateway event name")
	payload := flag.String("payload", "null", "JSON payload")
	flag.Parse()

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	var body interface{}
	if err := json.Unmarshal([]byte(*payload), &body); err != nil {
		logger.Fatal("payload is not JSON", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rc, err := pkgredis.Connect(ctx, cfg.Gateway.Redis.URLValue())
	if err != nil {
		logger.Fatal("failed to connect redis", zap.Error(err))
	}
	defer rc.Close()

	if err := feed.Publish(ctx, rc, cfg.Gateway.Channel, feed.Message{Event: *event, Payload: body}); err != nil {
		logger.Fatal("publish failed", zap.Error(err))
	}
	logger.Info("published", zap.String("event", *event), zap.String("channel", cfg.Gateway.Channel))
}
