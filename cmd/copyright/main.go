package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/thelucius7/site-core/internal/config"
	"github.com/thelucius7/site-core/internal/models"
	"github.com/thelucius7/site-core/internal/modules/post/copyright"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", config.DefaultConfigPath, "Path to YAML config file")
	owner := flag.String("owner", "", "Author name, overrides site.owner")
	webURL := flag.String("web-url", "", "Site URL, overrides site.web_url")
	asHTML := flag.Bool("html", false, "Render HTML instead of markdown")
	flag.Parse()

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}
	site := copyright.Site{Owner: cfg.Site.Owner, WebURL: cfg.Site.WebURL}
	if *owner != "" {
		site.Owner = *owner
	}
	if *webURL != "" {
		site.WebURL = *webURL
	}

	post, err := readPost(flag.Arg(0))
	if err != nil {
		logger.Fatal("failed to read post", zap.Error(err))
	}

	notice, ok := copyright.Build(site, post)
	if !ok {
		logger.Info("no copyright notice for this post", zap.String("slug", post.Slug))
		return
	}
	out := notice.Markdown()
	if *asHTML {
		if out, err = notice.HTML(); err != nil {
			logger.Fatal("failed to render notice", zap.Error(err))
		}
	}
	fmt.Print(out)
}

// readPost decodes a post from path, or from stdin when path is empty or "-".
func readPost(path string) (*models.PostModel, error) {
	var r io.Reader = os.Stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	var post models.PostModel
	if err := json.NewDecoder(r).Decode(&post); err != nil {
		return nil, fmt.Errorf("decode post: %w", err)
	}
	return &post, nil
}
