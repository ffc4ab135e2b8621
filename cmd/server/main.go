package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"farmstead/internal/config"
	"farmstead/internal/serverapp"
)

func main() {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	addr := flag.String("addr", ":8764", "listen address")
	configPath := flag.String("config", envOr("FARMSTEAD_CONFIG", ""), "path to yaml config (optional)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	handler, err := serverapp.NewHandler(serverapp.Options{
		Config: cfg,
		Logger: log.Default(),
	})
	if err != nil {
		log.Fatalf("build server: %v", err)
	}

	log.Printf("farmstead listening on http://localhost%s", *addr)
	log.Fatal(http.ListenAndServe(*addr, handler))
}

// loadConfig prefers an explicit yaml file; without one, defaults plus
// FARMSTEAD_* env overrides apply.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		cfg := config.NewConfig()
		cfg.ApplyBalance(config.FromEnv())
		return cfg, nil
	}
	return config.Load(path)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
