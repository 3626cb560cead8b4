// Command hexdemo lays out a hex map and draws it to a PNG, or serves
// maps over HTTP with -serve.
package main

import (
	"flag"
	"image/png"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/gogpu/hexmap"
	"github.com/gogpu/hexmap/internal/preview"
)

func main() {
	// A missing .env is fine; the environment and flags still apply.
	_ = godotenv.Load()

	cfg := defaultConfig()
	cfg.registerFlags(flag.CommandLine)
	flag.Parse()

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	hexmap.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if cfg.Serve {
		serve(cfg)
		return
	}

	if err := writePNG(cfg); err != nil {
		log.Fatalf("hexdemo: %v", err)
	}
	log.Printf("Map saved to %s (%gx%g)\n", cfg.Output, cfg.Width, cfg.Height)
}

func writePNG(cfg config) error {
	l, err := cfg.layout()
	if err != nil {
		return err
	}
	opts, err := cfg.previewOptions(l)
	if err != nil {
		return err
	}
	img, err := preview.Render(l, opts)
	if err != nil {
		return err
	}

	f, err := os.Create(cfg.Output)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func serve(cfg config) {
	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newRouter(cfg),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("listening on %s", cfg.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
