package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"devkwon.dev/internal/config"
	"devkwon.dev/internal/view"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: render <output-dir>")
		fmt.Println("       writes index.html and static/ for hosting without the server")
		os.Exit(1)
	}

	if err := run(context.Background(), os.Args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Done!")
}

func run(ctx context.Context, outputDir string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	renderer, err := view.NewRenderer(cfg.Page, view.WithClock(cfg.Clock))
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	path := filepath.Join(outputDir, "index.html")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := renderer.Render(ctx, f); err != nil {
		f.Close()
		return fmt.Errorf("render page: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Printf("  Created %s\n", path)

	staticDir := filepath.Join(outputDir, "static")
	if err := os.RemoveAll(staticDir); err != nil {
		return fmt.Errorf("clear %s: %w", staticDir, err)
	}
	if err := os.CopyFS(staticDir, view.Static()); err != nil {
		return fmt.Errorf("copy static assets: %w", err)
	}
	fmt.Printf("  Copied assets to %s\n", staticDir)

	return nil
}
