package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nikogura/folio/pkg/config"
	"github.com/nikogura/folio/pkg/content"
	"github.com/nikogura/folio/pkg/page"
	"go.uber.org/zap"
)

func TestBuildWritesSite(t *testing.T) {
	dir := t.TempDir()
	contentPath := filepath.Join(dir, "portfolio.yaml")

	err := content.WriteSample(contentPath)
	if err != nil {
		t.Fatalf("WriteSample failed: %v", err)
	}

	cfg := config.DefaultConfig()
	cfg.Content = contentPath
	outDir := filepath.Join(dir, "public")

	err = build(context.Background(), cfg, outDir, zap.NewNop())
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	index, err := os.ReadFile(filepath.Join(outDir, "index.html"))
	if err != nil {
		t.Fatalf("Expected index.html: %v", err)
	}
	if !strings.HasPrefix(string(index), "<!DOCTYPE html>") {
		t.Errorf("Expected html document, got %q", string(index[:min(len(index), 40)]))
	}
	if !strings.Contains(string(index), page.ScriptName) {
		t.Error("Expected index.html to reference the client script")
	}

	script, err := os.ReadFile(filepath.Join(outDir, page.ScriptName))
	if err != nil {
		t.Fatalf("Expected %s: %v", page.ScriptName, err)
	}
	if len(script) == 0 {
		t.Error("Expected non-empty client script")
	}
}

func TestBuildMissingContent(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Content = filepath.Join(t.TempDir(), "missing.yaml")

	err := build(context.Background(), cfg, t.TempDir(), zap.NewNop())
	if err == nil {
		t.Error("Expected error for missing content file")
	}
}

func TestGetOutputDir(t *testing.T) {
	tests := []struct {
		name   string
		flag   string
		config string
		want   string
	}{
		{name: "flag wins", flag: "out", config: "public", want: "out"},
		{name: "config fallback", flag: "", config: "public", want: "public"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := getOutputDir(tt.flag, tt.config); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}
