package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolvePaths_ResolvesConfigAndCacheDirectories(t *testing.T) {
	configHome := filepath.Join(t.TempDir(), "cfg")
	cacheHome := filepath.Join(t.TempDir(), "cache")
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_CACHE_HOME", cacheHome)

	paths, err := ResolvePaths()
	if err != nil {
		t.Fatalf("resolve paths: %v", err)
	}

	if paths.RootDir != filepath.Join(configHome, Name) {
		t.Fatalf("unexpected root dir: %q", paths.RootDir)
	}
	if paths.CacheDir != filepath.Join(cacheHome, Name) {
		t.Fatalf("unexpected cache dir: %q", paths.CacheDir)
	}
	if paths.DBFile != filepath.Join(cacheHome, Name, DBFilename) {
		t.Fatalf("expected database in cache dir, got %q", paths.DBFile)
	}
	if paths.ConfigFile != filepath.Join(configHome, Name, ConfigFilename) {
		t.Fatalf("unexpected config file: %q", paths.ConfigFile)
	}
	for _, dir := range []string{paths.RootDir, paths.CacheDir} {
		if _, err := os.Stat(dir); err != nil {
			t.Fatalf("expected %s to exist: %v", dir, err)
		}
	}
}

func TestPathsWithOverrides(t *testing.T) {
	base := Paths{ConfigFile: "a.json", DBFile: "a.db", LogFile: "a.log"}

	got := base.WithOverrides("b.json", "", "b.log")
	if got.ConfigFile != "b.json" || got.DBFile != "a.db" || got.LogFile != "b.log" {
		t.Fatalf("unexpected overrides result: %+v", got)
	}
	if base.ConfigFile != "a.json" {
		t.Fatalf("expected original paths to stay untouched")
	}
}
