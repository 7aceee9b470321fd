package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"DB_PATH", "PORT", "LOG_LEVEL", "HISTORY_KEY", "MAX_IMAGE_BYTES"} {
		t.Setenv(key, "")
	}
	t.Chdir(t.TempDir())

	cfg := Load()

	if cfg.DBPath != "./candles.db" || cfg.Port != "8080" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.HistoryKey != "candle_calc_history_v2" {
		t.Fatalf("HistoryKey=%q", cfg.HistoryKey)
	}
	if cfg.MaxImageBytes != 5<<20 {
		t.Fatalf("MaxImageBytes=%d", cfg.MaxImageBytes)
	}
}

func TestLoad_ReadsEnvironment(t *testing.T) {
	t.Setenv("DB_PATH", "/tmp/other.db")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("HISTORY_KEY", "custom")
	t.Setenv("MAX_IMAGE_BYTES", "1024")
	t.Chdir(t.TempDir())

	cfg := Load()

	if cfg.DBPath != "/tmp/other.db" || cfg.Port != "9090" || cfg.LogLevel != "debug" || cfg.HistoryKey != "custom" || cfg.MaxImageBytes != 1024 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoad_InvalidImageLimitFallsBack(t *testing.T) {
	t.Setenv("MAX_IMAGE_BYTES", "lots")
	t.Chdir(t.TempDir())

	if got := Load().MaxImageBytes; got != 5<<20 {
		t.Fatalf("MaxImageBytes=%d, want default", got)
	}
}
