package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadWith_Defaults(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": "s3cret",
	}))
	if err != nil {
		t.Fatalf("LoadWith: %v", err)
	}
	if cfg.Port != "8080" || cfg.StoreDriver != StoreMongo || cfg.TokenTTL != 12*time.Hour {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Mongo.Database != "wedding_rsvp" || cfg.SQLite.Path != "wedding.db" || cfg.ActivityWorkers != 4 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadWith_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"missing secret": {},
		"unknown driver": {"JWT_SECRET": "x", "STORE_DRIVER": "postgres"},
		"half admin":     {"JWT_SECRET": "x", "ADMIN_USERNAME": "admin"},
	}
	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadWith(context.Background(), envconfig.MapLookuper(env)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestLoadWith_SQLite(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":   "x",
		"STORE_DRIVER": "sqlite",
		"SQLITE_PATH":  "/tmp/w.db",
		"TOKEN_TTL":    "30m",
	}))
	if err != nil {
		t.Fatalf("LoadWith: %v", err)
	}
	if cfg.SQLite.Path != "/tmp/w.db" || cfg.TokenTTL != 30*time.Minute {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}
