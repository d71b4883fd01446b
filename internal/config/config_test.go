package config

import (
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	c := Load()
	if c.AppPort != "8080" {
		t.Errorf("AppPort = %q", c.AppPort)
	}
	if c.IdempTTLSecs != 300 {
		t.Errorf("IdempTTLSecs = %d", c.IdempTTLSecs)
	}
	if c.StatusCacheTTLSecs != 60 {
		t.Errorf("StatusCacheTTLSecs = %d", c.StatusCacheTTLSecs)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("IDEMPOTENCY_TTL_SECONDS", "42")

	c := Load()
	if c.AppPort != "9090" {
		t.Errorf("AppPort = %q", c.AppPort)
	}
	if c.RedisDB != 3 {
		t.Errorf("RedisDB = %d", c.RedisDB)
	}
	if c.IdempTTLSecs != 42 {
		t.Errorf("IdempTTLSecs = %d", c.IdempTTLSecs)
	}
}

func TestValidate_BadPort(t *testing.T) {
	t.Setenv("MYSQL_PORT", "not-a-port")
	c := Load()
	err := c.Validate()
	if err == nil || !strings.Contains(err.Error(), "MYSQL_PORT") {
		t.Fatalf("Validate = %v", err)
	}
}

func TestMySQLDSN_Shape(t *testing.T) {
	t.Setenv("MYSQL_HOST", "db.internal")
	t.Setenv("MYSQL_PORT", "3307")
	c := Load()
	dsn := c.MySQLDSN()
	if !strings.Contains(dsn, "@tcp(db.internal:3307)/") {
		t.Errorf("dsn = %q", dsn)
	}
	if !strings.Contains(dsn, "parseTime=true") {
		t.Errorf("dsn missing parseTime: %q", dsn)
	}
}
