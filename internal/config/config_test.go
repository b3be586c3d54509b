package config

import "testing"

func baseConfig() Config {
	return Config{
		Port:       "8460",
		DBHost:     "localhost",
		DBPort:     "5432",
		DBUser:     "user",
		DBPassword: "password",
		DBName:     "linkhive",
		DBSSLMode:  "disable",
		Env:        "development",
	}
}

func TestValidateDevelopmentDefaults(t *testing.T) {
	cfg := baseConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("development defaults must validate: %v", err)
	}
}

func TestValidateRequiresPort(t *testing.T) {
	cfg := baseConfig()
	cfg.Port = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing PORT")
	}
}

func TestValidateAdminBootstrapNeedsPassword(t *testing.T) {
	cfg := baseConfig()
	cfg.AdminBootstrap = true
	if err := cfg.Validate(); err == nil {
		t.Error("expected error when ADMIN_BOOTSTRAP is set without ADMIN_PASSWORD")
	}

	cfg.AdminPassword = "devadminpass1"
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestValidateProductionStrictness(t *testing.T) {
	cfg := baseConfig()
	cfg.Env = "production"

	if err := cfg.Validate(); err == nil {
		t.Error("expected error for default DB password in production")
	}

	cfg.DBPassword = "a-strong-password"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for sslmode=disable in production")
	}

	cfg.DBSSLMode = "require"
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid production config, got %v", err)
	}

	cfg.AdminBootstrap = true
	cfg.AdminPassword = "short1"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for short admin password in production")
	}

	cfg.AdminPassword = "long-enough-admin-pass1"
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}
