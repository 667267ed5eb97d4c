package config

import (
	"fmt"
	"strings"

	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.Project.validate(); err != nil {
		return fmt.Errorf("project: %w", err)
	}

	return nil
}

func (p *ProjectConfig) validate() error {
	p.DefaultOrgCode = strings.TrimSpace(p.DefaultOrgCode)
	if p.DefaultOrgCode == "" {
		return fmt.Errorf("default_org_code must not be empty")
	}
	if strings.Contains(p.DefaultOrgCode, "/") {
		return fmt.Errorf("default_org_code must not contain '/' (got %q)", p.DefaultOrgCode)
	}
	if p.ActivityPageSize <= 0 || p.ActivityPageSize > domain.ActivityPageSize {
		return fmt.Errorf("activity_page_size must be in 1..%d (got %d)", domain.ActivityPageSize, p.ActivityPageSize)
	}
	if p.SerialRetries < 1 {
		return fmt.Errorf("serial_retries must be >= 1 (got %d)", p.SerialRetries)
	}
	if p.MaxDocumentBytes <= 0 {
		return fmt.Errorf("max_document_bytes must be > 0 (got %d)", p.MaxDocumentBytes)
	}
	return nil
}
