// Package entity contains the core business objects of the catalog sync service.
package entity

import (
	"fmt"
	"log/slog"
)

// Credentials are the remote API login. They are never persisted or serialised.
type Credentials struct {
	Username string `json:"-"`
	Password string `json:"-"`
}

// IsZero reports whether either half of the login is missing.
func (c Credentials) IsZero() bool {
	return c.Username == "" || c.Password == ""
}

// String hides the password.
func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{Username: %q, Password: [REDACTED]}", c.Username)
}

// LogValue implements slog.LogValuer.
func (c Credentials) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("username", c.Username),
		slog.String("password", "[REDACTED]"),
	)
}

// SessionToken is the opaque bearer token issued by the remote API.
// It lives for a single sync cycle.
type SessionToken string

// IsZero reports whether no token was issued.
func (t SessionToken) IsZero() bool {
	return t == ""
}

// LogValue implements slog.LogValuer.
func (t SessionToken) LogValue() slog.Value {
	if t.IsZero() {
		return slog.StringValue("")
	}

	return slog.StringValue("[REDACTED]")
}

// Tenant is the company selected after login. LogoURL and Description are optional.
type Tenant struct {
	ID          int    `json:"companyId"`
	Name        string `json:"name"`
	Database    string `json:"database"`
	LogoURL     string `json:"logoUrl,omitempty"`
	Description string `json:"description,omitempty"`
}

// Key returns the snapshot key for the tenant.
func (t *Tenant) Key() string {
	return TenantKey(t.ID)
}

// TenantKey builds the snapshot key for a company id.
func TenantKey(companyID int) string {
	return fmt.Sprintf("company-%d", companyID)
}
