package model

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/migration-world/tabmigrate/pkg/domain/types"
)

// AuthMethod distinguishes the two credential kinds accepted by SignIn
type AuthMethod string

const (
	// AuthPAT authenticates with a personal access token (name + secret)
	AuthPAT AuthMethod = "pat"
	// AuthPassword authenticates with username and password
	AuthPassword AuthMethod = "password"
)

// Credentials is a tagged variant of the two credential kinds plus the
// connection target. Exactly one pair of fields is used depending on Method.
type Credentials struct {
	ServerURL  string
	SiteURL    types.ContentURL
	Method     AuthMethod
	TokenName  string
	TokenValue string
	Username   string
	Password   string
}

// Validate checks that the fields required by the selected method are present
func (c *Credentials) Validate() error {
	if c.ServerURL == "" {
		return goerr.Wrap(ErrMissingField, "server URL is required")
	}
	switch c.Method {
	case AuthPAT:
		if c.TokenName == "" || c.TokenValue == "" {
			return goerr.Wrap(ErrMissingField, "PAT name and secret are required")
		}
	case AuthPassword:
		if c.Username == "" || c.Password == "" {
			return goerr.Wrap(ErrMissingField, "username and password are required")
		}
	default:
		return goerr.New("unknown auth method", goerr.V("method", c.Method))
	}
	return nil
}

// LogValue returns structured log value without credential material
func (c Credentials) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("server_url", c.ServerURL),
		slog.String("site_url", c.SiteURL.String()),
		slog.String("method", string(c.Method)),
		slog.Bool("has_token", c.TokenValue != ""),
		slog.Bool("has_password", c.Password != ""),
	)
}
