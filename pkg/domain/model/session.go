package model

import "github.com/migration-world/tabmigrate/pkg/domain/types"

// Session represents an authenticated sign-in against one site. It is opened
// and closed once per handler invocation; there is no reuse or pooling.
type Session struct {
	ServerURL string
	Token     string
	SiteID    types.SiteID
}
