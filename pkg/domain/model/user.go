package model

import (
	"time"

	"github.com/migration-world/tabmigrate/pkg/domain/types"
)

// User represents a Tableau site user. Field values are held only transiently
// between a REST call and a CSV/HTML render; the remote server is the sole
// source of truth and sole validator.
type User struct {
	ID                   types.UserID   `json:"id,omitempty"`
	Name                 string         `json:"name"`
	SiteRole             types.SiteRole `json:"siteRole"`
	FullName             string         `json:"fullName,omitempty"`
	Email                string         `json:"email,omitempty"`
	AuthSetting          string         `json:"authSetting,omitempty"`
	ExternalAuthUserID   string         `json:"externalAuthUserId,omitempty"`
	Locale               string         `json:"locale,omitempty"`
	Password             string         `json:"password,omitempty"`
	PasswordNeverExpires string         `json:"passwordNeverExpires,omitempty"`
	MustChangePassword   string         `json:"mustChangePassword,omitempty"`
	ContentAdmin         string         `json:"contentAdmin,omitempty"`
	ServerRole           string         `json:"serverRole,omitempty"`
	Tags                 string         `json:"tags,omitempty"`
	LastLogin            time.Time      `json:"lastLogin,omitempty"`
}
