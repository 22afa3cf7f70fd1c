package ui

import (
	"net/http"
	"strings"

	"github.com/migration-world/tabmigrate/pkg/domain/model"
	"github.com/migration-world/tabmigrate/pkg/domain/types"
)

func formString(r *http.Request, key string) string {
	return strings.TrimSpace(r.FormValue(key))
}

func formBool(r *http.Request, key string) bool {
	v := strings.ToLower(formString(r, key))
	return v == "true" || v == "1" || v == "on" || v == "yes"
}

// credentialsFromForm builds the tagged credential variant from the shared
// connection fieldset
func credentialsFromForm(r *http.Request) *model.Credentials {
	creds := &model.Credentials{
		ServerURL: formString(r, "server_url"),
		SiteURL:   types.ContentURL(formString(r, "site_url")),
		Method:    model.AuthMethod(formString(r, "auth_method")),
	}
	switch creds.Method {
	case model.AuthPAT:
		creds.TokenName = formString(r, "token_name")
		creds.TokenValue = formString(r, "token_value")
	case model.AuthPassword:
		creds.Username = formString(r, "username")
		creds.Password = formString(r, "password")
	}
	return creds
}
