package model_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/migration-world/tabmigrate/pkg/domain/model"
)

func TestCredentialsValidate(t *testing.T) {
	base := model.Credentials{ServerURL: "https://tableau.example.com"}

	t.Run("PAT needs name and secret", func(t *testing.T) {
		creds := base
		creds.Method = model.AuthPAT
		creds.TokenName = "automation"
		gt.Error(t, creds.Validate())

		creds.TokenValue = "secret"
		gt.NoError(t, creds.Validate())
	})

	t.Run("Password needs username and password", func(t *testing.T) {
		creds := base
		creds.Method = model.AuthPassword
		creds.Username = "admin"
		gt.Error(t, creds.Validate())

		creds.Password = "hunter2"
		gt.NoError(t, creds.Validate())
	})

	t.Run("Server URL is always required", func(t *testing.T) {
		creds := model.Credentials{
			Method:     model.AuthPAT,
			TokenName:  "automation",
			TokenValue: "secret",
		}
		gt.Error(t, creds.Validate())
	})

	t.Run("Unknown method is rejected", func(t *testing.T) {
		creds := base
		creds.Method = "oauth"
		gt.Error(t, creds.Validate())
	})
}

func TestCredentialsLogValue(t *testing.T) {
	creds := model.Credentials{
		ServerURL:  "https://tableau.example.com",
		Method:     model.AuthPAT,
		TokenName:  "automation",
		TokenValue: "super-secret-token",
		Password:   "super-secret-password",
	}

	rendered := fmt.Sprintf("%v", creds.LogValue())
	gt.False(t, strings.Contains(rendered, "super-secret-token"))
	gt.False(t, strings.Contains(rendered, "super-secret-password"))
	gt.True(t, strings.Contains(rendered, "https://tableau.example.com"))
}
