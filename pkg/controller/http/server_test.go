package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	controller "github.com/migration-world/tabmigrate/pkg/controller/http"
	"github.com/migration-world/tabmigrate/pkg/controller/ui"
	"github.com/migration-world/tabmigrate/pkg/domain/interfaces/mocks"
	"github.com/migration-world/tabmigrate/pkg/domain/model"
	"github.com/migration-world/tabmigrate/pkg/domain/types"
	"github.com/migration-world/tabmigrate/pkg/usecase"
)

func newTestServer(t *testing.T, client *mocks.TableauClientMock) *httptest.Server {
	t.Helper()

	handler := ui.NewHandler(
		usecase.NewExport(client),
		usecase.NewImport(client),
		usecase.NewConvert(),
		usecase.NewTransfer(client, usecase.WithTempDir(t.TempDir())),
		ui.ConnectionDefaults{ServerURL: "https://tableau.example.com"},
	)

	server := controller.NewServer(context.Background(), "localhost:0", handler)
	srv := httptest.NewServer(server.Handler)
	t.Cleanup(srv.Close)
	return srv
}

func newMockClient() *mocks.TableauClientMock {
	return &mocks.TableauClientMock{
		SignInFunc: func(ctx context.Context, creds *model.Credentials) (*model.Session, error) {
			return &model.Session{ServerURL: creds.ServerURL, Token: "token", SiteID: "site-1"}, nil
		},
		SignOutFunc: func(ctx context.Context, sess *model.Session) error {
			return nil
		},
	}
}

func connectionForm() url.Values {
	return url.Values{
		"server_url":  {"https://tableau.example.com"},
		"auth_method": {"pat"},
		"token_name":  {"automation"},
		"token_value": {"secret"},
	}
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t, newMockClient())

	resp, err := http.Get(srv.URL + "/health")
	gt.NoError(t, err)
	defer resp.Body.Close()
	gt.Equal(t, resp.StatusCode, http.StatusOK)

	var body map[string]string
	gt.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	gt.Equal(t, body["status"], "healthy")
	gt.Equal(t, body["service"], "tabmigrate")
}

func TestPagesRender(t *testing.T) {
	srv := newTestServer(t, newMockClient())

	paths := []string{"/", "/export", "/import", "/convert", "/download", "/upload"}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			resp, err := http.Get(srv.URL + path)
			gt.NoError(t, err)
			defer resp.Body.Close()
			gt.Equal(t, resp.StatusCode, http.StatusOK)
			gt.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html"))
		})
	}
}

func TestExportDownload(t *testing.T) {
	client := newMockClient()
	client.ListUsersFunc = func(ctx context.Context, sess *model.Session) ([]*model.User, error) {
		return []*model.User{
			{Name: "alice", SiteRole: "Creator", Email: "alice@example.com"},
		}, nil
	}
	srv := newTestServer(t, client)

	resp, err := http.PostForm(srv.URL+"/export/users", connectionForm())
	gt.NoError(t, err)
	defer resp.Body.Close()
	gt.Equal(t, resp.StatusCode, http.StatusOK)
	gt.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/csv"))
	gt.True(t, strings.Contains(resp.Header.Get("Content-Disposition"), `filename="users.csv"`))

	body, err := io.ReadAll(resp.Body)
	gt.NoError(t, err)
	gt.True(t, strings.Contains(string(body), "alice"))
}

func TestExportFailureRendersErrorPage(t *testing.T) {
	client := newMockClient()
	client.SignInFunc = func(ctx context.Context, creds *model.Credentials) (*model.Session, error) {
		return nil, model.ErrMissingField
	}
	srv := newTestServer(t, client)

	resp, err := http.PostForm(srv.URL+"/export/users", connectionForm())
	gt.NoError(t, err)
	defer resp.Body.Close()

	// Failures render as a page, not a download
	gt.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html"))
	gt.Equal(t, resp.Header.Get("Content-Disposition"), "")
}

func multipartBody(t *testing.T, fields map[string]string, fileField, filename string, fileData []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for k, v := range fields {
		gt.NoError(t, writer.WriteField(k, v))
	}
	part, err := writer.CreateFormFile(fileField, filename)
	gt.NoError(t, err)
	_, err = part.Write(fileData)
	gt.NoError(t, err)
	gt.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestImportSubmit(t *testing.T) {
	t.Run("Users CSV creates users and shows a report", func(t *testing.T) {
		client := newMockClient()
		client.AddUserFunc = func(ctx context.Context, sess *model.Session, user *model.User) (*model.User, error) {
			return user, nil
		}
		srv := newTestServer(t, client)

		body, contentType := multipartBody(t, map[string]string{
			"server_url":  "https://tableau.example.com",
			"auth_method": "pat",
			"token_name":  "automation",
			"token_value": "secret",
			"import_type": "users",
		}, "file", "users.csv", []byte("Name,Site Role\nalice,Viewer\n"))

		resp, err := http.Post(srv.URL+"/import", contentType, body)
		gt.NoError(t, err)
		defer resp.Body.Close()
		gt.Equal(t, resp.StatusCode, http.StatusOK)

		page, err := io.ReadAll(resp.Body)
		gt.NoError(t, err)
		gt.True(t, strings.Contains(string(page), "Created"))

		calls := client.AddUserCalls()
		gt.Equal(t, len(calls), 1)
		gt.Equal(t, calls[0].User.Name, "alice")
	})

	t.Run("Missing file renders a warning, no connection made", func(t *testing.T) {
		client := newMockClient()
		srv := newTestServer(t, client)

		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		for k, v := range connectionForm() {
			gt.NoError(t, writer.WriteField(k, v[0]))
		}
		gt.NoError(t, writer.Close())

		resp, err := http.Post(srv.URL+"/import", writer.FormDataContentType(), &buf)
		gt.NoError(t, err)
		defer resp.Body.Close()
		gt.Equal(t, resp.StatusCode, http.StatusOK)

		page, err := io.ReadAll(resp.Body)
		gt.NoError(t, err)
		gt.True(t, strings.Contains(string(page), "upload a CSV file"))
		gt.Equal(t, len(client.SignInCalls()), 0)
	})
}

func TestConvertSubmit(t *testing.T) {
	srv := newTestServer(t, newMockClient())

	body, contentType := multipartBody(t, nil, "file", "roster.csv",
		[]byte("Email,Site Role\nalice@example.com,SiteAdministratorCreator\n"))

	resp, err := http.Post(srv.URL+"/convert", contentType, body)
	gt.NoError(t, err)
	defer resp.Body.Close()
	gt.Equal(t, resp.StatusCode, http.StatusOK)
	gt.True(t, strings.Contains(resp.Header.Get("Content-Disposition"), `filename="converted_users.csv"`))

	csvBody, err := io.ReadAll(resp.Body)
	gt.NoError(t, err)
	gt.Equal(t, strings.TrimSpace(string(csvBody)), "alice@example.com,,,Creator,site,True")
}

func TestUploadSubmit(t *testing.T) {
	client := newMockClient()
	client.ListProjectsFunc = func(ctx context.Context, sess *model.Session) ([]*model.Project, error) {
		return []*model.Project{{ID: "p-1", Name: "Finance"}}, nil
	}
	client.PublishWorkbookFunc = func(ctx context.Context, sess *model.Session, projectID types.ProjectID, name, path string, overwrite bool) (*model.Workbook, error) {
		return &model.Workbook{Name: name}, nil
	}
	srv := newTestServer(t, client)

	body, contentType := multipartBody(t, map[string]string{
		"server_url":   "https://tableau.example.com",
		"auth_method":  "pat",
		"token_name":   "automation",
		"token_value":  "secret",
		"project_mode": "existing",
		"project":      "Finance",
	}, "files", "report.twbx", []byte("workbook-bytes"))

	resp, err := http.Post(srv.URL+"/upload", contentType, body)
	gt.NoError(t, err)
	defer resp.Body.Close()
	gt.Equal(t, resp.StatusCode, http.StatusOK)

	calls := client.PublishWorkbookCalls()
	gt.Equal(t, len(calls), 1)
	gt.Equal(t, calls[0].Name, "report")
}
