package tableau

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/migration-world/tabmigrate/pkg/domain/interfaces"
	"github.com/migration-world/tabmigrate/pkg/domain/model"
	"github.com/migration-world/tabmigrate/pkg/domain/types"
)

const (
	defaultAPIVersion = "3.22"
	pageSize          = 100
)

// Client is a typed REST client for Tableau Server / Tableau Cloud. It holds
// no session state; SignIn returns a Session that every other call requires.
type Client struct {
	httpClient *http.Client
	apiVersion string
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithAPIVersion overrides the REST API version segment
func WithAPIVersion(v string) Option {
	return func(c *Client) {
		c.apiVersion = v
	}
}

// New creates a new Tableau REST client
func New(opts ...Option) interfaces.TableauClient {
	c := &Client{
		httpClient: &http.Client{Timeout: 5 * time.Minute},
		apiVersion: defaultAPIVersion,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) endpoint(serverURL string, pathParts ...string) (string, error) {
	base, err := url.Parse(serverURL)
	if err != nil {
		return "", goerr.Wrap(err, "invalid server URL", goerr.V("url", serverURL))
	}
	parts := append([]string{"api", c.apiVersion}, pathParts...)
	return base.JoinPath(parts...).String(), nil
}

// do issues a JSON request and decodes the response into out (if non-nil)
func (c *Client) do(ctx context.Context, method, uri, token string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return goerr.Wrap(err, "failed to encode request body")
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, uri, reqBody)
	if err != nil {
		return goerr.Wrap(err, "failed to create request", goerr.V("uri", uri))
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("X-Tableau-Auth", token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "request failed", goerr.V("uri", uri))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return goerr.Wrap(err, "failed to decode response", goerr.V("uri", uri))
	}
	return nil
}

// decodeError maps a non-2xx response to a goerr with the server's summary
func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var apiErr apiError
	if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Error.Summary != "" {
		return goerr.New(fmt.Sprintf("%s: %s", apiErr.Error.Summary, apiErr.Error.Detail),
			goerr.V("status", resp.StatusCode),
			goerr.V("code", apiErr.Error.Code),
		)
	}
	return goerr.New("server returned error",
		goerr.V("status", resp.StatusCode),
		goerr.V("body", strings.TrimSpace(string(raw))),
	)
}

// SignIn authenticates with either credential kind and opens a site session
func (c *Client) SignIn(ctx context.Context, creds *model.Credentials) (*model.Session, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	req := signInRequest{}
	req.Credentials.Site = siteRef{ContentURL: creds.SiteURL.String()}
	switch creds.Method {
	case model.AuthPAT:
		req.Credentials.PersonalAccessTokenName = creds.TokenName
		req.Credentials.PersonalAccessTokenSecret = creds.TokenValue
	case model.AuthPassword:
		req.Credentials.Name = creds.Username
		req.Credentials.Password = creds.Password
	}

	uri, err := c.endpoint(creds.ServerURL, "auth", "signin")
	if err != nil {
		return nil, err
	}

	var resp signInResponse
	if err := c.do(ctx, http.MethodPost, uri, "", req, &resp); err != nil {
		return nil, goerr.Wrap(err, "sign in failed", goerr.V("server", creds.ServerURL))
	}

	ctxlog.From(ctx).Debug("Signed in to Tableau",
		"server", creds.ServerURL,
		"site", resp.Credentials.Site.ID,
	)

	return &model.Session{
		ServerURL: creds.ServerURL,
		Token:     resp.Credentials.Token,
		SiteID:    types.SiteID(resp.Credentials.Site.ID),
	}, nil
}

// SignOut invalidates the session token
func (c *Client) SignOut(ctx context.Context, sess *model.Session) error {
	uri, err := c.endpoint(sess.ServerURL, "auth", "signout")
	if err != nil {
		return err
	}
	if err := c.do(ctx, http.MethodPost, uri, sess.Token, nil, nil); err != nil {
		return goerr.Wrap(err, "sign out failed")
	}
	return nil
}

// listPages fetches every page of a site collection endpoint and hands the
// raw body of each page to collect, which reports how many items it added
// and how many are available in total.
func (c *Client) listPages(ctx context.Context, sess *model.Session, resource string, collect func(body io.Reader) (int, int, error)) error {
	for page := 1; ; page++ {
		uri, err := c.endpoint(sess.ServerURL, "sites", sess.SiteID.String(), resource)
		if err != nil {
			return err
		}
		uri += fmt.Sprintf("?pageSize=%d&pageNumber=%d", pageSize, page)

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
		if err != nil {
			return goerr.Wrap(err, "failed to create request", goerr.V("uri", uri))
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("X-Tableau-Auth", sess.Token)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return goerr.Wrap(err, "request failed", goerr.V("uri", uri))
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			err := decodeError(resp)
			resp.Body.Close()
			return err
		}

		added, total, err := collect(resp.Body)
		resp.Body.Close()
		if err != nil {
			return goerr.Wrap(err, "failed to decode page", goerr.V("resource", resource), goerr.V("page", page))
		}
		if added == 0 || page*pageSize >= total {
			return nil
		}
	}
}

// ListUsers fetches all users of the site
func (c *Client) ListUsers(ctx context.Context, sess *model.Session) ([]*model.User, error) {
	var users []*model.User
	err := c.listPages(ctx, sess, "users", func(body io.Reader) (int, int, error) {
		var env usersEnvelope
		if err := json.NewDecoder(body).Decode(&env); err != nil {
			return 0, 0, err
		}
		for _, u := range env.Users.User {
			users = append(users, u.toModel())
		}
		return len(env.Users.User), env.Pagination.TotalAvailable, nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list users")
	}
	return users, nil
}

// ListGroups fetches all groups of the site
func (c *Client) ListGroups(ctx context.Context, sess *model.Session) ([]*model.Group, error) {
	var groups []*model.Group
	err := c.listPages(ctx, sess, "groups", func(body io.Reader) (int, int, error) {
		var env groupsEnvelope
		if err := json.NewDecoder(body).Decode(&env); err != nil {
			return 0, 0, err
		}
		for _, g := range env.Groups.Group {
			groups = append(groups, g.toModel())
		}
		return len(env.Groups.Group), env.Pagination.TotalAvailable, nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list groups")
	}
	return groups, nil
}

// ListProjects fetches all projects of the site
func (c *Client) ListProjects(ctx context.Context, sess *model.Session) ([]*model.Project, error) {
	var projects []*model.Project
	err := c.listPages(ctx, sess, "projects", func(body io.Reader) (int, int, error) {
		var env projectsEnvelope
		if err := json.NewDecoder(body).Decode(&env); err != nil {
			return 0, 0, err
		}
		for _, p := range env.Projects.Project {
			projects = append(projects, p.toModel())
		}
		return len(env.Projects.Project), env.Pagination.TotalAvailable, nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list projects")
	}
	return projects, nil
}

// ListWorkbooks fetches all workbooks of the site
func (c *Client) ListWorkbooks(ctx context.Context, sess *model.Session) ([]*model.Workbook, error) {
	var workbooks []*model.Workbook
	err := c.listPages(ctx, sess, "workbooks", func(body io.Reader) (int, int, error) {
		var env workbooksEnvelope
		if err := json.NewDecoder(body).Decode(&env); err != nil {
			return 0, 0, err
		}
		for _, w := range env.Workbooks.Workbook {
			workbooks = append(workbooks, w.toModel())
		}
		return len(env.Workbooks.Workbook), env.Pagination.TotalAvailable, nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list workbooks")
	}
	return workbooks, nil
}

// ListDatasources fetches all published datasources of the site
func (c *Client) ListDatasources(ctx context.Context, sess *model.Session) ([]*model.Datasource, error) {
	var datasources []*model.Datasource
	err := c.listPages(ctx, sess, "datasources", func(body io.Reader) (int, int, error) {
		var env datasourcesEnvelope
		if err := json.NewDecoder(body).Decode(&env); err != nil {
			return 0, 0, err
		}
		for _, d := range env.Datasources.Datasource {
			datasources = append(datasources, d.toModel())
		}
		return len(env.Datasources.Datasource), env.Pagination.TotalAvailable, nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list datasources")
	}
	return datasources, nil
}

// AddUser adds a user to the site. Fields outside name/siteRole/authSetting
// are ignored by the add endpoint; the server validates everything.
func (c *Client) AddUser(ctx context.Context, sess *model.Session, user *model.User) (*model.User, error) {
	uri, err := c.endpoint(sess.ServerURL, "sites", sess.SiteID.String(), "users")
	if err != nil {
		return nil, err
	}

	req := userEnvelope{User: wireUser{
		Name:        user.Name,
		SiteRole:    user.SiteRole.String(),
		AuthSetting: user.AuthSetting,
	}}
	var resp userEnvelope
	if err := c.do(ctx, http.MethodPost, uri, sess.Token, req, &resp); err != nil {
		return nil, goerr.Wrap(err, "failed to add user", goerr.V("name", user.Name))
	}
	return resp.User.toModel(), nil
}

// CreateGroup creates a local group on the site
func (c *Client) CreateGroup(ctx context.Context, sess *model.Session, name string) (*model.Group, error) {
	uri, err := c.endpoint(sess.ServerURL, "sites", sess.SiteID.String(), "groups")
	if err != nil {
		return nil, err
	}

	req := groupEnvelope{Group: wireGroup{Name: name}}
	var resp groupEnvelope
	if err := c.do(ctx, http.MethodPost, uri, sess.Token, req, &resp); err != nil {
		return nil, goerr.Wrap(err, "failed to create group", goerr.V("name", name))
	}
	return resp.Group.toModel(), nil
}

// CreateProject creates a project on the site
func (c *Client) CreateProject(ctx context.Context, sess *model.Session, project *model.Project) (*model.Project, error) {
	uri, err := c.endpoint(sess.ServerURL, "sites", sess.SiteID.String(), "projects")
	if err != nil {
		return nil, err
	}

	req := projectEnvelope{Project: wireProject{
		Name:               project.Name,
		Description:        project.Description,
		ContentPermissions: project.ContentPermissions,
	}}
	var resp projectEnvelope
	if err := c.do(ctx, http.MethodPost, uri, sess.Token, req, &resp); err != nil {
		return nil, goerr.Wrap(err, "failed to create project", goerr.V("name", project.Name))
	}
	return resp.Project.toModel(), nil
}

// DownloadWorkbook fetches the packaged workbook content. Returns the
// server-suggested filename and the raw bytes.
func (c *Client) DownloadWorkbook(ctx context.Context, sess *model.Session, id types.WorkbookID) (string, []byte, error) {
	uri, err := c.endpoint(sess.ServerURL, "sites", sess.SiteID.String(), "workbooks", id.String(), "content")
	if err != nil {
		return "", nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return "", nil, goerr.Wrap(err, "failed to create request", goerr.V("uri", uri))
	}
	req.Header.Set("X-Tableau-Auth", sess.Token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", nil, goerr.Wrap(err, "download request failed", goerr.V("workbook", id))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", nil, decodeError(resp)
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", nil, goerr.Wrap(err, "failed to read workbook content", goerr.V("workbook", id))
	}

	filename := id.String() + ".twbx"
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil && params["filename"] != "" {
			filename = params["filename"]
		}
	}
	return filename, content, nil
}

// PublishWorkbook uploads a .twb/.twbx file by path into the given project
func (c *Client) PublishWorkbook(ctx context.Context, sess *model.Session, projectID types.ProjectID, name, path string, overwrite bool) (*model.Workbook, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open workbook file", goerr.V("path", path))
	}
	defer file.Close()

	payload := workbookEnvelope{Workbook: wireWorkbook{
		Name:    name,
		Project: projectRef{ID: projectID.String()},
	}}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode publish payload")
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	jsonHeader := textproto.MIMEHeader{}
	jsonHeader.Set("Content-Disposition", `name="request_payload"`)
	jsonHeader.Set("Content-Type", "application/json")
	part, err := writer.CreatePart(jsonHeader)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create payload part")
	}
	if _, err := part.Write(payloadJSON); err != nil {
		return nil, goerr.Wrap(err, "failed to write payload part")
	}

	fileHeader := textproto.MIMEHeader{}
	fileHeader.Set("Content-Disposition",
		fmt.Sprintf(`name="tableau_workbook"; filename=%q`, filepath.Base(path)))
	fileHeader.Set("Content-Type", "application/octet-stream")
	part, err = writer.CreatePart(fileHeader)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create file part")
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, goerr.Wrap(err, "failed to write workbook bytes", goerr.V("path", path))
	}
	if err := writer.Close(); err != nil {
		return nil, goerr.Wrap(err, "failed to finalize multipart body")
	}

	uri, err := c.endpoint(sess.ServerURL, "sites", sess.SiteID.String(), "workbooks")
	if err != nil {
		return nil, err
	}
	workbookType := strings.TrimPrefix(filepath.Ext(path), ".")
	uri += "?workbookType=" + url.QueryEscape(workbookType) + "&overwrite=" + strconv.FormatBool(overwrite)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uri, &body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create publish request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "multipart/mixed; boundary="+writer.Boundary())
	req.Header.Set("X-Tableau-Auth", sess.Token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "publish request failed", goerr.V("name", name))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeError(resp)
	}

	var env workbookEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, goerr.Wrap(err, "failed to decode publish response")
	}
	return env.Workbook.toModel(), nil
}
