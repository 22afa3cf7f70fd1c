package tableau

import (
	"time"

	"github.com/migration-world/tabmigrate/pkg/domain/model"
	"github.com/migration-world/tabmigrate/pkg/domain/types"
)

// Wire structs for the JSON REST API. The server accepts and returns XML by
// default; every request here sets Accept/Content-Type to application/json.

type siteRef struct {
	ID         string `json:"id,omitempty"`
	ContentURL string `json:"contentUrl"`
}

type signInRequest struct {
	Credentials signInCredentials `json:"credentials"`
}

type signInCredentials struct {
	Name                      string  `json:"name,omitempty"`
	Password                  string  `json:"password,omitempty"`
	PersonalAccessTokenName   string  `json:"personalAccessTokenName,omitempty"`
	PersonalAccessTokenSecret string  `json:"personalAccessTokenSecret,omitempty"`
	Site                      siteRef `json:"site"`
}

type signInResponse struct {
	Credentials struct {
		Token string  `json:"token"`
		Site  siteRef `json:"site"`
	} `json:"credentials"`
}

type pagination struct {
	PageNumber     int `json:"pageNumber,string"`
	PageSize       int `json:"pageSize,string"`
	TotalAvailable int `json:"totalAvailable,string"`
}

type wireUser struct {
	ID                 string `json:"id,omitempty"`
	Name               string `json:"name"`
	SiteRole           string `json:"siteRole,omitempty"`
	FullName           string `json:"fullName,omitempty"`
	Email              string `json:"email,omitempty"`
	AuthSetting        string `json:"authSetting,omitempty"`
	ExternalAuthUserID string `json:"externalAuthUserId,omitempty"`
	Locale             string `json:"locale,omitempty"`
	Password           string `json:"password,omitempty"`
	LastLogin          string `json:"lastLogin,omitempty"`
}

type usersEnvelope struct {
	Pagination pagination `json:"pagination"`
	Users      struct {
		User []wireUser `json:"user"`
	} `json:"users"`
}

type userEnvelope struct {
	User wireUser `json:"user"`
}

type wireGroup struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

type groupsEnvelope struct {
	Pagination pagination `json:"pagination"`
	Groups     struct {
		Group []wireGroup `json:"group"`
	} `json:"groups"`
}

type groupEnvelope struct {
	Group wireGroup `json:"group"`
}

type wireProject struct {
	ID                 string `json:"id,omitempty"`
	Name               string `json:"name"`
	Description        string `json:"description,omitempty"`
	ContentPermissions string `json:"contentPermissions,omitempty"`
}

type projectsEnvelope struct {
	Pagination pagination `json:"pagination"`
	Projects   struct {
		Project []wireProject `json:"project"`
	} `json:"projects"`
}

type projectEnvelope struct {
	Project wireProject `json:"project"`
}

type ownerRef struct {
	ID string `json:"id,omitempty"`
}

type projectRef struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

type wireWorkbook struct {
	ID         string     `json:"id,omitempty"`
	Name       string     `json:"name"`
	ContentURL string     `json:"contentUrl,omitempty"`
	Owner      ownerRef   `json:"owner,omitempty"`
	Project    projectRef `json:"project,omitempty"`
	CreatedAt  time.Time  `json:"createdAt,omitempty"`
	UpdatedAt  time.Time  `json:"updatedAt,omitempty"`
}

type workbooksEnvelope struct {
	Pagination pagination `json:"pagination"`
	Workbooks  struct {
		Workbook []wireWorkbook `json:"workbook"`
	} `json:"workbooks"`
}

type workbookEnvelope struct {
	Workbook wireWorkbook `json:"workbook"`
}

type wireDatasource struct {
	ID        string     `json:"id,omitempty"`
	Name      string     `json:"name"`
	Owner     ownerRef   `json:"owner,omitempty"`
	Project   projectRef `json:"project,omitempty"`
	CreatedAt time.Time  `json:"createdAt,omitempty"`
	UpdatedAt time.Time  `json:"updatedAt,omitempty"`
}

type datasourcesEnvelope struct {
	Pagination  pagination `json:"pagination"`
	Datasources struct {
		Datasource []wireDatasource `json:"datasource"`
	} `json:"datasources"`
}

type apiError struct {
	Error struct {
		Summary string `json:"summary"`
		Detail  string `json:"detail"`
		Code    string `json:"code"`
	} `json:"error"`
}

func (u wireUser) toModel() *model.User {
	m := &model.User{
		ID:                 types.UserID(u.ID),
		Name:               u.Name,
		SiteRole:           types.SiteRole(u.SiteRole),
		FullName:           u.FullName,
		Email:              u.Email,
		AuthSetting:        u.AuthSetting,
		ExternalAuthUserID: u.ExternalAuthUserID,
		Locale:             u.Locale,
	}
	if u.LastLogin != "" {
		if t, err := time.Parse(time.RFC3339, u.LastLogin); err == nil {
			m.LastLogin = t
		}
	}
	return m
}

func (g wireGroup) toModel() *model.Group {
	return &model.Group{
		ID:   types.GroupID(g.ID),
		Name: g.Name,
	}
}

func (p wireProject) toModel() *model.Project {
	return &model.Project{
		ID:                 types.ProjectID(p.ID),
		Name:               p.Name,
		Description:        p.Description,
		ContentPermissions: p.ContentPermissions,
	}
}

func (w wireWorkbook) toModel() *model.Workbook {
	return &model.Workbook{
		ID:          types.WorkbookID(w.ID),
		Name:        w.Name,
		OwnerID:     types.UserID(w.Owner.ID),
		ProjectID:   types.ProjectID(w.Project.ID),
		ProjectName: w.Project.Name,
		ContentURL:  w.ContentURL,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

func (d wireDatasource) toModel() *model.Datasource {
	return &model.Datasource{
		ID:          types.DatasourceID(d.ID),
		Name:        d.Name,
		OwnerID:     types.UserID(d.Owner.ID),
		ProjectName: d.Project.Name,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
