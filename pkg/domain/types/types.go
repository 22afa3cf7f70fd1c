package types

// UserID represents a Tableau user identifier (LUID)
type UserID string

// String returns the string representation
func (id UserID) String() string {
	return string(id)
}

// GroupID represents a Tableau group identifier
type GroupID string

// String returns the string representation
func (id GroupID) String() string {
	return string(id)
}

// ProjectID represents a Tableau project identifier
type ProjectID string

// String returns the string representation
func (id ProjectID) String() string {
	return string(id)
}

// WorkbookID represents a Tableau workbook identifier
type WorkbookID string

// String returns the string representation
func (id WorkbookID) String() string {
	return string(id)
}

// DatasourceID represents a Tableau datasource identifier
type DatasourceID string

// String returns the string representation
func (id DatasourceID) String() string {
	return string(id)
}

// SiteID represents a Tableau site identifier
type SiteID string

// String returns the string representation
func (id SiteID) String() string {
	return string(id)
}

// ContentURL represents a site content URL suffix (empty for the default site)
type ContentURL string

// String returns the string representation
func (u ContentURL) String() string {
	return string(u)
}

// SiteRole represents a permission-level label assigned to a user within a site
type SiteRole string

// String returns the string representation
func (r SiteRole) String() string {
	return string(r)
}
