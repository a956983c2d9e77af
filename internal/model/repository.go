package model

const (
	// DefaultBranch is the branch polled when a target does not name one.
	DefaultBranch = "main"
	// DefaultPageSize is how many recent runs are requested per repository.
	DefaultPageSize = 1
)

// Repository identifies one repository target to poll: which repo, which
// branch, how many recent runs, and optionally which actor's runs.
type Repository struct {
	Owner    string `yaml:"owner"`
	Name     string `yaml:"name"`
	Branch   string `yaml:"branch,omitempty"`
	PageSize uint   `yaml:"page_size,omitempty"`
	Actor    string `yaml:"actor,omitempty"`
}

// Normalized returns a copy with defaults filled in for unset fields.
func (r Repository) Normalized() Repository {
	if r.Branch == "" {
		r.Branch = DefaultBranch
	}
	if r.PageSize == 0 {
		r.PageSize = DefaultPageSize
	}
	return r
}

// Slug returns the "owner/name" form used in API paths and display.
func (r Repository) Slug() string {
	return r.Owner + "/" + r.Name
}
