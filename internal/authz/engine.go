package authz

import "strings"

// Context is what one request's role is allowed to use.
type Context struct {
	RoleID       uint64
	Applications map[string]bool
}

// NewContext indexes the application names granted to roleID. Names are matched case-insensitively.
func NewContext(roleID uint64, applications []string) Context {
	apps := make(map[string]bool, len(applications))
	for _, name := range applications {
		apps[normalize(name)] = true
	}
	return Context{RoleID: roleID, Applications: apps}
}

func (c Context) HasApplication(name string) bool {
	if c.Applications == nil {
		return false
	}
	return c.Applications[normalize(name)]
}

// CanDo reports whether the role may use application.
func CanDo(application string, ctx Context) bool {
	if ctx.HasApplication(Superuser) {
		return true
	}
	return ctx.HasApplication(application)
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
