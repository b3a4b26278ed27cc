package ckan

import (
	"net/url"
	"strings"
)

// Action names a remote CKAN action, e.g. "status_show".
type Action struct {
	Name string
}

// NewAction returns the action with the given name.
func NewAction(name string) Action {
	return Action{Name: strings.TrimSpace(name)}
}

// Path returns the action's path relative to the API base URL.
func (a Action) Path() string {
	return "api/action/" + url.PathEscape(a.Name)
}

func (a Action) String() string { return a.Name }
