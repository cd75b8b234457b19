package permissions

import (
	_ "embed"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission is one route entry. Permissions lists the roles allowed through RBAC, and an
// empty list admits any authenticated account. Skip routes need no token at all.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

// PermissionData is the decoded route table. A top-level Skip disables RBAC entirely.
type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`

	index map[string]Permission
}

// FindPermissions matches a chi route pattern. A trailing slash is ignored, so "/v1/events"
// and "/v1/events/" share one entry. Unknown routes get the zero Permission.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	if r.index == nil {
		r.buildIndex()
	}

	return r.index[key(path, method)]
}

func (r *PermissionData) buildIndex() {
	r.index = make(map[string]Permission, len(r.Endpoints))

	for _, endpoint := range r.Endpoints {
		k := key(endpoint.Path, endpoint.Method)
		if _, dup := r.index[k]; dup {
			log.Warn().Str("path", endpoint.Path).Str("method", endpoint.Method).Msg("duplicate permission entry ignored")

			continue
		}

		r.index[k] = endpoint
	}
}

// Get decodes the embedded route table. It returns nil when the table is malformed, which
// makes RBAC reject every guarded route.
func Get() *PermissionData {
	var permissions PermissionData

	if err := json.Unmarshal(permissionsData, &permissions); err != nil {
		log.Error().Err(err).Msg("failed to decode embedded permissions")

		return nil
	}

	permissions.buildIndex()

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("permissions loaded")

	return &permissions
}

func key(path, method string) string {
	if path != "/" {
		path = strings.TrimSuffix(path, "/")
	}

	return strings.ToUpper(method) + " " + path
}
