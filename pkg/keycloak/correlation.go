package keycloak

import (
	"fmt"
	"strings"

	"sso-anythingllm-srv/internal/model"
)

// ParseGroupCorrelations parses "group,role;other_group,role" into a group to role map.
// An empty string yields an empty map.
func ParseGroupCorrelations(raw string) (map[string]model.Role, error) {
	out := make(map[string]model.Role)
	for _, pair := range strings.Split(raw, correlationSeparator) {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		group, role, ok := strings.Cut(pair, pairSeparator)
		group, role = strings.TrimSpace(group), strings.TrimSpace(role)
		if !ok || group == "" || role == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCorrelation, pair)
		}
		r := model.Role(role)
		if !r.Valid() {
			return nil, fmt.Errorf("%w: group %q maps to unknown role %q", ErrInvalidCorrelation, group, role)
		}
		out[group] = r
	}
	return out, nil
}

// ResolveRole returns the highest ranked role any of groups correlates to, or fallback.
// Keycloak group paths ("/parent/group") match on their full path or last segment.
func ResolveRole(groups []string, correlations map[string]model.Role, fallback model.Role) model.Role {
	var best model.Role
	for _, g := range groups {
		r, ok := correlations[g]
		if !ok {
			if i := strings.LastIndex(g, "/"); i >= 0 {
				r, ok = correlations[g[i+1:]]
			}
		}
		if ok && r.Rank() > best.Rank() {
			best = r
		}
	}
	if best == "" {
		return fallback
	}
	return best
}
