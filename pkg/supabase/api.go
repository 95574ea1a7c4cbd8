package supabase

import (
	"context"
	"fmt"
)

// Factor is an MFA factor enrolled by a user.
type Factor struct {
	ID     string `json:"id"`
	Type   string `json:"factor_type"`
	Status string `json:"status"`
}

// User is the slice of the auth admin user record the checks need.
type User struct {
	ID      string   `json:"id"`
	Email   string   `json:"email"`
	Factors []Factor `json:"factors"`
}

// TableRLSStatus is one row from the RLS introspection function.
type TableRLSStatus struct {
	Name       string `json:"name"`
	RLSEnabled bool   `json:"rls_enabled"`
	Schema     string `json:"schema"`
}

// Subscription is the project's billing tier descriptor.
type Subscription struct {
	Tier string `json:"tier"`
}

// ListUsers fetches the first page of auth users with their enrolled
// factors. Pagination is not followed; projects with more users than one
// page are only partially evaluated.
func (s *Session) ListUsers(ctx context.Context) ([]User, error) {
	var resp struct {
		Users []User `json:"users"`
	}
	if err := s.DataPlane(ctx, "GET", "/auth/v1/admin/users", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

// TableRLS invokes the get_table_rls_status introspection function via
// PostgREST. A missing function or empty schema comes back as an error or
// empty slice; the caller decides what that means.
func (s *Session) TableRLS(ctx context.Context) ([]TableRLSStatus, error) {
	var tables []TableRLSStatus
	if err := s.DataPlane(ctx, "POST", "/rest/v1/rpc/get_table_rls_status", map[string]interface{}{}, &tables); err != nil {
		return nil, err
	}
	return tables, nil
}

// ProjectSubscription fetches the subscription/tier descriptor from the
// management plane.
func (s *Session) ProjectSubscription(ctx context.Context) (*Subscription, error) {
	ref, err := s.Credentials.ResolveProjectRef()
	if err != nil {
		return nil, err
	}
	var sub Subscription
	if err := s.Management(ctx, fmt.Sprintf("/projects/%s/subscription", ref), &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// BackupsInfo fetches the backup/PITR descriptor from the management
// plane. The shape is loosely specified by the vendor, so it is returned
// raw for the caller to interpret.
func (s *Session) BackupsInfo(ctx context.Context) (map[string]interface{}, error) {
	ref, err := s.Credentials.ResolveProjectRef()
	if err != nil {
		return nil, err
	}
	var info map[string]interface{}
	if err := s.Management(ctx, fmt.Sprintf("/projects/%s/database/backups/info", ref), &info); err != nil {
		return nil, err
	}
	return info, nil
}
