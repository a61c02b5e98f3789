package authz

import "fmt"

// RoleSeed is a built-in role definition.
type RoleSeed struct {
	Role     string
	Inherits []string
	Policies []Policy
}

// BuiltinRoleSeeds returns the role matrix seeded on startup. Tenant owners
// typically get campaign_manager; counter staff get redemption_clerk.
func BuiltinRoleSeeds() []RoleSeed {
	return []RoleSeed{
		{
			Role: "readonly_auditor",
			Policies: []Policy{
				{Object: "/admin/*", Action: "GET"},
			},
		},
		{
			Role:     "campaign_manager",
			Inherits: []string{"readonly_auditor"},
			Policies: []Policy{
				{Object: "/admin/campaigns", Action: "*"},
				{Object: "/admin/campaigns/:id", Action: "*"},
				{Object: "/admin/campaigns/:id/activate", Action: "*"},
				{Object: "/admin/campaigns/:id/deactivate", Action: "*"},
				{Object: "/admin/campaigns/:id/reward", Action: "*"},
				{Object: "/admin/campaigns/:id/coupons", Action: "*"},
				{Object: "/admin/coupons/:id/sent", Action: "POST"},
				{Object: "/admin/coupons/:id/activate", Action: "POST"},
				{Object: "/admin/coupons/:id/cancel", Action: "POST"},
			},
		},
		{
			Role:     "redemption_clerk",
			Inherits: []string{"readonly_auditor"},
			Policies: []Policy{
				{Object: "/admin/redemptions/validate/code/:code", Action: "GET"},
				{Object: "/admin/redemptions/validate/qr/:token", Action: "GET"},
				{Object: "/admin/redemptions/redeem/code/:code", Action: "POST"},
				{Object: "/admin/redemptions/redeem/qr/:token", Action: "POST"},
				{Object: "/admin/redemptions", Action: "GET"},
			},
		},
	}
}

// BootstrapBuiltinRoles seeds the built-in roles and their policies.
func (s *Service) BootstrapBuiltinRoles() error {
	if s == nil || s.enforcer == nil {
		return fmt.Errorf("authz service unavailable")
	}

	for _, seed := range BuiltinRoleSeeds() {
		role, err := s.EnsureRole(seed.Role)
		if err != nil {
			return err
		}

		for _, parent := range seed.Inherits {
			parentRole, err := NormalizeRole(parent)
			if err != nil {
				return err
			}
			if _, err := s.enforcer.AddNamedGroupingPolicy("g", role, parentRole); err != nil {
				return fmt.Errorf("link role inheritance failed: %w", err)
			}
		}

		for _, policy := range seed.Policies {
			action := NormalizeAction(policy.Action)
			if action == "" {
				return fmt.Errorf("builtin policy action is required")
			}
			if _, err := s.enforcer.AddPolicy(role, NormalizeObject(policy.Object), action); err != nil {
				return fmt.Errorf("add builtin policy failed: %w", err)
			}
		}
	}
	return nil
}
