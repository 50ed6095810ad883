package rbac

import (
	"testing"

	"neb-hris/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestRBACService_Enforce(t *testing.T) {
	enforcer, err := NewEnforcer()
	assert.NoError(t, err)

	service := NewService(enforcer)

	cases := []struct {
		name     string
		role     string
		resource string
		action   string
		allowed  bool
	}{
		{"admin creates employees", "admin", "employee", "create", true},
		{"admin deletes jobs", "admin", "job", "delete", true},
		{"admin generates payslips", "admin", "payslip", "create", true},
		{"hr generates payslips", "hr", "payslip", "create", true},
		{"hr updates jobs", "hr", "job", "update", true},
		{"hr assigns work", "hr", "work", "create", true},
		{"employee reads work", "employee", "work", "read", true},
		{"employee reads directory", "employee", "employee", "read", true},
		{"employee cannot create employees", "employee", "employee", "create", false},
		{"employee cannot generate payslips", "employee", "payslip", "create", false},
		{"employee cannot assign work", "employee", "work", "create", false},
		{"employee cannot manage jobs", "employee", "job", "delete", false},
		{"unknown role denied", "contractor", "employee", "read", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			allowed, err := service.Enforce(domain.EnforceRequest{
				Role:     tc.role,
				Resource: tc.resource,
				Action:   tc.action,
			})

			assert.NoError(t, err)
			assert.Equal(t, tc.allowed, allowed)
		})
	}
}

func TestEnforcer_CoversEveryRouteGuard(t *testing.T) {
	enforcer, err := NewEnforcer()
	assert.NoError(t, err)

	// Every resource/action pair enforced by a route must be granted to
	// at least one role, otherwise the endpoint is unreachable.
	guarded := [][2]string{
		{"employee", "create"},
		{"employee", "read"},
		{"employee", "update"},
		{"employee", "delete"},
		{"work", "create"},
		{"work", "read"},
		{"payslip", "create"},
		{"payslip", "read"},
		{"job", "create"},
		{"job", "read"},
		{"job", "update"},
		{"job", "delete"},
	}

	for _, pair := range guarded {
		granted := false
		for _, role := range []string{"admin", "hr", "employee"} {
			ok, err := enforcer.Enforce(role, pair[0], pair[1])
			assert.NoError(t, err)
			if ok {
				granted = true
				break
			}
		}
		assert.True(t, granted, "no role may %s %s", pair[1], pair[0])
	}
}
