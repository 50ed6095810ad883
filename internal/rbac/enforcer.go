package rbac

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// policies maps the three login roles onto resource/action grants.
// The role set is fixed (admin, hr, employee), so the policy lives in
// code instead of a database table.
var policies = [][]string{
	{"admin", "employee", "create"},
	{"admin", "employee", "read"},
	{"admin", "employee", "update"},
	{"admin", "employee", "delete"},
	{"admin", "work", "create"},
	{"admin", "work", "read"},
	{"admin", "payslip", "create"},
	{"admin", "payslip", "read"},
	{"admin", "job", "create"},
	{"admin", "job", "read"},
	{"admin", "job", "update"},
	{"admin", "job", "delete"},

	{"hr", "employee", "create"},
	{"hr", "employee", "read"},
	{"hr", "employee", "update"},
	{"hr", "employee", "delete"},
	{"hr", "payslip", "create"},
	{"hr", "payslip", "read"},
	{"hr", "job", "create"},
	{"hr", "job", "read"},
	{"hr", "job", "update"},
	{"hr", "job", "delete"},
	{"hr", "work", "create"},
	{"hr", "work", "read"},

	{"employee", "employee", "read"},
	{"employee", "work", "read"},
}

// NewEnforcer builds a casbin enforcer with the static role policy
// loaded. There is no adapter; the policy set never changes at runtime.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range policies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}

	return enforcer, nil
}
