package rbac

import (
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// Roles recognised by the portal. Every authenticated user carries exactly one.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && keyMatch(r.obj, p.obj) && keyMatch(r.act, p.act)
`

// policies is the static permission table. Admins can do everything; regular
// employees get read access plus the self-service submission flows.
var policies = [][]string{
	{RoleAdmin, "*", "*"},

	{RoleEmployee, "employee", "read"},
	{RoleEmployee, "attendance", "read"},
	{RoleEmployee, "leave", "read"},
	{RoleEmployee, "leave", "create"},
	{RoleEmployee, "performance", "read"},
	{RoleEmployee, "expense", "read"},
	{RoleEmployee, "expense", "create"},
	{RoleEmployee, "exit", "read"},
	{RoleEmployee, "exit", "create"},
	{RoleEmployee, "goal", "read"},
	{RoleEmployee, "goal", "create"},
	{RoleEmployee, "goal", "update"},
	{RoleEmployee, "dashboard", "read"},
	{RoleEmployee, "report", "read"},
}

type EnforceRequest struct {
	Role     string
	Resource string
	Action   string
}

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req EnforceRequest) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.Mutex
}

func NewService() (Service, error) {
	m, err := model.NewModelFromString(modelText)
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

	return &service{enforcer: enforcer}, nil
}

func (s *service) Enforce(req EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.enforcer.Enforce(req.Role, req.Resource, req.Action)
}
