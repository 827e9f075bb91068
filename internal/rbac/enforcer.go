package rbac

import (
	"github.com/casbin/casbin/v2"
)

// NewEnforcer loads the RBAC model and the static policy shipped with
// the service. Role assignment happens at the identity provider; this
// enforcer only answers "may <role> do <action> on <resource>".
func NewEnforcer(modelPath, policyPath string) (*casbin.Enforcer, error) {
	return casbin.NewEnforcer(modelPath, policyPath)
}
