package authz

import "github.com/ferreguly-next/internal/constants"

// 默认策略：管理员角色放行全部管理端路由
var defaultPolicies = [][3]string{
	{constants.RoleAdministrator, "/api/v1/admin/*", "*"},
}

// EnsureDefaultPolicies 写入缺失的默认策略（幂等）
func EnsureDefaultPolicies(s *Service) error {
	for _, policy := range defaultPolicies {
		if err := s.GrantRolePolicy(policy[0], policy[1], policy[2]); err != nil {
			return err
		}
	}
	return nil
}
