package auth

import "github.com/NailaFatima/stylehub-go/models"

// PermissionAll is the wildcard sentinel granting every permission.
const PermissionAll = "*"

// rolePermissions maps each role to its enumerated permission set. The
// wildcard is checked before the explicit set; a role with no entry
// denies everything.
var rolePermissions = map[models.Role][]string{
	models.RoleSuperAdmin: {PermissionAll},
	models.RoleManager:    {"products", "orders", "customers", "inventory", "analytics"},
	models.RoleStaff:      {"orders", "customers", "inventory"},
}

// RoleHasPermission resolves a permission check for a role.
func RoleHasPermission(role models.Role, permission string) bool {
	perms, ok := rolePermissions[role]
	if !ok {
		return false
	}
	for _, p := range perms {
		if p == PermissionAll || p == permission {
			return true
		}
	}
	return false
}
