package helpers

import "github.com/davlatbek/go-catalog/app/models"

// Capability checks for the admin surface. Every admin action consults one of
// these before touching a store; navigation listings use them to hide
// sections the user may not see.

// CanManageCatalog grants access to category, product, image and order
// management.
func CanManageCatalog(u *models.User) bool {
	if u == nil {
		return false
	}
	return u.Role == models.RoleStaff || u.Role == models.RoleSuperuser
}

// CanManageUsers grants access to staff-account management. Staff may not
// view, create, edit, or delete user accounts.
func CanManageUsers(u *models.User) bool {
	return u != nil && u.Role == models.RoleSuperuser
}
