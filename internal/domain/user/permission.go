package user

type Permission string

const (
	// Self Management
	PermissionViewOwnProfile Permission = "profile.view_own"
	PermissionEditOwnProfile Permission = "profile.edit_own"

	// Organization
	PermissionDepartmentView   Permission = "department.view"
	PermissionDepartmentManage Permission = "department.manage"
	PermissionPositionManage   Permission = "position.manage"

	// User Management
	PermissionUserViewAll Permission = "user.view_all"
	PermissionUserManage  Permission = "user.manage"

	// Payroll
	PermissionPayrollViewOwn Permission = "payroll.view_own"
	PermissionPayrollViewAll Permission = "payroll.view_all"
	PermissionPayrollManage  Permission = "payroll.manage"

	// Performance reviews
	PermissionReviewViewOwn Permission = "review.view_own"
	PermissionReviewViewAll Permission = "review.view_all"
	PermissionReviewManage  Permission = "review.manage"

	// Reports
	PermissionStatsView Permission = "stats.view"
)

var staffPermissions = []Permission{
	PermissionViewOwnProfile,
	PermissionEditOwnProfile,
	PermissionDepartmentView,
	PermissionDepartmentManage,
	PermissionPositionManage,
	PermissionUserViewAll,
	PermissionUserManage,
	PermissionPayrollViewOwn,
	PermissionPayrollViewAll,
	PermissionPayrollManage,
	PermissionReviewViewOwn,
	PermissionReviewViewAll,
	PermissionReviewManage,
	PermissionStatsView,
}

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin:    staffPermissions,
	RoleHRWorker: staffPermissions,
	RoleEmployee: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionDepartmentView,
		PermissionPayrollViewOwn,
		PermissionReviewViewOwn,
		PermissionStatsView,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
