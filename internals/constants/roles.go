package constants

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// Role error message templates used by the route guards.
const (
	ErrOnlyStaffCanAccess  = "Only staff or admin may access %s."
	ErrOnlyAdminsCanAccess = "Only admins may access %s."
)
