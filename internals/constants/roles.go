package constants

// Enumerasi role tertutup. Otorisasi selalu lewat middleware OnlyRoles,
// bukan perbandingan string ad-hoc di dalam handler.
const (
	RoleAdmin    = "Admin"
	RoleHOD      = "HOD"
	RoleLecturer = "Lecturer"
	RoleCR       = "CR"
)

var AllowedRoles = []string{RoleAdmin, RoleHOD, RoleLecturer, RoleCR}

func IsValidRole(role string) bool {
	for _, r := range AllowedRoles {
		if r == role {
			return true
		}
	}
	return false
}
