package constants

import "fmt"

const (
	RoleUser       = "user"
	RoleWarden     = "warden"
	RoleAdmin      = "admin"
	RoleOwner      = "owner"
	RoleAccountant = "accountant"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess  = "❌ Hanya admin asrama yang boleh mengakses fitur %s."
	ErrOnlyOwnersCanAccess  = "❌ Hanya owner yang boleh mengakses fitur %s."
	ErrOnlyFinanceCanAccess = "❌ Hanya admin atau accountant yang boleh mengakses fitur %s."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorOwner(feature string) string {
	return fmt.Sprintf(ErrOnlyOwnersCanAccess, feature)
}

func RoleErrorFinance(feature string) string {
	return fmt.Sprintf(ErrOnlyFinanceCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RoleWarden,
		RoleAdmin,
		RoleOwner,
		RoleAccountant,
	}

	AdminAndAbove = []string{
		RoleAdmin,
		RoleOwner,
	}

	FinanceRoles = []string{
		RoleAdmin,
		RoleOwner,
		RoleAccountant,
	}

	OwnerOnly = []string{
		RoleOwner,
	}
)
