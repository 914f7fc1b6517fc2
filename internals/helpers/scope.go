// file: internals/helpers/scope.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"asramaku_backend/internals/constants"
)

// --- util kecil biar gak duplikasi parsing ---
func firstUUIDFromLocals(c *fiber.Ctx, key string) (uuid.UUID, error) {
	v := c.Locals(key)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" tidak ditemukan di token")
	}

	switch t := v.(type) {
	case []string:
		if len(t) == 0 || strings.TrimSpace(t[0]) == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" kosong di token")
		}
		return uuid.Parse(strings.TrimSpace(t[0]))
	case []interface{}:
		if len(t) == 0 {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" kosong di token")
		}
		if s, ok := t[0].(string); ok {
			return uuid.Parse(strings.TrimSpace(s))
		}
	case string:
		if strings.TrimSpace(t) == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" kosong di token")
		}
		return uuid.Parse(strings.TrimSpace(t))
	}
	return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Format "+key+" tidak valid di token")
}

// GetHostelIDFromToken mengambil hostel aktif milik admin dari klaim token.
func GetHostelIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return firstUUIDFromLocals(c, "hostel_admin_ids")
}

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return firstUUIDFromLocals(c, "user_id")
}

func GetRoleFromToken(c *fiber.Ctx) string {
	if role, ok := c.Locals("userRole").(string); ok {
		return role
	}
	return ""
}

// ResolveHostelScope menentukan hostel mana yang boleh diakses request ini.
// - owner: boleh hostel mana pun; kalau requested nil → tanpa filter (uuid.Nil).
// - selain owner: dipaksa ke hostel dari token; requested yang berbeda → 403.
// Dipanggil sekali per handler, hasilnya dipakai semua query di bawahnya.
func ResolveHostelScope(c *fiber.Ctx, requested *uuid.UUID) (uuid.UUID, error) {
	role := GetRoleFromToken(c)

	if role == constants.RoleOwner {
		if requested != nil {
			return *requested, nil
		}
		return uuid.Nil, nil
	}

	scoped, err := GetHostelIDFromToken(c)
	if err != nil {
		return uuid.Nil, err
	}
	if requested != nil && *requested != scoped {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Anda tidak punya akses ke hostel tersebut")
	}
	return scoped, nil
}
