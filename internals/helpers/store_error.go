// file: internals/helpers/store_error.go
package helper

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"asramaku_backend/internals/configs"
)

// JsonStoreError: kegagalan store (koneksi, constraint, dsb) → 500.
// Detail error hanya dibuka di non-production.
func JsonStoreError(c *fiber.Ctx, err error) error {
	log.Printf("[ERROR] store: %v", err)
	if configs.IsProduction() {
		return JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan internal")
	}
	return JsonError(c, fiber.StatusInternalServerError, err.Error())
}
