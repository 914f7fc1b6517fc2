package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "asramaku_backend/internals/features/finance/fees/dto"
	model "asramaku_backend/internals/features/finance/fees/model"
	helper "asramaku_backend/internals/helpers"
)

type FeeCategoryController struct {
	DB *gorm.DB
}

func NewFeeCategoryController(db *gorm.DB) *FeeCategoryController {
	return &FeeCategoryController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /api/a/fees/categories
func (h *FeeCategoryController) Create(c *fiber.Ctx) error {
	hostelID, err := helper.GetHostelIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateFeeCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel(hostelID)
	if err := h.DB.Create(m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Kategori biaya dengan nama tersebut sudah ada")
		}
		return helper.JsonStoreError(c, err)
	}

	return helper.JsonCreated(c, "Kategori biaya berhasil dibuat", dto.FromFeeCategoryModel(*m))
}

/* ======================== LIST ======================== */
// GET /api/a/fees/categories?active_only=
func (h *FeeCategoryController) List(c *fiber.Ctx) error {
	hostelID, err := helper.GetHostelIDFromToken(c)
	if err != nil {
		return err
	}

	base := h.DB.Model(&model.FeeCategoryModel{}).
		Where("fee_category_hostel_id = ?", hostelID)
	if c.QueryBool("active_only", false) {
		base = base.Where("fee_category_is_active = TRUE")
	}

	var list []model.FeeCategoryModel
	if err := base.Order("fee_category_name ASC").Find(&list).Error; err != nil {
		return helper.JsonStoreError(c, err)
	}

	return helper.JsonOK(c, "OK", dto.FromFeeCategoryModels(list))
}

/* ======================== GET BY ID ======================== */
// GET /api/a/fees/categories/:id
func (h *FeeCategoryController) GetByID(c *fiber.Ctx) error {
	hostelID, err := helper.GetHostelIDFromToken(c)
	if err != nil {
		return err
	}
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}

	var row model.FeeCategoryModel
	if err := h.DB.
		Where("fee_category_id = ? AND fee_category_hostel_id = ?", id, hostelID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.JsonStoreError(c, err)
	}

	return helper.JsonOK(c, "OK", dto.FromFeeCategoryModel(row))
}

/* ======================== UPDATE (PUT, partial) ======================== */
// PUT /api/a/fees/categories/:id
func (h *FeeCategoryController) Update(c *fiber.Ctx) error {
	hostelID, err := helper.GetHostelIDFromToken(c)
	if err != nil {
		return err
	}
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}

	var req dto.UpdateFeeCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	patch := req.ToPatch()
	if len(patch) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	res := h.DB.Model(&model.FeeCategoryModel{}).
		Where("fee_category_id = ? AND fee_category_hostel_id = ?", id, hostelID).
		Updates(patch)
	if res.Error != nil {
		msg := strings.ToLower(res.Error.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Kategori biaya dengan nama tersebut sudah ada")
		}
		return helper.JsonStoreError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
	}

	var updated model.FeeCategoryModel
	if err := h.DB.
		Where("fee_category_id = ? AND fee_category_hostel_id = ?", id, hostelID).
		First(&updated).Error; err != nil {
		return helper.JsonStoreError(c, err)
	}
	return helper.JsonUpdated(c, "Kategori biaya berhasil diperbarui", dto.FromFeeCategoryModel(updated))
}

/* ======================== DELETE (SOFT) ======================== */
// DELETE /api/a/fees/categories/:id
// Soft delete; baris tagihan lama tetap mengacu ke kategori ini.
func (h *FeeCategoryController) Delete(c *fiber.Ctx) error {
	hostelID, err := helper.GetHostelIDFromToken(c)
	if err != nil {
		return err
	}
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}

	res := h.DB.
		Where("fee_category_id = ? AND fee_category_hostel_id = ?", id, hostelID).
		Delete(&model.FeeCategoryModel{})
	if res.Error != nil {
		return helper.JsonStoreError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Kategori biaya berhasil dihapus", fiber.Map{"id": id})
}
