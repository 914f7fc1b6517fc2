package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "asramaku_backend/internals/features/hostels/hostels/dto"
	model "asramaku_backend/internals/features/hostels/hostels/model"
	helper "asramaku_backend/internals/helpers"
)

type HostelController struct {
	DB *gorm.DB
}

func NewHostelController(db *gorm.DB) *HostelController {
	return &HostelController{DB: db}
}

func parseHostelID(c *fiber.Ctx) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Format ID tidak valid")
	}
	return id, nil
}

/* ======================= CREATE ======================= */
// POST /api/o/hostels (owner)
func (h *HostelController) Create(c *fiber.Ctx) error {
	var req dto.CreateHostelRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Hostel dengan nama tersebut sudah ada")
		}
		return helper.JsonStoreError(c, err)
	}

	return helper.JsonCreated(c, "Hostel berhasil dibuat", dto.FromModel(*m))
}

/* ======================== LIST ======================== */
// GET /api/a/hostels - admin hanya melihat hostel scope-nya, owner semua
func (h *HostelController) List(c *fiber.Ctx) error {
	scope, err := helper.ResolveHostelScope(c, nil)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.HostelModel{})
	if scope != uuid.Nil {
		base = base.Where("hostel_id = ?", scope)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonStoreError(c, err)
	}

	var list []model.HostelModel
	if err := base.
		Order("hostel_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonStoreError(c, err)
	}

	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "OK", dto.FromModels(list), &pg)
}

/* ======================== GET BY ID ======================== */
// GET /api/a/hostels/:id
func (h *HostelController) GetByID(c *fiber.Ctx) error {
	id, err := parseHostelID(c)
	if err != nil {
		return err
	}
	if _, err := helper.ResolveHostelScope(c, &id); err != nil {
		return err
	}

	var row model.HostelModel
	if err := h.DB.Where("hostel_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.JsonStoreError(c, err)
	}

	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

/* ======================== UPDATE (PUT, partial) ======================== */
// PUT /api/a/hostels/:id
func (h *HostelController) Update(c *fiber.Ctx) error {
	id, err := parseHostelID(c)
	if err != nil {
		return err
	}
	if _, err := helper.ResolveHostelScope(c, &id); err != nil {
		return err
	}

	var req dto.UpdateHostelRequest
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

	res := h.DB.Model(&model.HostelModel{}).
		Where("hostel_id = ?", id).
		Updates(patch)
	if res.Error != nil {
		return helper.JsonStoreError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
	}

	var updated model.HostelModel
	if err := h.DB.Where("hostel_id = ?", id).First(&updated).Error; err != nil {
		return helper.JsonStoreError(c, err)
	}
	return helper.JsonUpdated(c, "Hostel berhasil diperbarui", dto.FromModel(updated))
}
