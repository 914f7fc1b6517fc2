package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "asramaku_backend/internals/features/hostels/rooms/dto"
	model "asramaku_backend/internals/features/hostels/rooms/model"
	helper "asramaku_backend/internals/helpers"
)

type RoomController struct {
	DB *gorm.DB
}

func NewRoomController(db *gorm.DB) *RoomController {
	return &RoomController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /api/a/rooms
func (h *RoomController) Create(c *fiber.Ctx) error {
	hostelID, err := helper.GetHostelIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateRoomRequest
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
			return fiber.NewError(fiber.StatusConflict, "Nomor kamar tersebut sudah ada di hostel ini")
		}
		return helper.JsonStoreError(c, err)
	}

	return helper.JsonCreated(c, "Kamar berhasil dibuat", dto.FromModel(*m, 0))
}

/* ======================== LIST ======================== */
// GET /api/a/rooms?active_only=
func (h *RoomController) List(c *fiber.Ctx) error {
	hostelID, err := helper.GetHostelIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.RoomModel{}).
		Where("room_hostel_id = ?", hostelID)
	if c.QueryBool("active_only", false) {
		base = base.Where("room_is_active = TRUE")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonStoreError(c, err)
	}

	var list []model.RoomModel
	if err := base.
		Order("room_number ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonStoreError(c, err)
	}

	// hitung penghuni aktif per kamar dalam satu query
	type occRow struct {
		RoomID uuid.UUID
		Cnt    int64
	}
	occ := map[uuid.UUID]int64{}
	if len(list) > 0 {
		ids := make([]uuid.UUID, 0, len(list))
		for _, r := range list {
			ids = append(ids, r.RoomID)
		}
		var rows []occRow
		if err := h.DB.Table("students").
			Select("student_room_id AS room_id, COUNT(*) AS cnt").
			Where("student_room_id IN ? AND student_status = 'Active' AND student_deleted_at IS NULL", ids).
			Group("student_room_id").
			Scan(&rows).Error; err != nil {
			return helper.JsonStoreError(c, err)
		}
		for _, r := range rows {
			occ[r.RoomID] = r.Cnt
		}
	}

	out := make([]dto.RoomResponse, 0, len(list))
	for _, r := range list {
		out = append(out, dto.FromModel(r, occ[r.RoomID]))
	}

	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "OK", out, &pg)
}

/* ======================== GET BY ID ======================== */
// GET /api/a/rooms/:id
func (h *RoomController) GetByID(c *fiber.Ctx) error {
	hostelID, err := helper.GetHostelIDFromToken(c)
	if err != nil {
		return err
	}
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}

	var row model.RoomModel
	if err := h.DB.
		Where("room_id = ? AND room_hostel_id = ?", id, hostelID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.JsonStoreError(c, err)
	}

	var occupancy int64
	if err := h.DB.Table("students").
		Where("student_room_id = ? AND student_status = 'Active' AND student_deleted_at IS NULL", row.RoomID).
		Count(&occupancy).Error; err != nil {
		return helper.JsonStoreError(c, err)
	}

	return helper.JsonOK(c, "OK", dto.FromModel(row, occupancy))
}

/* ======================== UPDATE (PUT, partial) ======================== */
// PUT /api/a/rooms/:id
func (h *RoomController) Update(c *fiber.Ctx) error {
	hostelID, err := helper.GetHostelIDFromToken(c)
	if err != nil {
		return err
	}
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}

	var req dto.UpdateRoomRequest
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

	res := h.DB.Model(&model.RoomModel{}).
		Where("room_id = ? AND room_hostel_id = ?", id, hostelID).
		Updates(patch)
	if res.Error != nil {
		msg := strings.ToLower(res.Error.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Nomor kamar tersebut sudah ada di hostel ini")
		}
		return helper.JsonStoreError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
	}

	var updated model.RoomModel
	if err := h.DB.
		Where("room_id = ? AND room_hostel_id = ?", id, hostelID).
		First(&updated).Error; err != nil {
		return helper.JsonStoreError(c, err)
	}
	return helper.JsonUpdated(c, "Kamar berhasil diperbarui", dto.FromModel(updated, 0))
}

/* ======================== DELETE (SOFT) ======================== */
// DELETE /api/a/rooms/:id
func (h *RoomController) Delete(c *fiber.Ctx) error {
	hostelID, err := helper.GetHostelIDFromToken(c)
	if err != nil {
		return err
	}
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak boleh kosong")
	}

	// tolak hapus kalau masih ada penghuni aktif
	var occupancy int64
	if err := h.DB.Table("students").
		Where("student_room_id = ? AND student_status = 'Active' AND student_deleted_at IS NULL", id).
		Count(&occupancy).Error; err != nil {
		return helper.JsonStoreError(c, err)
	}
	if occupancy > 0 {
		return fiber.NewError(fiber.StatusConflict, "Kamar masih dihuni, pindahkan penghuni dulu")
	}

	res := h.DB.
		Where("room_id = ? AND room_hostel_id = ?", id, hostelID).
		Delete(&model.RoomModel{})
	if res.Error != nil {
		return helper.JsonStoreError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Kamar berhasil dihapus", fiber.Map{"id": id})
}
