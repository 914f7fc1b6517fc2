package hostels

import (
	"log"

	"gorm.io/gorm"

	feeModel "asramaku_backend/internals/features/finance/fees/model"
	hostelModel "asramaku_backend/internals/features/hostels/hostels/model"
	roomModel "asramaku_backend/internals/features/hostels/rooms/model"
)

// SeedDemoHostel membuat satu hostel demo lengkap dengan kamar dan
// struktur biaya, idempoten lewat FirstOrCreate.
func SeedDemoHostel(db *gorm.DB) {
	var hostel hostelModel.HostelModel
	if err := db.
		Where("hostel_name = ?", "Asrama Demo").
		FirstOrCreate(&hostel, hostelModel.HostelModel{
			HostelName:    "Asrama Demo",
			HostelAddress: strPtr("Jl. Contoh No. 1, Bandung"),
		}).Error; err != nil {
		log.Println("[ERROR] Gagal seed hostel demo:", err)
		return
	}

	rooms := []roomModel.RoomModel{
		{RoomHostelID: hostel.HostelID, RoomNumber: "101", RoomCapacity: 2, RoomRentMonthly: 750000},
		{RoomHostelID: hostel.HostelID, RoomNumber: "102", RoomCapacity: 2, RoomRentMonthly: 750000},
		{RoomHostelID: hostel.HostelID, RoomNumber: "201", RoomCapacity: 1, RoomRentMonthly: 1000000},
	}
	for i := range rooms {
		if err := db.
			Where("room_hostel_id = ? AND room_number = ?", hostel.HostelID, rooms[i].RoomNumber).
			FirstOrCreate(&rooms[i]).Error; err != nil {
			log.Println("[ERROR] Gagal seed kamar demo:", err)
		}
	}

	categories := []feeModel.FeeCategoryModel{
		{FeeCategoryHostelID: hostel.HostelID, FeeCategoryName: feeModel.FeeCategoryMonthlyRent, FeeCategoryAmount: 0, FeeCategoryFrequency: feeModel.FeeFrequencyMonthly, FeeCategoryIsActive: true},
		{FeeCategoryHostelID: hostel.HostelID, FeeCategoryName: "Mess Fee", FeeCategoryAmount: 450000, FeeCategoryFrequency: feeModel.FeeFrequencyMonthly, FeeCategoryIsActive: true},
		{FeeCategoryHostelID: hostel.HostelID, FeeCategoryName: "Laundry", FeeCategoryAmount: 100000, FeeCategoryFrequency: feeModel.FeeFrequencyMonthly, FeeCategoryIsActive: true},
	}
	for i := range categories {
		if err := db.
			Where("fee_category_hostel_id = ? AND fee_category_name = ?", hostel.HostelID, categories[i].FeeCategoryName).
			FirstOrCreate(&categories[i]).Error; err != nil {
			log.Println("[ERROR] Gagal seed kategori biaya demo:", err)
		}
	}

	log.Println("✅ Seed hostel demo selesai")
}

func strPtr(s string) *string { return &s }
