package seeds

import (
	"gorm.io/gorm"

	hostels "asramaku_backend/internals/seeds/hostels"
)

// RunAllSeeds dijalankan saat boot hanya bila env SEED_DEMO=true
// (lihat main.go); bukan bagian dari boot production.
func RunAllSeeds(db *gorm.DB) {
	hostels.SeedDemoHostel(db)
}
