package service

import (
	"errors"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	model "asramaku_backend/internals/features/finance/fees/model"
)

func monthlyCat(name string, amount float64) model.FeeCategoryModel {
	return model.FeeCategoryModel{
		FeeCategoryID:        uuid.New(),
		FeeCategoryName:      name,
		FeeCategoryAmount:    amount,
		FeeCategoryFrequency: model.FeeFrequencyMonthly,
		FeeCategoryIsActive:  true,
	}
}

func TestBuildFreshCharges(t *testing.T) {
	hostelID := uuid.New()
	st := EligibleStudent{StudentID: uuid.New(), RoomRentMonthly: 750000}
	dueDate := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

	rent := monthlyCat(model.FeeCategoryMonthlyRent, 0)
	mess := monthlyCat("Mess Fee", 450000)
	laundry := monthlyCat("Laundry", 100000)

	rows := BuildFreshCharges(hostelID, st, []model.FeeCategoryModel{rent, mess, laundry}, "2026-03", dueDate)

	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	byCategory := map[uuid.UUID]model.StudentDueModel{}
	for _, r := range rows {
		byCategory[r.StudentDueFeeCategoryID] = r
	}

	// Monthly Rent mengambil sewa kamar penghuni, bukan nominal kategori
	if got := byCategory[rent.FeeCategoryID].StudentDueAmount; got != 750000 {
		t.Errorf("rent amount = %v, want 750000", got)
	}
	if got := byCategory[mess.FeeCategoryID].StudentDueAmount; got != 450000 {
		t.Errorf("mess amount = %v, want 450000", got)
	}

	for _, r := range rows {
		if r.StudentDueHostelID != hostelID || r.StudentDueStudentID != st.StudentID {
			t.Error("row not bound to hostel/student")
		}
		if r.StudentDueMonth != "2026-03" {
			t.Errorf("month = %q, want 2026-03", r.StudentDueMonth)
		}
		if r.StudentDuePaidAmount != 0 || r.StudentDueBalanceAmount != r.StudentDueAmount {
			t.Error("fresh charge must start unpaid with balance == amount")
		}
		if r.StudentDueIsPaid || r.StudentDueIsCarriedForward {
			t.Error("fresh charge must not be paid or carried forward")
		}
		if !r.StudentDueDueDate.Equal(dueDate) {
			t.Errorf("due date = %v, want %v", r.StudentDueDueDate, dueDate)
		}
	}
}

func TestBuildCarryForwards(t *testing.T) {
	hostelID := uuid.New()
	studentID := uuid.New()
	catID := uuid.New()
	dueDate := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

	due := func(month string, amount, paid float64, isPaid bool) model.StudentDueModel {
		return model.StudentDueModel{
			StudentDueID:            uuid.New(),
			StudentDueHostelID:      hostelID,
			StudentDueStudentID:     studentID,
			StudentDueFeeCategoryID: catID,
			StudentDueMonth:         month,
			StudentDueAmount:        amount,
			StudentDuePaidAmount:    paid,
			StudentDueBalanceAmount: amount - paid,
			StudentDueIsPaid:        isPaid,
		}
	}

	tests := []struct {
		name        string
		prior       []model.StudentDueModel
		wantRows    int
		wantAmounts []float64
	}{
		{
			name:     "no prior dues",
			prior:    nil,
			wantRows: 0,
		},
		{
			name: "fully paid rows are skipped",
			prior: []model.StudentDueModel{
				due("2026-01", 500000, 500000, true),
			},
			wantRows: 0,
		},
		{
			name: "partial payment carries the remainder only",
			prior: []model.StudentDueModel{
				due("2026-02", 750000, 300000, false),
			},
			wantRows:    1,
			wantAmounts: []float64{450000},
		},
		{
			name: "mixed months carry each unpaid balance",
			prior: []model.StudentDueModel{
				due("2026-01", 100000, 0, false),
				due("2026-02", 450000, 450000, true),
				due("2026-02", 750000, 250000, false),
			},
			wantRows:    2,
			wantAmounts: []float64{100000, 500000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := BuildCarryForwards(tt.prior, "2026-03", dueDate)
			if len(rows) != tt.wantRows {
				t.Fatalf("rows = %d, want %d", len(rows), tt.wantRows)
			}
			for i, r := range rows {
				if r.StudentDueAmount != tt.wantAmounts[i] {
					t.Errorf("row %d amount = %v, want %v", i, r.StudentDueAmount, tt.wantAmounts[i])
				}
				if r.StudentDueBalanceAmount != r.StudentDueAmount || r.StudentDuePaidAmount != 0 {
					t.Error("carry-forward must start unpaid with balance == amount")
				}
				if !r.StudentDueIsCarriedForward {
					t.Error("carry-forward flag not set")
				}
				if r.StudentDueCarriedFromMonth == nil {
					t.Fatal("carried_from_month not set")
				}
				if *r.StudentDueCarriedFromMonth >= "2026-03" {
					t.Errorf("carried_from_month %q must be before target month", *r.StudentDueCarriedFromMonth)
				}
				if r.StudentDueMonth != "2026-03" {
					t.Errorf("month = %q, want 2026-03", r.StudentDueMonth)
				}
			}
		})
	}
}

func fiberStatus(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	if !errors.As(err, &fe) {
		t.Fatalf("expected *fiber.Error, got %T (%v)", err, err)
	}
	return fe.Code
}

func TestPlanMonthlyDuesGuardsAndNoOp(t *testing.T) {
	hostelID := uuid.New()
	dueDate := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	cats := []model.FeeCategoryModel{monthlyCat("Mess Fee", 450000)}

	t.Run("duplicate month is rejected with 409", func(t *testing.T) {
		rows, summary, err := PlanMonthlyDues(hostelID, "2026-03", dueDate,
			12, cats, []EligibleStudent{{StudentID: uuid.New(), RoomRentMonthly: 500000}}, 1, nil)
		if err == nil {
			t.Fatal("expected error for already generated month")
		}
		if code := fiberStatus(t, err); code != fiber.StatusConflict {
			t.Errorf("status = %d, want %d", code, fiber.StatusConflict)
		}
		if rows != nil || summary != nil {
			t.Error("no rows or summary expected on duplicate guard")
		}
	})

	t.Run("no active monthly categories is rejected with 400", func(t *testing.T) {
		_, _, err := PlanMonthlyDues(hostelID, "2026-03", dueDate,
			0, nil, []EligibleStudent{{StudentID: uuid.New(), RoomRentMonthly: 500000}}, 1, nil)
		if err == nil {
			t.Fatal("expected error when no active monthly categories exist")
		}
		if code := fiberStatus(t, err); code != fiber.StatusBadRequest {
			t.Errorf("status = %d, want %d", code, fiber.StatusBadRequest)
		}
	})

	t.Run("no eligible students is a no-op with all counters zero", func(t *testing.T) {
		rows, summary, err := PlanMonthlyDues(hostelID, "2026-03", dueDate,
			0, cats, nil, 2, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 0 {
			t.Fatalf("rows = %d, want 0", len(rows))
		}
		if summary == nil {
			t.Fatal("summary must still be returned")
		}
		if summary.StudentsSkipped != 2 {
			t.Errorf("students_skipped = %d, want 2", summary.StudentsSkipped)
		}
		// tanpa penghuni eligible tidak ada yang digenerate: semua
		// counter generate harus nol, termasuk categories_applied
		if summary.CategoriesApplied != 0 || summary.StudentsProcessed != 0 ||
			summary.FreshCharges != 0 || summary.CarriedForward != 0 || summary.RowsInserted != 0 {
			t.Errorf("generate counters must all be zero, got %+v", *summary)
		}
	})
}

func TestPlanMonthlyDuesHappyPath(t *testing.T) {
	hostelID := uuid.New()
	dueDate := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	rent := monthlyCat(model.FeeCategoryMonthlyRent, 0)
	mess := monthlyCat("Mess Fee", 450000)

	s1 := EligibleStudent{StudentID: uuid.New(), RoomRentMonthly: 750000}
	s2 := EligibleStudent{StudentID: uuid.New(), RoomRentMonthly: 600000}

	prior := []model.StudentDueModel{
		{
			StudentDueID:            uuid.New(),
			StudentDueHostelID:      hostelID,
			StudentDueStudentID:     s1.StudentID,
			StudentDueFeeCategoryID: mess.FeeCategoryID,
			StudentDueMonth:         "2026-02",
			StudentDueAmount:        450000,
			StudentDuePaidAmount:    200000,
			StudentDueBalanceAmount: 250000,
		},
	}

	rows, summary, err := PlanMonthlyDues(hostelID, "2026-03", dueDate,
		0, []model.FeeCategoryModel{rent, mess},
		[]EligibleStudent{s1, s2}, 3, prior)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 2 penghuni x 2 kategori + 1 carry-forward
	if len(rows) != 5 {
		t.Fatalf("rows = %d, want 5", len(rows))
	}
	if summary.StudentsProcessed != 2 || summary.StudentsSkipped != 1 {
		t.Errorf("processed/skipped = %d/%d, want 2/1",
			summary.StudentsProcessed, summary.StudentsSkipped)
	}
	if summary.CategoriesApplied != 2 {
		t.Errorf("categories_applied = %d, want 2", summary.CategoriesApplied)
	}
	if summary.FreshCharges != 4 || summary.CarriedForward != 1 {
		t.Errorf("fresh/carried = %d/%d, want 4/1",
			summary.FreshCharges, summary.CarriedForward)
	}
	if summary.RowsInserted != len(rows) {
		t.Errorf("rows_inserted = %d, want %d", summary.RowsInserted, len(rows))
	}

	var carried int
	for _, r := range rows {
		if r.StudentDueIsCarriedForward {
			carried++
			if r.StudentDueAmount != 250000 {
				t.Errorf("carried amount = %v, want 250000", r.StudentDueAmount)
			}
		}
	}
	if carried != 1 {
		t.Errorf("carried rows = %d, want 1", carried)
	}
}

func TestBuildCarryForwardsDoesNotMutateSource(t *testing.T) {
	src := model.StudentDueModel{
		StudentDueID:            uuid.New(),
		StudentDueMonth:         "2026-02",
		StudentDueAmount:        750000,
		StudentDuePaidAmount:    300000,
		StudentDueBalanceAmount: 450000,
	}
	prior := []model.StudentDueModel{src}

	_ = BuildCarryForwards(prior, "2026-03", time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC))

	// baris asal tetap utuh: carry-forward adalah baris BARU
	if prior[0].StudentDueBalanceAmount != 450000 || prior[0].StudentDueMonth != "2026-02" {
		t.Fatal("source row was mutated by carry-forward")
	}
}
