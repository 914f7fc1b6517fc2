package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	feesModel "asramaku_backend/internals/features/finance/fees/model"
)

func unpaidDue(month string, amount, paid float64) feesModel.StudentDueModel {
	return feesModel.StudentDueModel{
		StudentDueID:            uuid.New(),
		StudentDueMonth:         month,
		StudentDueAmount:        amount,
		StudentDuePaidAmount:    paid,
		StudentDueBalanceAmount: amount - paid,
	}
}

func TestAllocateAcrossDues(t *testing.T) {
	now := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name            string
		dues            []feesModel.StudentDueModel
		amount          float64
		wantApplied     []float64
		wantUnallocated float64
	}{
		{
			name: "oldest cleared first then remainder to next",
			dues: []feesModel.StudentDueModel{
				unpaidDue("2026-01", 300, 0),
				unpaidDue("2026-02", 400, 0),
			},
			amount:          500,
			wantApplied:     []float64{300, 200},
			wantUnallocated: 0,
		},
		{
			name: "payment smaller than first due",
			dues: []feesModel.StudentDueModel{
				unpaidDue("2026-01", 300, 0),
				unpaidDue("2026-02", 400, 0),
			},
			amount:          100,
			wantApplied:     []float64{100},
			wantUnallocated: 0,
		},
		{
			name: "overpayment reports unallocated remainder",
			dues: []feesModel.StudentDueModel{
				unpaidDue("2026-01", 300, 0),
				unpaidDue("2026-02", 400, 0),
			},
			amount:          1000,
			wantApplied:     []float64{300, 400},
			wantUnallocated: 300,
		},
		{
			name:            "no dues leaves everything unallocated",
			dues:            nil,
			amount:          250,
			wantApplied:     nil,
			wantUnallocated: 250,
		},
		{
			name: "partially paid due only absorbs its balance",
			dues: []feesModel.StudentDueModel{
				unpaidDue("2026-01", 300, 250),
			},
			amount:          100,
			wantApplied:     []float64{50},
			wantUnallocated: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allocations, unallocated := AllocateAcrossDues(tt.dues, tt.amount, now)

			if len(allocations) != len(tt.wantApplied) {
				t.Fatalf("allocations = %d, want %d", len(allocations), len(tt.wantApplied))
			}
			for i, a := range allocations {
				if a.AppliedAmount != tt.wantApplied[i] {
					t.Errorf("allocation %d applied = %v, want %v", i, a.AppliedAmount, tt.wantApplied[i])
				}
			}
			if unallocated != tt.wantUnallocated {
				t.Errorf("unallocated = %v, want %v", unallocated, tt.wantUnallocated)
			}

			// invariant per baris: paid + balance == amount, is_paid == (balance == 0)
			for i, d := range tt.dues {
				if d.StudentDuePaidAmount+d.StudentDueBalanceAmount != d.StudentDueAmount {
					t.Errorf("due %d: paid %v + balance %v != amount %v",
						i, d.StudentDuePaidAmount, d.StudentDueBalanceAmount, d.StudentDueAmount)
				}
				if d.StudentDueBalanceAmount < 0 {
					t.Errorf("due %d: negative balance %v", i, d.StudentDueBalanceAmount)
				}
				if d.StudentDueIsPaid != (d.StudentDueBalanceAmount == 0) {
					t.Errorf("due %d: is_paid %v inconsistent with balance %v",
						i, d.StudentDueIsPaid, d.StudentDueBalanceAmount)
				}
			}
		})
	}
}

func TestAllocateAcrossDuesSetsPaidDate(t *testing.T) {
	now := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	dues := []feesModel.StudentDueModel{
		unpaidDue("2026-01", 300, 0),
		unpaidDue("2026-02", 400, 0),
	}

	AllocateAcrossDues(dues, 300, now)

	if !dues[0].StudentDueIsPaid {
		t.Fatal("first due should be settled")
	}
	if dues[0].StudentDuePaidDate == nil || !dues[0].StudentDuePaidDate.Equal(now) {
		t.Error("settled due must record paid date")
	}
	if dues[1].StudentDueIsPaid || dues[1].StudentDuePaidDate != nil {
		t.Error("untouched due must stay unpaid without paid date")
	}
}

func TestAllocateAcrossDuesSkipsAlreadyPaidRows(t *testing.T) {
	now := time.Now()
	paid := unpaidDue("2026-01", 300, 300)
	paid.StudentDueIsPaid = true
	dues := []feesModel.StudentDueModel{
		paid,
		unpaidDue("2026-02", 400, 0),
	}

	allocations, unallocated := AllocateAcrossDues(dues, 400, now)

	if len(allocations) != 1 {
		t.Fatalf("allocations = %d, want 1", len(allocations))
	}
	if allocations[0].StudentDueID != dues[1].StudentDueID {
		t.Error("allocation must target the unpaid row")
	}
	if unallocated != 0 {
		t.Errorf("unallocated = %v, want 0", unallocated)
	}
	if dues[0].StudentDuePaidAmount != 300 {
		t.Error("already paid row must not change")
	}
}
