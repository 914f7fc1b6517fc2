package service

import (
	"testing"

	"github.com/google/uuid"
)

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name          string
		hasRows       bool
		totalDues     float64
		monthlyRent   float64
		wantStatus    string
		wantProjected float64
	}{
		{
			name: "no rows with rent projects pending", hasRows: false,
			monthlyRent: 750000, wantStatus: PaymentStatusPending, wantProjected: 750000,
		},
		{
			name: "no rows without rent is no dues", hasRows: false,
			monthlyRent: 0, wantStatus: PaymentStatusNoDues, wantProjected: 0,
		},
		{
			name: "rows with outstanding balance is pending", hasRows: true,
			totalDues: 120000, monthlyRent: 750000, wantStatus: PaymentStatusPending, wantProjected: 120000,
		},
		{
			name: "rows fully settled is paid", hasRows: true,
			totalDues: 0, monthlyRent: 750000, wantStatus: PaymentStatusPaid, wantProjected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, projected := DeriveStatus(tt.hasRows, tt.totalDues, tt.monthlyRent)
			if status != tt.wantStatus {
				t.Errorf("status = %q, want %q", status, tt.wantStatus)
			}
			if projected != tt.wantProjected {
				t.Errorf("projected = %v, want %v", projected, tt.wantProjected)
			}
		})
	}
}

func TestSummarizeStudent(t *testing.T) {
	st := studentDisplayRow{
		StudentID:       uuid.New(),
		StudentName:     "Fulan",
		HostelID:        uuid.New(),
		HostelName:      "Asrama Demo",
		RoomRentMonthly: 750000,
	}

	t.Run("no due rows uses rent projection", func(t *testing.T) {
		out := SummarizeStudent(st, nil)
		if out.PaymentStatus != PaymentStatusPending {
			t.Errorf("status = %q, want Pending", out.PaymentStatus)
		}
		if out.TotalDues != 750000 {
			t.Errorf("total_dues = %v, want projected 750000", out.TotalDues)
		}
		if out.UnpaidCount != 0 || out.PaidCount != 0 {
			t.Error("counts must be zero without rows")
		}
		if out.UnpaidDues == nil || out.PaidDues == nil {
			t.Error("due slices must be empty, not nil")
		}
	})

	t.Run("mixed paid and unpaid rows", func(t *testing.T) {
		dues := []DueLineItem{
			{DueAmount: 450000, PaidAmount: 450000, BalanceAmount: 0, IsPaid: true},
			{DueAmount: 750000, PaidAmount: 300000, BalanceAmount: 450000, IsPaid: false},
			{DueAmount: 100000, PaidAmount: 0, BalanceAmount: 100000, IsPaid: false},
		}
		out := SummarizeStudent(st, dues)

		if out.PaymentStatus != PaymentStatusPending {
			t.Errorf("status = %q, want Pending", out.PaymentStatus)
		}
		// total_paid menjumlahkan SEMUA baris, lunas maupun belum
		if out.TotalPaid != 750000 {
			t.Errorf("total_paid = %v, want 750000", out.TotalPaid)
		}
		// total_dues hanya sisa dari baris belum lunas
		if out.TotalDues != 550000 {
			t.Errorf("total_dues = %v, want 550000", out.TotalDues)
		}
		if out.PaidCount != 1 || out.UnpaidCount != 2 {
			t.Errorf("counts = %d paid / %d unpaid, want 1/2", out.PaidCount, out.UnpaidCount)
		}
	})

	t.Run("all rows settled", func(t *testing.T) {
		dues := []DueLineItem{
			{DueAmount: 450000, PaidAmount: 450000, BalanceAmount: 0, IsPaid: true},
		}
		out := SummarizeStudent(st, dues)
		if out.PaymentStatus != PaymentStatusPaid {
			t.Errorf("status = %q, want Paid", out.PaymentStatus)
		}
		if out.TotalDues != 0 {
			t.Errorf("total_dues = %v, want 0", out.TotalDues)
		}
	})
}
