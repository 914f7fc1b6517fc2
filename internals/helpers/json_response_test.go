package helper

import "testing"

func TestBuildPaginationFromPage(t *testing.T) {
	tests := []struct {
		name           string
		total          int64
		page, perPage  int
		wantTotalPages int
		wantHasNext    bool
		wantHasPrev    bool
	}{
		{name: "first of many", total: 95, page: 1, perPage: 20, wantTotalPages: 5, wantHasNext: true, wantHasPrev: false},
		{name: "middle page", total: 95, page: 3, perPage: 20, wantTotalPages: 5, wantHasNext: true, wantHasPrev: true},
		{name: "last page", total: 95, page: 5, perPage: 20, wantTotalPages: 5, wantHasNext: false, wantHasPrev: true},
		{name: "empty result still has one page", total: 0, page: 1, perPage: 20, wantTotalPages: 1, wantHasNext: false, wantHasPrev: false},
		{name: "exact multiple", total: 40, page: 2, perPage: 20, wantTotalPages: 2, wantHasNext: false, wantHasPrev: true},
		{name: "defaults applied for bad input", total: 10, page: 0, perPage: 0, wantTotalPages: 1, wantHasNext: false, wantHasPrev: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildPaginationFromPage(tt.total, tt.page, tt.perPage)
			if got.TotalPages != tt.wantTotalPages {
				t.Errorf("total_pages = %d, want %d", got.TotalPages, tt.wantTotalPages)
			}
			if got.HasNext != tt.wantHasNext {
				t.Errorf("has_next = %v, want %v", got.HasNext, tt.wantHasNext)
			}
			if got.HasPrev != tt.wantHasPrev {
				t.Errorf("has_prev = %v, want %v", got.HasPrev, tt.wantHasPrev)
			}
			if got.Total != tt.total {
				t.Errorf("total = %d, want %d", got.Total, tt.total)
			}
		})
	}
}
