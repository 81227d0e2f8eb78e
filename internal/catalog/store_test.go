package catalog

import "testing"

func TestOrderClause(t *testing.T) {
	t.Parallel()

	cases := []struct {
		sort string
		want string
	}{
		{"price", "base_price_usd asc"},
		{"-price", "base_price_usd desc"},
		{"year", "year asc"},
		{"-rating", "rating_avg desc"},
		{"", "id asc"},
		{"drop table", "id asc"},
		{"-bogus", "id asc"},
	}
	for _, c := range cases {
		if got := OrderClause(c.sort); got != c.want {
			t.Errorf("OrderClause(%q) = %q, want %q", c.sort, got, c.want)
		}
	}
}

func TestClampLimit(t *testing.T) {
	t.Parallel()

	if got := ClampLimit(0); got != defaultLimit {
		t.Errorf("ClampLimit(0) = %d, want default %d", got, defaultLimit)
	}
	if got := ClampLimit(-5); got != defaultLimit {
		t.Errorf("ClampLimit(-5) = %d, want default %d", got, defaultLimit)
	}
	if got := ClampLimit(999); got != maxLimit {
		t.Errorf("ClampLimit(999) = %d, want max %d", got, maxLimit)
	}
	if got := ClampLimit(37); got != 37 {
		t.Errorf("ClampLimit(37) = %d, want 37", got)
	}
}

func TestClampOffset(t *testing.T) {
	t.Parallel()

	if got := ClampOffset(-1); got != 0 {
		t.Errorf("ClampOffset(-1) = %d, want 0", got)
	}
	if got := ClampOffset(40); got != 40 {
		t.Errorf("ClampOffset(40) = %d, want 40", got)
	}
}
