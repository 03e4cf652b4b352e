package cache

import "testing"

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache()

	if _, ok := c.Get("missing"); ok {
		t.Fatal("expected miss for unknown key")
	}

	if err := c.Set("report-1", "| Grade |"); err != nil {
		t.Fatalf("set: %v", err)
	}
	val, ok := c.Get("report-1")
	if !ok {
		t.Fatal("expected hit after set")
	}
	if val != "| Grade |" {
		t.Fatalf("unexpected value %q", val)
	}

	if err := c.Set("report-1", "updated"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if val, _ := c.Get("report-1"); val != "updated" {
		t.Fatalf("expected overwrite to win, got %q", val)
	}
}
