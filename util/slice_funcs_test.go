package util

import "testing"

func TestContains(t *testing.T) {
	if !Contains([]string{"a", "b", "c"}, "b") {
		t.Errorf("expected Contains to find \"b\"")
	}
	if Contains([]string{"a", "b", "c"}, "z") {
		t.Errorf("expected Contains to report \"z\" absent")
	}
	if Contains(nil, "a") {
		t.Errorf("expected Contains over a nil slice to report false")
	}
}

func TestMap(t *testing.T) {
	got := Map([]int{1, 2, 3}, func(n int) int { return n * n })
	want := []int{1, 4, 9}
	for i, v := range want {
		if got[i] != v {
			t.Errorf("Map()[%d] = %d, want %d", i, got[i], v)
		}
	}
}
