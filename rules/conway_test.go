package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantAlive := n == 2 || n == 3
		if got := ApplyConwayRules(true, n); got != wantAlive {
			t.Errorf("alive cell with %d neighbors: got %v, want %v", n, got, wantAlive)
		}
		wantBorn := n == 3
		if got := ApplyConwayRules(false, n); got != wantBorn {
			t.Errorf("dead cell with %d neighbors: got %v, want %v", n, got, wantBorn)
		}
	}
}

func TestConwayRuleSetMatchesApplyConwayRules(t *testing.T) {
	rule := ConwayRuleSet().Rule()
	for n := 0; n <= 8; n++ {
		for _, alive := range []bool{true, false} {
			if rule(alive, n) != ApplyConwayRules(alive, n) {
				t.Fatalf("ruleset disagrees with Conway for alive=%v neighbors=%d", alive, n)
			}
		}
	}
}
