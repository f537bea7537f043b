package aggregate

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/eternal-wealth/toolkit/internal/domain/catalog"
	"github.com/eternal-wealth/toolkit/internal/domain/entity"
)

func TestProgressPercent(t *testing.T) {
	tests := []struct {
		name    string
		current string
		target  string
		want    string
	}{
		{"half way", "500", "1000", "50"},
		{"zero current", "0", "1000", "0"},
		{"exactly target", "1000", "1000", "100"},
		{"over target is clamped", "2500", "1000", "100"},
		{"negative current is clamped", "-10", "1000", "0"},
		{"zero target", "500", "0", "0"},
		{"negative target", "500", "-5", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProgressPercent(d(tt.current), d(tt.target))
			if !got.Equal(d(tt.want)) {
				t.Errorf("ProgressPercent(%s, %s) = %s, want %s", tt.current, tt.target, got, tt.want)
			}
		})
	}
}

func TestProgressPercent_Monotonic(t *testing.T) {
	target := d("750")
	prev := decimal.NewFromInt(-1)

	for current := int64(0); current <= 1000; current += 25 {
		got := ProgressPercent(decimal.NewFromInt(current), target)
		if got.LessThan(prev) {
			t.Fatalf("ProgressPercent decreased at current=%d: %s < %s", current, got, prev)
		}
		if got.GreaterThan(d("100")) {
			t.Fatalf("ProgressPercent exceeded 100 at current=%d: %s", current, got)
		}
		prev = got
	}
}

func TestNewProgress(t *testing.T) {
	tests := []struct {
		name         string
		current      string
		target       string
		wantComplete bool
		wantRounded  int64
	}{
		{"rounds half up", "1010", "2000", false, 51},
		{"rounds down", "333", "1000", false, 33},
		{"complete", "1000", "1000", true, 100},
		{"no target", "10", "0", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProgress(d(tt.current), d(tt.target))
			if p.Complete != tt.wantComplete {
				t.Errorf("Complete = %v, want %v", p.Complete, tt.wantComplete)
			}
			if p.RoundedPercent() != tt.wantRounded {
				t.Errorf("RoundedPercent() = %d, want %d", p.RoundedPercent(), tt.wantRounded)
			}
		})
	}
}

func TestChallengeTotal(t *testing.T) {
	tests := []struct {
		name  string
		flags []bool
		want  int64
	}{
		{"days 1 and 3", []bool{true, false, true}, 4},
		{"none", make([]bool, 30), 0},
		{"empty", nil, 0},
	}

	all := make([]bool, 30)
	for i := range all {
		all[i] = true
	}
	tests = append(tests, struct {
		name  string
		flags []bool
		want  int64
	}{"all thirty days", all, 465})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChallengeTotal(tt.flags); !got.Equal(decimal.NewFromInt(tt.want)) {
				t.Errorf("ChallengeTotal() = %s, want %d", got, tt.want)
			}
		})
	}
}

func TestChecklistCompletion(t *testing.T) {
	list, _ := catalog.New(entity.ChecklistKindChallenge)
	for i := 0; i < 15; i++ {
		list.Items[i].Checked = true
	}

	p := ChecklistCompletion(&list)
	if !p.Percent.Equal(d("50")) {
		t.Errorf("Percent = %s, want 50", p.Percent)
	}
	if !p.Target.Equal(d("30")) {
		t.Errorf("Target = %s, want 30", p.Target)
	}
}

func TestNoiseLifeCounts(t *testing.T) {
	entries := []entity.NoiseLifeEntry{
		*entity.NewNoiseLifeEntry("Streaming", entity.NoiseLifeTypeNoise),
		*entity.NewNoiseLifeEntry("Gym", entity.NoiseLifeTypeLife),
		*entity.NewNoiseLifeEntry("Takeout", entity.NoiseLifeTypeNoise),
	}

	noise, life := NoiseLifeCounts(entries)
	if noise != 2 || life != 1 {
		t.Errorf("NoiseLifeCounts() = (%d, %d), want (2, 1)", noise, life)
	}
}
