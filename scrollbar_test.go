package easel

import "testing"

func TestScrollbarClamping(t *testing.T) {
	s := NewScrollbar()
	s.SetMaximum(300)
	s.SetViewportSize(100)

	if got := s.MaxValue(); got != 200 {
		t.Fatalf("MaxValue = %v, want 200", got)
	}

	s.SetValue(150)
	if s.Value() != 150 {
		t.Errorf("Value = %v, want 150", s.Value())
	}
	s.SetValue(999)
	if s.Value() != 200 {
		t.Errorf("Value = %v, want clamped 200", s.Value())
	}
	s.SetValue(-10)
	if s.Value() != 0 {
		t.Errorf("Value = %v, want clamped 0", s.Value())
	}

	// shrinking the range re-clamps the value
	s.SetValue(200)
	s.SetMaximum(120)
	if s.Value() != 20 {
		t.Errorf("Value after shrinking maximum = %v, want 20", s.Value())
	}
	s.SetViewportSize(200)
	if s.Value() != 0 {
		t.Errorf("Value after growing viewport = %v, want 0", s.Value())
	}
}

func TestScrollbarContentFits(t *testing.T) {
	s := NewScrollbar()
	s.SetMaximum(50)
	s.SetViewportSize(100)

	if s.MaxValue() != 0 {
		t.Errorf("MaxValue = %v, want 0", s.MaxValue())
	}
	s.SetValue(30)
	if s.Value() != 0 {
		t.Errorf("Value = %v, want 0 when content fits", s.Value())
	}
}

func TestScrollbarShown(t *testing.T) {
	tests := []struct {
		name     string
		policy   ScrollbarPolicy
		maximum  float32
		viewport float32
		want     bool
	}{
		{"automatic overflow", ScrollbarAutomatic, 200, 100, true},
		{"automatic fits", ScrollbarAutomatic, 80, 100, false},
		{"automatic exact fit", ScrollbarAutomatic, 100, 100, false},
		{"always with fit", ScrollbarAlways, 80, 100, true},
		{"never with overflow", ScrollbarNever, 200, 100, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScrollbar()
			s.SetPolicy(tt.policy)
			s.SetMaximum(tt.maximum)
			s.SetViewportSize(tt.viewport)
			if got := s.Shown(); got != tt.want {
				t.Errorf("Shown() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScrollbarValueCallbacks(t *testing.T) {
	s := NewScrollbar()
	s.SetMaximum(100)
	s.SetViewportSize(20)

	var got []float32
	s.OnValueChanged(func(v float32) { got = append(got, v) })

	s.SetValue(10)
	s.SetValue(10) // no effective change, no callback
	s.SetValue(500)

	want := []float32{10, 80}
	if len(got) != len(want) {
		t.Fatalf("callbacks = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("callback %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestScrollbarPolicyString(t *testing.T) {
	for policy, want := range map[ScrollbarPolicy]string{
		ScrollbarAutomatic: "automatic",
		ScrollbarAlways:    "always",
		ScrollbarNever:     "never",
	} {
		if got := policy.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", policy, got, want)
		}
	}
}
