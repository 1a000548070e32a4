package obj

import "testing"

func TestTransitionSwitchesAtDarkest(t *testing.T) {
	tr := NewTransition()
	var switched []Mode
	tr.OnSwitch = func(m Mode) { switched = append(switched, m) }

	tr.Enter(ModeBattle)
	tr.Enter(ModeEvent)
	for i := 0; i < tr.Duration-1; i++ {
		tr.Update()
	}
	if len(switched) != 0 {
		t.Fatalf("switched early")
	}
	if a := tr.Alpha(); a <= 0.9 {
		t.Fatalf("alpha before switch = %v", a)
	}

	tr.Update()
	if len(switched) != 1 || switched[0] != ModeBattle {
		t.Fatalf("switched = %v, want [battle]", switched)
	}
	if a := tr.Alpha(); a != 1 {
		t.Fatalf("alpha at switch = %v, want 1", a)
	}

	running := true
	for i := 0; i < tr.Duration; i++ {
		running = tr.Update()
	}
	if running || tr.Active || tr.Alpha() != 0 {
		t.Fatalf("transition still running")
	}
}
