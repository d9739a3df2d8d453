package quiz

import "testing"

func TestDifficulty_UpDownSaturate(t *testing.T) {
	if Easy.Down() != Easy {
		t.Error("Easy.Down() should stay Easy")
	}
	if Hard.Up() != Hard {
		t.Error("Hard.Up() should stay Hard")
	}
	if Easy.Up() != Medium || Medium.Up() != Hard {
		t.Error("Up should step one level")
	}
	if Hard.Down() != Medium || Medium.Down() != Easy {
		t.Error("Down should step one level")
	}
}

func TestAdapter_RaisesOnHighAccuracy(t *testing.T) {
	a := NewAdapter(Medium, 5)
	for i := 0; i < 5; i++ {
		a.Record(true)
	}
	if a.Level() != Hard {
		t.Errorf("level = %v after 5 correct, want hard", a.Level())
	}

	// Already at max: a sixth correct answer must not overflow.
	a.Record(true)
	if a.Level() != Hard {
		t.Errorf("level = %v, want hard (saturated)", a.Level())
	}
}

func TestAdapter_DropsOnLowAccuracy(t *testing.T) {
	a := NewAdapter(Hard, 5)
	// 1 correct of 5 = 0.2 <= 0.4 after the window fills.
	a.Record(true)
	for i := 0; i < 4; i++ {
		a.Record(false)
	}
	if a.Level() == Hard {
		t.Errorf("level stayed hard with 20%% window accuracy")
	}
}

func TestAdapter_ShortWindowAdaptsEarly(t *testing.T) {
	// The very first wrong answer gives window accuracy 0.0, which should
	// already drop the level; adaptation reacts on whatever history exists.
	a := NewAdapter(Medium, 5)
	a.Record(false)
	if a.Level() != Easy {
		t.Errorf("level = %v after first wrong answer, want easy", a.Level())
	}

	b := NewAdapter(Easy, 5)
	b.Record(true)
	if b.Level() != Medium {
		t.Errorf("level = %v after first correct answer, want medium", b.Level())
	}
}

func TestAdapter_SingleStepInvariant(t *testing.T) {
	a := NewAdapter(Easy, 3)
	outcomes := []bool{true, true, true, false, false, true, false, false, false, true, true}
	prev := a.Level()
	for i, ok := range outcomes {
		a.Record(ok)
		cur := a.Level()
		diff := int(cur) - int(prev)
		if diff < -1 || diff > 1 {
			t.Fatalf("outcome %d: level jumped from %v to %v", i, prev, cur)
		}
		prev = cur
	}
}

func TestAdapter_NeutralAccuracyWhenEmpty(t *testing.T) {
	a := NewAdapter(Medium, 5)
	if got := a.Accuracy(); got != 0.5 {
		t.Errorf("empty-window accuracy = %v, want 0.5", got)
	}
}

func TestAdapter_WindowTruncation(t *testing.T) {
	a := NewAdapter(Medium, 3)
	for i := 0; i < 10; i++ {
		a.Record(i%2 == 0)
	}
	if got := len(a.History()); got != 3 {
		t.Errorf("history length = %d, want 3", got)
	}
}

func TestAdapter_Restore(t *testing.T) {
	a := NewAdapter(Medium, 5)
	a.Restore(Hard, []bool{true, false, true})

	if a.Level() != Hard {
		t.Errorf("restored level = %v, want hard", a.Level())
	}
	if got := a.Accuracy(); got < 0.66 || got > 0.67 {
		t.Errorf("restored accuracy = %v, want 2/3", got)
	}
}
