package quiz

import "testing"

func TestValidate_SingleValues(t *testing.T) {
	tests := []struct {
		name      string
		submitted string
		correct   string
		want      bool
	}{
		{"exact match", "mitochondria", "mitochondria", true},
		{"case insensitive", "Mitochondria", "mitochondria", true},
		{"whitespace trimmed", "  42 ", "42", true},
		{"wrong answer", "nucleus", "mitochondria", false},
		{"empty submitted", "", "mitochondria", false},
		{"both empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Validate(Single(tt.submitted), Single(tt.correct)); got != tt.want {
				t.Errorf("Validate(%q, %q) = %v, want %v", tt.submitted, tt.correct, got, tt.want)
			}
		})
	}
}

func TestValidate_Sentinels(t *testing.T) {
	correct := Single("42")
	if Validate(Unanswered(), correct) {
		t.Error("unanswered validated as correct")
	}
	if Validate(TimedOut(), correct) {
		t.Error("timeout validated as correct")
	}
	if Validate(TimedOut(), Multi("a", "b")) {
		t.Error("timeout against multi validated as correct")
	}
}

func TestValidate_MultiVsMulti(t *testing.T) {
	tests := []struct {
		name      string
		submitted []string
		correct   []string
		want      bool
	}{
		{"same order", []string{"a", "b"}, []string{"a", "b"}, true},
		{"different order", []string{"b", "a"}, []string{"a", "b"}, true},
		{"case and space", []string{" B", "a"}, []string{"A", "b "}, true},
		{"missing element", []string{"a"}, []string{"a", "b"}, false},
		{"extra element", []string{"a", "b", "c"}, []string{"a", "b"}, false},
		{"duplicates collapse", []string{"a", "a", "b"}, []string{"a", "b"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Validate(Multi(tt.submitted...), Multi(tt.correct...)); got != tt.want {
				t.Errorf("Validate(%v, %v) = %v, want %v", tt.submitted, tt.correct, got, tt.want)
			}
		})
	}
}

func TestValidate_SetSymmetry(t *testing.T) {
	pairs := [][2][]string{
		{{"a", "b"}, {"b", "a"}},
		{{"a"}, {"a", "b"}},
		{{"x", "y", "z"}, {"z", "x"}},
	}
	for _, p := range pairs {
		ab := Validate(Multi(p[0]...), Multi(p[1]...))
		ba := Validate(Multi(p[1]...), Multi(p[0]...))
		if ab != ba {
			t.Errorf("asymmetric for %v vs %v: %v vs %v", p[0], p[1], ab, ba)
		}
	}
}

func TestValidate_MixedArity(t *testing.T) {
	// Multi submitted, single correct: any selected value may match.
	if !Validate(Multi("nucleus", "ribosome"), Single("ribosome")) {
		t.Error("multi containing correct single rejected")
	}
	if Validate(Multi("nucleus", "golgi"), Single("ribosome")) {
		t.Error("multi without correct single accepted")
	}

	// Single submitted, multi correct: membership test.
	if !Validate(Single("True"), Multi("true", "t")) {
		t.Error("single member of correct set rejected")
	}
	if Validate(Single("false"), Multi("true", "t")) {
		t.Error("single non-member accepted")
	}
}
