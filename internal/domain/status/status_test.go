package status

import (
	"testing"
)

func TestNormalizeIsTotal(t *testing.T) {
	inputs := []any{
		"present", "absent", "late", "leave", "pending",
		"حاضر", "غائب", "متأخر", "إجازة",
		"Present", "  LATE  ", "vacation", "",
		true, false,
		nil, 42, 3.14, []string{"present"}, map[string]any{"status": "present"},
	}
	for _, in := range inputs {
		got := Normalize(in)
		switch got {
		case Present, Absent, Late, Leave, Pending, Unknown:
		default:
			t.Errorf("Normalize(%v) = %q, not a canonical status", in, got)
		}
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		input any
		want  Status
	}{
		{true, Present},
		{false, Absent},
		{"present", Present},
		{"حاضر", Present},
		{"  Present ", Present},
		{"absent", Absent},
		{"غائب", Absent},
		{"late", Late},
		{"متأخر", Late},
		{"leave", Leave},
		{"إجازة", Leave},
		{"pending", Pending},
		{"vacation", Unknown},
		{"", Unknown},
		{nil, Unknown},
		{12, Unknown},
	}
	for _, c := range cases {
		if got := Normalize(c.input); got != c.want {
			t.Errorf("Normalize(%v) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestNormalizeBilingualEquivalence(t *testing.T) {
	pairs := [][2]string{
		{"present", "حاضر"},
		{"absent", "غائب"},
		{"late", "متأخر"},
		{"leave", "إجازة"},
	}
	for _, p := range pairs {
		if Normalize(p[0]) != Normalize(p[1]) {
			t.Errorf("Normalize(%q) != Normalize(%q)", p[0], p[1])
		}
	}
}

func TestDisplayLabel(t *testing.T) {
	cases := []struct {
		input any
		want  string
	}{
		{"present", "Present"},
		{"حاضر", "Present"},
		{"late", "Late"},
		{true, "Present"},
		{false, "Absent"},
		{"vacation", "Vacation"},  // unrecognized strings pass through capitalized
		{"sick day", "Sick day"},
		{"", "Unknown"},
		{"   ", "Unknown"},
		{nil, "Unknown"},
		{99, "Unknown"},
	}
	for _, c := range cases {
		if got := DisplayLabel(c.input); got != c.want {
			t.Errorf("DisplayLabel(%v) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestColorsDefinedForEveryStatus(t *testing.T) {
	all := append([]Status{Unknown}, Countable...)
	for _, s := range all {
		c := Colors(s)
		if c.Text == "" || c.Badge == "" {
			t.Errorf("Colors(%q) has empty classes: %+v", s, c)
		}
	}

	// Round-trip through Normalize must always land on a colored status.
	for _, raw := range []any{"present", "vacation", nil, true, 7} {
		c := Colors(Normalize(raw))
		if c.Text == "" || c.Badge == "" {
			t.Errorf("Colors(Normalize(%v)) undefined", raw)
		}
	}
}

func TestColorsTable(t *testing.T) {
	cases := []struct {
		status Status
		text   string
	}{
		{Present, "text-green-500"},
		{Absent, "text-red-500"},
		{Late, "text-orange-500"},
		{Leave, "text-blue-500"},
		{Pending, "text-yellow-500"},
		{Unknown, "text-gray-400"},
	}
	for _, c := range cases {
		if got := Colors(c.status); got.Text != c.text {
			t.Errorf("Colors(%q).Text = %q, want %q", c.status, got.Text, c.text)
		}
	}
}
