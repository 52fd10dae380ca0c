package utils

import (
	"regexp"
	"testing"
)

func TestGenerateColor_Format(t *testing.T) {
	re := regexp.MustCompile(`^#[0-9A-F]{6}$`)
	for i := 0; i < 1000; i++ {
		c := GenerateColor()
		if !re.MatchString(c) {
			t.Fatalf("невалидный цвет: %q", c)
		}
	}
}

func TestShiftColor(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"#000000", "#333333"}, // тёмный светлеет
		{"#ffffff", "#cccccc"}, // светлый темнеет
		{"#ff0000", "#990000"},
	}
	for _, c := range cases {
		got, err := ShiftColor(c.in)
		if err != nil {
			t.Fatalf("ShiftColor(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ShiftColor(%q) = %q, ожидалось %q", c.in, got, c.want)
		}
	}
}

func TestShiftColor_Invalid(t *testing.T) {
	if _, err := ShiftColor("not-a-color"); err == nil {
		t.Fatal("ожидалась ошибка на невалидном цвете")
	}
}

func TestIsColorDark(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"#000000", true},
		{"#FFFFFF", false},
		{"#fff", false}, // трёхзначная запись
		{"#123", true},
	}
	for _, c := range cases {
		got, err := IsColorDark(c.in)
		if err != nil {
			t.Fatalf("IsColorDark(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("IsColorDark(%q) = %v, ожидалось %v", c.in, got, c.want)
		}
	}

	if _, err := IsColorDark("xyz"); err == nil {
		t.Fatal("ожидалась ошибка на невалидном цвете")
	}
}

func TestCapitalize(t *testing.T) {
	if got := Capitalize("question"); got != "Question" {
		t.Fatalf("Capitalize: %q", got)
	}
	if got := Capitalize(""); got != "" {
		t.Fatalf("Capitalize пустой строки: %q", got)
	}
}
