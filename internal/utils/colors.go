package utils

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
)

const shiftMagnitude = 0.2

// GenerateColor — случайный цвет профиля: шесть независимых hex-цифр.
func GenerateColor() string {
	const letters = "0123456789ABCDEF"
	b := strings.Builder{}
	b.WriteByte('#')
	for i := 0; i < 6; i++ {
		b.WriteByte(letters[rand.Intn(16)])
	}
	return b.String()
}

// ShiftColor сдвигает светлоту цвета (HSL) на 0.2 в сторону контраста:
// тёмный цвет светлеет, светлый — темнеет. Используется для акцентного
// цвета профиля.
func ShiftColor(hexColor string) (string, error) {
	r, g, b, err := hexToRGB(hexColor)
	if err != nil {
		return "", err
	}

	h, s, l := rgbToHSL(r, g, b)

	isDark := l < 0.5
	var newL float64
	if isDark {
		newL = l + shiftMagnitude
	} else {
		newL = l - shiftMagnitude
	}
	newL = math.Max(0, math.Min(1, newL))

	r2, g2, b2 := hslToRGB(h, s, newL)
	return rgbToHex(r2, g2, b2), nil
}

// IsColorDark — тёмный ли цвет по яркости (luma < 128).
func IsColorDark(color string) (bool, error) {
	r, g, b, err := hexToRGB(color)
	if err != nil {
		return false, err
	}
	return float64(r)*0.299+float64(g)*0.587+float64(b)*0.114 < 128, nil
}

func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func hexToRGB(hex string) (int, int, int, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid hex color")
	}

	r, err := strconv.ParseInt(hex[0:2], 16, 0)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid hex color")
	}
	g, err := strconv.ParseInt(hex[2:4], 16, 0)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid hex color")
	}
	b, err := strconv.ParseInt(hex[4:6], 16, 0)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid hex color")
	}
	return int(r), int(g), int(b), nil
}

func rgbToHex(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func rgbToHSL(ri, gi, bi int) (h, s, l float64) {
	r := float64(ri) / 255
	g := float64(gi) / 255
	b := float64(bi) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l = (max + min) / 2

	if max == min {
		return 0, 0, l
	}

	d := max - min
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	case b:
		h = (r-g)/d + 4
	}
	h /= 6
	return h, s, l
}

func hslToRGB(h, s, l float64) (int, int, int) {
	if s == 0 {
		v := int(math.Round(l * 255))
		return v, v, v
	}

	hue2rgb := func(p, q, t float64) float64 {
		if t < 0 {
			t += 1
		}
		if t > 1 {
			t -= 1
		}
		switch {
		case t < 1.0/6:
			return p + (q-p)*6*t
		case t < 1.0/2:
			return q
		case t < 2.0/3:
			return p + (q-p)*(2.0/3-t)*6
		}
		return p
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	r := hue2rgb(p, q, h+1.0/3)
	g := hue2rgb(p, q, h)
	b := hue2rgb(p, q, h-1.0/3)

	return int(math.Round(r * 255)), int(math.Round(g * 255)), int(math.Round(b * 255))
}
