package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeForCode_Ranges(t *testing.T) {
	tests := []struct {
		name  string
		codes []int
		want  Theme
	}{
		{"clear", []int{0, 1, 2, 3}, ThemeClear},
		{"fog", []int{45, 46, 47, 48}, ThemeFog},
		{"rain", []int{51, 53, 55, 61, 63, 65, 66, 67}, ThemeRain},
		{"snow", []int{71, 73, 75, 77}, ThemeSnow},
		{"storm", []int{95, 96, 99, 120}, ThemeStorm},
		{"gap between rain and snow falls back to clear", []int{68, 69, 70}, ThemeClear},
		{"unmapped codes fall back to clear", []int{4, 10, 44, 49, 50, 78, 94, -1}, ThemeClear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, code := range tt.codes {
				assert.Equal(t, tt.want, ThemeForCode(code), "code %d", code)
			}
		})
	}
}

func TestConditionForCode_KnownCodes(t *testing.T) {
	known := []int{0, 1, 2, 3, 45, 48, 51, 53, 55, 61, 63, 65, 71, 73, 75, 95}
	for _, code := range known {
		c, ok := ConditionForCode(code)
		assert.True(t, ok, "code %d should be mapped", code)
		assert.NotEmpty(t, c.Description, "code %d", code)
		assert.NotEmpty(t, c.Icon, "code %d", code)
	}
}

func TestConditionForCode_UnknownCode(t *testing.T) {
	c, ok := ConditionForCode(42)
	assert.False(t, ok)
	assert.Empty(t, c.Description)
	assert.Empty(t, c.Icon)
}

func TestConditionForCode_DistinctDescriptions(t *testing.T) {
	c0, _ := ConditionForCode(0)
	c95, _ := ConditionForCode(95)
	assert.Equal(t, "Clear sky", c0.Description)
	assert.Equal(t, "Thunderstorm", c95.Description)
}
