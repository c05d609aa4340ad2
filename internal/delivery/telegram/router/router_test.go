package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		raw, key, payload string
	}{
		{"\ftg|1|2|3", "tg", "1|2|3"},
		{"\fpwx", "pwx", ""},
		{"cal_week|2025-06-30", "cal_week", "2025-06-30"},
		{"", "", ""},
	}
	for _, tt := range tests {
		key, payload := Parse(tt.raw)
		assert.Equal(t, tt.key, key, tt.raw)
		assert.Equal(t, tt.payload, payload, tt.raw)
	}
}

func TestRegister(t *testing.T) {
	r := New()
	r.Register("tg", nil)
	_, ok := r.handlers["tg"]
	assert.True(t, ok)
}
