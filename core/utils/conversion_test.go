package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"Int", 42, 42},
		{"Float64", float64(1337), 1337},
		{"String", "256", 256},
		{"InvalidString", "abc", 0},
		{"Bytes", []byte("7"), 7},
		{"Nil", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToInt(tt.in))
		})
	}
}

func TestToString(t *testing.T) {
	assert.Equal(t, "PA_1125", ToString("PA_1125"))
	assert.Equal(t, "NY_042", ToString([]byte("NY_042")))
	assert.Equal(t, "", ToString(nil))
	assert.Equal(t, "12", ToString(12))
}
