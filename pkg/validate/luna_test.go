package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLuna(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"Valid card number", "4561261212345467", true},
		{"Invalid checksum", "4561261212345464", false},
		{"Not a number", "4561abc212345467", false},
		{"Empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLuna(tt.input))
		})
	}
}
