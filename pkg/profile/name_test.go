package profile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/hyprpier/pkg/errors"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty", "", true},
		{"too long", strings.Repeat("a", 101), true},
		{"max length", strings.Repeat("a", 100), false},
		{"hidden", ".hidden", true},
		{"slash", "a/b", true},
		{"backslash", `a\b`, true},
		{"dot dot", "a..b", true},
		{"less than", "a<b", true},
		{"greater than", "a>b", true},
		{"colon", "a:b", true},
		{"quote", `a"b`, true},
		{"pipe", "a|b", true},
		{"question", "a?b", true},
		{"star", "a*b", true},
		{"nul", "a\x00b", true},
		{"valid", "work-desk_2", false},
		{"spaces allowed", "home office", false},
		{"single dot inside", "v1.2", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrValidation))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
