package textnorm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"modflow/backend/internal/textnorm"
)

func TestFold(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  string
	}{
		{"plain ascii", "report", "report"},
		{"surrounding whitespace", "  report\n", "report"},
		{"combining accents stripped", "ĥéĺṕ", "help"},
		{"full-width compatibility forms", "ｒｅｐｏｒｔ", "report"},
		{"empty", "", ""},
		{"interior spacing preserved", "2 , 3", "2 , 3"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.out, textnorm.Fold(tc.in))
		})
	}
}
