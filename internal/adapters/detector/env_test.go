package detector_test

import (
	"testing"

	"github.com/gracelang/mason/internal/adapters/detector"
	"github.com/stretchr/testify/assert"
)

func TestIsCI(t *testing.T) {
	tests := []struct {
		name    string
		ciValue string
		want    bool
	}{
		{
			name:    "CI=true",
			ciValue: "true",
			want:    true,
		},
		{
			name:    "CI=1",
			ciValue: "1",
			want:    true,
		},
		{
			name:    "CI=false",
			ciValue: "false",
			want:    false,
		},
		{
			name:    "CI empty",
			ciValue: "",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CI", tt.ciValue)
			assert.Equal(t, tt.want, detector.IsCI())
		})
	}
}

func TestInteractive_UnderTest(t *testing.T) {
	// go test never attaches stdout to a terminal, so this must be
	// false regardless of CI.
	t.Setenv("CI", "")
	assert.False(t, detector.Interactive())

	t.Setenv("CI", "true")
	assert.False(t, detector.Interactive())
}
