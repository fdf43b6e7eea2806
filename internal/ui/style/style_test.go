package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/osw/internal/core/domain"
	"go.trai.ch/osw/internal/ui/style"
)

func TestStepIcon(t *testing.T) {
	tests := []struct {
		value domain.StepValue
		icon  string
	}{
		{domain.StepSuccess, style.Check},
		{domain.StepFail, style.Cross},
		{domain.StepNA, style.Tilde},
		{domain.StepSkip, style.Circle},
		{domain.StepValue("other"), style.Dot},
	}
	for _, tt := range tests {
		t.Run(string(tt.value), func(t *testing.T) {
			icon, _ := style.StepIcon(tt.value)
			assert.Equal(t, tt.icon, icon)
		})
	}
}

func TestRunIcon(t *testing.T) {
	icon, color := style.RunIcon(domain.RunSuccess)
	assert.Equal(t, style.Check, icon)
	assert.Equal(t, style.Green, color)

	icon, _ = style.RunIcon(domain.RunHalted)
	assert.Equal(t, style.Warning, icon)

	icon, color = style.RunIcon(domain.RunAborted)
	assert.Equal(t, style.Cross, icon)
	assert.Equal(t, style.Red, color)
}
