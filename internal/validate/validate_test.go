package validate

import (
	"fmt"
	"testing"

	"traceability-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructMessages(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"missing name", models.CleaningArea{Frequency: models.FrequencyDaily}, "name is required"},
		{"bad frequency", models.CleaningArea{Name: "Floor", Frequency: "HOURLY"}, "frequency must be one of DAILY WEEKLY MONTHLY"},
		{"bad date", models.InboundItem{Name: "Flour", ExpiryDate: "12/01/2024"}, "expiryDate must be YYYY-MM-DD"},
		{"inverted band", models.RefrigerationUnit{Name: "Fridge", MinTemp: 4, MaxTemp: 0}, "maxTemp must not be lower than minTemp"},
		{"negative warning days", models.Settings{DLCWarningDays: -1}, "dlcWarningDays must be at least 0"},
		{"bad reminder time", models.Settings{MorningReminder: "8h"}, "morningReminder must be HH:MM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.in)
			require.Error(t, err)
			assert.True(t, IsValidation(err))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestStructValid(t *testing.T) {
	assert.NoError(t, Struct(models.RefrigerationUnit{Name: "Fridge", MinTemp: 0, MaxTemp: 4}))
	assert.NoError(t, Struct(models.DefaultSettings()))
}

func TestIsValidationWrapped(t *testing.T) {
	err := fmt.Errorf("save: %w", Errorf("slot is required"))
	assert.True(t, IsValidation(err))
	assert.False(t, IsValidation(fmt.Errorf("disk full")))
}
