package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeBloodType(t *testing.T) {
	tests := []struct {
		input    string
		expected BloodType
	}{
		{"A+", BloodAPositive},
		{"a+", BloodAPositive},
		{" o - ", BloodONegative},
		{"ab +", BloodABPositive},
		{"AB-", BloodABNegative},
		{"xyz", BloodType("XYZ")},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeBloodType(tt.input), "input %q", tt.input)
	}
}

func TestCompatibleDonorTypesAlwaysIncludeUniversalDonor(t *testing.T) {
	recognized := []BloodType{
		BloodONegative, BloodOPositive,
		BloodANegative, BloodAPositive,
		BloodBNegative, BloodBPositive,
		BloodABNegative, BloodABPositive,
	}

	for _, recipient := range recognized {
		assert.Contains(t, recipient.CompatibleDonorTypes(), BloodONegative, "recipient %s", recipient)
	}
}

func TestUniversalRecipientAcceptsAllTypes(t *testing.T) {
	assert.Len(t, BloodABPositive.CompatibleDonorTypes(), 8)
}

func TestCompatibleDonorTypesStandardRules(t *testing.T) {
	assert.ElementsMatch(t,
		[]BloodType{BloodONegative, BloodOPositive, BloodANegative, BloodAPositive},
		BloodAPositive.CompatibleDonorTypes())

	assert.ElementsMatch(t,
		[]BloodType{BloodONegative, BloodBNegative},
		BloodBNegative.CompatibleDonorTypes())

	assert.ElementsMatch(t,
		[]BloodType{BloodONegative},
		BloodONegative.CompatibleDonorTypes())
}

func TestUnrecognizedTypeFallsBackToExactMatch(t *testing.T) {
	unknown := BloodType("C+")
	assert.False(t, unknown.IsRecognized())
	assert.Equal(t, []BloodType{unknown}, unknown.CompatibleDonorTypes())
}

func TestCompatibleDonorTypesReturnsCopy(t *testing.T) {
	donors := BloodOPositive.CompatibleDonorTypes()
	donors[0] = BloodType("mutated")
	assert.Contains(t, BloodOPositive.CompatibleDonorTypes(), BloodONegative)
}
