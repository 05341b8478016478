package entity

import "strings"

// BloodType represents one of the eight ABO/Rh blood groups
type BloodType string

const (
	BloodONegative  BloodType = "O-"
	BloodOPositive  BloodType = "O+"
	BloodANegative  BloodType = "A-"
	BloodAPositive  BloodType = "A+"
	BloodBNegative  BloodType = "B-"
	BloodBPositive  BloodType = "B+"
	BloodABNegative BloodType = "AB-"
	BloodABPositive BloodType = "AB+"
)

// compatibleDonors maps a recipient blood type to the donor types that may
// donate to it under standard ABO/Rh rules. O- is the universal donor and
// AB+ the universal recipient.
var compatibleDonors = map[BloodType][]BloodType{
	BloodONegative:  {BloodONegative},
	BloodOPositive:  {BloodONegative, BloodOPositive},
	BloodANegative:  {BloodONegative, BloodANegative},
	BloodAPositive:  {BloodONegative, BloodOPositive, BloodANegative, BloodAPositive},
	BloodBNegative:  {BloodONegative, BloodBNegative},
	BloodBPositive:  {BloodONegative, BloodOPositive, BloodBNegative, BloodBPositive},
	BloodABNegative: {BloodONegative, BloodANegative, BloodBNegative, BloodABNegative},
	BloodABPositive: {BloodONegative, BloodOPositive, BloodANegative, BloodAPositive, BloodBNegative, BloodBPositive, BloodABNegative, BloodABPositive},
}

// NormalizeBloodType parses a free-form blood type string, ignoring case and
// whitespace ("o +" becomes "O+")
func NormalizeBloodType(s string) BloodType {
	return BloodType(strings.ToUpper(strings.Join(strings.Fields(s), "")))
}

// IsRecognized checks whether the blood type is one of the eight ABO/Rh groups
func (t BloodType) IsRecognized() bool {
	_, ok := compatibleDonors[t]
	return ok
}

// CompatibleDonorTypes returns the donor blood types that may donate to a
// recipient of this type. An unrecognized type falls back to exact match
// only, so stored free-form values still match themselves instead of
// failing the whole search.
func (t BloodType) CompatibleDonorTypes() []BloodType {
	if donors, ok := compatibleDonors[t]; ok {
		result := make([]BloodType, len(donors))
		copy(result, donors)
		return result
	}
	return []BloodType{t}
}
