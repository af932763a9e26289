package prediction

import (
	"strconv"
	"strings"

	"medequip-backend/internal/model"
)

// NoRecordSentinel is what the model receives for reason/description when a
// device has no service history on file.
const NoRecordSentinel = "N/A"

// Normalize turns each device descriptor plus its matched service record into
// the field set the model expects. Output is one ModelInput per device, in
// input order. A device never fails normalization: no digits in its code
// means key 0, no matching record means the "N/A" sentinel.
func Normalize(devices []model.DeviceDescriptor, records []model.ServiceRecord) []model.ModelInput {
	inputs := make([]model.ModelInput, 0, len(devices))

	for _, d := range devices {
		reason := NoRecordSentinel
		description := NoRecordSentinel

		// 1. First matching record wins; duplicates after it are ignored.
		for _, r := range records {
			if r.DeviceID == d.DeviceID {
				reason = r.Reason
				description = r.Description
				break
			}
		}

		// 2. Numeric key: digits of the device code, 0 if there are none.
		inputs = append(inputs, model.ModelInput{
			DeviceID:           numericKey(d.DeviceID),
			Type:               d.Type,
			CountryEvent:       d.CountryEvent,
			CountryDevice:      d.CountryDevice,
			ManufacturerID:     d.ManufacturerID,
			Name:               d.Name,
			Year:               d.Year,
			QuantityInCommerce: d.QuantityInCommerce,
			Reason:             reason,
			Description:        description,
		})
	}

	return inputs
}

// numericKey strips every non-digit from a device code and parses the rest,
// so "VENT-004" becomes 4 and "XYZ" becomes 0.
func numericKey(deviceCode string) int {
	var digits strings.Builder
	for _, c := range deviceCode {
		if c >= '0' && c <= '9' {
			digits.WriteRune(c)
		}
	}

	key, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}
	return key
}
