package prediction

import (
	"fmt"

	"medequip-backend/internal/model"
)

// Result is one prediction with the originating device's identity reattached.
type Result map[string]interface{}

// Reconcile merges raw[i] with devices[i]'s id and deviceId. The model does
// not echo caller identity, so position is the only join key; if the counts
// differ we fail the whole batch rather than truncate or pad. If the remote
// service ever reorders or drops items this check catches drops but not
// reorders, which is why the lengths must be enforced strictly.
func Reconcile(raw []Raw, devices []model.DeviceDescriptor) ([]Result, error) {
	if len(raw) != len(devices) {
		return nil, fmt.Errorf("%w: %d predictions for %d devices",
			ErrPredictionCountMismatch, len(raw), len(devices))
	}

	results := make([]Result, 0, len(devices))
	for i, d := range devices {
		merged := make(Result, len(raw[i])+2)
		for k, v := range raw[i] {
			merged[k] = v
		}
		// Identity always comes from the request, never from the model.
		merged["id"] = d.ID
		merged["deviceId"] = d.DeviceID
		results = append(results, merged)
	}

	return results, nil
}
