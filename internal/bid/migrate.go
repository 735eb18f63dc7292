package bid

import (
	"encoding/json"
	"fmt"

	"github.com/iwvelando/paint-bid/internal/pricing"
)

// Migrate upgrades an encoded bid to the current layout and reports whether
// anything changed. Detailed bids saved before auto-measurement was added
// have no houseSquareFootage input and get 0. Results saved without a
// breakdownType take the bid's calculator type. Current bids are returned
// unchanged, so Migrate is idempotent.
func Migrate(raw []byte) ([]byte, bool, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, false, fmt.Errorf("decoding bid: %w", err)
	}

	var calculatorType pricing.CalculatorType
	if err := json.Unmarshal(doc["calculatorType"], &calculatorType); err != nil {
		return nil, false, fmt.Errorf("decoding calculator type: %w", err)
	}
	if !calculatorType.Valid() {
		return nil, false, fmt.Errorf("unknown calculator type %q", calculatorType)
	}

	changed := false
	if calculatorType.IsDetailed() {
		upgraded, ok, err := setMissing(doc["inputs"], "houseSquareFootage", 0)
		if err != nil {
			return nil, false, fmt.Errorf("migrating inputs: %w", err)
		}
		if ok {
			doc["inputs"] = upgraded
			changed = true
		}
	}
	if result, present := doc["result"]; present {
		upgraded, ok, err := setMissing(result, "breakdownType", calculatorType)
		if err != nil {
			return nil, false, fmt.Errorf("migrating result: %w", err)
		}
		if ok {
			doc["result"] = upgraded
			changed = true
		}
	}
	if !changed {
		return raw, false, nil
	}

	migrated, err := json.Marshal(doc)
	if err != nil {
		return nil, false, fmt.Errorf("encoding bid: %w", err)
	}
	return migrated, true, nil
}

// setMissing adds key to the encoded object when it is absent.
func setMissing(object json.RawMessage, key string, value any) (json.RawMessage, bool, error) {
	var fields map[string]json.RawMessage
	if len(object) > 0 {
		if err := json.Unmarshal(object, &fields); err != nil {
			return nil, false, err
		}
	}
	if fields == nil {
		fields = map[string]json.RawMessage{}
	}
	if _, ok := fields[key]; ok {
		return object, false, nil
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return nil, false, err
	}
	fields[key] = encoded
	upgraded, err := json.Marshal(fields)
	if err != nil {
		return nil, false, err
	}
	return upgraded, true, nil
}

// Decode migrates raw and decodes it into a Bid. The flag reports whether
// the stored form was out of date.
func Decode(raw []byte) (Bid, bool, error) {
	migrated, changed, err := Migrate(raw)
	if err != nil {
		return Bid{}, false, err
	}
	var b Bid
	if err := json.Unmarshal(migrated, &b); err != nil {
		return Bid{}, false, fmt.Errorf("decoding bid: %w", err)
	}
	return b, changed, nil
}
