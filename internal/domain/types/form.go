package types

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FormNumber is a numeric form field coerced from free text. Input that does
// not parse becomes NaN and is submitted uncorrected; NaN encodes as JSON
// null on the wire, matching how the add-service form has always behaved.
type FormNumber float64

// ParseFormNumber coerces raw form input into a FormNumber.
func ParseFormNumber(raw string) FormNumber {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return FormNumber(math.NaN())
	}
	return FormNumber(f)
}

// IsNaN reports whether the field failed numeric coercion.
func (n FormNumber) IsNaN() bool { return math.IsNaN(float64(n)) }

// MarshalJSON encodes NaN as null; encoding/json rejects NaN outright.
func (n FormNumber) MarshalJSON() ([]byte, error) {
	if n.IsNaN() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(n))
}

// UnmarshalJSON decodes null back to NaN.
func (n *FormNumber) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*n = FormNumber(math.NaN())
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*n = FormNumber(f)
	return nil
}

// ServiceDraft is the submission payload for a new listing. Foreign keys and
// coordinates are FormNumbers so failed coercion travels to the backend
// as-is rather than silently defaulting to zero.
type ServiceDraft struct {
	HospitalID    FormNumber `json:"hospital_id"`
	ServiceTypeID FormNumber `json:"service_type_id"`
	Name          string     `json:"name"`
	Provider      string     `json:"provider"`
	Contact       string     `json:"contact"`
	Description   string     `json:"description"`
	Timings       string     `json:"timings"`
	Eligibility   string     `json:"eligibility"`
	RequiredDocs  string     `json:"required_docs"`
	Latitude      FormNumber `json:"latitude"`
	Longitude     FormNumber `json:"longitude"`
}
