package entity

// Keys read from the properties bag of a usage record.
const (
	PropertyMeterCategory = "meterCategory"
	PropertyInstanceName  = "instanceName"
	PropertyPretaxCost    = "pretaxCost"
)

// UsageRecord is one line item of a consumption export.
// Properties is nil when the record carries no properties object.
type UsageRecord struct {
	Properties map[string]any `json:"properties,omitempty"`
}

// HasProperties reports whether the record has a properties bag.
func (r UsageRecord) HasProperties() bool {
	return r.Properties != nil
}

// Property returns the raw value stored under key, if present.
func (r UsageRecord) Property(key string) (any, bool) {
	if r.Properties == nil {
		return nil, false
	}
	v, ok := r.Properties[key]
	return v, ok
}
