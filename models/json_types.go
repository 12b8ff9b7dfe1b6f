package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// TrainingStyles describes which training formats a city or gym offers.
type TrainingStyles struct {
	Gi          bool `json:"gi"`
	NoGi        bool `json:"noGi"`
	MMA         bool `json:"mma"`
	SelfDefense bool `json:"selfDefense"`
}

// ClassAvailability describes which parts of the day classes run.
type ClassAvailability struct {
	Morning   bool `json:"morning"`
	Afternoon bool `json:"afternoon"`
	Evening   bool `json:"evening"`
}

// Weather is a city's climate descriptor: a coarse type plus free text.
// Known types: tropical, temperate, mediterranean, desert, cold.
type Weather struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// OpeningHours maps a weekday name to a human-readable schedule string.
type OpeningHours map[string]string

// StringList is a helper for storing string arrays in text columns.
type StringList []string

func (t TrainingStyles) Value() (driver.Value, error) {
	return json.Marshal(t)
}

func (t *TrainingStyles) Scan(value interface{}) error {
	return scanJSON(value, t)
}

func (a ClassAvailability) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *ClassAvailability) Scan(value interface{}) error {
	return scanJSON(value, a)
}

func (w Weather) Value() (driver.Value, error) {
	return json.Marshal(w)
}

func (w *Weather) Scan(value interface{}) error {
	return scanJSON(value, w)
}

func (h OpeningHours) Value() (driver.Value, error) {
	if len(h) == 0 {
		return nil, nil
	}
	return json.Marshal(h)
}

func (h *OpeningHours) Scan(value interface{}) error {
	if value == nil {
		*h = OpeningHours{}
		return nil
	}
	return scanJSON(value, h)
}

func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	return scanJSON(value, l)
}

func scanJSON(value, dest interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return errors.New("type assertion to []byte failed")
	}
}
