package types

import "time"

// Setting value types.
const (
	SettingString  = "string"
	SettingNumber  = "number"
	SettingBoolean = "boolean"
	SettingObject  = "object"
)

var validSettingTypes = map[string]bool{
	SettingString:  true,
	SettingNumber:  true,
	SettingBoolean: true,
	SettingObject:  true,
}

// SystemSetting is a typed configuration record keyed by a natural
// string key rather than an auto-assigned integer.
type SystemSetting struct {
	Key         string    `json:"key"`
	Value       any       `json:"value"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	UpdateDate  time.Time `json:"updateDate"`
}

// Validate checks the key and the declared value type.
func (s *SystemSetting) Validate() error {
	if s.Key == "" {
		return ErrInvalidKey
	}
	if !validSettingTypes[s.Type] {
		return ErrInvalidSettingType
	}
	return nil
}
