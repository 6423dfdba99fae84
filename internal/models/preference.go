package models

import (
	"encoding/json"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Preference is a single per-user setting.
//
// Data holds the JSON encoded value so that settings of any shape can
// be stored. Every preference is independently stored and independently
// defaulted: the absence of a stored value is not an error, readers
// fall back to the default they pass in.
type Preference struct {
	Model
	UserID uint64 `json:"-" gorm:"uniqueIndex:preference_user_id_name"`
	Name   string `json:"name" gorm:"uniqueIndex:preference_user_id_name" example:"listPageSize"`
	Data   string `json:"data" example:"50"`
}

// BeforeSave trims whitespace from the preference name.
func (p *Preference) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)

	return nil
}

// SetPreference stores a preference value for the user, replacing an
// existing value for the same name.
func SetPreference(db *gorm.DB, userID uint64, name string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	var preference Preference
	err = db.Where(&Preference{UserID: userID, Name: name}).First(&preference).Error
	if err != nil && !errors.Is(err, ErrResourceNotFound) {
		return err
	}

	if errors.Is(err, ErrResourceNotFound) {
		return db.Create(&Preference{UserID: userID, Name: name, Data: string(data)}).Error
	}

	return db.Model(&preference).Update("data", string(data)).Error
}

// preferenceData reads the raw stored value for a preference. The
// second return value reports whether a value is stored at all.
func preferenceData(db *gorm.DB, userID uint64, name string) (string, bool, error) {
	var preference Preference
	err := db.Where(&Preference{UserID: userID, Name: name}).First(&preference).Error
	if errors.Is(err, ErrResourceNotFound) {
		return "", false, nil
	}

	if err != nil {
		return "", false, err
	}

	return preference.Data, true, nil
}

// PreferenceValue reads a preference into the type parameter, falling
// back to the passed default when no value is stored or the stored
// value does not decode into the requested type.
func PreferenceValue[T any](db *gorm.DB, userID uint64, name string, fallback T) (T, error) {
	data, ok, err := preferenceData(db, userID, name)
	if err != nil {
		return fallback, err
	}

	if !ok {
		return fallback, nil
	}

	var value T
	if err := json.Unmarshal([]byte(data), &value); err != nil {
		// A value of an unexpected shape is treated like an absent
		// one, it must never break page rendering
		return fallback, nil
	}

	return value, nil
}
