package models

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Currency is a ledger currency.
//
// At most one currency per user group is marked as primary. The primary
// currency is the default for all amounts the group's users see.
type Currency struct {
	Model
	UserGroupID   uint64 `json:"-" gorm:"uniqueIndex:currency_user_group_id_code"`
	Name          string `json:"name" example:"Euro"`
	Code          string `json:"code" gorm:"uniqueIndex:currency_user_group_id_code" example:"EUR"`
	Symbol        string `json:"symbol" example:"€"`
	DecimalPlaces int32  `json:"decimal_places" example:"2"`
	IsPrimary     bool   `json:"-"`
}

// BeforeSave normalizes the currency code.
func (c *Currency) BeforeSave(_ *gorm.DB) error {
	c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
	c.Name = strings.TrimSpace(c.Name)
	c.Symbol = strings.TrimSpace(c.Symbol)

	return nil
}

// AfterSave keeps the primary flag unique within the user group.
func (c *Currency) AfterSave(tx *gorm.DB) error {
	if !c.IsPrimary {
		return nil
	}

	return tx.Model(&Currency{}).
		Where("user_group_id = ? AND id != ? AND is_primary", c.UserGroupID, c.ID).
		Update("is_primary", false).Error
}

// PrimaryCurrency returns the primary currency of the user group.
//
// The second return value reports whether one is configured at all, a
// group without a primary currency is valid.
func PrimaryCurrency(db *gorm.DB, userGroupID uint64) (Currency, bool, error) {
	var currency Currency
	err := db.Where(&Currency{UserGroupID: userGroupID, IsPrimary: true}).First(&currency).Error
	if errors.Is(err, ErrResourceNotFound) {
		return Currency{}, false, nil
	}

	if err != nil {
		return Currency{}, false, err
	}

	return currency, true, nil
}
