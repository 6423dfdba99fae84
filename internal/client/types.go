package client

import (
	"time"
)

// AccountType is the closed set of account types the API knows.
type AccountType string

const (
	AccountTypeAsset           AccountType = "Asset account"
	AccountTypeBeneficiary     AccountType = "Beneficiary account"
	AccountTypeCash            AccountType = "Cash account"
	AccountTypeCreditCard      AccountType = "Credit card"
	AccountTypeDebt            AccountType = "Debt"
	AccountTypeDefault         AccountType = "Default account"
	AccountTypeExpense         AccountType = "Expense account"
	AccountTypeImport          AccountType = "Import account"
	AccountTypeInitialBalance  AccountType = "Initial balance account"
	AccountTypeLiabilityCredit AccountType = "Liability credit account"
	AccountTypeLoan            AccountType = "Loan"
	AccountTypeMortgage        AccountType = "Mortgage"
	AccountTypeReconciliation  AccountType = "Reconciliation account"
	AccountTypeRevenue         AccountType = "Revenue account"
)

// liabilityTypes are the account types that count as liabilities.
var liabilityTypes = []AccountType{
	AccountTypeDebt,
	AccountTypeLoan,
	AccountTypeMortgage,
	AccountTypeCreditCard,
	AccountTypeLiabilityCredit,
}

// IsLiability reports whether the type is one of the liability types.
func (t AccountType) IsLiability() bool {
	for _, liability := range liabilityTypes {
		if t == liability {
			return true
		}
	}

	return false
}

// Account is the API projection of an account.
type Account struct {
	ID             uint64      `json:"id"`
	Name           string      `json:"name"`
	Type           AccountType `json:"type"`
	Active         bool        `json:"active"`
	IBAN           string      `json:"iban,omitempty"`
	VirtualBalance string      `json:"virtual_balance,omitempty"`
	CurrentBalance string      `json:"current_balance,omitempty"`
	CurrencyID     uint64      `json:"currency_id,omitempty"`
	CurrencyCode   string      `json:"currency_code,omitempty"`
	UserID         uint64      `json:"user_id"`
	UserGroupID    uint64      `json:"user_group_id"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// AccountEditable represents all user configurable parameters of an
// account.
type AccountEditable struct {
	Name           string      `json:"name"`
	Type           AccountType `json:"type"`
	Active         bool        `json:"active"`
	IBAN           string      `json:"iban,omitempty"`
	VirtualBalance string      `json:"virtual_balance,omitempty"`
	CurrencyID     uint64      `json:"currency_id,omitempty"`
	Notes          string      `json:"notes,omitempty"`
}

// AccountUpdate carries a partial update. Nil fields are left alone by
// the server.
type AccountUpdate struct {
	Name           *string      `json:"name,omitempty"`
	Type           *AccountType `json:"type,omitempty"`
	Active         *bool        `json:"active,omitempty"`
	IBAN           *string      `json:"iban,omitempty"`
	VirtualBalance *string      `json:"virtual_balance,omitempty"`
	CurrencyID     *uint64      `json:"currency_id,omitempty"`
	Notes          *string      `json:"notes,omitempty"`
}

// AccountBalance is the balance of one account at a point in time.
// Amounts travel as strings to keep decimal precision intact.
type AccountBalance struct {
	AccountID             uint64 `json:"account_id"`
	Balance               string `json:"balance"`
	Date                  string `json:"date"`
	CurrencyCode          string `json:"currency_code"`
	CurrencySymbol        string `json:"currency_symbol"`
	CurrencyDecimalPlaces int32  `json:"currency_decimal_places"`
}

// Transaction is the simplified transaction projection used for the
// per-account recent transaction lists.
type Transaction struct {
	ID                     uint64    `json:"id"`
	Type                   string    `json:"type"`
	Description            string    `json:"description"`
	Amount                 string    `json:"amount"`
	Date                   string    `json:"date"`
	SourceAccountID        uint64    `json:"source_account_id,omitempty"`
	SourceAccountName      string    `json:"source_account_name,omitempty"`
	DestinationAccountID   uint64    `json:"destination_account_id,omitempty"`
	DestinationAccountName string    `json:"destination_account_name,omitempty"`
	CurrencyCode           string    `json:"currency_code"`
	CurrencySymbol         string    `json:"currency_symbol"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}
