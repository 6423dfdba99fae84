package sharedprops

import (
	"time"
)

// Defaults for the independently stored user preferences. A missing
// stored value resolves to its default, it is never an error.
const (
	DefaultLanguage        = "en_US"
	DefaultLocale          = "equal"
	DefaultListPageSize    = 50
	DefaultDarkMode        = "browser"
	DefaultFiscalYearStart = "01-01"
	DefaultViewRange       = "1M"
)

// Snapshot is the bundle of server-computed state that travels with
// every page navigation.
//
// It is assembled fresh per request on the server and read-only on the
// client until the next navigation. Preferences and Currency are only
// present for authenticated requests; Currency may be absent even then.
type Snapshot struct {
	Auth        Auth         `json:"auth"`
	Flash       Flash        `json:"flash"`
	App         App          `json:"app"`
	Preferences *Preferences `json:"preferences"`
	Options     Options      `json:"options"`
	Currency    *Currency    `json:"currency"`
	Version     string       `json:"version" example:"6d6b9a3f"` // Opaque asset version for cache busting
}

// Auth is the authentication state of the request.
type Auth struct {
	User          *User `json:"user"`
	Authenticated bool  `json:"authenticated" example:"true"`
}

// User is the read-only projection of the authenticated user.
//
// IsAdmin and IsDemo are not stored flags, they are membership tests
// against the closed role set attached at snapshot construction.
type User struct {
	ID          uint64    `json:"id" example:"982"`
	Email       string    `json:"email" example:"jessica@example.com"`
	Blocked     bool      `json:"blocked" example:"false"`
	UserGroupID uint64    `json:"user_group_id" example:"1"`
	Roles       []string  `json:"roles" example:"owner"`
	IsAdmin     bool      `json:"is_admin" example:"true"`
	IsDemo      bool      `json:"is_demo" example:"false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Flash carries the five session flash slots. A nil slot was empty for
// this navigation.
type Flash struct {
	Message *string `json:"message"`
	Success *string `json:"success"`
	Error   *string `json:"error"`
	Info    *string `json:"info"`
	Warning *string `json:"warning"`
}

// App is the static application configuration.
type App struct {
	Name     string `json:"name" example:"Lumen Ledger"`
	Version  string `json:"version" example:"1.1.0"`
	URL      string `json:"url" example:"https://ledger.example.com"`
	Locale   string `json:"locale" example:"en_US"`
	Timezone string `json:"timezone" example:"Europe/Berlin"`
	Demo     bool   `json:"demo" example:"false"` // Is this instance a public demo site?
}

// Preferences are the per-user settings shared with every page.
type Preferences struct {
	Language                         string   `json:"language" example:"en_US"`
	Locale                           string   `json:"locale" example:"equal"`
	ListPageSize                     int      `json:"listPageSize" example:"50"`
	DarkMode                         string   `json:"darkMode" example:"browser"`
	CustomFiscalYear                 bool     `json:"customFiscalYear" example:"false"`
	FiscalYearStart                  string   `json:"fiscalYearStart" example:"01-01"`
	ConvertToPrimary                 bool     `json:"convertToPrimary" example:"false"`
	FrontpageAccounts                []uint64 `json:"frontpageAccounts"`
	TransactionJournalOptionalFields []string `json:"transactionJournalOptionalFields"`
	ViewRange                        string   `json:"viewRange" example:"1M"`
}

// Options are the closed value sets for dropdowns and forms.
type Options struct {
	Languages  map[string]string `json:"languages"`  // Language code to native display name
	DarkModes  []string          `json:"darkModes"`  // Valid dark mode settings
	ViewRanges []string          `json:"viewRanges"` // Valid view range settings
}

// Currency is the projection of the primary ledger currency.
type Currency struct {
	ID            uint64 `json:"id" example:"3"`
	Name          string `json:"name" example:"Euro"`
	Code          string `json:"code" example:"EUR"`
	Symbol        string `json:"symbol" example:"€"`
	DecimalPlaces int32  `json:"decimal_places" example:"2"`
}
