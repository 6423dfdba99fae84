// Package views derives read-only state from a shared snapshot.
//
// Each view is computed once from one snapshot and never mutates it.
// New snapshot, new view: the Cache keys construction by snapshot
// identity so repeated lookups during one navigation are free.
package views

import (
	"github.com/lumenledger/backend/internal/sharedprops"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// App exposes the application configuration and option sets.
type App struct {
	snapshot *sharedprops.Snapshot
}

func NewApp(snapshot *sharedprops.Snapshot) App {
	return App{snapshot: snapshot}
}

func (v App) Name() string     { return v.snapshot.App.Name }
func (v App) Version() string  { return v.snapshot.App.Version }
func (v App) URL() string      { return v.snapshot.App.URL }
func (v App) Locale() string   { return v.snapshot.App.Locale }
func (v App) Timezone() string { return v.snapshot.App.Timezone }
func (v App) IsDemo() bool     { return v.snapshot.App.Demo }

func (v App) Languages() map[string]string { return v.snapshot.Options.Languages }
func (v App) DarkModes() []string          { return v.snapshot.Options.DarkModes }
func (v App) ViewRanges() []string         { return v.snapshot.Options.ViewRanges }

// LanguageName returns the display name for a language code, falling
// back to the code itself for unknown languages.
func (v App) LanguageName(code string) string {
	if name, ok := v.snapshot.Options.Languages[code]; ok {
		return name
	}

	return code
}

func (v App) IsValidDarkMode(mode string) bool {
	return slices.Contains(v.snapshot.Options.DarkModes, mode)
}

func (v App) IsValidViewRange(viewRange string) bool {
	return slices.Contains(v.snapshot.Options.ViewRanges, viewRange)
}

// FormatAmount renders an amount in the primary currency. Without a
// configured primary currency it degrades to the plain decimal string
// with two places.
func (v App) FormatAmount(amount decimal.Decimal) string {
	currency := v.snapshot.Currency
	if currency == nil {
		return amount.StringFixed(2)
	}

	return currency.Symbol + amount.StringFixed(currency.DecimalPlaces)
}
