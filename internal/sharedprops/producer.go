package sharedprops

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lumenledger/backend/internal/models"
	"github.com/lumenledger/backend/internal/session"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"gorm.io/gorm"
)

// Config is the static application configuration baked into every
// snapshot.
type Config struct {
	AppName  string
	Version  string
	URL      string
	Locale   string
	Timezone string
	Demo     bool

	// AssetVersion overrides the computed asset version. Leave empty
	// outside of tests, a fresh version per process start is what
	// forces clients to reload after a deployment.
	AssetVersion string
}

// ConfigFromEnv assembles the application configuration from the
// environment.
func ConfigFromEnv(version string) Config {
	name, ok := os.LookupEnv("APP_NAME")
	if !ok {
		name = "Lumen Ledger"
	}

	timezone, ok := os.LookupEnv("TIMEZONE")
	if !ok {
		timezone = "UTC"
	}

	return Config{
		AppName:      name,
		Version:      version,
		URL:          os.Getenv("APP_URL"),
		Locale:       DefaultLanguage,
		Timezone:     timezone,
		Demo:         os.Getenv("DEMO_SITE") == "true",
		AssetVersion: os.Getenv("ASSET_VERSION"),
	}
}

// languageCodes are the translations the frontend ships.
var languageCodes = []string{
	"en_US", "en_GB", "de_DE", "es_ES", "fr_FR", "it_IT",
	"nl_NL", "pl_PL", "pt_BR", "ru_RU", "uk_UA", "zh_CN",
}

// languageNames maps every shipped language code to its native display
// name.
func languageNames() map[string]string {
	names := make(map[string]string, len(languageCodes))

	for _, code := range languageCodes {
		tag, err := language.Parse(strings.ReplaceAll(code, "_", "-"))
		if err != nil {
			continue
		}

		names[code] = display.Self.Name(tag)
	}

	return names
}

// Producer assembles the shared snapshot for page requests.
type Producer struct {
	db      *gorm.DB
	config  Config
	options Options
	version string
}

// NewProducer creates a producer. The options block and the asset
// version are fixed for the lifetime of the process.
func NewProducer(db *gorm.DB, config Config) *Producer {
	version := config.AssetVersion
	if version == "" {
		// Hash the app version together with the boot time so that
		// every deployment invalidates cached assets
		sum := sha256.Sum256([]byte(config.Version + time.Now().UTC().Format(time.RFC3339Nano)))
		version = hex.EncodeToString(sum[:])[:32]
	}

	return &Producer{
		db:     db,
		config: config,
		options: Options{
			Languages:  languageNames(),
			DarkModes:  []string{"light", "dark", "browser"},
			ViewRanges: []string{"1D", "1W", "1M", "3M", "6M", "1Y"},
		},
		version: version,
	}
}

// Share computes the snapshot for the request.
//
// For unauthenticated requests auth.user is nil and the preferences and
// currency blocks are absent. The currency projection never fails the
// request: lookup errors are logged and degrade to a nil currency.
func (p *Producer) Share(c *gin.Context) (Snapshot, error) {
	snapshot := Snapshot{
		Auth: Auth{},
		App: App{
			Name:     p.config.AppName,
			Version:  p.config.Version,
			URL:      p.config.URL,
			Locale:   p.config.Locale,
			Timezone: p.config.Timezone,
			Demo:     p.config.Demo,
		},
		Options: p.options,
		Version: p.version,
	}

	sess := session.FromContext(c)
	if sess == nil {
		return snapshot, nil
	}

	snapshot.Flash = flash(sess)

	userID, ok := sess.UserID()
	if !ok {
		return snapshot, nil
	}

	var user models.User
	err := p.db.First(&user, userID).Error
	if err != nil {
		return Snapshot{}, err
	}

	roles, err := user.RoleNames(p.db)
	if err != nil {
		return Snapshot{}, err
	}

	snapshot.Auth = Auth{
		User: &User{
			ID:          user.ID,
			Email:       user.Email,
			Blocked:     user.Blocked,
			UserGroupID: user.UserGroupID,
			Roles:       roles,
			IsAdmin:     slices.Contains(roles, models.RoleOwner),
			IsDemo:      slices.Contains(roles, models.RoleDemo),
			CreatedAt:   user.CreatedAt,
			UpdatedAt:   user.UpdatedAt,
		},
		Authenticated: true,
	}

	preferences, err := p.preferences(user.ID)
	if err != nil {
		return Snapshot{}, err
	}
	snapshot.Preferences = preferences

	snapshot.Currency = p.currency(user.UserGroupID)

	return snapshot, nil
}

// flash reads all five slots. Reading marks them as consumed, the
// session middleware clears them when the request finishes.
func flash(sess *session.Session) Flash {
	read := func(slot session.Slot) *string {
		message, ok := sess.PeekFlash(slot)
		if !ok {
			return nil
		}

		return &message
	}

	return Flash{
		Message: read(session.SlotMessage),
		Success: read(session.SlotSuccess),
		Error:   read(session.SlotError),
		Info:    read(session.SlotInfo),
		Warning: read(session.SlotWarning),
	}
}

// preferences resolves all shared preferences, each with its own
// default.
func (p *Producer) preferences(userID uint64) (*Preferences, error) {
	preferences := Preferences{
		FrontpageAccounts:                []uint64{},
		TransactionJournalOptionalFields: []string{},
	}

	var err error

	if preferences.Language, err = models.PreferenceValue(p.db, userID, "language", DefaultLanguage); err != nil {
		return nil, err
	}

	if preferences.Locale, err = models.PreferenceValue(p.db, userID, "locale", DefaultLocale); err != nil {
		return nil, err
	}

	if preferences.ListPageSize, err = models.PreferenceValue(p.db, userID, "listPageSize", DefaultListPageSize); err != nil {
		return nil, err
	}

	if preferences.DarkMode, err = models.PreferenceValue(p.db, userID, "darkMode", DefaultDarkMode); err != nil {
		return nil, err
	}

	if preferences.CustomFiscalYear, err = models.PreferenceValue(p.db, userID, "customFiscalYear", false); err != nil {
		return nil, err
	}

	if preferences.FiscalYearStart, err = models.PreferenceValue(p.db, userID, "fiscalYearStart", DefaultFiscalYearStart); err != nil {
		return nil, err
	}

	if preferences.ConvertToPrimary, err = models.PreferenceValue(p.db, userID, "convertToPrimary", false); err != nil {
		return nil, err
	}

	if preferences.FrontpageAccounts, err = models.PreferenceValue(p.db, userID, "frontpageAccounts", preferences.FrontpageAccounts); err != nil {
		return nil, err
	}

	if preferences.TransactionJournalOptionalFields, err = models.PreferenceValue(p.db, userID, "transactionJournalOptionalFields", preferences.TransactionJournalOptionalFields); err != nil {
		return nil, err
	}

	if preferences.ViewRange, err = models.PreferenceValue(p.db, userID, "viewRange", DefaultViewRange); err != nil {
		return nil, err
	}

	return &preferences, nil
}

// currency projects the primary currency of the user group.
//
// This is the one deliberately fault-isolated sub-step: a broken
// currency lookup must never break page rendering, so every error is
// logged and degrades to a nil currency.
func (p *Producer) currency(userGroupID uint64) *Currency {
	currency, ok, err := models.PrimaryCurrency(p.db, userGroupID)
	if err != nil {
		log.Error().Err(err).Uint64("user-group-id", userGroupID).Msg("primary currency lookup failed")
		return nil
	}

	if !ok {
		return nil
	}

	return &Currency{
		ID:            currency.ID,
		Name:          currency.Name,
		Code:          currency.Code,
		Symbol:        currency.Symbol,
		DecimalPlaces: currency.DecimalPlaces,
	}
}
