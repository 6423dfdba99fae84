package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
)

// defaultTransactionLimit is how many recent transactions are fetched
// when the caller does not ask for a specific number.
const defaultTransactionLimit = 10

// AccountsStore caches accounts and keeps them synchronized with the
// REST API.
//
// The cache holds at most one entry per account ID. Concurrent
// operations on the same ID are not serialized beyond the store lock:
// the response that arrives last wins, there is no revision check and
// no coalescing of duplicate in-flight fetches.
type AccountsStore struct {
	mu           sync.Mutex
	client       *Client
	app          *AppStore
	entities     map[uint64]Account
	selected     *uint64
	loading      bool
	lastError    string
	balances     map[uint64]AccountBalance
	transactions map[uint64][]Transaction
}

// NewAccountsStore creates a store that syncs through client and
// reports outcomes through app.
func NewAccountsStore(client *Client, app *AppStore) *AccountsStore {
	return &AccountsStore{
		client:       client,
		app:          app,
		entities:     make(map[uint64]Account),
		balances:     make(map[uint64]AccountBalance),
		transactions: make(map[uint64][]Transaction),
	}
}

// setLoading toggles the store's own flag and the shared one.
func (s *AccountsStore) setLoading(value bool) {
	s.mu.Lock()
	s.loading = value
	s.mu.Unlock()

	s.app.SetLoading(value)
}

// fail records the error and routes it into the shared notification
// mechanism as a persistent error.
func (s *AccountsStore) fail(message string) {
	s.mu.Lock()
	s.lastError = message
	s.mu.Unlock()

	s.app.AddNotification(Notification{
		Type:       NotificationError,
		Message:    message,
		Persistent: true,
	})
}

func (s *AccountsStore) clearError() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastError = ""
}

// List replaces the whole cache with the server's result set. On
// failure the cache is left untouched.
func (s *AccountsStore) List(ctx context.Context) error {
	s.setLoading(true)
	defer s.setLoading(false)
	s.clearError()

	accounts, err := s.client.Accounts(ctx)
	if err != nil {
		s.fail("Failed to fetch accounts")
		log.Error().Err(err).Msg("account list failed")
		return err
	}

	entities := make(map[uint64]Account, len(accounts))
	for _, account := range accounts {
		entities[account.ID] = account
	}

	s.mu.Lock()
	s.entities = entities
	s.mu.Unlock()

	return nil
}

// Get fetches one account, upserts it into the cache and selects it.
// On failure the previous state is left intact.
func (s *AccountsStore) Get(ctx context.Context, id uint64) (Account, error) {
	s.setLoading(true)
	defer s.setLoading(false)
	s.clearError()

	account, err := s.client.Account(ctx, id)
	if err != nil {
		s.fail(fmt.Sprintf("Failed to fetch account %d", id))
		log.Error().Err(err).Uint64("id", id).Msg("account fetch failed")
		return Account{}, err
	}

	s.mu.Lock()
	s.entities[account.ID] = account
	s.selected = &account.ID
	s.mu.Unlock()

	return account, nil
}

// Create posts a new account. On success it is appended to the cache,
// selected, and announced with a success notification. On failure the
// validation errors land in the shared error bag and the error is
// returned so that form code can keep the form open.
func (s *AccountsStore) Create(ctx context.Context, editable AccountEditable) (Account, error) {
	s.setLoading(true)
	defer s.setLoading(false)
	s.clearError()

	account, err := s.client.CreateAccount(ctx, editable)
	if err != nil {
		s.fail("Failed to create account")
		s.bagErrors(err)
		return Account{}, err
	}

	s.mu.Lock()
	s.entities[account.ID] = account
	s.selected = &account.ID
	s.mu.Unlock()

	s.app.AddNotification(Notification{
		Type:    NotificationSuccess,
		Message: fmt.Sprintf("Account %q created successfully", account.Name),
	})

	return account, nil
}

// Update applies a partial update. On success the server's account is
// written into the cache even when the id was not cached before; the
// response is fresher than anything held locally, so it is treated
// like a fetch.
func (s *AccountsStore) Update(ctx context.Context, id uint64, update AccountUpdate) (Account, error) {
	s.setLoading(true)
	defer s.setLoading(false)
	s.clearError()

	account, err := s.client.UpdateAccount(ctx, id, update)
	if err != nil {
		s.fail("Failed to update account")
		s.bagErrors(err)
		return Account{}, err
	}

	s.mu.Lock()
	s.entities[id] = account
	s.mu.Unlock()

	s.app.AddNotification(Notification{
		Type:    NotificationSuccess,
		Message: fmt.Sprintf("Account %q updated successfully", account.Name),
	})

	return account, nil
}

// Delete removes the account. On success the entity, its selection and
// its balance and transaction caches all go away; the success
// notification names the removed account, or "Unknown Account" when it
// was not cached. On failure all state is left untouched.
func (s *AccountsStore) Delete(ctx context.Context, id uint64) error {
	s.setLoading(true)
	defer s.setLoading(false)
	s.clearError()

	err := s.client.DeleteAccount(ctx, id)
	if err != nil {
		s.fail("Failed to delete account")
		log.Error().Err(err).Uint64("id", id).Msg("account delete failed")
		return err
	}

	s.mu.Lock()
	name := "Unknown Account"
	if account, ok := s.entities[id]; ok {
		name = account.Name
	}

	delete(s.entities, id)
	delete(s.balances, id)
	delete(s.transactions, id)

	if s.selected != nil && *s.selected == id {
		s.selected = nil
	}
	s.mu.Unlock()

	s.app.AddNotification(Notification{
		Type:    NotificationSuccess,
		Message: fmt.Sprintf("Account %q deleted successfully", name),
	})

	return nil
}

// Balance fetches and caches the balance of an account. Failures are
// logged, not surfaced: the previously cached balance (or none) is
// returned instead.
func (s *AccountsStore) Balance(ctx context.Context, id uint64) (AccountBalance, bool) {
	balance, err := s.client.AccountBalance(ctx, id)
	if err != nil {
		log.Error().Err(err).Uint64("id", id).Msg("account balance fetch failed")

		s.mu.Lock()
		defer s.mu.Unlock()
		cached, ok := s.balances[id]
		return cached, ok
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.balances[id] = balance

	return balance, true
}

// RecentTransactions fetches and caches the most recent transactions
// of an account. Failures are logged, not surfaced: the previously
// cached list (or an empty one) is returned instead.
func (s *AccountsStore) RecentTransactions(ctx context.Context, id uint64, limit int) []Transaction {
	if limit <= 0 {
		limit = defaultTransactionLimit
	}

	transactions, err := s.client.AccountTransactions(ctx, id, limit)
	if err != nil {
		log.Error().Err(err).Uint64("id", id).Msg("recent transactions fetch failed")

		s.mu.Lock()
		defer s.mu.Unlock()
		return append([]Transaction(nil), s.transactions[id]...)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions[id] = transactions

	return append([]Transaction(nil), transactions...)
}

// bagErrors merges API validation errors into the shared error bag.
func (s *AccountsStore) bagErrors(err error) {
	var apiError *APIError
	if errors.As(err, &apiError) && apiError.Errors != nil {
		s.app.SetErrors(apiError.Errors)
	}
}

// ByID returns the cached account with the given ID.
func (s *AccountsStore) ByID(id uint64) (Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.entities[id]
	return account, ok
}

// Selected returns the selected account, if the selection is set and
// still cached.
func (s *AccountsStore) Selected() (Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == nil {
		return Account{}, false
	}

	account, ok := s.entities[*s.selected]
	return account, ok
}

// Select sets the selection to a cached account.
func (s *AccountsStore) Select(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entities[id]; !ok {
		return false
	}

	s.selected = &id
	return true
}

func (s *AccountsStore) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected = nil
}

// LastError returns the message of the last failed operation, or "".
func (s *AccountsStore) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastError
}

func (s *AccountsStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loading
}

// filter returns all cached accounts the predicate keeps. The result
// order is undefined, the cache is a map.
func (s *AccountsStore) filter(keep func(Account) bool) []Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	var accounts []Account
	for _, account := range s.entities {
		if keep(account) {
			accounts = append(accounts, account)
		}
	}

	return accounts
}

// Accounts returns all cached accounts.
func (s *AccountsStore) Accounts() []Account {
	return s.filter(func(Account) bool { return true })
}

func (s *AccountsStore) AssetAccounts() []Account {
	return s.filter(func(a Account) bool { return a.Type == AccountTypeAsset })
}

func (s *AccountsStore) ExpenseAccounts() []Account {
	return s.filter(func(a Account) bool { return a.Type == AccountTypeExpense })
}

func (s *AccountsStore) RevenueAccounts() []Account {
	return s.filter(func(a Account) bool { return a.Type == AccountTypeRevenue })
}

func (s *AccountsStore) LiabilityAccounts() []Account {
	return s.filter(func(a Account) bool { return a.Type.IsLiability() })
}

func (s *AccountsStore) ActiveAccounts() []Account {
	return s.filter(func(a Account) bool { return a.Active })
}

// Matching returns all cached accounts whose name matches the glob
// pattern, e.g. "Checking*".
func (s *AccountsStore) Matching(pattern string) []Account {
	return s.filter(func(a Account) bool { return glob.Glob(pattern, a.Name) })
}

// TotalBalance sums the cached balances of all asset accounts. Asset
// accounts without a cached balance contribute zero; non-asset
// accounts are not part of the sum at all.
func (s *AccountsStore) TotalBalance() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for id, account := range s.entities {
		if account.Type != AccountTypeAsset {
			continue
		}

		cached, ok := s.balances[id]
		if !ok {
			continue
		}

		balance, err := decimal.NewFromString(cached.Balance)
		if err != nil {
			log.Warn().Str("balance", cached.Balance).Uint64("id", id).Msg("unparseable cached balance")
			continue
		}

		total = total.Add(balance)
	}

	return total
}

// Reset clears all store state.
func (s *AccountsStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entities = make(map[uint64]Account)
	s.balances = make(map[uint64]AccountBalance)
	s.transactions = make(map[uint64][]Transaction)
	s.selected = nil
	s.loading = false
	s.lastError = ""
}
