// Package store owns the phone → accounts mapping and its invariants:
// unique phone numbers, unique account names per phone, at most
// maxAccounts accounts per phone. Every mutation is written through to
// the backend before it returns; on a failed write the in-memory
// change is rolled back so memory and disk never diverge.
package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/TronJG/telegram-bot/internal/dates"
	"github.com/TronJG/telegram-bot/internal/domain"
	"github.com/TronJG/telegram-bot/internal/storage"
)

type Store struct {
	mu          sync.Mutex
	phones      map[string]*domain.PhoneRecord
	order       []string // phone numbers in insertion order
	backend     storage.Backend
	maxAccounts int
	log         *zap.SugaredLogger

	now func() time.Time // test hook
}

// Open loads the persisted state. A missing or empty document starts
// an empty store; a corrupt one is an error so startup fails instead
// of quietly discarding data.
func Open(ctx context.Context, backend storage.Backend, maxAccounts int, log *zap.SugaredLogger) (*Store, error) {
	phones, err := backend.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}
	s := &Store{
		phones:      make(map[string]*domain.PhoneRecord, len(phones)),
		backend:     backend,
		maxAccounts: maxAccounts,
		log:         log,
		now:         time.Now,
	}
	for _, p := range phones {
		rec := p.Clone()
		s.phones[rec.Number] = &rec
		s.order = append(s.order, rec.Number)
	}
	log.Infow("store loaded", "phones", len(s.order))
	return s, nil
}

// AddPhone inserts a new number with an empty account list. The phone
// number's format is the caller's concern; only uniqueness is checked
// here.
func (s *Store) AddPhone(ctx context.Context, number string, renewal time.Time) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.phones[number]; exists {
		return fail(ReasonDuplicatePhone)
	}
	s.phones[number] = &domain.PhoneRecord{Number: number, RenewalDate: renewal}
	s.order = append(s.order, number)

	if err := s.persist(ctx); err != nil {
		delete(s.phones, number)
		s.order = s.order[:len(s.order)-1]
		return fail(ReasonStorageError)
	}
	return ok()
}

func (s *Store) GetPhone(number string) (domain.PhoneRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, exists := s.phones[number]
	if !exists {
		return domain.PhoneRecord{}, false
	}
	return p.Clone(), true
}

// AllPhones returns a copy of the full mapping.
func (s *Store) AllPhones() map[string]domain.PhoneRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]domain.PhoneRecord, len(s.phones))
	for n, p := range s.phones {
		out[n] = p.Clone()
	}
	return out
}

// ListPhones returns records in insertion order, for stable listings.
func (s *Store) ListPhones() []domain.PhoneRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// DeletePhone removes the number and all its accounts.
func (s *Store) DeletePhone(ctx context.Context, number string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, exists := s.phones[number]
	if !exists {
		return fail(ReasonPhoneNotFound)
	}
	idx := s.indexOf(number)
	delete(s.phones, number)
	s.order = append(s.order[:idx], s.order[idx+1:]...)

	if err := s.persist(ctx); err != nil {
		s.phones[number] = p
		s.order = append(s.order[:idx], append([]string{number}, s.order[idx:]...)...)
		return fail(ReasonStorageError)
	}
	return ok()
}

func (s *Store) UpdatePhoneRenewal(ctx context.Context, number string, renewal time.Time) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, exists := s.phones[number]
	if !exists {
		return fail(ReasonPhoneNotFound)
	}
	prev := p.RenewalDate
	p.RenewalDate = renewal

	if err := s.persist(ctx); err != nil {
		p.RenewalDate = prev
		return fail(ReasonStorageError)
	}
	return ok()
}

// AddAccount appends an account to the phone's list. Fails when the
// phone is absent, the name is already taken under that phone, or the
// phone already holds the maximum number of accounts.
func (s *Store) AddAccount(ctx context.Context, number, name string, renewal time.Time) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, exists := s.phones[number]
	if !exists {
		return fail(ReasonPhoneNotFound)
	}
	for _, a := range p.Accounts {
		if a.Name == name {
			return fail(ReasonDuplicateAccount)
		}
	}
	if len(p.Accounts) >= s.maxAccounts {
		return fail(ReasonAccountLimit)
	}
	p.Accounts = append(p.Accounts, domain.AccountRecord{Name: name, RenewalDate: renewal})

	if err := s.persist(ctx); err != nil {
		p.Accounts = p.Accounts[:len(p.Accounts)-1]
		return fail(ReasonStorageError)
	}
	return ok()
}

func (s *Store) DeleteAccount(ctx context.Context, number, name string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, exists := s.phones[number]
	if !exists {
		return fail(ReasonPhoneNotFound)
	}
	for i, a := range p.Accounts {
		if a.Name == name {
			removed := a
			p.Accounts = append(p.Accounts[:i], p.Accounts[i+1:]...)
			if err := s.persist(ctx); err != nil {
				p.Accounts = append(p.Accounts[:i], append([]domain.AccountRecord{removed}, p.Accounts[i:]...)...)
				return fail(ReasonStorageError)
			}
			return ok()
		}
	}
	return fail(ReasonAccountNotFound)
}

func (s *Store) UpdateAccountRenewal(ctx context.Context, number, name string, renewal time.Time) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, exists := s.phones[number]
	if !exists {
		return fail(ReasonPhoneNotFound)
	}
	for i := range p.Accounts {
		if p.Accounts[i].Name == name {
			prev := p.Accounts[i].RenewalDate
			p.Accounts[i].RenewalDate = renewal
			if err := s.persist(ctx); err != nil {
				p.Accounts[i].RenewalDate = prev
				return fail(ReasonStorageError)
			}
			return ok()
		}
	}
	return fail(ReasonAccountNotFound)
}

// UpcomingRenewals scans every phone and account and returns one item
// per record whose renewal date is exactly daysBefore days from today.
// Items are grouped by phone in insertion order, a due phone before
// its due accounts.
func (s *Store) UpcomingRenewals(daysBefore int) []domain.RenewalItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var items []domain.RenewalItem
	for _, number := range s.order {
		p := s.phones[number]
		if dates.RenewalSoonAt(now, p.RenewalDate, daysBefore) {
			items = append(items, domain.RenewalItem{
				Kind:        domain.ItemPhone,
				PhoneNumber: number,
				RenewalDate: p.RenewalDate,
			})
		}
		for _, a := range p.Accounts {
			if dates.RenewalSoonAt(now, a.RenewalDate, daysBefore) {
				items = append(items, domain.RenewalItem{
					Kind:        domain.ItemAccount,
					PhoneNumber: number,
					AccountName: a.Name,
					RenewalDate: a.RenewalDate,
				})
			}
		}
	}
	return items
}

// persist writes the full document through to the backend. Caller
// holds the lock.
func (s *Store) persist(ctx context.Context) error {
	if err := s.backend.Save(ctx, s.snapshotLocked()); err != nil {
		s.log.Errorw("store write-through failed", "err", err)
		return err
	}
	return nil
}

func (s *Store) snapshotLocked() []domain.PhoneRecord {
	out := make([]domain.PhoneRecord, 0, len(s.order))
	for _, number := range s.order {
		out = append(out, s.phones[number].Clone())
	}
	return out
}

func (s *Store) indexOf(number string) int {
	for i, n := range s.order {
		if n == number {
			return i
		}
	}
	return -1
}
