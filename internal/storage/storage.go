// Package storage persists the phone store as one document. Two
// backends exist: a JSON file (default) and a single-row Postgres
// table for deployments that already have a database around.
package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/TronJG/telegram-bot/internal/dates"
	"github.com/TronJG/telegram-bot/internal/domain"
)

// Backend loads and saves the full store state. Save is called after
// every successful mutation (write-through), so implementations must
// replace the whole document atomically.
type Backend interface {
	Load(ctx context.Context) ([]domain.PhoneRecord, error)
	Save(ctx context.Context, phones []domain.PhoneRecord) error
	Close()
}

// The document is an ordered array, not an object keyed by number, so
// listing order survives a reload.
type document struct {
	Phones []phoneDoc `json:"phones"`
}

type phoneDoc struct {
	PhoneNumber string       `json:"phone_number"`
	RenewalDate string       `json:"renewal_date"`
	Accounts    []accountDoc `json:"accounts"`
}

type accountDoc struct {
	Name        string `json:"name"`
	RenewalDate string `json:"renewal_date"`
}

func encode(phones []domain.PhoneRecord) ([]byte, error) {
	doc := document{Phones: make([]phoneDoc, 0, len(phones))}
	for _, p := range phones {
		pd := phoneDoc{
			PhoneNumber: p.Number,
			RenewalDate: dates.Format(p.RenewalDate),
			Accounts:    make([]accountDoc, 0, len(p.Accounts)),
		}
		for _, a := range p.Accounts {
			pd.Accounts = append(pd.Accounts, accountDoc{
				Name:        a.Name,
				RenewalDate: dates.Format(a.RenewalDate),
			})
		}
		doc.Phones = append(doc.Phones, pd)
	}
	return json.MarshalIndent(doc, "", "  ")
}

func decode(data []byte) ([]domain.PhoneRecord, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("corrupt store document: %w", err)
	}
	phones := make([]domain.PhoneRecord, 0, len(doc.Phones))
	for _, pd := range doc.Phones {
		rd, err := dates.Parse(pd.RenewalDate)
		if err != nil {
			return nil, fmt.Errorf("phone %s: bad renewal date %q", pd.PhoneNumber, pd.RenewalDate)
		}
		p := domain.PhoneRecord{
			Number:      pd.PhoneNumber,
			RenewalDate: rd,
			Accounts:    make([]domain.AccountRecord, 0, len(pd.Accounts)),
		}
		for _, ad := range pd.Accounts {
			ard, err := dates.Parse(ad.RenewalDate)
			if err != nil {
				return nil, fmt.Errorf("account %s of %s: bad renewal date %q", ad.Name, pd.PhoneNumber, ad.RenewalDate)
			}
			p.Accounts = append(p.Accounts, domain.AccountRecord{Name: ad.Name, RenewalDate: ard})
		}
		phones = append(phones, p)
	}
	return phones, nil
}
