package domain

import (
	"regexp"
	"time"
)

// PhoneRecord is the unit of tracking: a mobile number with its own
// renewal date and the accounts registered under it.
type PhoneRecord struct {
	Number      string
	RenewalDate time.Time // date-only semantics
	Accounts    []AccountRecord
}

// AccountRecord is a named service tied to a phone. Name is unique
// within its parent phone, case-sensitive.
type AccountRecord struct {
	Name        string
	RenewalDate time.Time // date-only semantics
}

// Clone returns a deep copy so callers can hold a record outside the
// store lock.
func (p PhoneRecord) Clone() PhoneRecord {
	cp := p
	cp.Accounts = make([]AccountRecord, len(p.Accounts))
	copy(cp.Accounts, p.Accounts)
	return cp
}

type ItemKind string

const (
	ItemPhone   ItemKind = "phone"
	ItemAccount ItemKind = "account"
)

// RenewalItem is one due phone or account found by a reminder sweep.
type RenewalItem struct {
	Kind        ItemKind
	PhoneNumber string
	AccountName string // empty when Kind == ItemPhone
	RenewalDate time.Time
}

// Vietnamese mobile numbers: leading 0 or +84, then a carrier prefix
// and 8-9 further digits.
var rePhone = regexp.MustCompile(`^(0|\+84)([35789][0-9]{8}|[16][0-9]{8}|[2][0-9]{9})$`)

func ValidPhoneNumber(s string) bool {
	return rePhone.MatchString(s)
}
