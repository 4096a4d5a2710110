package store

// Reason classifies the outcome of a store operation so adapters can
// render their own wording without the store hardcoding any language.
type Reason string

const (
	ReasonOK               Reason = "ok"
	ReasonDuplicatePhone   Reason = "duplicate_phone"
	ReasonPhoneNotFound    Reason = "phone_not_found"
	ReasonDuplicateAccount Reason = "duplicate_account"
	ReasonAccountLimit     Reason = "account_limit"
	ReasonAccountNotFound  Reason = "account_not_found"
	ReasonStorageError     Reason = "storage_error"
)

type Result struct {
	OK     bool
	Reason Reason
}

func ok() Result { return Result{OK: true, Reason: ReasonOK} }

func fail(r Reason) Result { return Result{OK: false, Reason: r} }
