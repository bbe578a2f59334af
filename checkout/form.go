// Package checkout implements the client-side checkout form: per-field
// validation gating submission, draft persistence across reloads, and order
// submission through an OrderPlacer.
package checkout

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/YuliiaIvakhnenko/flower-shop/cart"
	"github.com/YuliiaIvakhnenko/flower-shop/storage"
)

// Field names the four checkout inputs.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
	FieldAddress Field = "address"
)

var (
	emailRe   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe   = regexp.MustCompile(`^\+?380\d{9}$`)
	addressRe = regexp.MustCompile(`[A-Za-zА-Яа-яІіЇїЄєҐґ0-9]{5,}`)
)

// ErrNotReady is returned by Submit when the cart is empty, a field is
// invalid, or a submission is already in flight.
var ErrNotReady = errors.New("checkout: form not ready to submit")

// ValidName requires a trimmed length of at least 2.
func ValidName(v string) bool {
	return len([]rune(strings.TrimSpace(v))) >= 2
}

// ValidEmail requires a local@domain.tld shape without whitespace.
func ValidEmail(v string) bool {
	return emailRe.MatchString(strings.TrimSpace(v))
}

// ValidPhone requires a Ukrainian mobile number: 380 plus nine digits, with
// an optional leading plus.
func ValidPhone(v string) bool {
	return phoneRe.MatchString(strings.TrimSpace(v))
}

// ValidAddress requires a run of at least five alphanumeric characters,
// Latin or Cyrillic.
func ValidAddress(v string) bool {
	return addressRe.MatchString(strings.TrimSpace(v))
}

// LineItem is one product reference in an order submission.
type LineItem struct {
	ProductType string `json:"productType"`
	ProductID   string `json:"productId"`
	Quantity    int    `json:"quantity"`
}

// OrderRequest is the order submission payload.
type OrderRequest struct {
	Email    string     `json:"email"`
	Phone    string     `json:"phone"`
	Address  string     `json:"address"`
	Products []LineItem `json:"products"`
}

// OrderPlacer submits an order and returns the created order's id.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, order OrderRequest) (string, error)
}

// Form is the checkout form controller. It owns the four field values,
// per-field touched flags, and the submission gate.
type Form struct {
	cart   *cart.Cart
	store  storage.Store
	placer OrderPlacer

	name    string
	email   string
	phone   string
	address string

	touched    map[Field]bool
	submitting bool
	lastError  string
}

// NewForm builds a form bound to a cart, a storage port and an order
// placer, pre-filling the fields from any persisted draft.
func NewForm(c *cart.Cart, s storage.Store, placer OrderPlacer) *Form {
	f := &Form{
		cart:    c,
		store:   s,
		placer:  placer,
		touched: make(map[Field]bool),
	}
	draft := storage.LoadDraft(s)
	f.name = draft.Name
	f.email = draft.Email
	f.phone = draft.Phone
	f.address = draft.Address
	return f
}

// SetField updates one field and re-persists the whole draft.
func (f *Form) SetField(field Field, value string) {
	switch field {
	case FieldName:
		f.name = value
	case FieldEmail:
		f.email = value
	case FieldPhone:
		f.phone = value
	case FieldAddress:
		f.address = value
	default:
		return
	}
	storage.SaveDraft(f.store, storage.Draft{
		Name:    f.name,
		Email:   f.email,
		Phone:   f.phone,
		Address: f.address,
	})
}

// FieldValue returns the current value of one field.
func (f *Form) FieldValue(field Field) string {
	switch field {
	case FieldName:
		return f.name
	case FieldEmail:
		return f.email
	case FieldPhone:
		return f.phone
	case FieldAddress:
		return f.address
	}
	return ""
}

// Touch marks a field as left by the user, enabling its error display.
func (f *Form) Touch(field Field) {
	f.touched[field] = true
}

// Valid reports whether one field currently passes its rule.
func (f *Form) Valid(field Field) bool {
	switch field {
	case FieldName:
		return ValidName(f.name)
	case FieldEmail:
		return ValidEmail(f.email)
	case FieldPhone:
		return ValidPhone(f.phone)
	case FieldAddress:
		return ValidAddress(f.address)
	}
	return false
}

// ShowError reports whether a field's error should be displayed: only after
// the user has left the field.
func (f *Form) ShowError(field Field) bool {
	return f.touched[field] && !f.Valid(field)
}

// CanSubmit reports whether submission is enabled: non-empty cart, all
// fields valid, no submission in flight.
func (f *Form) CanSubmit() bool {
	return f.cart.Len() > 0 &&
		f.Valid(FieldName) &&
		f.Valid(FieldEmail) &&
		f.Valid(FieldPhone) &&
		f.Valid(FieldAddress) &&
		!f.submitting
}

// Err returns the message of the last failed submission, cleared on the
// next attempt.
func (f *Form) Err() string {
	return f.lastError
}

// Submit places the order built from the cart. On success the cart is
// cleared, the draft deleted, all fields and touched flags reset, and the
// created order id returned for navigation. On failure all state is
// preserved so the user can retry, and the server's error message is kept
// in Err.
func (f *Form) Submit(ctx context.Context) (string, error) {
	if !f.CanSubmit() {
		return "", ErrNotReady
	}
	f.submitting = true
	f.lastError = ""
	defer func() { f.submitting = false }()

	items := f.cart.Items()
	products := make([]LineItem, 0, len(items))
	for _, item := range items {
		products = append(products, LineItem{
			ProductType: string(item.ProductType),
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
		})
	}

	orderID, err := f.placer.PlaceOrder(ctx, OrderRequest{
		Email:    f.email,
		Phone:    f.phone,
		Address:  f.address,
		Products: products,
	})
	if err != nil {
		f.lastError = err.Error()
		return "", err
	}

	storage.SaveLastOrderRef(f.store, orderID)
	f.name, f.email, f.phone, f.address = "", "", "", ""
	f.touched = make(map[Field]bool)
	storage.ClearDraft(f.store)
	f.cart.Clear()

	return orderID, nil
}
