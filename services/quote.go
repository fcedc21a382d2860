package services

import "fmt"

// LineItem is one selected operation in a quote. Values are copied from
// the SRT database (or typed in manually) at selection time, so later
// dataset changes never alter an existing quote.
type LineItem struct {
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Hours       float64 `json:"hours"`
	Model       string  `json:"model"`
}

// DuplicatePolicy controls what AddItem does when an item with the same
// code is already in the quote. The aggregate itself has no uniqueness
// invariant; this is caller-side policy.
type DuplicatePolicy int

const (
	// AllowDuplicates appends unconditionally.
	AllowDuplicates DuplicatePolicy = iota
	// RejectDuplicates refuses a second item with the same code.
	RejectDuplicates
)

// Quote is the mutable state of one quote session: the ordered line items
// plus the six active difficulty-factor selections. A quote has a single
// logical writer at a time; no locking discipline is needed.
type Quote struct {
	Items      []LineItem      `json:"items"`
	Factors    FactorSet       `json:"factors"`
	Duplicates DuplicatePolicy `json:"-"`
}

// NewQuote returns an empty quote with all factors at the 1.0 baseline.
func NewQuote() *Quote {
	return &Quote{Factors: DefaultFactorSet()}
}

// AddItem appends a line item, preserving insertion order. Under
// RejectDuplicates an item whose code is already present is refused.
// Negative hours are rejected with ErrInvalidInput.
func (q *Quote) AddItem(item LineItem) error {
	if item.Hours < 0 {
		return fmt.Errorf("%w: hours %.2f is negative", ErrInvalidInput, item.Hours)
	}
	if q.Duplicates == RejectDuplicates && q.HasCode(item.Code) {
		return fmt.Errorf("operation %q is already in the quote", item.Code)
	}
	q.Items = append(q.Items, item)
	return nil
}

// HasCode reports whether any line item carries the given code.
func (q *Quote) HasCode(code string) bool {
	for _, item := range q.Items {
		if item.Code == code {
			return true
		}
	}
	return false
}

// RemoveItem deletes the item at index, preserving the relative order of
// the remaining items. An out-of-range index fails with ErrIndexOutOfRange
// and leaves the quote unchanged.
func (q *Quote) RemoveItem(index int) error {
	if index < 0 || index >= len(q.Items) {
		return fmt.Errorf("%w: index %d with %d items", ErrIndexOutOfRange, index, len(q.Items))
	}
	q.Items = append(q.Items[:index], q.Items[index+1:]...)
	return nil
}

// Clear removes all line items. Factor selections are untouched.
func (q *Quote) Clear() {
	q.Items = nil
}

// SetFactor replaces the named factor's multiplier.
func (q *Quote) SetFactor(name string, value float64) error {
	return q.Factors.Set(name, value)
}

// Summary prices the quote at the given labor rate.
func (q *Quote) Summary(laborRate float64) (QuoteSummary, error) {
	return Price(q.Items, q.Factors, laborRate)
}

// BaseHours is the sum of unadjusted hours across all line items.
func (q *Quote) BaseHours() float64 {
	var total float64
	for _, item := range q.Items {
		total += item.Hours
	}
	return total
}
