package refund

import (
	"strings"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// Enumerated refund reason categories offered in the wizard's REASON step.
// ReasonOther is the free-text fallback and requires a non-empty detail.
const (
	ReasonLateDelivery        = "Pengerjaan terlambat"
	ReasonNotAsDescribed      = "Hasil tidak sesuai deskripsi"
	ReasonProviderUnreachable = "Freelancer tidak dapat dihubungi"
	ReasonOrderNotStarted     = "Pesanan belum dikerjakan"
	ReasonOther               = "Lainnya"
)

func getReasonCategories() map[string]struct{} {
	return map[string]struct{}{
		ReasonLateDelivery:        {},
		ReasonNotAsDescribed:      {},
		ReasonProviderUnreachable: {},
		ReasonOrderNotStarted:     {},
		ReasonOther:               {},
	}
}

// ReasonCategories returns the fixed category list for display purposes.
func ReasonCategories() []string {
	return []string{
		ReasonLateDelivery,
		ReasonNotAsDescribed,
		ReasonProviderUnreachable,
		ReasonOrderNotStarted,
		ReasonOther,
	}
}

// ErrReasonIsNotConstructed is returned when a Reason was not created via NewReason.
var ErrReasonIsNotConstructed = errs.NewValueIsRequiredError("Reason must be created via NewReason constructor")

// Reason is the validated cause of a refund request: an enumerated category,
// or ReasonOther with mandatory free text.
type Reason struct {
	category string
	detail   string

	guard guard.ConstructorGuard
}

// NewReason validates a category selection. The category must be from the
// fixed list; ReasonOther additionally requires non-empty detail text.
// Detail text on a non-Other category is kept as supplementary context.
func NewReason(category, detail string) (Reason, error) {
	if category == "" {
		return Reason{}, errs.NewValueIsRequiredError("refund reason")
	}
	if _, ok := getReasonCategories()[category]; !ok {
		return Reason{}, errs.NewValueIsInvalidError("refund reason: " + category)
	}

	detail = strings.TrimSpace(detail)
	if category == ReasonOther && detail == "" {
		return Reason{}, errs.NewValueIsRequiredError("refund reason detail")
	}

	return Reason{
		category: category,
		detail:   detail,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Reason was created through NewReason.
func (r Reason) Validate() error {
	return r.guard.Validate(ErrReasonIsNotConstructed)
}

// Category returns the selected category.
func (r Reason) Category() string {
	return r.category
}

// Detail returns the free-text detail, empty unless supplied.
func (r Reason) Detail() string {
	return r.detail
}

// Text returns the display form of the reason: the detail for ReasonOther,
// otherwise the category.
func (r Reason) Text() string {
	if r.category == ReasonOther {
		return r.detail
	}
	return r.category
}
