package order

import (
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrPackageSnapshotIsNotConstructed is returned when attempting to use an
// improperly initialized PackageSnapshot.
var ErrPackageSnapshotIsNotConstructed = errs.NewValueIsRequiredError(
	"PackageSnapshot must be created via NewPackageSnapshot constructor")

// PackageSnapshot is an immutable copy of the purchased offering's terms,
// taken at order-creation time. Later changes to the originating offering
// never retroactively alter an existing order: the snapshot is the only
// source for the revision limit, the delivery time and the price (and hence
// the refund amount).
type PackageSnapshot struct {
	revisionLimit    int
	deliveryTimeDays int
	price            kernel.Money

	guard guard.ConstructorGuard
}

// NewPackageSnapshot creates a snapshot of an offering's terms.
// The revision limit must be non-negative, the delivery time positive,
// and the price a constructed Money value.
func NewPackageSnapshot(revisionLimit, deliveryTimeDays int, price kernel.Money) (PackageSnapshot, error) {
	if revisionLimit < 0 {
		return PackageSnapshot{}, errs.NewValueIsInvalidErrorWithCause("revision limit",
			fmt.Errorf("%d is negative", revisionLimit))
	}
	if deliveryTimeDays <= 0 {
		return PackageSnapshot{}, errs.NewValueIsInvalidErrorWithCause("delivery time",
			fmt.Errorf("%d is not greater than 0", deliveryTimeDays))
	}
	if err := price.Validate(); err != nil {
		return PackageSnapshot{}, err
	}

	return PackageSnapshot{
		revisionLimit:    revisionLimit,
		deliveryTimeDays: deliveryTimeDays,
		price:            price,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the snapshot was created through NewPackageSnapshot.
func (p PackageSnapshot) Validate() error {
	return p.guard.Validate(ErrPackageSnapshotIsNotConstructed)
}

// RevisionLimit returns the maximum number of revision requests the order allows.
func (p PackageSnapshot) RevisionLimit() int {
	return p.revisionLimit
}

// DeliveryTimeDays returns the promised delivery time in days.
func (p PackageSnapshot) DeliveryTimeDays() int {
	return p.deliveryTimeDays
}

// Price returns the price paid for the package.
func (p PackageSnapshot) Price() kernel.Money {
	return p.price
}
