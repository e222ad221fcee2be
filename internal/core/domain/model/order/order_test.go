package order_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot(t *testing.T, revisionLimit int) order.PackageSnapshot {
	t.Helper()
	price, err := kernel.NewMoney(1_500_000, "IDR")
	require.NoError(t, err)
	snapshot, err := order.NewPackageSnapshot(revisionLimit, 7, price)
	require.NoError(t, err)
	return snapshot
}

func testOrder(t *testing.T, confirmationDeadline *time.Time) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		testSnapshot(t, 2), confirmationDeadline, time.Now().UTC(),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should create a pending unpaid order", func(t *testing.T) {
		id := kernel.NewUUID()
		requesterID := kernel.NewUUID()
		providerID := kernel.NewUUID()
		deadline := now.Add(24 * time.Hour)

		o, err := order.NewOrder(id, requesterID, providerID, testSnapshot(t, 2), &deadline, now)

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.RequesterID().IsEqual(requesterID))
		assert.True(t, o.ProviderID().IsEqual(providerID))
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
		assert.Equal(t, &deadline, o.ConfirmationDeadline())
		assert.Nil(t, o.DeliveryDeadline())
		assert.Nil(t, o.CompletedAt())
		assert.Equal(t, 0, o.RevisionCount())
		assert.Equal(t, 0, o.Version())
		require.NoError(t, o.Validate())
	})

	t.Run("should allow a nil confirmation deadline", func(t *testing.T) {
		o := testOrder(t, nil)

		assert.Nil(t, o.ConfirmationDeadline())
		assert.Equal(t, order.Pending, o.EffectiveStatus(now.Add(1000*time.Hour)))
	})

	t.Run("should reject requester and provider being the same user", func(t *testing.T) {
		userID := kernel.NewUUID()

		_, err := order.NewOrder(kernel.NewUUID(), userID, userID, testSnapshot(t, 2), nil, now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "requester and provider are the same user")
	})

	t.Run("should reject an empty id", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), testSnapshot(t, 2), nil, now)

		require.Error(t, err)
	})

	t.Run("should reject an unconstructed snapshot", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			order.PackageSnapshot{}, nil, now)

		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should reject nil order", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("should reject zero-value order", func(t *testing.T) {
		o := &order.Order{}
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Accept(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should transition to Active and set the delivery deadline", func(t *testing.T) {
		deadline := now.Add(24 * time.Hour)
		o := testOrder(t, &deadline)

		err := o.Accept(order.RoleProvider, now)

		require.NoError(t, err)
		assert.Equal(t, order.Active, o.Status())
		require.NotNil(t, o.DeliveryDeadline())
		assert.Equal(t, now.AddDate(0, 0, 7), *o.DeliveryDeadline())
	})

	t.Run("should reject non-provider actors", func(t *testing.T) {
		o := testOrder(t, nil)

		for _, actor := range []order.Role{order.RoleRequester, order.RoleAdministrator, order.RoleSystem} {
			err := o.Accept(actor, now)

			require.ErrorIs(t, err, errs.ErrUnauthorized)
			assert.Equal(t, order.Pending, o.Status())
		}
	})

	t.Run("should reject acceptance after the confirmation deadline", func(t *testing.T) {
		deadline := now.Add(-1 * time.Minute)
		o := testOrder(t, &deadline)

		err := o.Accept(order.RoleProvider, now)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrTransitionNotAllowed)
		require.ErrorIs(t, err, order.ErrConfirmationDeadlineExpired)
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.DeliveryDeadline())
	})

	t.Run("should accept without a deadline at any time", func(t *testing.T) {
		o := testOrder(t, nil)

		require.NoError(t, o.Accept(order.RoleProvider, now.Add(90*24*time.Hour)))
		assert.Equal(t, order.Active, o.Status())
	})
}

func TestOrder_Reject(t *testing.T) {
	t.Run("should transition to Cancelled", func(t *testing.T) {
		o := testOrder(t, nil)

		require.NoError(t, o.Reject(order.RoleProvider))
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should reject non-provider actors", func(t *testing.T) {
		o := testOrder(t, nil)

		require.ErrorIs(t, o.Reject(order.RoleRequester), errs.ErrUnauthorized)
	})

	t.Run("should reject once the order is active", func(t *testing.T) {
		o := testOrder(t, nil)
		require.NoError(t, o.Accept(order.RoleProvider, time.Now().UTC()))

		require.ErrorIs(t, o.Reject(order.RoleProvider), errs.ErrTransitionNotAllowed)
	})
}

func TestOrder_ExpireConfirmation(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should cancel a pending order with a lapsed deadline", func(t *testing.T) {
		deadline := now.Add(-1 * time.Hour)
		o := testOrder(t, &deadline)

		require.NoError(t, o.ExpireConfirmation(order.RoleSystem, now))
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should reject while the deadline has not lapsed", func(t *testing.T) {
		deadline := now.Add(1 * time.Hour)
		o := testOrder(t, &deadline)

		err := o.ExpireConfirmation(order.RoleSystem, now)

		require.ErrorIs(t, err, errs.ErrTransitionNotAllowed)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should reject without a deadline", func(t *testing.T) {
		o := testOrder(t, nil)

		require.ErrorIs(t, o.ExpireConfirmation(order.RoleSystem, now), errs.ErrTransitionNotAllowed)
	})

	t.Run("should reject non-system actors", func(t *testing.T) {
		deadline := now.Add(-1 * time.Hour)
		o := testOrder(t, &deadline)

		require.ErrorIs(t, o.ExpireConfirmation(order.RoleProvider, now), errs.ErrUnauthorized)
	})
}

func TestOrder_EffectiveStatus(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should report Cancelled for a pending order past its deadline", func(t *testing.T) {
		deadline := now.Add(1 * time.Hour)
		o := testOrder(t, &deadline)

		assert.Equal(t, order.Pending, o.EffectiveStatus(now))
		assert.Equal(t, order.Cancelled, o.EffectiveStatus(now.Add(2*time.Hour)))
		// The stored status stays untouched until the system transition commits.
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should report the stored status for non-pending orders", func(t *testing.T) {
		deadline := now.Add(1 * time.Hour)
		o := testOrder(t, &deadline)
		require.NoError(t, o.Accept(order.RoleProvider, now))

		assert.Equal(t, order.Active, o.EffectiveStatus(now.Add(2*time.Hour)))
	})
}

func TestOrder_Deliver(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should transition Active to Delivered", func(t *testing.T) {
		o := testOrder(t, nil)
		require.NoError(t, o.Accept(order.RoleProvider, now))

		require.NoError(t, o.Deliver(order.RoleProvider))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should reject non-provider actors", func(t *testing.T) {
		o := testOrder(t, nil)
		require.NoError(t, o.Accept(order.RoleProvider, now))

		require.ErrorIs(t, o.Deliver(order.RoleRequester), errs.ErrUnauthorized)
	})

	t.Run("should reject while pending", func(t *testing.T) {
		o := testOrder(t, nil)

		require.ErrorIs(t, o.Deliver(order.RoleProvider), errs.ErrTransitionNotAllowed)
	})
}

func TestOrder_RequestRevision(t *testing.T) {
	now := time.Now().UTC()

	deliveredOrder := func(t *testing.T, revisionLimit int) *order.Order {
		t.Helper()
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			testSnapshot(t, revisionLimit), nil, now)
		require.NoError(t, err)
		require.NoError(t, o.Accept(order.RoleProvider, now))
		require.NoError(t, o.Deliver(order.RoleProvider))
		return o
	}

	t.Run("should transition to InRevision and produce a revision request", func(t *testing.T) {
		o := deliveredOrder(t, 2)

		revision, err := o.RequestRevision(order.RoleRequester, "fix the header", now)

		require.NoError(t, err)
		assert.Equal(t, order.InRevision, o.Status())
		assert.Equal(t, 1, o.RevisionCount())
		require.NotNil(t, revision)
		assert.True(t, revision.OrderID().IsEqual(o.ID()))
		assert.Equal(t, "fix the header", revision.Message())
		assert.Equal(t, now, revision.CreatedAt())
	})

	t.Run("should trim the revision message", func(t *testing.T) {
		o := deliveredOrder(t, 2)

		revision, err := o.RequestRevision(order.RoleRequester, "  more contrast  ", now)

		require.NoError(t, err)
		assert.Equal(t, "more contrast", revision.Message())
	})

	t.Run("should reject an empty message without consuming the count", func(t *testing.T) {
		o := deliveredOrder(t, 2)

		_, err := o.RequestRevision(order.RoleRequester, "   ", now)

		require.Error(t, err)
		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, 0, o.RevisionCount())
	})

	t.Run("should reject at the revision limit", func(t *testing.T) {
		o := deliveredOrder(t, 1)

		_, err := o.RequestRevision(order.RoleRequester, "round one", now)
		require.NoError(t, err)
		require.NoError(t, o.Deliver(order.RoleProvider))

		assert.True(t, o.IsRevisionDisabled())
		_, err = o.RequestRevision(order.RoleRequester, "round two", now)

		require.ErrorIs(t, err, errs.ErrTransitionNotAllowed)
		require.ErrorIs(t, err, order.ErrRevisionLimitReached)
		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, 1, o.RevisionCount())
	})

	t.Run("should reject with a zero revision limit", func(t *testing.T) {
		o := deliveredOrder(t, 0)

		assert.True(t, o.IsRevisionDisabled())
		_, err := o.RequestRevision(order.RoleRequester, "anything", now)

		require.ErrorIs(t, err, order.ErrRevisionLimitReached)
	})

	t.Run("should reject non-requester actors", func(t *testing.T) {
		o := deliveredOrder(t, 2)

		_, err := o.RequestRevision(order.RoleProvider, "message", now)

		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}

func TestOrder_AcceptDelivery(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should complete the order and set completedAt once", func(t *testing.T) {
		o := testOrder(t, nil)
		require.NoError(t, o.Accept(order.RoleProvider, now))
		require.NoError(t, o.Deliver(order.RoleProvider))

		completedAt := now.Add(time.Hour)
		require.NoError(t, o.AcceptDelivery(order.RoleRequester, completedAt))

		assert.Equal(t, order.Completed, o.Status())
		require.NotNil(t, o.CompletedAt())
		assert.Equal(t, completedAt, *o.CompletedAt())
	})

	t.Run("should reject non-requester actors", func(t *testing.T) {
		o := testOrder(t, nil)
		require.NoError(t, o.Accept(order.RoleProvider, now))
		require.NoError(t, o.Deliver(order.RoleProvider))

		require.ErrorIs(t, o.AcceptDelivery(order.RoleProvider, now), errs.ErrUnauthorized)
	})

	t.Run("should reject while active", func(t *testing.T) {
		o := testOrder(t, nil)
		require.NoError(t, o.Accept(order.RoleProvider, now))

		require.ErrorIs(t, o.AcceptDelivery(order.RoleRequester, now), errs.ErrTransitionNotAllowed)
	})
}

func TestOrder_ConfirmPayment(t *testing.T) {
	t.Run("should flip payment to paid", func(t *testing.T) {
		o := testOrder(t, nil)

		require.NoError(t, o.ConfirmPayment(order.RoleSystem))
		assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
		// The lifecycle axis is untouched.
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should reject a second confirmation", func(t *testing.T) {
		o := testOrder(t, nil)
		require.NoError(t, o.ConfirmPayment(order.RoleSystem))

		require.ErrorIs(t, o.ConfirmPayment(order.RoleSystem), errs.ErrTransitionNotAllowed)
		assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
	})

	t.Run("should reject non-system actors", func(t *testing.T) {
		o := testOrder(t, nil)

		require.ErrorIs(t, o.ConfirmPayment(order.RoleRequester), errs.ErrUnauthorized)
	})
}

func TestOrder_ApproveRefund(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should cancel a paid pending order and mark payment refunded", func(t *testing.T) {
		o := testOrder(t, nil)
		require.NoError(t, o.ConfirmPayment(order.RoleSystem))

		require.NoError(t, o.ApproveRefund(order.RoleAdministrator))
		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, order.PaymentRefunded, o.PaymentStatus())
	})

	t.Run("should cancel a paid active order", func(t *testing.T) {
		o := testOrder(t, nil)
		require.NoError(t, o.ConfirmPayment(order.RoleSystem))
		require.NoError(t, o.Accept(order.RoleProvider, now))

		require.NoError(t, o.ApproveRefund(order.RoleAdministrator))
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should reject an unpaid order", func(t *testing.T) {
		o := testOrder(t, nil)

		err := o.ApproveRefund(order.RoleAdministrator)

		require.ErrorIs(t, err, errs.ErrTransitionNotAllowed)
		require.ErrorIs(t, err, order.ErrPaymentNotEligible)
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
	})

	t.Run("should reject a delivered order", func(t *testing.T) {
		o := testOrder(t, nil)
		require.NoError(t, o.ConfirmPayment(order.RoleSystem))
		require.NoError(t, o.Accept(order.RoleProvider, now))
		require.NoError(t, o.Deliver(order.RoleProvider))

		require.ErrorIs(t, o.ApproveRefund(order.RoleAdministrator), errs.ErrTransitionNotAllowed)
		assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
	})

	t.Run("should reject non-administrator actors", func(t *testing.T) {
		o := testOrder(t, nil)
		require.NoError(t, o.ConfirmPayment(order.RoleSystem))

		for _, actor := range []order.Role{order.RoleRequester, order.RoleProvider, order.RoleSystem} {
			require.ErrorIs(t, o.ApproveRefund(actor), errs.ErrUnauthorized)
		}
	})
}

func TestOrder_Apply(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should dispatch known actions", func(t *testing.T) {
		o := testOrder(t, nil)

		require.NoError(t, o.Apply(order.ActionConfirmPayment, order.RoleSystem, now))
		require.NoError(t, o.Apply(order.ActionAccept, order.RoleProvider, now))
		require.NoError(t, o.Apply(order.ActionDeliver, order.RoleProvider, now))
		require.NoError(t, o.Apply(order.ActionAcceptDelivery, order.RoleRequester, now))
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("should reject unknown actions instead of ignoring them", func(t *testing.T) {
		o := testOrder(t, nil)

		err := o.Apply("escalate", order.RoleAdministrator, now)

		require.ErrorIs(t, err, errs.ErrTransitionNotAllowed)
		assert.Contains(t, err.Error(), "unknown action")
	})
}

func TestRestoreOrder(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should restore a persisted order", func(t *testing.T) {
		id := kernel.NewUUID()
		deliveryDeadline := now.Add(7 * 24 * time.Hour)

		o, err := order.RestoreOrder(
			id, kernel.NewUUID(), kernel.NewUUID(),
			order.Active, order.PaymentPaid,
			nil, &deliveryDeadline,
			now, nil,
			1, testSnapshot(t, 2), 3,
		)

		require.NoError(t, err)
		assert.Equal(t, order.Active, o.Status())
		assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
		assert.Equal(t, 1, o.RevisionCount())
		assert.Equal(t, 3, o.Version())
		require.NoError(t, o.Validate())
	})

	t.Run("should reject an invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			order.Unknown, order.PaymentPaid,
			nil, nil, now, nil, 0, testSnapshot(t, 2), 0,
		)

		require.Error(t, err)
	})

	t.Run("should reject a revision count above the snapshot limit", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			order.Active, order.PaymentPaid,
			nil, nil, now, nil, 3, testSnapshot(t, 2), 0,
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "revision count")
	})

	t.Run("should reject a negative version", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			order.Active, order.PaymentPaid,
			nil, nil, now, nil, 0, testSnapshot(t, 2), -1,
		)

		require.Error(t, err)
	})
}

func TestRestoreRevisionRequest(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should restore a persisted revision request", func(t *testing.T) {
		id := kernel.NewUUID()
		orderID := kernel.NewUUID()

		revision, err := order.RestoreRevisionRequest(id, orderID, "redo the intro", now)

		require.NoError(t, err)
		assert.True(t, revision.ID().IsEqual(id))
		assert.True(t, revision.OrderID().IsEqual(orderID))
		assert.Equal(t, "redo the intro", revision.Message())
	})

	t.Run("should reject a blank message", func(t *testing.T) {
		_, err := order.RestoreRevisionRequest(kernel.NewUUID(), kernel.NewUUID(), "  ", now)

		require.Error(t, err)
	})
}

func TestNewPackageSnapshot(t *testing.T) {
	price, err := kernel.NewMoney(1_500_000, "IDR")
	require.NoError(t, err)

	t.Run("should create a snapshot", func(t *testing.T) {
		snapshot, err := order.NewPackageSnapshot(2, 7, price)

		require.NoError(t, err)
		assert.Equal(t, 2, snapshot.RevisionLimit())
		assert.Equal(t, 7, snapshot.DeliveryTimeDays())
		assert.True(t, snapshot.Price().IsEqual(price))
		require.NoError(t, snapshot.Validate())
	})

	t.Run("should allow a zero revision limit", func(t *testing.T) {
		_, err := order.NewPackageSnapshot(0, 7, price)

		require.NoError(t, err)
	})

	t.Run("should reject a negative revision limit", func(t *testing.T) {
		_, err := order.NewPackageSnapshot(-1, 7, price)

		require.Error(t, err)
	})

	t.Run("should reject a non-positive delivery time", func(t *testing.T) {
		_, err := order.NewPackageSnapshot(2, 0, price)

		require.Error(t, err)
	})

	t.Run("should reject an unconstructed price", func(t *testing.T) {
		_, err := order.NewPackageSnapshot(2, 7, kernel.Money{})

		require.Error(t, err)
	})

	t.Run("should reject a zero-value snapshot", func(t *testing.T) {
		require.Error(t, order.PackageSnapshot{}.Validate())
	})
}
