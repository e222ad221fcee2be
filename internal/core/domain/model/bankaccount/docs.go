// Package bankaccount provides the payout-destination registry of the
// marketplace: user-owned bank accounts that refunds and earnings are sent to.
//
// Accounts are owned exclusively by their creating user; no other actor may
// read, select or mutate another user's accounts. Account numbers are masked
// (last four digits visible) everywhere they are displayed, including the
// refund confirmation step.
package bankaccount
