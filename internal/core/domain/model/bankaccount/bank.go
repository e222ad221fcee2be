package bankaccount

// Supported payout banks. The list is fixed: a bank name outside it fails
// validation at account creation and update.
const (
	BankBCA       = "BCA"
	BankBNI       = "BNI"
	BankBRI       = "BRI"
	BankMandiri   = "Mandiri"
	BankCIMBNiaga = "CIMB Niaga"
	BankPermata   = "Permata"
	BankBTN       = "BTN"
	BankDanamon   = "Danamon"
)

func getSupportedBanks() map[string]struct{} {
	return map[string]struct{}{
		BankBCA:       {},
		BankBNI:       {},
		BankBRI:       {},
		BankMandiri:   {},
		BankCIMBNiaga: {},
		BankPermata:   {},
		BankBTN:       {},
		BankDanamon:   {},
	}
}

// IsSupportedBank reports whether the bank name is in the fixed bank list.
func IsSupportedBank(name string) bool {
	_, ok := getSupportedBanks()[name]
	return ok
}

// SupportedBanks returns the fixed bank list for display purposes.
func SupportedBanks() []string {
	return []string{
		BankBCA, BankBNI, BankBRI, BankMandiri,
		BankCIMBNiaga, BankPermata, BankBTN, BankDanamon,
	}
}
