package payout

import (
	"errors"
	"strings"
)

var (
	ErrUnknownBankCode      = errors.New("unknown bank code")
	ErrInvalidAccountNumber = errors.New("invalid account number")
)

var bankChannels = map[string]string{
	"BCA":       "ID_BCA",
	"BNI":       "ID_BNI",
	"BRI":       "ID_BRI",
	"MANDIRI":   "ID_MANDIRI",
	"PERMATA":   "ID_PERMATA",
	"CIMB":      "ID_CIMB",
	"BSI":       "ID_BSI",
	"DANAMON":   "ID_DANAMON",
	"BTN":       "ID_BTN",
	"MAYBANK":   "ID_MAYBANK",
	"OCBC":      "ID_OCBC",
	"PANIN":     "ID_PANIN",
	"SINARMAS":  "ID_SINARMAS",
	"JAGO":      "ID_JAGO",
	"SEABANK":   "ID_SEABANK",
	"BJB":       "ID_BJB",
	"MEGA":      "ID_MEGA",
	"BTPN":      "ID_BTPN",
	"MUAMALAT":  "ID_MUAMALAT",
	"HSBC":      "ID_HSBC",
	"UOB":       "ID_UOB",
	"ARTOS":     "ID_ARTOS",
	"DBS":       "ID_DBS",
	"COMMBANK":  "ID_COMMONWEALTH",
	"NOBU":      "ID_NATIONALNOBU",
	"BANK_DKI":  "ID_DKI",
	"BPD_JATIM": "ID_JATIM",
}

var ewalletChannels = map[string]string{
	"OVO":       "ID_OVO",
	"DANA":      "ID_DANA",
	"GOPAY":     "ID_GOPAY",
	"SHOPEEPAY": "ID_SHOPEEPAY",
	"LINKAJA":   "ID_LINKAJA",
}

// channels merges banks and e-wallets; e-wallet codes win on a clash.
var channels = func() map[string]string {
	m := make(map[string]string, len(bankChannels)+len(ewalletChannels))
	for k, v := range bankChannels {
		m[k] = v
	}
	for k, v := range ewalletChannels {
		m[k] = v
	}
	return m
}()

// ChannelCode resolves an internal bank or e-wallet code to the provider channel code.
func ChannelCode(bankCode string) (string, bool) {
	c, ok := channels[strings.ToUpper(strings.TrimSpace(bankCode))]
	return c, ok
}

func IsEWallet(bankCode string) bool {
	_, ok := ewalletChannels[strings.ToUpper(strings.TrimSpace(bankCode))]
	return ok
}

type lengthRule struct {
	min, max int
}

var accountLengthRules = map[string]lengthRule{
	"BCA":     {10, 10},
	"BNI":     {10, 10},
	"BRI":     {15, 15},
	"MANDIRI": {13, 13},
	"PERMATA": {10, 16},
	"CIMB":    {10, 14},
	"BSI":     {10, 10},
	"DANAMON": {10, 12},
	"BTN":     {16, 16},
	"JAGO":    {12, 12},
	"SEABANK": {12, 12},
}

var (
	defaultBankRule    = lengthRule{6, 20}
	ewalletAccountRule = lengthRule{9, 14}
)

// ValidateAccountNumber checks that the number is digits only and has a
// length the bank accepts. E-wallet accounts are phone numbers.
func ValidateAccountNumber(bankCode, accountNumber string) error {
	code := strings.ToUpper(strings.TrimSpace(bankCode))
	if _, ok := channels[code]; !ok {
		return ErrUnknownBankCode
	}

	for _, r := range accountNumber {
		if r < '0' || r > '9' {
			return ErrInvalidAccountNumber
		}
	}

	rule, ok := accountLengthRules[code]
	switch {
	case IsEWallet(code):
		rule = ewalletAccountRule
	case !ok:
		rule = defaultBankRule
	}

	if n := len(accountNumber); n < rule.min || n > rule.max {
		return ErrInvalidAccountNumber
	}
	return nil
}
