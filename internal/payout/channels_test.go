package payout_test

import (
	. "github.com/onsi/ginkgo"
	"github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/DrGermanius/backoffice/internal/payout"
)

var _ = Describe("Channels", func() {
	table.DescribeTable("ChannelCode",
		func(bankCode, channel string, found bool) {
			c, ok := payout.ChannelCode(bankCode)
			Expect(ok).Should(Equal(found))
			Expect(c).Should(Equal(channel))
		},
		table.Entry("bank", "BCA", "ID_BCA", true),
		table.Entry("lower case bank", "mandiri", "ID_MANDIRI", true),
		table.Entry("e-wallet", "OVO", "ID_OVO", true),
		table.Entry("e-wallet with spaces", " dana ", "ID_DANA", true),
		table.Entry("unknown", "NOPE", "", false),
		table.Entry("empty", "", "", false),
	)

	table.DescribeTable("ValidateAccountNumber",
		func(bankCode, number string, expected error) {
			err := payout.ValidateAccountNumber(bankCode, number)
			if expected == nil {
				Expect(err).ShouldNot(HaveOccurred())
				return
			}
			Expect(err).Should(Equal(expected))
		},
		table.Entry("bca ten digits", "BCA", "1234567890", nil),
		table.Entry("bca too short", "BCA", "123456789", payout.ErrInvalidAccountNumber),
		table.Entry("mandiri thirteen digits", "MANDIRI", "1234567890123", nil),
		table.Entry("letters", "BNI", "12345abcde", payout.ErrInvalidAccountNumber),
		table.Entry("bank without rule", "UOB", "12345678", nil),
		table.Entry("e-wallet phone", "GOPAY", "081234567890", nil),
		table.Entry("e-wallet too short", "OVO", "0812", payout.ErrInvalidAccountNumber),
		table.Entry("unknown bank", "NOPE", "1234567890", payout.ErrUnknownBankCode),
		table.Entry("arabic-indic digits", "BCA", "١٢٣٤٥٦٧٨٩٠", payout.ErrInvalidAccountNumber),
		table.Entry("fullwidth digits", "GOPAY", "０８１２３４５６７８", payout.ErrInvalidAccountNumber),
	)
})
