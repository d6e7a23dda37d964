package vault_test

import (
	"encoding/hex"
	"strings"

	. "github.com/onsi/ginkgo"
	"github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/DrGermanius/backoffice/internal/vault"
)

var _ = Describe("Vault", func() {
	var v *vault.Vault

	BeforeEach(func() {
		var err error
		v, err = vault.New("long-lived-secret")
		Expect(err).ShouldNot(HaveOccurred())
	})

	Context("Encrypt and Decrypt", func() {
		table.DescribeTable("round trip",
			func(plaintext string) {
				c, err := v.Encrypt(plaintext)
				Expect(err).ShouldNot(HaveOccurred())
				Expect(c).ShouldNot(ContainSubstring(plaintext))
				Expect(v.Decrypt(c)).Should(Equal(plaintext))
			},
			table.Entry("account number", "1234567890"),
			table.Entry("holder name", "Budi Santoso"),
			table.Entry("single char", "x"),
			table.Entry("unicode", "Zoë Ñandú"),
			table.Entry("contains separator", "a:b:c"),
		)
		It("Ciphertext has three hex parts", func() {
			c, err := v.Encrypt("1234567890")
			Expect(err).ShouldNot(HaveOccurred())

			parts := strings.Split(c, ":")
			Expect(parts).Should(HaveLen(3))
			for _, p := range parts {
				_, err = hex.DecodeString(p)
				Expect(err).ShouldNot(HaveOccurred())
			}
			Expect(parts[0]).Should(HaveLen(24))
			Expect(parts[1]).Should(HaveLen(32))
		})
		It("Same plaintext encrypts differently", func() {
			a, err := v.Encrypt("1234567890")
			Expect(err).ShouldNot(HaveOccurred())
			b, err := v.Encrypt("1234567890")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(a).ShouldNot(Equal(b))
		})
		It("Same secret derives the same key", func() {
			other, err := vault.New("long-lived-secret")
			Expect(err).ShouldNot(HaveOccurred())

			c, err := v.Encrypt("1234567890")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(other.Decrypt(c)).Should(Equal("1234567890"))
		})
		It("Decrypt with another secret returns empty string", func() {
			other, err := vault.New("rotated-secret")
			Expect(err).ShouldNot(HaveOccurred())

			c, err := v.Encrypt("1234567890")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(other.Decrypt(c)).Should(BeEmpty())
		})
		It("Decrypt with flipped tag byte returns empty string", func() {
			c, err := v.Encrypt("1234567890")
			Expect(err).ShouldNot(HaveOccurred())

			parts := strings.Split(c, ":")
			tag, err := hex.DecodeString(parts[1])
			Expect(err).ShouldNot(HaveOccurred())
			tag[0] ^= 0x01
			parts[1] = hex.EncodeToString(tag)

			Expect(func() { v.Decrypt(strings.Join(parts, ":")) }).ShouldNot(Panic())
			Expect(v.Decrypt(strings.Join(parts, ":"))).Should(BeEmpty())
		})
		table.DescribeTable("malformed input returns empty string",
			func(c string) {
				Expect(v.Decrypt(c)).Should(BeEmpty())
			},
			table.Entry("empty", ""),
			table.Entry("plaintext", "1234567890"),
			table.Entry("two parts", "aa:bb"),
			table.Entry("not hex", "zz:zz:zz"),
			table.Entry("short iv", "00:00000000000000000000000000000000:00"),
		)
	})

	Context("New", func() {
		It("Empty secret is rejected", func() {
			_, err := vault.New("")
			Expect(err).Should(Equal(vault.ErrEmptySecret))
		})
	})

	Context("Mask and Last4", func() {
		table.DescribeTable("mask",
			func(in, out string) {
				Expect(vault.Mask(in)).Should(Equal(out))
			},
			table.Entry("ten digits", "1234567890", "******7890"),
			table.Entry("two digits", "12", "****"),
			table.Entry("exactly four", "1234", "1234"),
			table.Entry("empty", "", "****"),
		)
		It("Last4 of long and short values", func() {
			Expect(vault.Last4("1234567890")).Should(Equal("7890"))
			Expect(vault.Last4("12")).Should(Equal("12"))
		})
	})
})
