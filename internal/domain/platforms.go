package domain

import "regexp"

// mobileNumberRe номер мобильного телефона вида 03001234567.
var mobileNumberRe = regexp.MustCompile(`^03\d{9}$`)

// IsMobileNumber проверяет номер телефона отправителя платежа.
func IsMobileNumber(phone string) bool {
	return mobileNumberRe.MatchString(phone)
}

// Платежные платформы, через которые принимается оплата.
const (
	PlatformEasypaisa = "easypaisa"
	PlatformJazzCash  = "jazzcash"
	PlatformBank      = "bank"
)

func IsPaymentPlatform(p string) bool {
	switch p {
	case PlatformEasypaisa, PlatformJazzCash, PlatformBank:
		return true
	}
	return false
}

// IsPayoutMethod способы выплаты. Банковский перевод для выплат не поддерживается.
func IsPayoutMethod(m string) bool {
	return m == PlatformEasypaisa || m == PlatformJazzCash
}
