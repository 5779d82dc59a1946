package domain

// SubmissionStatus статус заявки об оплате.
type SubmissionStatus string

const (
	SubmissionStatusPending  SubmissionStatus = "pending"
	SubmissionStatusApproved SubmissionStatus = "approved"
	SubmissionStatusRejected SubmissionStatus = "rejected"
)

// SubmissionDecision решение администратора по заявке. Значения pending у типа нет, поэтому вернуть заявку
// в ожидание невозможно на уровне типов.
type SubmissionDecision string

const (
	SubmissionApprove SubmissionDecision = SubmissionDecision(SubmissionStatusApproved)
	SubmissionReject  SubmissionDecision = SubmissionDecision(SubmissionStatusRejected)
)

// Status возвращает конечный статус заявки для решения.
func (d SubmissionDecision) Status() SubmissionStatus {
	return SubmissionStatus(d)
}

// Valid проверяет, что решение входит в закрытое множество значений.
func (d SubmissionDecision) Valid() bool {
	return d == SubmissionApprove || d == SubmissionReject
}

// IsFinal true для approved и rejected.
func (s SubmissionStatus) IsFinal() bool {
	return s == SubmissionStatusApproved || s == SubmissionStatusRejected
}

// WithdrawalStatus статус заявки на вывод средств.
type WithdrawalStatus string

const (
	WithdrawalStatusProcessing WithdrawalStatus = "processing"
	WithdrawalStatusApproved   WithdrawalStatus = "approved"
	WithdrawalStatusRejected   WithdrawalStatus = "rejected"
)

// WithdrawalDecision решение администратора по выводу.
type WithdrawalDecision string

const (
	WithdrawalApprove WithdrawalDecision = WithdrawalDecision(WithdrawalStatusApproved)
	WithdrawalReject  WithdrawalDecision = WithdrawalDecision(WithdrawalStatusRejected)
)

func (d WithdrawalDecision) Status() WithdrawalStatus {
	return WithdrawalStatus(d)
}

func (d WithdrawalDecision) Valid() bool {
	return d == WithdrawalApprove || d == WithdrawalReject
}

// ReferralStatus статус реферала. ReferralStatusPending сейчас никем не создается.
type ReferralStatus string

const (
	ReferralStatusPending  ReferralStatus = "Pending"
	ReferralStatusInvested ReferralStatus = "Invested"
)
