package repoargs

type RepositoryName string

const (
	IdentityRepoName   RepositoryName = "identity"
	ProfileRepoName    RepositoryName = "profile"
	SubmissionRepoName RepositoryName = "payment_submission"
	EarningRepoName    RepositoryName = "earning"
	ReferralRepoName   RepositoryName = "referral"
	WithdrawalRepoName RepositoryName = "withdrawal"
	AlertRepoName      RepositoryName = "operator_alert"
)
