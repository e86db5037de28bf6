package config

// Intake and review keywords. Matched against the normalized message text.
const (
	StartKeyword       = "report"
	CancelKeyword      = "cancel"
	HelpKeyword        = "help"
	SkipKeyword        = "skip"
	ReviewReadyKeyword = "s"
)

// Verdict codes emitted by a completed review. The magnitude encodes the
// severity tier, not an ordinal ranking.
const (
	VerdictDelete       = 10 // delete the offending post
	VerdictDeleteAndBan = 20 // delete the post and remove the author
	VerdictNonViolation = 99 // absolve
	OutcomeNoConsensus  = 0  // reviewers disagreed, case reopens
)

// Category codes as stored on a ticket. CategoryCustom means the subcategory
// field holds a free-text label supplied by the reporter.
const (
	CategoryFakeSpamFraud = "1"
	CategoryAbusive       = "2"
	CategoryCustom        = "3"
)

// CategoryCodes maps category code -> subcategory code -> human label.
var CategoryCodes = map[string]map[string]string{
	CategoryFakeSpamFraud: {
		"1": "Fraudulent",
		"2": "Fake/Misleading",
		"3": "Spam",
		"4": "Impersonation",
		"5": "Periscope Auto-Flag",
	},
	CategoryAbusive: {
		"1": "Nudity or Exploitation",
		"2": "Violence, Terrorism, or Incitement",
		"3": "Suicide or Self-Injury",
		"4": "Unauthorized or Illegal Sales",
		"5": "Hate Speech, Harassment, or Bullying",
	},
}

// Subcategory used when the automated flag path synthesizes a ticket.
const (
	AutoFlagCategory    = CategoryFakeSpamFraud
	AutoFlagSubcategory = "5"
)
