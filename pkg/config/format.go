package config

// FormatRuleID formats a rule identifier for listings.
// Falls back to the bare name if the category id is empty.
func FormatRuleID(format RuleFormat, categoryID, ruleName string) string {
	if categoryID == "" {
		return ruleName
	}

	switch format {
	case RuleFormatQualified:
		return categoryID + "/" + ruleName
	case RuleFormatName:
		return ruleName
	default:
		return ruleName
	}
}
