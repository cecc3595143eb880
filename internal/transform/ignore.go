package transform

// IgnoreRule is one (class, member) pattern from the user's ignore list.
// Either side may be the wildcard "*".
type IgnoreRule struct {
	Class  string
	Member string
}

// IgnoreList is the user-supplied set of members RemoveMembers drops,
// regardless of union/Incomplete handling.
type IgnoreList struct {
	rules []IgnoreRule
}

// NewIgnoreList builds an IgnoreList from a flat rule set.
func NewIgnoreList(rules ...IgnoreRule) *IgnoreList {
	return &IgnoreList{rules: rules}
}

// Matches reports whether (className, memberName) is covered by any rule,
// where "*" on either side of a rule matches anything.
func (l *IgnoreList) Matches(className, memberName string) bool {
	if l == nil {
		return false
	}
	for _, r := range l.rules {
		if (r.Class == "*" || r.Class == className) && (r.Member == "*" || r.Member == memberName) {
			return true
		}
	}
	return false
}
