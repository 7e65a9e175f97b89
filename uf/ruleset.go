package uf

// RuleSet is the ordered list of rules loaded from the config file. Order is
// semantically significant: the first matching rule wins. A RuleSet is built
// once per invocation and never mutated afterwards.
type RuleSet []Rule

// IsEmpty returns true if the rule set contains no rules.
func (rs RuleSet) IsEmpty() bool {
	return len(rs) == 0
}

// Program returns the program of the first rule that matches the target,
// along with the winning rule. If no rule matches, it returns a NoMatchError
// naming the target's detected MIME type and extension so the user can add a
// covering rule.
func (rs RuleSet) Program(t Target) (string, *Rule, error) {
	for i := range rs {
		if rs[i].Matches(t) {
			return rs[i].Program, &rs[i], nil
		}
	}

	var mime string
	if t.MIME != nil {
		mime = t.MIME.String()
	}
	return "", nil, NoMatchError{
		Path:      t.Path,
		MIME:      mime,
		Extension: t.Extension,
	}
}
