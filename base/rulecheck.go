package base

// RuleCheck is the predicate of one validation rule, applied to the value of the rule's target field
//
// A missing field is checked as nil. Check must not panic for expected invalid data; a panic inside
// Check is a programmer error and is deliberately not recovered by the engine.
type RuleCheck interface {
	Check(value any) bool
}

// RuleCheckFunc defines a plain predicate function as a RuleCheck
type RuleCheckFunc func(value any) bool

// Check implements RuleCheck
func (f RuleCheckFunc) Check(value any) bool {
	return f(value)
}
