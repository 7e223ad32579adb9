// Package rexpr provides 'expr' rule to check a field value with a CEL expression
//
// The expression sees the field value as variable "value" and must evaluate to a boolean;
// a non-boolean result or an evaluation error fails the rule. Expressions are compiled once
// at configuration time with a cost limit against runaway evaluation.
package rexpr

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/relex/gotils/logger"
	"github.com/relex/record-refiner/base"
	"github.com/relex/record-refiner/base/bconfig"
)

const evalCostLimit = 1000000

// Config for exprRule
type Config struct {
	bconfig.RuleTarget `yaml:",inline"`
	Expression         string `yaml:"expression"`
}

type exprRule struct {
	program    cel.Program
	warnLogger logger.Logger
}

func newEnv() (*cel.Env, error) {
	return cel.NewEnv(cel.Variable("value", cel.DynType))
}

func compile(expression string) (cel.Program, error) {
	env, err := newEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}
	ast, issues := env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile error: %w", issues.Err())
	}
	program, err := env.Program(ast, cel.CostLimit(evalCostLimit))
	if err != nil {
		return nil, fmt.Errorf("program creation error: %w", err)
	}
	return program, nil
}

// NewRule creates exprRule
func (cfg *Config) NewRule(parentLogger logger.Logger) base.RuleCheck {
	program, err := compile(cfg.Expression)
	if err != nil {
		logger.Panicf("failed to compile expression '%s': %s", cfg.Expression, err.Error())
	}
	return &exprRule{
		program:    program,
		warnLogger: parentLogger,
	}
}

// VerifyConfig verifies exprRule config
func (cfg *Config) VerifyConfig() error {
	if len(cfg.Expression) == 0 {
		return fmt.Errorf(".expression is unspecified")
	}
	if _, err := compile(cfg.Expression); err != nil {
		return fmt.Errorf(".expression: %w", err)
	}
	return nil
}

func (rule *exprRule) Check(value any) bool {
	// CEL has no notion of Go nil; map missing fields to an empty string
	if value == nil {
		value = ""
	}
	out, _, err := rule.program.Eval(map[string]any{"value": value})
	if err != nil {
		rule.warnLogger.Warnf("expression evaluation failed: %s", err.Error())
		return false
	}
	matched, isBool := out.Value().(bool)
	return isBool && matched
}
