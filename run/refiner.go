package run

import (
	"fmt"

	"github.com/relex/gotils/logger"

	"github.com/relex/record-refiner/base/bsupport"
	"github.com/relex/record-refiner/defs"
	"github.com/relex/record-refiner/engine"
)

// NewEngine creates an engine and registers all transformations and rules from the verified config
//
// Unnamed transformations are registered as "<type>(<field>)".
func NewEngine(cref *Config, parentLogger logger.Logger) (*engine.Engine, error) {
	eopts, oerr := cref.Options.engineOptions()
	if oerr != nil {
		return nil, oerr
	}
	eng := engine.New(eopts, parentLogger)

	transforms := bsupport.NewTransformsFromConfig(cref.Transformations, parentLogger, eng)
	for i, holder := range cref.Transformations {
		tc := holder.Value
		name := tc.GetName()
		if len(name) == 0 {
			name = fmt.Sprintf("%s(%s)", tc.GetType(), tc.GetField())
		}
		if err := eng.RegisterTransformation(name, tc.GetField(), transforms[i]); err != nil {
			return nil, fmt.Errorf("transformations[%d] %s: %w", i, holder.Location, err)
		}
	}

	for i, holder := range cref.Rules {
		rc := holder.Value
		rlogger := parentLogger.WithFields(logger.Fields{
			defs.LabelPart:   rc.GetType(),
			defs.LabelSource: holder.Location,
		})
		if err := eng.AddValidationRule(rc.GetField(), rc.NewRule(rlogger), rc.GetMessage()); err != nil {
			return nil, fmt.Errorf("rules[%d] %s: %w", i, holder.Location, err)
		}
	}
	return eng, nil
}
