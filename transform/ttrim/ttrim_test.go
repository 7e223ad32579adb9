package ttrim

import (
	"testing"

	"github.com/relex/gotils/logger"
	"github.com/relex/record-refiner/base/bsupport"
	"github.com/relex/record-refiner/util"
	"github.com/stretchr/testify/assert"
)

func TestTrimWhitespaceTransform(t *testing.T) {
	c := &Config{}
	assert.Nil(t, util.UnmarshalYamlString(`
type: trimWhitespace
field: note
`, c))
	tf := c.NewTransform(logger.Root(), bsupport.NewStubDegradationCounterRegistry())

	value, err := tf.Apply("\t hello \n")
	assert.NoError(t, err)
	assert.Equal(t, "hello", value)

	value, err = tf.Apply(42)
	assert.NoError(t, err)
	assert.Equal(t, "42", value)
}
