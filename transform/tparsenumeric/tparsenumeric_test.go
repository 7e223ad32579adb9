package tparsenumeric

import (
	"testing"

	"github.com/relex/gotils/logger"
	"github.com/relex/record-refiner/base/bsupport"
	"github.com/relex/record-refiner/util"
	"github.com/stretchr/testify/assert"
)

func TestParseNumericTransform(t *testing.T) {
	c := &Config{}
	assert.Nil(t, util.UnmarshalYamlString(`
type: parseNumericValue
field: order.total
`, c))
	tf := c.NewTransform(logger.Root(), bsupport.NewStubDegradationCounterRegistry())

	value, err := tf.Apply("$1,234.50")
	assert.NoError(t, err)
	assert.Equal(t, 1234.50, value)

	value, err = tf.Apply("42")
	assert.NoError(t, err)
	assert.Equal(t, 42.0, value)

	value, err = tf.Apply(13.5)
	assert.NoError(t, err)
	assert.Equal(t, 13.5, value)

	value, err = tf.Apply("not a number")
	assert.NoError(t, err)
	assert.Equal(t, float64(0), value)

	value, err = tf.Apply(nil)
	assert.NoError(t, err)
	assert.Equal(t, float64(0), value)
}
