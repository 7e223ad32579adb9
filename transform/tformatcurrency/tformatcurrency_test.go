package tformatcurrency

import (
	"testing"

	"github.com/relex/gotils/logger"
	"github.com/relex/record-refiner/base/bsupport"
	"github.com/relex/record-refiner/util"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrencyTransform(t *testing.T) {
	c := &Config{}
	assert.Nil(t, util.UnmarshalYamlString(`
type: formatCurrency
field: order.total
`, c))
	assert.Nil(t, c.VerifyConfig())
	tf := c.NewTransform(logger.Root(), bsupport.NewStubDegradationCounterRegistry())

	value, err := tf.Apply(1234.5)
	assert.NoError(t, err)
	assert.Equal(t, "$1234.50", value)

	value, err = tf.Apply(" 99.9 ")
	assert.NoError(t, err)
	assert.Equal(t, "$99.90", value)

	value, err = tf.Apply("not a price")
	assert.NoError(t, err)
	assert.Equal(t, "$0.00", value)

	value, err = tf.Apply(nil)
	assert.NoError(t, err)
	assert.Equal(t, "$0.00", value)
}

func TestFormatCurrencyCustomSymbol(t *testing.T) {
	c := &Config{}
	assert.Nil(t, util.UnmarshalYamlString(`
type: formatCurrency
field: order.total
symbol: "€"
`, c))
	tf := c.NewTransform(logger.Root(), bsupport.NewStubDegradationCounterRegistry())
	value, err := tf.Apply(5)
	assert.NoError(t, err)
	assert.Equal(t, "€5.00", value)
}
