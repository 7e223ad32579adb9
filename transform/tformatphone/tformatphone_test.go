package tformatphone

import (
	"testing"

	"github.com/relex/gotils/logger"
	"github.com/relex/record-refiner/base/bsupport"
	"github.com/relex/record-refiner/util"
	"github.com/stretchr/testify/assert"
)

func TestFormatPhoneTransform(t *testing.T) {
	c := &Config{}
	assert.Nil(t, util.UnmarshalYamlString(`
type: formatPhoneNumber
field: contact.phone
`, c))
	tf := c.NewTransform(logger.Root(), bsupport.NewStubDegradationCounterRegistry())

	value, err := tf.Apply("555-123-4567")
	assert.NoError(t, err)
	assert.Equal(t, "(555) 123-4567", value)

	value, err = tf.Apply("1-555-123-4567")
	assert.NoError(t, err)
	assert.Equal(t, "+1 (555) 123-4567", value)

	// any other digit count passes through unchanged
	value, err = tf.Apply("abc")
	assert.NoError(t, err)
	assert.Equal(t, "abc", value)

	value, err = tf.Apply("12345")
	assert.NoError(t, err)
	assert.Equal(t, "12345", value)

	// numeric input is formatted from its digits
	value, err = tf.Apply(5551234567)
	assert.NoError(t, err)
	assert.Equal(t, "(555) 123-4567", value)
}
