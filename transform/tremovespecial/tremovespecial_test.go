package tremovespecial

import (
	"testing"

	"github.com/relex/gotils/logger"
	"github.com/relex/record-refiner/base/bsupport"
	"github.com/relex/record-refiner/util"
	"github.com/stretchr/testify/assert"
)

func TestRemoveSpecialCharsTransform(t *testing.T) {
	c := &Config{}
	assert.Nil(t, util.UnmarshalYamlString(`
type: removeSpecialChars
field: note
`, c))
	tf := c.NewTransform(logger.Root(), bsupport.NewStubDegradationCounterRegistry())

	value, err := tf.Apply("He!!o, Wörld_42 #ok")
	assert.NoError(t, err)
	assert.Equal(t, "Heo Wörld42 ok", value)

	value, err = tf.Apply(nil)
	assert.NoError(t, err)
	assert.Equal(t, "", value)
}
