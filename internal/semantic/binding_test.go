package semantic

import (
	"testing"

	"brick/internal/flow"
	"brick/internal/language"

	"github.com/stretchr/testify/assert"
)

func TestNilBindingContextAnswersEmpty(t *testing.T) {
	var b *BindingContext

	assert.Nil(t, b.TypeOf(nil))
	assert.Nil(t, b.ResolvedCallOf(nil))
	assert.Empty(t, b.ResolvedCalls())
	assert.Same(t, flow.Empty, b.DataFlowInfoBefore(nil))
	assert.Nil(t, b.ReturnTarget(nil))
	assert.Nil(t, b.DescriptorOf(nil))
	assert.Nil(t, b.ResolvedType(nil))
	assert.Nil(t, b.Class("Animal"))
	assert.Nil(t, b.Builder("Box"))
	assert.Nil(t, b.Hierarchy())
	assert.False(t, b.IsCapturedWrite(nil))
	assert.Nil(t, b.StableTypes(nil, nil, language.NewSettings(language.Latest)))
}
