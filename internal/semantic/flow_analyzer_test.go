package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingReturn(t *testing.T) {
	r := analyze(t, `
fun sign(x: Int): Int {
    if (x > 0) {
        return 1
    }
}
`)
	require.Len(t, r.Diagnostics, 1)
	d := r.Diagnostics[0]
	assert.Equal(t, "MISSING_RETURN", d.Factory)
	assert.Equal(t, 2, d.Position.Line)
	assert.Equal(t, 5, d.Position.Column)
}

func TestReturnInBothBranches(t *testing.T) {
	r := analyze(t, `
fun sign(x: Int): Int {
    if (x > 0) {
        return 1
    } else {
        return -1
    }
}
`)
	assert.Empty(t, r.Diagnostics)
}

func TestThrowEndsFunction(t *testing.T) {
	r := analyze(t, `
fun fail(): Int {
    throw IllegalStateException("unreachable")
}
`)
	assert.Empty(t, r.Diagnostics)
}

func TestUnreachableCode(t *testing.T) {
	r := analyze(t, `
fun stop() {
    throw Exception("boom")
    println("never")
    println("again")
}
`)
	require.Len(t, r.Diagnostics, 1)
	d := r.Diagnostics[0]
	assert.Equal(t, "UNREACHABLE_CODE", d.Factory)
	assert.Equal(t, 4, d.Position.Line)
	assert.Equal(t, 5, d.Position.Column)
}

func TestUnreachableAfterJumpingLocal(t *testing.T) {
	r := analyze(t, `
fun stop() {
    val x = error("boom")
    println("never")
}
`)
	assert.Equal(t, []string{"UNREACHABLE_CODE"}, factories(r.Diagnostics))
}
