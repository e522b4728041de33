package validatorjs

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/go-softwarelab/common/pkg/slogx"
	"github.com/stretchr/testify/assert"
)

func TestShadowedNamesLogged(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slogx.NewBuilder().
		WithSlogLevel(slog.LevelDebug).
		WritingTo(&buf).
		WithTextFormat().
		Logger())
	t.Cleanup(func() { SetLogger(nil) })

	ns := buildNamespace()
	assert.Len(t, ns, len(reexports)+len(localPredicates)-1)
	assert.Contains(t, buf.String(), "local predicate shadows validator check")
	assert.Contains(t, buf.String(), "name=isNumber")
	assert.Contains(t, buf.String(), "shadowed=1")
}

func TestSilentByDefault(t *testing.T) {
	SetLogger(nil)
	assert.False(t, slogx.IsDebug(logger()))
}
