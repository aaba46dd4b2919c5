package mmdc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatchSVGBackground(t *testing.T) {
	t.Run("rewrites root background declaration", func(t *testing.T) {
		in := `<?xml version="1.0"?><svg xmlns="http://www.w3.org/2000/svg" style="max-width: 100px; background-color: white;"><g/></svg>`
		out := string(patchSVGBackground([]byte(in)))
		assert.Contains(t, out, "background-color: transparent")
		assert.NotContains(t, out, "background-color: white")
		assert.Contains(t, out, "max-width: 100px")
	})

	t.Run("shorthand background property", func(t *testing.T) {
		in := `<svg style="background:#ffffff"><g/></svg>`
		out := string(patchSVGBackground([]byte(in)))
		assert.Contains(t, out, "background: transparent")
	})

	t.Run("nested elements keep their styling", func(t *testing.T) {
		in := `<svg style="background-color: white;"><rect style="background-color: white;"/></svg>`
		out := string(patchSVGBackground([]byte(in)))
		assert.Contains(t, out, `<rect style="background-color: white;"/>`)
		assert.Contains(t, out, `<svg style="background-color: transparent;">`)
	})

	t.Run("no background declaration is a no-op", func(t *testing.T) {
		in := `<svg viewBox="0 0 10 10"><g/></svg>`
		assert.Equal(t, in, string(patchSVGBackground([]byte(in))))
	})

	t.Run("not svg at all is a no-op", func(t *testing.T) {
		in := `%PDF-1.4 binary stuff`
		assert.Equal(t, in, string(patchSVGBackground([]byte(in))))
	})
}
