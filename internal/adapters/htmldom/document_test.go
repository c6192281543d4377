package htmldom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMarkup = `<!DOCTYPE html>
<html lang="en">
<head><title>t</title></head>
<body>
  <h1 data-i18n="hero.title">Hello</h1>
  <input type="email" data-i18n="form.email" placeholder="Email">
  <a href="/x" data-i18n="footer.contact" data-i18n-link="footer.contact.link">link</a>
  <p data-i18n="footer.brand"><span>a</span> · <strong>b</strong></p>
  <p>unmarked</p>
</body>
</html>`

func TestParse_CollectsMarkedNodes(t *testing.T) {
	doc, err := Parse([]byte(sampleMarkup))
	require.NoError(t, err)

	nodes := doc.Nodes()
	require.Len(t, nodes, 4)
	assert.Equal(t, "h1", nodes[0].Kind())
	assert.Equal(t, "hero.title", nodes[0].Key())
	assert.Equal(t, "input", nodes[1].Kind())
	assert.True(t, nodes[1].HasAttr("placeholder"))
	assert.Equal(t, "footer.contact.link", nodes[2].LinkKey())
	assert.Empty(t, nodes[0].LinkKey())
}

func TestNode_ChildShapeQueries(t *testing.T) {
	doc, err := Parse([]byte(sampleMarkup))
	require.NoError(t, err)
	nodes := doc.Nodes()

	h1 := nodes[0]
	assert.True(t, h1.HasChildNodes())
	assert.True(t, h1.HasSoleTextChild())

	input := nodes[1]
	assert.False(t, input.HasChildNodes())

	brand := nodes[3]
	assert.True(t, brand.HasChildNodes())
	assert.False(t, brand.HasSoleTextChild())
}

func TestNode_SetTextAndAttr_RoundTrip(t *testing.T) {
	doc, err := Parse([]byte(sampleMarkup))
	require.NoError(t, err)
	nodes := doc.Nodes()

	nodes[0].SetText("Привет")
	nodes[1].SetAttr("placeholder", "Почта")
	doc.SetLang("ru")

	out, err := doc.Render()
	require.NoError(t, err)
	rendered := string(out)
	assert.Contains(t, rendered, ">Привет</h1>")
	assert.Contains(t, rendered, `placeholder="Почта"`)
	assert.Contains(t, rendered, `lang="ru"`)
	assert.NotContains(t, rendered, ">Hello<")
}

func TestReplaceBody_SwapsAllContent(t *testing.T) {
	doc, err := Parse([]byte(sampleMarkup))
	require.NoError(t, err)

	doc.ReplaceBody(`<div class="coming-soon"><h1>Coming Soon</h1></div>`)

	out, err := doc.Render()
	require.NoError(t, err)
	rendered := string(out)
	assert.Contains(t, rendered, "Coming Soon")
	assert.NotContains(t, rendered, "hero.title")
	assert.Empty(t, doc.Nodes(), "marked nodes are gone with the old body")
}

func TestParse_NoBody(t *testing.T) {
	// The HTML5 parser synthesizes html/head/body even for fragments, so
	// a body is always found for text input.
	doc, err := Parse([]byte("just text"))
	require.NoError(t, err)
	assert.Empty(t, doc.Nodes())
}
