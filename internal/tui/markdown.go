package tui

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
)

// markdownCacheLimit caps the render cache. The cache is rebuilt from
// scratch when it fills up.
const markdownCacheLimit = 256

// markdownRenderer renders page bodies to styled terminal text. Results are
// cached by content, style and wrap width so redrawing the notebook does not
// re-render unchanged pages.
type markdownRenderer struct {
	r     *glamour.TermRenderer
	cache map[uint64]string
	style string
	width int
}

func newMarkdownRenderer(style string, width int) *markdownRenderer {
	return &markdownRenderer{
		style: style,
		width: width,
		cache: make(map[uint64]string),
	}
}

// SetStyle switches the glamour style, dropping the renderer and cache.
func (m *markdownRenderer) SetStyle(style string) {
	if style == m.style {
		return
	}
	m.style = style
	m.reset()
}

// SetWidth updates the word wrap width, dropping the renderer and cache.
func (m *markdownRenderer) SetWidth(width int) {
	if width < 10 {
		width = 10
	}
	if width == m.width {
		return
	}
	m.width = width
	m.reset()
}

func (m *markdownRenderer) reset() {
	m.r = nil
	m.cache = make(map[uint64]string)
}

// styleConfig builds the glamour style for the current theme, pointing code
// blocks at the matching registered chroma style.
func (m *markdownRenderer) styleConfig() ansi.StyleConfig {
	if m.style == "light" {
		config := glamourstyles.LightStyleConfig
		config.CodeBlock.Theme = "faitout-light"
		return config
	}
	config := glamourstyles.DarkStyleConfig
	config.CodeBlock.Theme = "faitout-dark"
	return config
}

// Render returns the styled rendering of body. When the renderer fails the
// raw body is returned so the page stays readable.
func (m *markdownRenderer) Render(body string) string {
	key := xxhash.Sum64String(fmt.Sprintf("%s|%d|%s", m.style, m.width, body))
	if out, ok := m.cache[key]; ok {
		return out
	}

	if m.r == nil {
		r, err := glamour.NewTermRenderer(
			glamour.WithStyles(m.styleConfig()),
			glamour.WithWordWrap(m.width),
			glamour.WithPreservedNewLines(),
		)
		if err != nil {
			return body
		}
		m.r = r
	}

	out, err := m.r.Render(body)
	if err != nil {
		return body
	}

	if len(m.cache) >= markdownCacheLimit {
		m.cache = make(map[uint64]string)
	}
	m.cache[key] = out
	return out
}
