package components

import rl "github.com/gen2brain/raylib-go/raylib"

// Material keys, named after the shader properties they stand for.
const (
	PropMainTex       = "_MainTex"
	PropColor         = "_Color"
	PropEmissionColor = "_EmissionColor"
)

// Material is the appearance state shared between line renderers. Only the
// fields the beams read or write are modelled.
type Material struct {
	Name string

	// MainTexture is nil when the shader has no primary texture channel.
	MainTexture   *rl.Texture2D
	TextureOffset rl.Vector2
	TextureScale  rl.Vector2

	colors map[string]ColorF

	ShaderKeywords []string
	RenderQueue    int
}

func NewMaterial(name string) *Material {
	return &Material{
		Name:         name,
		TextureScale: rl.Vector2{X: 1, Y: 1},
		colors:       make(map[string]ColorF),
	}
}

func (m *Material) HasMainTexture() bool {
	return m != nil && m.MainTexture != nil
}

func (m *Material) SetColor(prop string, c ColorF) {
	if m.colors == nil {
		m.colors = make(map[string]ColorF)
	}
	m.colors[prop] = c
}

// Color returns the named color and whether the material defines it.
func (m *Material) Color(prop string) (ColorF, bool) {
	if m == nil {
		return ColorF{}, false
	}
	c, ok := m.colors[prop]
	return c, ok
}

func (m *Material) EnableKeyword(kw string) {
	for _, k := range m.ShaderKeywords {
		if k == kw {
			return
		}
	}
	m.ShaderKeywords = append(m.ShaderKeywords, kw)
}

func (m *Material) DisableKeyword(kw string) {
	for i, k := range m.ShaderKeywords {
		if k == kw {
			m.ShaderKeywords = append(m.ShaderKeywords[:i], m.ShaderKeywords[i+1:]...)
			return
		}
	}
}

func (m *Material) IsKeywordEnabled(kw string) bool {
	for _, k := range m.ShaderKeywords {
		if k == kw {
			return true
		}
	}
	return false
}
