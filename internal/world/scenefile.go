package world

import (
	"fmt"
	"os"

	"droplaser/internal/components"
	"droplaser/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// TagGrabbable marks objects an actor may pick up.
const TagGrabbable = "grabbable"

// --- YAML types ---

type SceneFile struct {
	Name    string      `yaml:"name"`
	Objects []ObjectDef `yaml:"objects"`
}

type ObjectDef struct {
	Name       string      `yaml:"name"`
	Tags       []string    `yaml:"tags,omitempty"`
	Position   [3]float32  `yaml:"position"`
	Rotation   [3]float32  `yaml:"rotation"`
	Scale      [3]float32  `yaml:"scale"`
	Components []yaml.Node `yaml:"components"`
	Children   []ObjectDef `yaml:"children,omitempty"`
}

type componentHeader struct {
	Type string `yaml:"type"`
}

type meshRendererDef struct {
	Mesh  string     `yaml:"mesh"`
	Size  [3]float32 `yaml:"size"`
	Color string     `yaml:"color"`
	Wires bool       `yaml:"wires"`
}

type boxColliderDef struct {
	Size    [3]float32 `yaml:"size"`
	Offset  [3]float32 `yaml:"offset"`
	Trigger bool       `yaml:"trigger"`
}

type sphereColliderDef struct {
	Radius  float32    `yaml:"radius"`
	Offset  [3]float32 `yaml:"offset"`
	Trigger bool       `yaml:"trigger"`
}

type rigidbodyDef struct {
	Bounciness  *float32 `yaml:"bounciness"`
	UseGravity  *bool    `yaml:"use_gravity"`
	IsKinematic bool     `yaml:"kinematic"`
}

type grabberDef struct {
	Beam        string      `yaml:"beam"`
	HoldOffset  *[3]float32 `yaml:"hold_offset"`
	ScrollSpeed *float32    `yaml:"scroll_speed"`
}

type lineRendererDef struct {
	Color      string   `yaml:"color"`
	Emission   string   `yaml:"emission"`
	StartWidth float32  `yaml:"start_width"`
	EndWidth   float32  `yaml:"end_width"`
	Keywords   []string `yaml:"keywords"`
	Enabled    bool     `yaml:"enabled"`
}

type networkViewDef struct {
	Owner int  `yaml:"owner"`
	Mine  bool `yaml:"mine"`
}

type pointLightDef struct {
	Color     string  `yaml:"color"`
	Intensity float32 `yaml:"intensity"`
	Range     float32 `yaml:"range"`
}

// --- Color mapping ---

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"SkyBlue":   rl.SkyBlue,
	"Lime":      rl.Lime,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"Maroon":    rl.Maroon,
	"Gold":      rl.Gold,
}

// lookupColor accepts a raylib color name or a hex color.
func lookupColor(name string) (rl.Color, error) {
	if name == "" {
		return rl.White, nil
	}
	if c, ok := colorByName[name]; ok {
		return c, nil
	}
	c, err := components.ParseHexColor(name)
	if err != nil {
		return rl.Color{}, err
	}
	return c.ToRL(), nil
}

func vec(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// --- Loading ---

// LoadSceneFile reads and builds the scene at path.
func LoadSceneFile(path string) (*engine.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	scene, err := ParseScene(data)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return scene, nil
}

// ParseScene builds a scene from YAML. Children are added to the scene right
// after their parent, so scene order is a pre-order walk of the file.
func ParseScene(data []byte) (*engine.Scene, error) {
	var sf SceneFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}

	scene := engine.NewScene(sf.Name)
	for _, def := range sf.Objects {
		if _, err := buildObject(scene, nil, def); err != nil {
			return nil, err
		}
	}
	return scene, nil
}

func buildObject(scene *engine.Scene, parent *engine.GameObject, def ObjectDef) (*engine.GameObject, error) {
	g := engine.NewGameObject(def.Name)
	g.Tags = def.Tags
	g.Transform.Position = vec(def.Position)
	g.Transform.Rotation = vec(def.Rotation)

	// Default scale to 1 if zero
	if def.Scale != [3]float32{} {
		g.Transform.Scale = vec(def.Scale)
	}

	if parent != nil {
		parent.AddChild(g)
	}
	scene.AddGameObject(g)

	var grabbers []pendingGrabber
	for i := range def.Components {
		node := &def.Components[i]
		var header componentHeader
		if err := node.Decode(&header); err != nil {
			return nil, fmt.Errorf("object %q: %w", def.Name, err)
		}

		var err error
		switch header.Type {
		case "MeshRenderer":
			err = loadMeshRenderer(g, node)
		case "BoxCollider":
			err = loadBoxCollider(g, node)
		case "SphereCollider":
			err = loadSphereCollider(g, node)
		case "Rigidbody":
			err = loadRigidbody(g, node)
		case "LineRenderer":
			err = loadLineRenderer(g, node)
		case "PointLight":
			err = loadPointLight(g, node)
		case "NetworkView":
			err = loadNetworkView(g, node)
		case "Grabber":
			var p pendingGrabber
			p, err = loadGrabber(g, node)
			grabbers = append(grabbers, p)
		default:
			err = fmt.Errorf("unknown component type %q", header.Type)
		}
		if err != nil {
			return nil, fmt.Errorf("object %q: %s: %w", def.Name, header.Type, err)
		}
	}

	for _, child := range def.Children {
		if _, err := buildObject(scene, g, child); err != nil {
			return nil, err
		}
	}

	// Beams are usually children, so they can only be linked once those exist.
	for _, p := range grabbers {
		if p.beam == "" {
			continue
		}
		beam := findDescendant(g, p.beam)
		if beam == nil {
			return nil, fmt.Errorf("object %q: Grabber: beam %q is not a child", def.Name, p.beam)
		}
		p.grabber.Beam = beam
	}
	return g, nil
}

func findDescendant(g *engine.GameObject, name string) *engine.GameObject {
	for _, child := range g.Children {
		if child.Name == name {
			return child
		}
		if found := findDescendant(child, name); found != nil {
			return found
		}
	}
	return nil
}

func loadMeshRenderer(g *engine.GameObject, node *yaml.Node) error {
	var def meshRendererDef
	if err := node.Decode(&def); err != nil {
		return err
	}
	color, err := lookupColor(def.Color)
	if err != nil {
		return err
	}

	var mesh components.MeshType
	switch def.Mesh {
	case "cube", "":
		mesh = components.MeshCube
	case "sphere":
		mesh = components.MeshSphere
	case "plane":
		mesh = components.MeshPlane
	default:
		return fmt.Errorf("unknown mesh %q", def.Mesh)
	}

	r := components.NewMeshRenderer(mesh, color, vec(def.Size))
	r.Wires = def.Wires
	g.AddComponent(r)
	return nil
}

func loadBoxCollider(g *engine.GameObject, node *yaml.Node) error {
	var def boxColliderDef
	if err := node.Decode(&def); err != nil {
		return err
	}
	col := components.NewBoxCollider(vec(def.Size))
	col.Offset = vec(def.Offset)
	col.Trigger = def.Trigger
	g.AddComponent(col)
	return nil
}

func loadSphereCollider(g *engine.GameObject, node *yaml.Node) error {
	var def sphereColliderDef
	if err := node.Decode(&def); err != nil {
		return err
	}
	if def.Radius <= 0 {
		return fmt.Errorf("radius must be positive, got %g", def.Radius)
	}
	col := components.NewSphereCollider(def.Radius)
	col.Offset = vec(def.Offset)
	col.Trigger = def.Trigger
	g.AddComponent(col)
	return nil
}

func loadRigidbody(g *engine.GameObject, node *yaml.Node) error {
	var def rigidbodyDef
	if err := node.Decode(&def); err != nil {
		return err
	}
	rb := components.NewRigidbody()
	if def.Bounciness != nil {
		rb.Bounciness = *def.Bounciness
	}
	if def.UseGravity != nil {
		rb.UseGravity = *def.UseGravity
	}
	rb.IsKinematic = def.IsKinematic
	g.AddComponent(rb)
	return nil
}

func loadLineRenderer(g *engine.GameObject, node *yaml.Node) error {
	var def lineRendererDef
	if err := node.Decode(&def); err != nil {
		return err
	}

	mat := components.NewMaterial(g.Name)
	if def.Color != "" {
		c, err := components.ParseHexColor(def.Color)
		if err != nil {
			return err
		}
		mat.SetColor(components.PropColor, c)
	}
	if def.Emission != "" {
		c, err := components.ParseHexColor(def.Emission)
		if err != nil {
			return err
		}
		mat.SetColor(components.PropEmissionColor, c)
	}
	for _, kw := range def.Keywords {
		mat.EnableKeyword(kw)
	}

	line := components.NewLineRenderer(mat)
	if def.StartWidth > 0 {
		line.StartWidth = def.StartWidth
	}
	if def.EndWidth > 0 {
		line.EndWidth = def.EndWidth
	}
	line.Enabled = def.Enabled
	g.AddComponent(line)
	return nil
}

func loadPointLight(g *engine.GameObject, node *yaml.Node) error {
	var def pointLightDef
	if err := node.Decode(&def); err != nil {
		return err
	}
	light := components.NewPointLight()
	if def.Color != "" {
		c, err := components.ParseHexColor(def.Color)
		if err != nil {
			return err
		}
		light.Color = c
	}
	if def.Intensity > 0 {
		light.Intensity = def.Intensity
	}
	if def.Range > 0 {
		light.Range = def.Range
	}
	g.AddComponent(light)
	return nil
}

func loadNetworkView(g *engine.GameObject, node *yaml.Node) error {
	var def networkViewDef
	if err := node.Decode(&def); err != nil {
		return err
	}
	g.AddComponent(components.NewNetworkView(def.Owner, def.Mine))
	return nil
}

type pendingGrabber struct {
	grabber *components.Grabber
	beam    string
}

func loadGrabber(g *engine.GameObject, node *yaml.Node) (pendingGrabber, error) {
	var def grabberDef
	if err := node.Decode(&def); err != nil {
		return pendingGrabber{}, err
	}
	grabber := components.NewGrabber(nil)
	if def.HoldOffset != nil {
		grabber.HoldOffset = vec(*def.HoldOffset)
	}
	if def.ScrollSpeed != nil {
		grabber.ScrollSpeed = *def.ScrollSpeed
	}
	g.AddComponent(grabber)
	return pendingGrabber{grabber: grabber, beam: def.Beam}, nil
}
