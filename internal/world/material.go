package world

import "math/rand"

// Material bundles the surface properties handed to the engine when a
// shape is created.
type Material struct {
	Name       string
	Elasticity float64
	Friction   float64
}

var (
	MaterialDefault = Material{Name: "default", Elasticity: 0.3, Friction: 0.5}
	MaterialRubber  = Material{Name: "rubber", Elasticity: 0.8, Friction: 0.9}
	MaterialPlastic = Material{Name: "plastic", Elasticity: 0.4, Friction: 0.3}
	MaterialStone   = Material{Name: "stone", Elasticity: 0.1, Friction: 0.8}
	MaterialMetal   = Material{Name: "metal", Elasticity: 0.2, Friction: 0.4}
)

var materials = map[string]Material{
	"":        MaterialDefault,
	"default": MaterialDefault,
	"rubber":  MaterialRubber,
	"plastic": MaterialPlastic,
	"stone":   MaterialStone,
	"metal":   MaterialMetal,
}

var spawnMaterials = []Material{
	MaterialRubber,
	MaterialPlastic,
	MaterialStone,
	MaterialMetal,
}

// MaterialByName resolves a material name from a scene spec. The empty
// string resolves to the default material.
func MaterialByName(name string) (Material, bool) {
	m, ok := materials[name]
	return m, ok
}

// RandomMaterial picks one of the non-default materials, used for
// user-spawned bodies.
func RandomMaterial(rng *rand.Rand) Material {
	return spawnMaterials[rng.Intn(len(spawnMaterials))]
}
