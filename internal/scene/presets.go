package scene

import "github.com/san-kum/gravbox/internal/world"

var presets = map[string]*Spec{
	"empty": {
		Name:   "empty",
		Params: Params{GravityY: -9.81},
	},
	"attractor": {
		Name:   "attractor",
		Params: Params{}, // no uniform gravity, the attractor does the pulling
		Attractors: []world.AttractorSpec{
			{X: 0, Y: 0, Strength: 60, Name: "core"},
		},
		Bodies: []world.BodySpec{
			{Shape: "circle", X: 8, Y: 0, Radius: 0.4, Mass: 1, VY: 6},
			{Shape: "circle", X: -10, Y: 0, Radius: 0.4, Mass: 1, VY: -5.5},
			{Shape: "circle", X: 0, Y: 12, Radius: 0.4, Mass: 1.5, VX: -5},
			{Shape: "box", X: 0, Y: -14, Width: 0.8, Height: 0.8, Mass: 2, VX: 4.5},
		},
	},
	"solar": {
		Name:   "solar",
		Params: Params{FieldG: 1, FieldMinDistance: 1},
		Attractors: []world.AttractorSpec{
			{X: 0, Y: 0, Strength: 900, Name: "sun"},
		},
		Bodies: []world.BodySpec{
			{Shape: "circle", X: 6, Y: 0, Radius: 0.5, Mass: 2.1, VY: 12, Name: "mercury"},
			{Shape: "circle", X: -12, Y: 0, Radius: 0.5, Mass: 3.3, VY: -8.5, Name: "venus"},
			{Shape: "circle", X: 18, Y: 0, Radius: 0.5, Mass: 4.3, VY: 7, Name: "earth"},
			{Shape: "circle", X: -24, Y: 0, Radius: 0.5, Mass: 5.1, VY: -6, Name: "mars"},
			{Shape: "circle", X: 30, Y: 0, Radius: 1, Mass: 6.1, VY: 5.5, Name: "jupiter"},
			{Shape: "circle", X: -36, Y: 0, Radius: 0.8, Mass: 7.1, VY: -5, Name: "saturn"},
			{Shape: "circle", X: 42, Y: 0, Radius: 0.65, Mass: 8.1, VY: 4.6, Name: "uranus"},
			{Shape: "circle", X: -48, Y: 0, Radius: 0.65, Mass: 9.1, VY: -4.3, Name: "neptune"},
		},
	},
	"pool": {
		Name:   "pool",
		Params: Params{GravityY: -9.81, Bounds: world.Bounds{MinX: -20, MinY: -10, MaxX: 20, MaxY: 30}},
		Bodies: []world.BodySpec{
			{Kind: "static", Shape: "box", X: 0, Y: -3, Width: 8, Height: 0.5},
			{Kind: "static", Shape: "box", X: -4.05, Y: -0.5, Width: 0.1, Height: 5},
			{Kind: "static", Shape: "box", X: 4.05, Y: -0.5, Width: 0.1, Height: 5},
		},
		Spawners: []SpawnerSpec{
			{
				Body:   world.BodySpec{Shape: "circle", X: 0, Y: 10, Radius: 0.1, Mass: 0.5, Material: "rubber"},
				Count:  100,
				Rate:   30,
				Jitter: 0.5,
			},
		},
	},
	"slope": {
		Name:   "slope",
		Params: Params{GravityY: -9.81},
		Bodies: []world.BodySpec{
			{Kind: "static", Shape: "box", X: 0, Y: -2, Width: 16, Height: 0.2, Angle: 0.3},
			{Shape: "circle", X: -6, Y: 2, Radius: 0.3, Mass: 1, Material: "rubber"},
			{Shape: "box", X: -5, Y: 4, Width: 0.8, Height: 0.8, Mass: 1.5, Material: "metal"},
		},
	},
	"platforms": {
		Name:   "platforms",
		Params: Params{GravityY: -9.81},
		Bodies: []world.BodySpec{
			{Kind: "static", Shape: "box", X: -3, Y: 2, Width: 3, Height: 1, Angle: -0.2},
			{Kind: "static", Shape: "circle", X: 3, Y: 0, Radius: 1},
			{Kind: "static", Shape: "box", X: 0, Y: -3, Width: 3, Height: 1},
		},
	},
}
