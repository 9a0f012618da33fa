package scene

import (
	"fmt"
	"sort"
)

// Builder constructs a scene
type Builder func(opts Options) *Scene

// Info describes a registered scene
type Info struct {
	Name        string
	Description string
	builder     Builder
}

var registry = map[string]Info{}

func register(name, description string, builder Builder) {
	registry[name] = Info{Name: name, Description: description, builder: builder}
}

func init() {
	register("random-spheres", "Field of small random spheres, some in motion, around three large ones", NewRandomSpheresScene)
	register("two-spheres", "Two checkered spheres", NewTwoSpheresScene)
	register("two-perlin-spheres", "Marble Perlin noise on a ground sphere and a small sphere", NewTwoPerlinSpheresScene)
	register("earth", "A single image-textured globe", NewEarthScene)
	register("simple-light", "Perlin spheres lit by a rectangle and a sphere light", NewSimpleLightScene)
	register("cornell-box", "Cornell box with a metal block and a glass sphere", NewCornellBoxScene)
	register("cornell-smoke", "Cornell box with two smoke blocks", NewCornellSmokeScene)
	register("final-scene", "Every feature: boxes, media, motion blur, textures and instancing", NewFinalScene)
}

// Lookup returns the builder registered under name
func Lookup(name string) (Builder, error) {
	info, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return info.builder, nil
}

// List returns every registered scene sorted by name
func List() []Info {
	infos := make([]Info, 0, len(registry))
	for _, info := range registry {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})
	return infos
}

// Names returns the registered scene names in sorted order
func Names() []string {
	infos := List()
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
	}
	return names
}

// Build constructs and preprocesses the named scene
func Build(name string, opts Options) (*Scene, error) {
	builder, err := Lookup(name)
	if err != nil {
		return nil, err
	}

	s := builder(opts)
	if err := s.Preprocess(opts.Sampler); err != nil {
		return nil, err
	}
	return s, nil
}
