// Copyright (c) 2025, Vizcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "fmt"

// The fixed registry of the 8 shape descriptors. Lookup is dual-keyed:
// two explicit tables, by name and by index, share the same descriptor
// values, so small integers and strings can never collide.
var (
	byIndex [8]*Descriptor
	byName  = map[string]*Descriptor{}
)

// Info is one entry in the [Shapes] listing.
type Info struct {
	Index int
	Name  string
	Desc  string
	Dims  int
	Props Properties
}

// Shapes lists the available shapes in index order. Callers should
// validate names and indices against this listing before requesting
// geometry.
func Shapes() []Info {
	infos := make([]Info, len(byIndex))
	for i, d := range byIndex {
		infos[i] = Info{Index: d.Index, Name: d.Name, Desc: d.Desc, Dims: d.Dims, Props: d.Props}
	}
	return infos
}

// DescriptorByName returns the descriptor registered under the given
// name, or [ErrUnknownShape].
func DescriptorByName(name string) (*Descriptor, error) {
	d, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, name)
	}
	return d, nil
}

// DescriptorByIndex returns the descriptor registered under the given
// stable index, or [ErrUnknownShape].
func DescriptorByIndex(idx int) (*Descriptor, error) {
	if idx < 0 || idx >= len(byIndex) {
		return nil, fmt.Errorf("%w: index %d", ErrUnknownShape, idx)
	}
	return byIndex[idx], nil
}

// register adds a descriptor to both lookup tables. Called only from
// init; the registry is immutable afterwards.
func register(d *Descriptor) {
	byIndex[d.Index] = d
	byName[d.Name] = d
}

func init() {
	tetra := &Descriptor{
		Index: 0, Name: "tetrahedron", Dims: 4,
		Desc:  "regular 4-simplex with density-subdivided edges",
		Props: Properties{Closed: true},
		defaultExtra: func() Extra {
			x := &TetrahedronExtra{}
			x.Defaults()
			return x
		},
	}
	tetra.generate = func(density int, x Extra) *Dataset {
		np, nc := TetrahedronN(density)
		ds := tetra.newDataset(np, nc)
		SetTetrahedron(ds.Points, ds.Attrs, ds.Conns, density, x.(*TetrahedronExtra))
		return ds
	}
	register(tetra)

	cube := &Descriptor{
		Index: 1, Name: "hypercube", Dims: 4,
		Desc:  "tesseract; 16 vertices joined along single-coordinate differences",
		Props: Properties{Closed: true},
		defaultExtra: func() Extra {
			x := &HypercubeExtra{}
			x.Defaults()
			return x
		},
	}
	cube.generate = func(density int, x Extra) *Dataset {
		np, nc := HypercubeN(density)
		ds := cube.newDataset(np, nc)
		SetHypercube(ds.Points, ds.Attrs, ds.Conns, density, x.(*HypercubeExtra))
		return ds
	}
	register(cube)

	sphere := &Descriptor{
		Index: 2, Name: "sphere", Dims: 3,
		Desc:  "latitude/longitude angle sweep",
		Props: Properties{Parametric: true, Closed: true},
		defaultExtra: func() Extra {
			x := &SphereExtra{}
			x.Defaults()
			return x
		},
	}
	sphere.generate = func(density int, x Extra) *Dataset {
		np, nc := SphereN(density)
		ds := sphere.newDataset(np, nc)
		SetSphere(ds.Points, ds.Attrs, ds.Conns, density, x.(*SphereExtra))
		return ds
	}
	register(sphere)

	torus := &Descriptor{
		Index: 3, Name: "torus", Dims: 3,
		Desc:  "ring and tube angle sweep",
		Props: Properties{Parametric: true, Closed: true},
		defaultExtra: func() Extra {
			x := &TorusExtra{}
			x.Defaults()
			return x
		},
	}
	torus.generate = func(density int, x Extra) *Dataset {
		np, nc := TorusN(density)
		ds := torus.newDataset(np, nc)
		SetTorus(ds.Points, ds.Attrs, ds.Conns, density, x.(*TorusExtra))
		return ds
	}
	register(torus)

	klein := &Descriptor{
		Index: 4, Name: "klein", Dims: 4,
		Desc:  "non-orientable flat Klein bottle in 4D",
		Props: Properties{Parametric: true, Closed: true},
		defaultExtra: func() Extra {
			x := &KleinExtra{}
			x.Defaults()
			return x
		},
	}
	klein.generate = func(density int, x Extra) *Dataset {
		np, nc := KleinN(density)
		ds := klein.newDataset(np, nc)
		SetKlein(ds.Points, ds.Attrs, ds.Conns, density, x.(*KleinExtra))
		return ds
	}
	register(klein)

	fractal := &Descriptor{
		Index: 5, Name: "fractal", Dims: 3,
		Desc:  "recursive ternary branching tree",
		Props: Properties{Recursive: true},
		defaultExtra: func() Extra {
			x := &FractalExtra{}
			x.Defaults()
			return x
		},
	}
	fractal.generate = func(density int, x Extra) *Dataset {
		np, nc := FractalN(density)
		ds := fractal.newDataset(np, nc)
		SetFractal(ds.Points, ds.Attrs, ds.Conns, density, x.(*FractalExtra))
		return ds
	}
	register(fractal)

	wave := &Descriptor{
		Index: 6, Name: "wave", Dims: 3,
		Desc:  "radially damped scalar field on a grid",
		Props: Properties{Parametric: true},
		defaultExtra: func() Extra {
			x := &WaveExtra{}
			x.Defaults()
			return x
		},
	}
	wave.generate = func(density int, x Extra) *Dataset {
		np, nc := WaveN(density)
		ds := wave.newDataset(np, nc)
		SetWave(ds.Points, ds.Attrs, ds.Conns, density, x.(*WaveExtra))
		return ds
	}
	register(wave)

	crystal := &Descriptor{
		Index: 7, Name: "crystal", Dims: 3,
		Desc:  "integer lattice truncated by radius",
		Props: Properties{Lattice: true},
		defaultExtra: func() Extra {
			x := &CrystalExtra{}
			x.Defaults()
			return x
		},
	}
	crystal.generate = func(density int, x Extra) *Dataset {
		cx := x.(*CrystalExtra)
		np, nc := CrystalN(density, cx)
		ds := crystal.newDataset(np, nc)
		SetCrystal(ds.Points, ds.Attrs, ds.Conns, density, cx)
		return ds
	}
	register(crystal)
}
