package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/netisu/orrery"
)

func main() {
	stacks := flag.Int("stacks", 16, "Sphere stacks when no mesh path is given.")
	slices := flag.Int("slices", 24, "Sphere slices when no mesh path is given.")
	factor := flag.Float64("simplify", 0, "Simplify to this fraction of triangles (0 keeps all).")
	flag.Parse()

	var (
		mesh *orrery.Mesh
		err  error
	)
	if path := flag.Arg(0); path != "" {
		mesh, err = orrery.LoadMesh(path)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		mesh = orrery.NewSphereMesh(*stacks, *slices)
	}
	if *factor > 0 {
		mesh = mesh.Simplify(*factor)
	}

	box := mesh.BoundingBox()
	vertices := mesh.VertexArray()

	fmt.Printf("--- MESH STATS ---\n")
	fmt.Printf("Triangles: %d\n", len(mesh.Triangles))
	fmt.Printf("Vertices: %d (multiple of 3: %v)\n", len(vertices), len(vertices)%3 == 0)
	fmt.Printf("Bounding Box Min: %v\n", box.Min)
	fmt.Printf("Bounding Box Max: %v\n", box.Max)
	fmt.Printf("Bounding Box Center: %v\n", box.Center())

	size := box.Size()
	if size.X == 0 || size.Y == 0 || size.Z == 0 {
		fmt.Printf("Mesh is flat along at least one axis: %v\n", size)
	}

	fmt.Printf("--- ORBITS AT T=0 ---\n")
	cfg := orrery.DefaultConfig()
	for _, bc := range cfg.Bodies {
		b := orrery.NewBody(bc.Name, nil, bc.Shader)
		b.OrbitRadius = bc.OrbitRadius
		b.OrbitSpeed = bc.OrbitSpeed
		fmt.Printf("%-8s %-8s %v\n", bc.Name, bc.Shader, b.WorldPosition(0))
	}
}
