package orrery

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadGLTF loads the triangle primitives of a .gltf or .glb file into one
// mesh. Other primitive modes are skipped.
func LoadGLTF(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf %s: %w", path, err)
	}

	var triangles []*Triangle
	for _, mesh := range doc.Meshes {
		for _, primitive := range mesh.Primitives {
			if primitive.Mode != gltf.PrimitiveTriangles {
				continue
			}
			posIdx, ok := primitive.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
			if err != nil {
				return nil, fmt.Errorf("%s: mesh %q positions: %w", path, mesh.Name, err)
			}

			var normals [][3]float32
			if normIdx, ok := primitive.Attributes[gltf.NORMAL]; ok {
				normals, _ = modeler.ReadNormal(doc, doc.Accessors[normIdx], nil)
			}
			var texCoords [][2]float32
			if texIdx, ok := primitive.Attributes[gltf.TEXCOORD_0]; ok {
				texCoords, _ = modeler.ReadTextureCoord(doc, doc.Accessors[texIdx], nil)
			}

			var indices []uint32
			if primitive.Indices != nil {
				indices, err = modeler.ReadIndices(doc, doc.Accessors[*primitive.Indices], nil)
				if err != nil {
					return nil, fmt.Errorf("%s: mesh %q indices: %w", path, mesh.Name, err)
				}
			} else {
				indices = make([]uint32, len(positions))
				for k := range indices {
					indices[k] = uint32(k)
				}
			}

			vertex := func(i uint32) Vertex {
				var v Vertex
				if int(i) >= len(positions) {
					return v
				}
				p := positions[i]
				v.Position = Vector{float64(p[0]), float64(p[1]), float64(p[2])}
				if int(i) < len(normals) {
					n := normals[i]
					v.Normal = Vector{float64(n[0]), float64(n[1]), float64(n[2])}
				}
				if int(i) < len(texCoords) {
					t := texCoords[i]
					v.Texture = Vector{float64(t[0]), float64(t[1]), 0}
				}
				return v
			}
			for i := 0; i+2 < len(indices); i += 3 {
				t := &Triangle{vertex(indices[i]), vertex(indices[i+1]), vertex(indices[i+2])}
				t.FixNormals()
				triangles = append(triangles, t)
			}
		}
	}

	if len(triangles) == 0 {
		return nil, fmt.Errorf("%s: no triangles found in gltf", path)
	}
	return NewTriangleMesh(triangles), nil
}
