package orrery

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

func LoadOBJ(path string) (*Mesh, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	mesh, err := LoadOBJFromReader(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return mesh, nil
}

func LoadOBJFromBytes(b []byte) (*Mesh, error) {
	return LoadOBJFromReader(bytes.NewReader(b))
}

// LoadOBJFromReader reads positions, texture coordinates, normals and faces.
// Polygons are fan triangulated and missing normals become face normals.
func LoadOBJFromReader(r io.Reader) (*Mesh, error) {
	// OBJ indices are 1-based; slot 0 stands for "absent"
	vs := make([]Vector, 1, 1024)
	vts := make([]Vector, 1, 1024)
	vns := make([]Vector, 1, 1024)

	var triangles []*Triangle
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		args := fields[1:]
		switch fields[0] {
		case "v", "vn", "vt":
			v, err := parseVector(args, fields[0] == "vt")
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			switch fields[0] {
			case "v":
				vs = append(vs, v)
			case "vt":
				vts = append(vts, v)
			default:
				vns = append(vns, v)
			}
		case "f":
			if len(args) < 3 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", line)
			}
			fvs := make([]int, len(args))
			fvts := make([]int, len(args))
			fvns := make([]int, len(args))
			for i, arg := range args {
				vertex := strings.Split(arg+"//", "/")
				var err error
				if fvs[i], err = fixIndex(vertex[0], len(vs)); err == nil {
					if fvts[i], err = fixIndex(vertex[1], len(vts)); err == nil {
						fvns[i], err = fixIndex(vertex[2], len(vns))
					}
				}
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", line, err)
				}
			}
			for i := 1; i < len(fvs)-1; i++ {
				t := &Triangle{}
				i1, i2, i3 := 0, i, i+1
				t.V1.Position = vs[fvs[i1]]
				t.V2.Position = vs[fvs[i2]]
				t.V3.Position = vs[fvs[i3]]
				t.V1.Normal = vns[fvns[i1]]
				t.V2.Normal = vns[fvns[i2]]
				t.V3.Normal = vns[fvns[i3]]
				t.V1.Texture = vts[fvts[i1]]
				t.V2.Texture = vts[fvts[i2]]
				t.V3.Texture = vts[fvts[i3]]
				t.FixNormals()
				triangles = append(triangles, t)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return NewTriangleMesh(triangles), nil
}

func parseVector(args []string, optionalZ bool) (Vector, error) {
	need := 3
	if optionalZ {
		need = 2
	}
	if len(args) < need {
		return Vector{}, fmt.Errorf("expected %d numbers, got %d", need, len(args))
	}
	var xs [3]float64
	for i := 0; i < len(args) && i < 3; i++ {
		f, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return Vector{}, err
		}
		xs[i] = f
	}
	return Vector{xs[0], xs[1], xs[2]}, nil
}

// fixIndex resolves negative (relative) indices and checks bounds.
func fixIndex(value string, length int) (int, error) {
	if value == "" {
		return 0, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	if parsed < 0 {
		parsed += length
	}
	if parsed <= 0 || parsed >= length {
		return 0, fmt.Errorf("index %s out of range", value)
	}
	return parsed, nil
}
