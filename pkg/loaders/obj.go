package loaders

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"fortio.org/log"

	"github.com/dlford-labs/pathtrace/pkg/core"
)

// swapAxes remaps (x,y,z) -> (x,z,y), for meshes exported with a Z-up
// convention that need to be placed into this renderer's Y-up scene space.
func swapAxes(v core.Vec3) core.Vec3 {
	return core.NewVec3(v.X, v.Z, v.Y)
}

func identity(v core.Vec3) core.Vec3 {
	return v
}

// LoadOBJ parses a Wavefront OBJ file's vertex positions and triangulated
// faces, preserving the file's (x,y,z) axis order.
func LoadOBJ(filename string) ([][3]core.Vec3, error) {
	return loadOBJ(filename, identity)
}

// LoadOBJSwapYZ parses an OBJ file the same way as LoadOBJ but remaps
// (x,y,z) -> (x,z,y), for meshes authored with a Z-up convention.
func LoadOBJSwapYZ(filename string) ([][3]core.Vec3, error) {
	return loadOBJ(filename, swapAxes)
}

func loadOBJ(filename string, transform func(core.Vec3) core.Vec3) ([][3]core.Vec3, error) {
	startTime := time.Now()

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()

	var vertices []core.Vec3
	var triangles [][3]core.Vec3

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("obj line %d: malformed vertex %q", lineNo, line)
			}
			x, errX := strconv.ParseFloat(fields[1], 64)
			y, errY := strconv.ParseFloat(fields[2], 64)
			z, errZ := strconv.ParseFloat(fields[3], 64)
			if errX != nil || errY != nil || errZ != nil {
				return nil, fmt.Errorf("obj line %d: invalid vertex coordinates %q", lineNo, line)
			}
			vertices = append(vertices, transform(core.NewVec3(x, y, z)))

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("obj line %d: malformed face %q", lineNo, line)
			}
			indices := make([]int, 0, len(fields)-1)
			for _, field := range fields[1:] {
				idxStr := strings.SplitN(field, "/", 2)[0]
				idx, errIdx := strconv.Atoi(idxStr)
				if errIdx != nil {
					return nil, fmt.Errorf("obj line %d: invalid face index %q", lineNo, field)
				}
				if idx < 0 {
					idx = len(vertices) + idx + 1
				}
				indices = append(indices, idx-1)
			}
			// Fan-triangulate faces with more than three vertices.
			for i := 1; i+1 < len(indices); i++ {
				a, b, c := indices[0], indices[i], indices[i+1]
				if a < 0 || a >= len(vertices) || b < 0 || b >= len(vertices) || c < 0 || c >= len(vertices) {
					return nil, fmt.Errorf("obj line %d: face index out of range", lineNo)
				}
				triangles = append(triangles, [3]core.Vec3{vertices[a], vertices[b], vertices[c]})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read OBJ file: %w", err)
	}

	log.Debugf("loaded OBJ mesh %s: %d vertices, %d triangles in %v",
		filename, len(vertices), len(triangles), time.Since(startTime))

	return triangles, nil
}
