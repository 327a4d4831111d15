// meshtool is a CLI utility for working with Starlance mesh streams.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/wrenbyte/starlance/internal/assets"
	"github.com/wrenbyte/starlance/internal/render"
	"github.com/wrenbyte/starlance/pkg/fix"
	"github.com/wrenbyte/starlance/pkg/formats"
	"github.com/wrenbyte/starlance/pkg/geom"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "validate":
		cmdValidate(args)
	case "dump-builtin":
		cmdDumpBuiltin(args)
	case "render":
		cmdRender(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`meshtool - Starlance mesh stream utility

Usage:
  meshtool <command> [options]

Commands:
  info <file.bin>                  Show per-mesh vertex and face counts
  validate <file.bin>              Decode and report stream diagnostics
  dump-builtin <out.bin>           Write the embedded mesh stream to a file
  render <file.bin> <index> <out>  Render one mesh to a WebP image

Examples:
  meshtool dump-builtin meshes.bin
  meshtool info meshes.bin
  meshtool render meshes.bin 0 ship.webp`)
}

// decodeStream reads every mesh in the file until the buffer is
// exhausted.
func decodeStream(path string) ([]*formats.Mesh, []formats.Diagnostics) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var meshes []*formats.Mesh
	var diags []formats.Diagnostics
	r := formats.NewReader(data)
	for r.Pos() < len(data) {
		m, d := formats.DecodeMesh(r, fix.One)
		meshes = append(meshes, m)
		diags = append(diags, d)
	}
	return meshes, diags
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshtool info <file.bin>")
		os.Exit(1)
	}

	meshes, _ := decodeStream(args[0])
	fmt.Printf("%s: %d mesh(es)\n\n", args[0], len(meshes))
	for i, m := range meshes {
		fmt.Printf("  [%d] %3d vertices  %3d faces\n", i, len(m.Vertices), len(m.Triangles))
	}
}

func cmdValidate(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshtool validate <file.bin>")
		os.Exit(1)
	}

	_, diags := decodeStream(args[0])
	clean := true
	for i, d := range diags {
		if d.Clean() {
			fmt.Printf("  [%d] ok\n", i)
			continue
		}
		clean = false
		fmt.Printf("  [%d] vertex count clamped=%v face count clamped=%v bad indices=%d unused slots=%d\n",
			i, d.VertexCountClamped, d.TriangleCountClamped, d.IndicesOutOfRange, d.UnusedSlots)
	}
	if !clean {
		os.Exit(1)
	}
	fmt.Println("stream is clean")
}

func cmdDumpBuiltin(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshtool dump-builtin <out.bin>")
		os.Exit(1)
	}

	if err := os.WriteFile(args[0], assets.MeshData(), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d bytes to %s\n", len(assets.MeshData()), args[0])
}

func cmdRender(args []string) {
	if len(args) < 3 {
		fmt.Fprintln(os.Stderr, "Usage: meshtool render <file.bin> <index> <out.webp>")
		os.Exit(1)
	}

	index, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bad mesh index %q\n", args[1])
		os.Exit(1)
	}

	meshes, _ := decodeStream(args[0])
	if index < 0 || index >= len(meshes) {
		fmt.Fprintf(os.Stderr, "Mesh index %d out of range, stream has %d\n", index, len(meshes))
		os.Exit(1)
	}
	mesh := meshes[index]

	const size = 128
	ctx := render.NewContext(render.Config{
		Width:     size,
		Height:    size,
		ProjConst: fix.FromInt(-80),
		DitherX:   assets.DitherX,
		DitherY:   assets.DitherY,
	})
	canvas := render.NewPixelBuffer(size, size)
	canvas.Clear(0)

	// Three-quarter view with the key light over the shoulder.
	mat := geom.Translation(0, 0, fix.FromInt(-20)).
		Mul(geom.RotX(fix.From(0.08))).
		Mul(geom.RotY(fix.From(0.12)))

	ctx.Atlas = assets.Atlas()
	ctx.Canvas = canvas
	ctx.Texture = assets.ShipTexture
	ctx.LightDir = geom.Vec3{X: fix.From(0.3), Y: fix.From(-0.5), Z: fix.From(-0.8)}.Normalize()

	ctx.ProjectMesh(mat, mesh)
	ctx.DrawMesh(mesh)

	snap := render.NewSnapshotCapture("", "render", assets.Palette())
	if err := snap.CaptureTo(canvas, args[2]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("rendered mesh %d to %s\n", index, args[2])
}
