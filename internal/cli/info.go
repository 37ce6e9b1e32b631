package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/meshslice/pkg/geom"
	"github.com/matzehuels/meshslice/pkg/mesh"
)

// newInfoCmd creates the info command for inspecting mesh geometry
// before slicing. It surfaces the non-manifold edge count, since broken
// adjacency is what degrades contour closure during a slice run.
func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [file.stl]",
		Short: "Print mesh statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args[0])
		},
	}
}

func runInfo(input string) error {
	tris, err := mesh.LoadSTL(input)
	if err != nil {
		return err
	}
	snap, err := mesh.Build(tris, geom.Identity())
	if err != nil {
		return err
	}

	fmt.Println(styleTitle.Render(input))
	printDetail("triangles %s", styleNumber.Render(fmt.Sprintf("%d", len(tris))))
	printDetail("vertices  %s (welded)", styleNumber.Render(fmt.Sprintf("%d", snap.VertexCount())))
	printDetail("edges     %s", styleNumber.Render(fmt.Sprintf("%d", snap.EdgeCount())))
	printDetail("faces     %s", styleNumber.Render(fmt.Sprintf("%d", snap.FaceCount())))

	b := snap.Bounds()
	size := b.Size()
	printDetail("bounds    %.4f %.4f %.4f to %.4f %.4f %.4f",
		b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
	printDetail("size      %.4f x %.4f x %.4f", size.X, size.Y, size.Z)

	if n := snap.NonManifoldEdges(); n > 0 {
		printWarning("%d edges do not border exactly 2 faces; contours may not close", n)
	} else {
		printSuccess("mesh is manifold")
	}
	return nil
}
