// Package main is the massprops CLI: it tessellates a primitive solid,
// integrates its mass properties from the mesh, and prints them alongside the
// closed-form values as JSON.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gonum.org/v1/gonum/mat"

	"github.com/dajusc/trimesh/inertia"
	"github.com/dajusc/trimesh/primitives"
	"github.com/dajusc/trimesh/spatialmath"
	"github.com/dajusc/trimesh/utils"
)

const (
	flagDensity   = "density"
	flagSections  = "sections"
	flagRotAxis   = "rot-axis"
	flagRotAngle  = "rot-angle"
	flagTranslate = "translate"
	flagRadius    = "radius"
	flagHeight    = "height"
	flagDims      = "dims"
	flagDebug     = "debug"
)

type output struct {
	Label               string        `json:"label"`
	Triangles           int           `json:"triangles"`
	Volume              float64       `json:"volume"`
	Mass                float64       `json:"mass"`
	CenterOfMass        [3]float64    `json:"center_mass"`
	Inertia             [3][3]float64 `json:"inertia"`
	AnalyticInertia     [3][3]float64 `json:"analytic_inertia"`
	PrincipalComponents [3]float64    `json:"principal_components"`
	PrincipalAxes       [3][3]float64 `json:"principal_axes"`
}

func main() {
	logger := golog.NewLogger("massprops")

	app := &cli.App{
		Name:  "massprops",
		Usage: "compute rigid-body mass properties of primitive solids",
		Flags: []cli.Flag{
			&cli.Float64Flag{
				Name:  flagDensity,
				Value: 1,
				Usage: "uniform density of the solid",
			},
			&cli.IntFlag{
				Name:  flagSections,
				Value: 720,
				Usage: "tessellation sections for curved surfaces",
			},
			&cli.StringFlag{
				Name:  flagRotAxis,
				Value: "0,0,1",
				Usage: "axis of the pose rotation, as x,y,z",
			},
			&cli.Float64Flag{
				Name:  flagRotAngle,
				Usage: "angle of the pose rotation in degrees",
			},
			&cli.StringFlag{
				Name:  flagTranslate,
				Value: "0,0,0",
				Usage: "translation of the pose, as x,y,z",
			},
			&cli.BoolFlag{
				Name:  flagDebug,
				Usage: "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool(flagDebug) {
				logger = golog.NewDebugLogger("massprops")
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "cylinder",
				Usage: "a solid cylinder, symmetry axis local Z",
				Flags: []cli.Flag{
					&cli.Float64Flag{Name: flagRadius, Value: 1, Usage: "cylinder radius"},
					&cli.Float64Flag{Name: flagHeight, Value: 1, Usage: "cylinder height"},
				},
				Action: func(c *cli.Context) error {
					pose, err := poseFromFlags(c)
					if err != nil {
						return err
					}
					solid, err := primitives.NewCylinder(c.Float64(flagRadius), c.Float64(flagHeight), pose)
					if err != nil {
						return err
					}
					return report(c, logger, solid)
				},
			},
			{
				Name:  "box",
				Usage: "a solid rectangular prism",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: flagDims, Value: "1,1,1", Usage: "full extents, as x,y,z"},
				},
				Action: func(c *cli.Context) error {
					pose, err := poseFromFlags(c)
					if err != nil {
						return err
					}
					dims, err := parseVector(c.String(flagDims))
					if err != nil {
						return err
					}
					solid, err := primitives.NewBox(dims, pose)
					if err != nil {
						return err
					}
					return report(c, logger, solid)
				},
			},
			{
				Name:  "sphere",
				Usage: "a solid ball",
				Flags: []cli.Flag{
					&cli.Float64Flag{Name: flagRadius, Value: 1, Usage: "sphere radius"},
				},
				Action: func(c *cli.Context) error {
					pose, err := poseFromFlags(c)
					if err != nil {
						return err
					}
					solid, err := primitives.NewSphere(c.Float64(flagRadius), pose)
					if err != nil {
						return err
					}
					return report(c, logger, solid)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Fatal(err)
	}
}

// report integrates the tessellated mesh, computes the closed-form tensor, and
// prints both as JSON.
func report(c *cli.Context, logger golog.Logger, solid primitives.Solid) error {
	density := c.Float64(flagDensity)
	sections := c.Int(flagSections)

	mesh, err := solid.Mesh(sections)
	if err != nil {
		return err
	}
	logger.Debugw("tessellated", "label", mesh.Label(), "triangles", len(mesh.Triangles()))

	body, err := inertia.NewBody(mesh, density)
	if err != nil {
		return err
	}
	props, err := body.MassProperties()
	if err != nil {
		return err
	}
	if props.OrientationFlipped {
		logger.Warn("mesh winding was inverted; sign-corrected the integrals")
	}
	axes, err := body.PrincipalInertia()
	if err != nil {
		return err
	}
	analytic, err := primitives.Inertia(solid, density, sections)
	if err != nil {
		return err
	}

	out := output{
		Label:               mesh.Label(),
		Triangles:           len(mesh.Triangles()),
		Volume:              props.Volume,
		Mass:                props.Mass,
		CenterOfMass:        [3]float64{props.CenterOfMass.X, props.CenterOfMass.Y, props.CenterOfMass.Z},
		Inertia:             tensorToArray(props.Inertia),
		AnalyticInertia:     tensorToArray(analytic),
		PrincipalComponents: axes.Components,
		PrincipalAxes:       tensorToArray(axes.Vectors),
	}
	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, string(encoded))
	return nil
}

// poseFromFlags builds the primitive's pose from the rotation and translation
// flags.
func poseFromFlags(c *cli.Context) (*spatialmath.RigidTransform, error) {
	translate, err := parseVector(c.String(flagTranslate))
	if err != nil {
		return nil, err
	}
	angle := c.Float64(flagRotAngle)
	if angle == 0 {
		tf, err := spatialmath.NewRigidTransform(mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}), translate)
		if err != nil {
			return nil, err
		}
		return tf, nil
	}
	axis, err := parseVector(c.String(flagRotAxis))
	if err != nil {
		return nil, err
	}
	return spatialmath.NewRigidTransformFromAxisAngle(axis, utils.DegToRad(angle), translate)
}

// parseVector parses a comma-delimited x,y,z triple.
func parseVector(s string) (r3.Vector, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		return r3.Vector{}, errors.Errorf("expected x,y,z but got %q", s)
	}
	var parsed [3]float64
	for i, field := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return r3.Vector{}, errors.Wrapf(err, "bad component %q", field)
		}
		parsed[i] = v
	}
	return r3.Vector{X: parsed[0], Y: parsed[1], Z: parsed[2]}, nil
}

func tensorToArray(m mat.Matrix) [3][3]float64 {
	var out [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m.At(i, j)
		}
	}
	return out
}
