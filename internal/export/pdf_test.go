package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jomsey/roof-calc/internal/frame"
	"github.com/jomsey/roof-calc/internal/material"
	"github.com/jomsey/roof-calc/internal/roof"
	"github.com/jomsey/roof-calc/internal/units"
)

func TestWritePDF(t *testing.T) {
	r, err := roof.New(roof.Hip, roof.Config{
		BuildingLength: 15,
		BuildingWidth:  10,
		Unit:           units.Meter,
	})
	require.NoError(t, err)

	report := Report{
		RoofType: r.Type(),
		Geometry: r.Geometry(),
		Frame:    &frame.Result{Trusses: 26, Purlins: 52, Rafters: 52, TieBeams: 26},
		Materials: &material.Result{
			SheetCovers:   96,
			RidgeCovers:   3,
			NailsKg:       10.9,
			EffectiveArea: 239.5,
		},
		SubRoofs: []SubRoofRow{
			{Name: "porch", Edge: "front", Area: 22.3, Overlap: 14.4},
		},
		Collective: &CollectiveRow{Area: 225.6, RidgeLength: 5, ValleyLength: 12.3},
	}

	path := filepath.Join(t.TempDir(), "estimate.pdf")
	require.NoError(t, WritePDF(path, report))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(500))
}

func TestWritePDFMinimalReport(t *testing.T) {
	r, err := roof.New(roof.Flat, roof.Config{
		BuildingLength: 6,
		BuildingWidth:  4,
		Unit:           units.Meter,
	})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "flat.pdf")
	err = WritePDF(path, Report{RoofType: r.Type(), Geometry: r.Geometry()})
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
