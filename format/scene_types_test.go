package format

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sceneYAML = `
planes:
  - name: bed
    normal: {x: 0, y: 1, z: 0}
    distance: 0
  - name: wall
    normal: {x: 1, y: 0, z: 0}
    distance: -2.5
    normalize: true
rays:
  - origin: {x: 1, y: 2, z: 3}
    direction: {x: 0, y: -1, z: 0}
volume:
  min: {x: 0, y: 0, z: 0}
  max: {x: 200, y: 180, z: 200}
`

func TestLoadFromYAML(t *testing.T) {
	data, err := LoadFromYAML(strings.NewReader(sceneYAML))
	require.NoError(t, err)
	require.NoError(t, data.Validate())

	require.Len(t, data.Planes, 2)
	assert.Equal(t, PlaneData{Name: "wall", Normal: Vector3f{X: 1}, Distance: -2.5, Normalize: true}, data.Planes[1])
	require.Len(t, data.Rays, 1)
	assert.Equal(t, Vector3f{1, 2, 3}, data.Rays[0].Origin)
	assert.False(t, data.Volume.IsEmpty())
	assert.Equal(t, Vector3f{200, 180, 200}, data.Volume.Max)
}

func TestGobRoundTripKeepsHash(t *testing.T) {
	data, err := LoadFromYAML(strings.NewReader(sceneYAML))
	require.NoError(t, err)
	want, err := data.Hash()
	require.NoError(t, err)

	file := filepath.Join(t.TempDir(), "scene.gob")
	require.NoError(t, SaveToGobFile(data, file))

	loaded, err := LoadFromFile(file)
	require.NoError(t, err)
	assert.Equal(t, data, loaded)
	got, err := loaded.Hash()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	raw, err := os.ReadFile(file)
	require.NoError(t, err)
	fromBytes, err := LoadFromByteStream(raw)
	require.NoError(t, err)
	assert.Equal(t, data, fromBytes)

	data.Planes[0].Distance = 1
	changed, err := data.Hash()
	require.NoError(t, err)
	assert.NotEqual(t, want, changed)
}

func TestLoadFromYAMLFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(file, []byte(sceneYAML), 0644))

	data, err := LoadFromFile(file)
	require.NoError(t, err)
	assert.Len(t, data.Planes, 2)

	require.NoError(t, os.WriteFile(file, []byte("planes: [oops"), 0644))
	_, err = LoadFromYAMLFile(file)
	assert.ErrorContains(t, err, file)

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSceneData_Validate(t *testing.T) {
	nan := float32(math.NaN())
	up := Vector3f{Y: 1}

	cases := []struct {
		name string
		data SceneData
		err  error
	}{
		{"empty", SceneData{}, ErrEmptyScene},
		{"nan distance", SceneData{Planes: []PlaneData{{Normal: up, Distance: nan}}}, ErrInvalidPlane},
		{"normalize zero", SceneData{Planes: []PlaneData{{Normalize: true}}}, ErrInvalidPlane},
		{"nan ray", SceneData{Planes: []PlaneData{{Normal: up}}, Rays: []RayData{{Direction: Vector3f{X: nan}}}}, ErrInvalidRay},
		{"nan target", SceneData{Planes: []PlaneData{{Normal: up}}, Rays: []RayData{{Target: Vector3f{Z: nan}}}}, ErrInvalidRay},
		{"inverted volume", SceneData{Planes: []PlaneData{{Normal: up}}, Volume: AABB{Min: Vector3f{1, 1, 1}}}, ErrInvalidVolume},
		{"degenerate plane is allowed", SceneData{Planes: []PlaneData{{Name: "zero"}}}, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.data.Validate()
			if c.err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, c.err)
			}
		})
	}
}
