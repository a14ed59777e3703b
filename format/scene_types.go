package format

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyScene    = errors.New("scene has no planes")
	ErrInvalidPlane  = errors.New("invalid plane")
	ErrInvalidRay    = errors.New("invalid ray")
	ErrInvalidVolume = errors.New("invalid volume")
)

type Vector3f struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

func (this Vector3f) finite() bool {
	for _, v := range [3]float32{this.X, this.Y, this.Z} {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return false
		}
	}
	return true
}

func (this Vector3f) IsZero() bool {
	return this.X == 0 && this.Y == 0 && this.Z == 0
}

type PlaneData struct {
	Name      string   `yaml:"name"`
	Normal    Vector3f `yaml:"normal"`
	Distance  float32  `yaml:"distance"`
	Normalize bool     `yaml:"normalize,omitempty"`
}

// RayData gives either a direction or a target point the ray reaches at t = 1.
// Target is only used when Direction is zero.
type RayData struct {
	Origin    Vector3f `yaml:"origin"`
	Direction Vector3f `yaml:"direction,omitempty"`
	Target    Vector3f `yaml:"target,omitempty"`
}

// AABB is given by its corners. The zero value means no volume.
type AABB struct {
	Min Vector3f `yaml:"min"`
	Max Vector3f `yaml:"max"`
}

func (this AABB) IsEmpty() bool {
	return this.Min.IsZero() && this.Max.IsZero()
}

type SceneData struct {
	Planes []PlaneData `yaml:"planes"`
	Rays   []RayData   `yaml:"rays"`
	Volume AABB        `yaml:"volume,omitempty"`
}

func (this *SceneData) Validate() error {
	if len(this.Planes) == 0 {
		return ErrEmptyScene
	}
	for i, p := range this.Planes {
		if !p.Normal.finite() || math.IsNaN(float64(p.Distance)) || math.IsInf(float64(p.Distance), 0) {
			return fmt.Errorf("plane %d %q: non finite value: %w", i, p.Name, ErrInvalidPlane)
		}
		if p.Normalize && p.Normal.IsZero() {
			return fmt.Errorf("plane %d %q: cannot normalize zero normal: %w", i, p.Name, ErrInvalidPlane)
		}
	}
	for i, r := range this.Rays {
		if !r.Origin.finite() || !r.Direction.finite() || !r.Target.finite() {
			return fmt.Errorf("ray %d: non finite value: %w", i, ErrInvalidRay)
		}
	}
	if !this.Volume.IsEmpty() {
		v := this.Volume
		if !v.Min.finite() || !v.Max.finite() || v.Min.X > v.Max.X || v.Min.Y > v.Max.Y || v.Min.Z > v.Max.Z {
			return fmt.Errorf("volume %+v: %w", v, ErrInvalidVolume)
		}
	}
	return nil
}

// Hash fingerprints the gob encoding of the scene.
func (this *SceneData) Hash() (uint64, error) {
	var buff bytes.Buffer
	if err := gob.NewEncoder(&buff).Encode(this); err != nil {
		return 0, err
	}
	return xxhash.Sum64(buff.Bytes()), nil
}

func SaveToGobFile(data *SceneData, file string) error {
	f, err := os.OpenFile(file, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	return gob.NewEncoder(f).Encode(data)
}

func LoadFromGobFile(file string) (*SceneData, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var data SceneData
	err = gob.NewDecoder(f).Decode(&data)
	if err != nil {
		return nil, err
	} else {
		return &data, nil
	}
}

func LoadFromByteStream(byteStream []byte) (*SceneData, error) {
	var data SceneData
	err := gob.NewDecoder(bytes.NewReader(byteStream)).Decode(&data)
	if err != nil {
		return nil, err
	} else {
		return &data, nil
	}
}

func LoadFromYAML(r io.Reader) (*SceneData, error) {
	var data SceneData
	if err := yaml.NewDecoder(r).Decode(&data); err != nil {
		return nil, err
	}
	return &data, nil
}

func LoadFromYAMLFile(file string) (*SceneData, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := LoadFromYAML(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", file, err)
	}
	return data, nil
}

// LoadFromFile picks the decoder by extension: .gob for gob, anything else is read as YAML.
func LoadFromFile(file string) (*SceneData, error) {
	if strings.EqualFold(filepath.Ext(file), ".gob") {
		return LoadFromGobFile(file)
	}
	return LoadFromYAMLFile(file)
}
