package umath

import (
	"context"
	"runtime"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lazytiger/umath/log"
)

type PickPlane struct {
	ID    string
	Name  string
	Plane Plane
}

type PickHit struct {
	planeID  string
	name     string
	point    Vector3f
	t        float32
	distance float32
	hit      bool
}

func (this *PickHit) GetPlaneID() string {
	return this.planeID
}

func (this *PickHit) GetName() string {
	return this.name
}

func (this *PickHit) GetPoint() Vector3f {
	return this.point
}

func (this *PickHit) GetT() float32 {
	return this.t
}

// GetDistance is measured from the ray origin, unlike GetT it does not depend on the direction length.
func (this *PickHit) GetDistance() float32 {
	return this.distance
}

func (this *PickHit) Hit() bool {
	return this.hit
}

func InvalidatePickHit(hit *PickHit) {
	*hit = PickHit{}
}

type PickerOption func(*Picker)

// WithVolume rejects every hit whose point lies outside volume.
func WithVolume(volume AABB) PickerOption {
	return func(p *Picker) {
		p.m_Volume = volume
		p.m_HasVolume = true
	}
}

func WithLogger(logger log.Log) PickerOption {
	return func(p *Picker) {
		p.m_Logger = logger
	}
}

// WithWorkers bounds the goroutines used by RaycastAll.
func WithWorkers(n int) PickerOption {
	return func(p *Picker) {
		if n > 0 {
			p.m_Workers = n
		}
	}
}

// Picker finds the nearest of a set of planes along a ray. It is safe for concurrent use.
type Picker struct {
	mu          sync.RWMutex
	m_Planes    []PickPlane
	m_Volume    AABB
	m_HasVolume bool
	m_Workers   int
	m_Logger    log.Log
}

func NewPicker(opts ...PickerOption) *Picker {
	picker := &Picker{
		m_Workers: runtime.GOMAXPROCS(0),
		m_Logger:  log.Provide(),
	}
	for _, opt := range opts {
		opt(picker)
	}
	return picker
}

// AddPlane registers plane and returns its generated id.
func (this *Picker) AddPlane(name string, plane Plane) string {
	id := uuid.NewString()
	this.mu.Lock()
	this.m_Planes = append(this.m_Planes, PickPlane{ID: id, Name: name, Plane: plane})
	this.mu.Unlock()
	this.m_Logger.Debug("plane added", log.String("id", id), log.String("name", name), log.Stringer("plane", plane))
	return id
}

func (this *Picker) RemovePlane(id string) bool {
	this.mu.Lock()
	defer this.mu.Unlock()
	for i := range this.m_Planes {
		if this.m_Planes[i].ID == id {
			this.m_Planes = append(this.m_Planes[:i], this.m_Planes[i+1:]...)
			return true
		}
	}
	return false
}

// Planes returns a copy of the registered planes in insertion order.
func (this *Picker) Planes() []PickPlane {
	this.mu.RLock()
	defer this.mu.RUnlock()
	planes := make([]PickPlane, len(this.m_Planes))
	copy(planes, this.m_Planes)
	return planes
}

func (this *Picker) GetVolume() (AABB, bool) {
	return this.m_Volume, this.m_HasVolume
}

// Raycast fills hit with the nearest plane along ray. On equal t the plane added first wins.
func (this *Picker) Raycast(hit *PickHit, ray Ray) bool {
	InvalidatePickHit(hit)

	this.mu.RLock()
	defer this.mu.RUnlock()

	for i := range this.m_Planes {
		pp := &this.m_Planes[i]
		t, ok := pp.Plane.IntersectsRay(ray).T()
		if !ok {
			continue
		}
		if hit.hit && t >= hit.t {
			continue
		}
		point := ray.PointAt(t)
		if this.m_HasVolume && !this.m_Volume.IsInside(point) {
			continue
		}
		hit.planeID = pp.ID
		hit.name = pp.Name
		hit.point = point
		hit.t = t
		hit.distance = Distance(ray.Origin, point)
		hit.hit = true
	}

	if hit.hit {
		this.m_Logger.Debug("ray hit", log.Stringer("ray", ray), log.String("plane", hit.name), log.Float32("t", hit.t))
	} else {
		this.m_Logger.Debug("ray missed", log.Stringer("ray", ray))
	}
	return hit.hit
}

// RaycastAll casts every ray concurrently. The returned hits keep the order of rays.
func (this *Picker) RaycastAll(ctx context.Context, rays []Ray) ([]PickHit, error) {
	hits := make([]PickHit, len(rays))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(this.m_Workers)
	for i := range rays {
		if gctx.Err() != nil {
			break
		}
		i := i // per-iteration copy (go directive < 1.22)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			this.Raycast(&hits[i], rays[i])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return hits, nil
}
