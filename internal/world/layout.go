package world

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/roomgen/internal/telemetry"
)

// DefaultCapacity is the number of rooms in a layout unless configured otherwise.
const DefaultCapacity = 7

// Params sizes a layout.
type Params struct {
	Capacity    int // Rooms to generate
	CatalogSize int // Names to draw from, a prefix of the catalog
}

// DefaultParams returns seven rooms drawn from the full catalog.
func DefaultParams() Params {
	return Params{
		Capacity:    DefaultCapacity,
		CatalogSize: CatalogSize,
	}
}

// ValidateParams rejects sizes the generator cannot satisfy. Generating with
// parameters that fail here would otherwise never terminate.
func ValidateParams(p Params) error {
	if p.CatalogSize < 1 || p.CatalogSize > CatalogSize {
		return fmt.Errorf("catalog size %d not in [1,%d]: %w: %w",
			p.CatalogSize, CatalogSize, ErrInvalidParams, ErrCatalogSize)
	}
	if p.Capacity > p.CatalogSize {
		return fmt.Errorf("capacity %d > catalog size %d: %w: %w",
			p.Capacity, p.CatalogSize, ErrInvalidParams, ErrCapacityExceedsCatalog)
	}
	if p.Capacity < 2 {
		return fmt.Errorf("capacity %d cannot hold a start and an end room: %w: %w",
			p.Capacity, ErrInvalidParams, ErrCapacityTooSmall)
	}
	if p.Capacity-1 < MinDegree {
		return fmt.Errorf("capacity %d leaves fewer than %d peers per room: %w: %w",
			p.Capacity, MinDegree, ErrInvalidParams, ErrCapacityTooSmall)
	}
	return nil
}

// Stats counts the work done by the last Generate call.
type Stats struct {
	Draws       int // Random index draws, accepted or rejected
	Iterations  int // Edges attempted by the connectivity builder
	Edges       int // Undirected edges in the layout
	TotalDegree int // Sum of connection counts, always 2*Edges
}

// Layout is the ordered set of rooms produced for one run.
type Layout struct {
	Rooms  []Room
	params Params
	stats  Stats
	rng    *rand.Rand
}

// NewLayout creates an empty layout. A nil rng is replaced by a time-seeded one.
func NewLayout(p Params, rng *rand.Rand) (*Layout, error) {
	if err := ValidateParams(p); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Layout{
		params: p,
		rng:    rng,
	}, nil
}

// Params returns the sizes the layout was created with.
func (l *Layout) Params() Params {
	return l.params
}

// Generate builds a fresh room set and connects it until every room has at
// least MinDegree connections. On error no usable layout remains.
func (l *Layout) Generate(ctx context.Context) error {
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "layout.generate")
	defer span.End()

	startTime := time.Now()
	l.Rooms = nil
	l.stats = Stats{}

	err := l.buildRooms(ctx)
	if err == nil {
		err = l.connectRooms(ctx)
	}
	if err != nil {
		l.Rooms = nil
		span.RecordError(err)
		span.SetStatus(codes.Error, "layout generation failed")
		return err
	}

	stats := l.Stats()
	span.SetAttributes(
		attribute.Int("layout.capacity", l.params.Capacity),
		attribute.Int("layout.catalog_size", l.params.CatalogSize),
		attribute.Int("layout.edges", stats.Edges),
		attribute.Int("layout.draws", stats.Draws),
		attribute.Int("layout.iterations", stats.Iterations),
		attribute.Bool("layout.connected", l.Connected()),
		attribute.Int64("layout.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return nil
}

// IsFull returns true once every room has at least MinDegree connections.
func (l *Layout) IsFull() bool {
	for _, room := range l.Rooms {
		if room.Degree() < MinDegree {
			return false
		}
	}
	return true
}

// Stats returns generation counters and edge totals.
func (l *Layout) Stats() Stats {
	s := l.stats
	s.TotalDegree = 0
	for _, room := range l.Rooms {
		s.TotalDegree += room.Degree()
	}
	s.Edges = s.TotalDegree / 2
	return s
}

// Room returns the room with the given catalog index.
func (l *Layout) Room(nameIndex int) (Room, bool) {
	if i := l.position(nameIndex); i >= 0 {
		return l.Rooms[i], true
	}
	return Room{}, false
}

// Start returns the start room. It panics on an ungenerated layout.
func (l *Layout) Start() Room {
	return l.Rooms[0]
}

// End returns the end room. It panics on an ungenerated layout.
func (l *Layout) End() Room {
	return l.Rooms[len(l.Rooms)-1]
}

// position returns the slice position of the room with nameIndex, or -1.
func (l *Layout) position(nameIndex int) int {
	for i := range l.Rooms {
		if l.Rooms[i].NameIndex == nameIndex {
			return i
		}
	}
	return -1
}

// buildRooms draws Capacity distinct catalog indices without replacement.
// Draw order assigns roles: first is start, last is end.
func (l *Layout) buildRooms(ctx context.Context) error {
	_, span := telemetry.Tracer("world").Start(ctx, "layout.rooms")
	defer span.End()

	capacity := l.params.Capacity
	chosen := mapset.New[int]()
	order := make([]int, 0, capacity)

	for len(order) < capacity {
		idx, draws, err := sampleUntil(l.rng, l.params.CatalogSize, func(i int) bool {
			return !chosen.Has(i)
		})
		l.stats.Draws += draws
		if err != nil {
			return fmt.Errorf("room set: %w", err)
		}
		chosen.Put(idx)
		order = append(order, idx)
	}

	l.Rooms = make([]Room, capacity)
	for i, idx := range order {
		l.Rooms[i] = NewRoom(idx, roleAt(i, capacity))
	}

	span.SetAttributes(attribute.Int("layout.room_draws", l.stats.Draws))
	return nil
}

// connectRooms adds random undirected edges until the layout is full.
func (l *Layout) connectRooms(ctx context.Context) error {
	_, span := telemetry.Tracer("world").Start(ctx, "layout.connect")
	defer span.End()

	n := len(l.Rooms)
	for !l.IsFull() {
		if !l.anyPairable() {
			return fmt.Errorf("%d rooms below degree %d and no edge can be added: %w",
				l.countBelowMin(), MinDegree, ErrUngenerable)
		}
		l.stats.Iterations++

		// Only rooms with a free partner qualify, so the second draw cannot stall.
		first, draws, err := sampleUntil(l.rng, n, l.hasPartner)
		l.stats.Draws += draws
		if err != nil {
			return fmt.Errorf("first endpoint: %w: %w", ErrUngenerable, err)
		}

		second, draws, err := sampleUntil(l.rng, n, func(i int) bool {
			return l.canPair(first, i)
		})
		l.stats.Draws += draws
		if err != nil {
			return fmt.Errorf("second endpoint for %s: %w: %w", l.Rooms[first].Name(), ErrUngenerable, err)
		}

		l.link(first, second)
	}

	span.SetAttributes(attribute.Int("layout.iterations", l.stats.Iterations))
	return nil
}

// canPair reports whether an edge between positions a and b is allowed.
func (l *Layout) canPair(a, b int) bool {
	if a == b {
		return false
	}
	ra, rb := l.Rooms[a], l.Rooms[b]
	return ra.CanConnect() && rb.CanConnect() && !ra.ConnectedTo(rb.NameIndex)
}

// hasPartner reports whether position a can take at least one new edge.
func (l *Layout) hasPartner(a int) bool {
	if !l.Rooms[a].CanConnect() {
		return false
	}
	for b := range l.Rooms {
		if l.canPair(a, b) {
			return true
		}
	}
	return false
}

func (l *Layout) anyPairable() bool {
	for a := range l.Rooms {
		if l.hasPartner(a) {
			return true
		}
	}
	return false
}

func (l *Layout) countBelowMin() int {
	count := 0
	for _, room := range l.Rooms {
		if room.Degree() < MinDegree {
			count++
		}
	}
	return count
}

// link records the edge a-b on both rooms.
func (l *Layout) link(a, b int) {
	l.Rooms[a].Connections = append(l.Rooms[a].Connections, l.Rooms[b].NameIndex)
	l.Rooms[b].Connections = append(l.Rooms[b].Connections, l.Rooms[a].NameIndex)
}
