package entity

import (
	"snake-minigame/game/types"

	"github.com/pkg/errors"
)

// SegmentID addresses a segment for as long as it is alive.
type SegmentID uint32

// NoSegment is the Follows value of the head.
const NoSegment SegmentID = 0

// Segment is one cell of the chain. Every segment except the head follows
// a leader and copies the leader's previous position on each step.
type Segment struct {
	ID       SegmentID
	Position types.Point
	Follows  SegmentID
}

func (s Segment) IsHead() bool {
	return s.Follows == NoSegment
}

// Snake is a chain of segments. segments keeps creation order, which is
// head first and tail last; movement itself only relies on Follows.
type Snake struct {
	Facing types.Direction

	grid     types.Grid
	segments []*Segment
	byID     map[SegmentID]*Segment
	nextID   SegmentID
}

// NewSnake spawns a head and length-1 body segments, all on start. They
// separate over the following steps.
func NewSnake(grid types.Grid, start types.Point, facing types.Direction, length int) (*Snake, error) {
	if length <= 0 {
		return nil, errors.Wrapf(types.ErrConfiguration, "initial length %d", length)
	}
	if !grid.Contains(start) {
		return nil, errors.Wrapf(types.ErrConfiguration, "start %v outside %dx%d arena", start, grid.Width, grid.Height)
	}
	if !facing.Valid() {
		return nil, errors.Wrapf(types.ErrConfiguration, "facing %v", facing)
	}

	s := &Snake{
		Facing:   facing,
		grid:     grid,
		segments: make([]*Segment, 0, length),
		byID:     make(map[SegmentID]*Segment, length),
	}
	leader := s.add(start, NoSegment)
	for i := 1; i < length; i++ {
		leader = s.add(start, leader.ID)
	}
	return s, nil
}

func (s *Snake) add(pos types.Point, follows SegmentID) *Segment {
	s.nextID++
	seg := &Segment{ID: s.nextID, Position: pos, Follows: follows}
	s.segments = append(s.segments, seg)
	s.byID[seg.ID] = seg
	return seg
}

// Step advances the whole chain one cell in dir. Every body segment reads
// its leader's position from a snapshot taken before anything moves, so the
// update order does not matter.
func (s *Snake) Step(dir types.Direction) error {
	head, err := s.head()
	if err != nil {
		return err
	}

	snapshot := make(map[SegmentID]types.Point, len(s.segments))
	for _, seg := range s.segments {
		snapshot[seg.ID] = seg.Position
	}
	for _, seg := range s.segments {
		if seg.IsHead() {
			continue
		}
		if _, ok := snapshot[seg.Follows]; !ok {
			return errors.Wrapf(types.ErrInvariantViolation, "segment %d follows missing segment %d", seg.ID, seg.Follows)
		}
	}

	s.Facing = dir
	head.Position = s.grid.Step(head.Position, dir)
	for _, seg := range s.segments {
		if seg.IsHead() {
			continue
		}
		seg.Position = snapshot[seg.Follows]
	}
	return nil
}

// Grow appends amount segments behind the tail, all on the tail's current
// cell, and returns their ids in chain order.
func (s *Snake) Grow(amount int) ([]SegmentID, error) {
	if amount < 0 {
		return nil, errors.Wrapf(types.ErrInvariantViolation, "negative growth %d", amount)
	}
	if amount == 0 {
		return nil, nil
	}
	tail, err := s.tail()
	if err != nil {
		return nil, err
	}

	pos := tail.Position
	ids := make([]SegmentID, 0, amount)
	leader := tail
	for i := 0; i < amount; i++ {
		leader = s.add(pos, leader.ID)
		ids = append(ids, leader.ID)
	}
	return ids, nil
}

// SelfCollides reports whether the head shares a cell with any other segment.
func (s *Snake) SelfCollides() bool {
	head, err := s.head()
	if err != nil {
		return false
	}
	for _, seg := range s.segments {
		if seg.ID != head.ID && seg.Position == head.Position {
			return true
		}
	}
	return false
}

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, seg := range s.segments {
		if seg.Position == p {
			return true
		}
	}
	return false
}

func (s *Snake) Len() int {
	return len(s.segments)
}

func (s *Snake) Head() Segment {
	head, err := s.head()
	if err != nil {
		return Segment{}
	}
	return *head
}

func (s *Snake) Tail() (Segment, error) {
	tail, err := s.tail()
	if err != nil {
		return Segment{}, err
	}
	return *tail, nil
}

// Segment looks a segment up by id.
func (s *Snake) Segment(id SegmentID) (Segment, error) {
	seg, ok := s.byID[id]
	if !ok {
		return Segment{}, errors.Wrapf(types.ErrInvariantViolation, "segment %d not found", id)
	}
	return *seg, nil
}

// Segments returns a copy of every segment, head first.
func (s *Snake) Segments() []Segment {
	out := make([]Segment, len(s.segments))
	for i, seg := range s.segments {
		out[i] = *seg
	}
	return out
}

func (s *Snake) Positions() []types.Point {
	out := make([]types.Point, len(s.segments))
	for i, seg := range s.segments {
		out[i] = seg.Position
	}
	return out
}

func (s *Snake) head() (*Segment, error) {
	var head *Segment
	for _, seg := range s.segments {
		if !seg.IsHead() {
			continue
		}
		if head != nil {
			return nil, errors.Wrapf(types.ErrInvariantViolation, "segments %d and %d both lead the chain", head.ID, seg.ID)
		}
		head = seg
	}
	if head == nil {
		return nil, errors.Wrap(types.ErrInvariantViolation, "chain has no head")
	}
	return head, nil
}

// tail is the one segment nobody follows.
func (s *Snake) tail() (*Segment, error) {
	followed := make(map[SegmentID]bool, len(s.segments))
	for _, seg := range s.segments {
		if seg.IsHead() {
			continue
		}
		if _, ok := s.byID[seg.Follows]; !ok {
			return nil, errors.Wrapf(types.ErrInvariantViolation, "segment %d follows missing segment %d", seg.ID, seg.Follows)
		}
		followed[seg.Follows] = true
	}

	var tail *Segment
	for _, seg := range s.segments {
		if followed[seg.ID] {
			continue
		}
		if tail != nil {
			return nil, errors.Wrapf(types.ErrInvariantViolation, "chain branches at segments %d and %d", tail.ID, seg.ID)
		}
		tail = seg
	}
	if tail == nil {
		return nil, errors.Wrap(types.ErrInvariantViolation, "chain has no tail")
	}
	return tail, nil
}

// Validate checks that the follows relation is a single simple chain: one
// head, no dangling references, no branching and no cycles.
func (s *Snake) Validate() error {
	if _, err := s.head(); err != nil {
		return err
	}

	followers := make(map[SegmentID]SegmentID, len(s.segments))
	for _, seg := range s.segments {
		if seg.IsHead() {
			continue
		}
		if _, ok := s.byID[seg.Follows]; !ok {
			return errors.Wrapf(types.ErrInvariantViolation, "segment %d follows missing segment %d", seg.ID, seg.Follows)
		}
		if other, ok := followers[seg.Follows]; ok {
			return errors.Wrapf(types.ErrInvariantViolation, "segments %d and %d both follow %d", other, seg.ID, seg.Follows)
		}
		followers[seg.Follows] = seg.ID
	}

	tail, err := s.tail()
	if err != nil {
		return err
	}
	seen := 0
	for cur := tail; ; {
		seen++
		if seen > len(s.segments) {
			return errors.Wrap(types.ErrInvariantViolation, "chain contains a cycle")
		}
		if cur.IsHead() {
			break
		}
		cur = s.byID[cur.Follows]
	}
	if seen != len(s.segments) {
		return errors.Wrapf(types.ErrInvariantViolation, "chain reaches %d of %d segments", seen, len(s.segments))
	}
	return nil
}
