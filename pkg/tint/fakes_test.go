package tint

import (
	"fmt"

	"github.com/BrandonKowalski/tintkit/pkg/tint/color"
	"github.com/BrandonKowalski/tintkit/pkg/tint/constants"
)

type fakeAsset struct {
	id        constants.AssetID
	filter    *Filter
	states    *ColorStateList
	children  []Asset
	mutations int
}

func (a *fakeAsset) SetColorFilter(f *Filter) {
	a.filter = f
	a.mutations++
}

func (a *fakeAsset) SetColorStateSource(l *ColorStateList) {
	a.states = l
	a.mutations++
}

// fakeStore knows every id in known and counts loads.
type fakeStore struct {
	known map[constants.AssetID]bool
	loads int
}

func newFakeStore(ids ...constants.AssetID) *fakeStore {
	s := &fakeStore{known: make(map[constants.AssetID]bool)}
	for _, id := range ids {
		s.known[id] = true
	}
	return s
}

func (s *fakeStore) Load(id constants.AssetID) (Asset, bool) {
	s.loads++
	if !s.known[id] {
		return nil, false
	}
	return &fakeAsset{id: id}, true
}

// fakeContainerStore resolves every container to the children listed for it.
type fakeContainerStore struct {
	*fakeStore
	layers map[constants.AssetID][]constants.AssetID
}

func (s *fakeContainerStore) LoadContainer(id constants.AssetID, resolve ChildResolver) (Asset, bool) {
	ids, ok := s.layers[id]
	if !ok {
		return nil, false
	}

	container := &fakeAsset{id: id}
	for _, childID := range ids {
		child, ok := resolve(childID)
		if !ok {
			return nil, false
		}
		container.children = append(container.children, child)
	}
	return container, true
}

type fakeTheme struct {
	colors  map[constants.Attribute]color.Color
	floats  map[constants.Attribute]float64
	lookups int
}

func newFakeTheme() *fakeTheme {
	return &fakeTheme{
		colors: map[constants.Attribute]color.Color{
			constants.AttrColorControlNormal:    0x8A000000,
			constants.AttrColorControlActivated: 0xFFFF4081,
			constants.AttrColorBackground:       0xFFFAFAFA,
		},
		floats: map[constants.Attribute]float64{
			constants.AttrDisabledAlpha: 0.5,
		},
	}
}

func (t *fakeTheme) Color(attr constants.Attribute) (color.Color, error) {
	t.lookups++
	c, ok := t.colors[attr]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrAttributeUnresolved, attr)
	}
	return c, nil
}

func (t *fakeTheme) Float(attr constants.Attribute) (float64, error) {
	t.lookups++
	f, ok := t.floats[attr]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrAttributeUnresolved, attr)
	}
	return f, nil
}
