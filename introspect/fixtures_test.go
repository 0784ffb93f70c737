package introspect

import (
	"github.com/google/uuid"
)

type tagName string

const tagTable tagName = "table"

type list[T any] struct {
	items []T
}

type pair[K comparable, V any] struct {
	key K
	val V
}

// spy mirrors the field shapes the normalizer distinguishes.
type spy struct {
	B      [][]bool
	I      int
	Name   string
	List   []int
	Map    map[string]int
	Val    any
	Arr    [][]any
	Tag    tagName
	IDs    []uuid.UUID
	Owner  uuid.UUID
	Items  list[int]
	Pairs  pair[string, int]
	Fixed  [3]int
	Ptr    *int
	Err    error
	Events chan string
	secret string
}

type root struct {
	RootID   int
	rootNote string
}

type middle struct {
	MidName string
	root
	Flag bool
}

type other struct {
	OtherX float64
}

type leaf struct {
	middle
	LeafA string
	other
	LeafB int
}

type shadow struct {
	Name string
	inner
}

type inner struct {
	Name  string
	Inner int
}

func newSpy() *spy {
	n := 7
	return &spy{
		B:      [][]bool{{false, false}, {true, true}},
		I:      100,
		Name:   "Alice",
		List:   []int{100},
		Map:    map[string]int{"1": 1},
		Val:    "Abhishek",
		Arr:    [][]any{{"Abhishek"}, {"Abhishek"}},
		Tag:    tagTable,
		IDs:    []uuid.UUID{uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")},
		Owner:  uuid.MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8"),
		Items:  list[int]{items: []int{1, 2}},
		Pairs:  pair[string, int]{key: "a", val: 1},
		Fixed:  [3]int{1, 2, 3},
		Ptr:    &n,
		Events: make(chan string, 1),
		secret: "hidden",
	}
}

func newLeaf() leaf {
	return leaf{
		middle: middle{
			MidName: "mid",
			root:    root{RootID: 1, rootNote: "note"},
			Flag:    true,
		},
		LeafA: "a",
		other: other{OtherX: 1.5},
		LeafB: 2,
	}
}
