package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
)

// IDSet is an unordered set of entity ids. A nil IDSet means the set was
// never initialized, which is distinct from an empty one.
type IDSet map[int]struct{}

func NewIDSet(ids ...int) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s IDSet) Has(id int) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the members in ascending order.
func (s IDSet) IDs() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (s IDSet) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	return json.Marshal(s.IDs())
}

func (s *IDSet) UnmarshalJSON(data []byte) error {
	var ids []int
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	if ids == nil {
		*s = nil
		return nil
	}
	*s = NewIDSet(ids...)
	return nil
}

// Value stores the set as a JSON array; an unset set is stored as NULL.
func (s IDSet) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	b, err := json.Marshal(s.IDs())
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *IDSet) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*s = nil
		return nil
	case []byte:
		return s.UnmarshalJSON(v)
	case string:
		return s.UnmarshalJSON([]byte(v))
	default:
		return fmt.Errorf("id set: unsupported source type %T", src)
	}
}
