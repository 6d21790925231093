package value

import (
	"fmt"
	"strings"

	"github.com/clicat/gbin/errs"
	"github.com/clicat/gbin/format"
)

// Record is an insertion-ordered mapping from string keys to Values
// (spec.md §3.3: "an insertion-ordered mapping from string keys (segments)
// to values; equality of keys is exact string match").
type Record struct {
	keys   []string
	values map[string]*Value
}

// NewRecord returns an empty Record.
func NewRecord() *Record {
	return &Record{values: make(map[string]*Value)}
}

// Set inserts or overwrites the value at key, preserving insertion order on
// first insertion.
func (r *Record) Set(key string, v *Value) {
	if _, exists := r.values[key]; !exists {
		r.keys = append(r.keys, key)
	}

	r.values[key] = v
}

// Get returns the value at key and whether it is present.
func (r *Record) Get(key string) (*Value, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Keys returns the record's keys in insertion order.
func (r *Record) Keys() []string {
	return r.keys
}

// Len returns the number of direct children.
func (r *Record) Len() int {
	return len(r.keys)
}

// Leaf is one flattened (dot_path, value) pair produced by Flatten.
type Leaf struct {
	Path  string
	Value *Value
}

// Flatten performs the depth-first traversal of spec.md §4.5.1 step 1: it
// collects every leaf as a (dot_path, value) pair in traversal order, with
// ties following each record's insertion order. An empty record
// encountered below the root is emitted as a leaf with kind "struct" and a
// zero-byte payload (spec.md §4.5.1 step 1, §3.3).
func (r *Record) Flatten() []Leaf {
	var leaves []Leaf
	flattenInto(&leaves, "", r)
	return leaves
}

func flattenInto(out *[]Leaf, prefix string, r *Record) {
	if r.Len() == 0 {
		if prefix != "" {
			*out = append(*out, Leaf{Path: prefix, Value: emptyStructLeaf()})
		}

		return
	}

	for _, key := range r.keys {
		v := r.values[key]

		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		if v.IsRecord() && v.Record != nil {
			flattenInto(out, path, v.Record)
			continue
		}

		*out = append(*out, Leaf{Path: path, Value: v})
	}
}

func emptyStructLeaf() *Value {
	return &Value{Kind: format.KindStruct, Record: NewRecord(), Encoding: "empty-scalar-struct"}
}

// Insert writes v at dotPath within r, auto-creating intermediate records
// (spec.md §4.5.2 step 6). It reports an error if an existing non-record
// value sits where an intermediate record is required.
func (r *Record) Insert(dotPath string, v *Value) error {
	segs := strings.Split(dotPath, ".")

	cur := r
	for i, seg := range segs {
		last := i == len(segs)-1
		if last {
			cur.Set(seg, v)
			return nil
		}

		existing, ok := cur.Get(seg)
		if !ok {
			child := NewRecord()
			cur.Set(seg, NewStruct(child))
			cur = child
			continue
		}

		if !existing.IsRecord() || existing.Record == nil {
			return errs.Wrap(errs.KindInvalidData, nil, fmt.Sprintf("path collision at %q: existing non-record value", dotPath))
		}

		cur = existing.Record
	}

	return nil
}

// Lookup returns the value at dotPath, or (nil, false) if absent.
func (r *Record) Lookup(dotPath string) (*Value, bool) {
	segs := strings.Split(dotPath, ".")

	cur := r
	for i, seg := range segs {
		v, ok := cur.Get(seg)
		if !ok {
			return nil, false
		}

		if i == len(segs)-1 {
			return v, true
		}

		if !v.IsRecord() || v.Record == nil {
			return nil, false
		}

		cur = v.Record
	}

	return nil, false
}
