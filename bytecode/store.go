package bytecode

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/jpenilla/vineflower/stmt"
)

const (
	OpIstore  = 0x36
	OpLstore  = 0x37
	OpFstore  = 0x38
	OpDstore  = 0x39
	OpAstore  = 0x3a
	OpIstore0 = 0x3b
	OpLstore0 = 0x3f
	OpFstore0 = 0x43
	OpDstore0 = 0x47
	OpAstore0 = 0x4b
	OpWide    = 0xc4
)

type StoreKind uint8

const (
	IStore StoreKind = iota
	LStore
	FStore
	DStore
	AStore
)

var storeOps = [...]struct {
	name            string
	generic, short0 byte
}{
	IStore: {"istore", OpIstore, OpIstore0},
	LStore: {"lstore", OpLstore, OpLstore0},
	FStore: {"fstore", OpFstore, OpFstore0},
	DStore: {"dstore", OpDstore, OpDstore0},
	AStore: {"astore", OpAstore, OpAstore0},
}

func (k StoreKind) String() string {
	if int(k) < len(storeOps) {
		return storeOps[k].name
	}
	return fmt.Sprintf("StoreKind(%d)", uint8(k))
}

func ParseStoreKind(s string) (StoreKind, error) {
	for k, op := range storeOps {
		if op.name == s || op.name[:1] == s {
			return StoreKind(k), nil
		}
	}
	return 0, errors.Errorf("unknown store kind %q", s)
}

// Store writes the top of the operand stack to local variable Index.
type Store struct {
	Kind  StoreKind
	Index int
	Wide  bool
}

// StoreFor picks the store instruction matching a variable's type.
func StoreFor(t stmt.VarType, index int) *Store {
	kind := AStore
	switch t {
	case stmt.TypeBoolean, stmt.TypeByte, stmt.TypeChar, stmt.TypeShort, stmt.TypeInt:
		kind = IStore
	case stmt.TypeLong:
		kind = LStore
	case stmt.TypeFloat:
		kind = FStore
	case stmt.TypeDouble:
		kind = DStore
	}
	return &Store{Kind: kind, Index: index, Wide: index > 0xff}
}

func (s *Store) String() string {
	if s.Wide && s.Index > 3 {
		return fmt.Sprintf("wide %v %d", s.Kind, s.Index)
	}
	if s.Index <= 3 {
		return fmt.Sprintf("%v_%d", s.Kind, s.Index)
	}
	return fmt.Sprintf("%v %d", s.Kind, s.Index)
}

// Length is the number of bytes WriteTo emits.
func (s *Store) Length() int {
	switch {
	case s.Index <= 3:
		return 1
	case s.Wide:
		return 4
	default:
		return 2
	}
}

func (s *Store) Bytes() ([]byte, error) {
	if int(s.Kind) >= len(storeOps) {
		return nil, errors.Errorf("unknown store kind %v", s.Kind)
	}
	if s.Index < 0 {
		return nil, errors.Errorf("%v: negative local index", s)
	}
	op := storeOps[s.Kind]
	if s.Index <= 3 {
		return []byte{op.short0 + byte(s.Index)}, nil
	}
	if !s.Wide {
		if s.Index > 0xff {
			return nil, errors.Errorf("%v: index needs the wide prefix", s)
		}
		return []byte{op.generic, byte(s.Index)}, nil
	}
	if s.Index > 0xffff {
		return nil, errors.Errorf("%v: index does not fit in two bytes", s)
	}
	buf := []byte{OpWide, op.generic, 0, 0}
	binary.BigEndian.PutUint16(buf[2:], uint16(s.Index))
	return buf, nil
}

// WriteTo encodes the instruction. A sink that cannot take the bytes
// fails the write; nothing is retried.
func (s *Store) WriteTo(w io.Writer) (int64, error) {
	buf, err := s.Bytes()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(buf)
	if err == nil && n < len(buf) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return int64(n), errors.Errorf("writing %v: %v", s, err)
	}
	return int64(n), nil
}

// Encode writes a run of stores and returns the code bytes.
func Encode(stores ...*Store) ([]byte, error) {
	var buf bytes.Buffer
	for _, s := range stores {
		if _, err := s.WriteTo(&buf); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}
