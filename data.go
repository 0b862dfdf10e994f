package fsm

import "encoding/binary"

// Data is the shared data slot of an Instance.
//
// It is an opaque payload the machine stores and returns verbatim, never
// interprets. Callbacks use it to pass context across ticks, e.g. OnEntry
// stashes a counter that OnActivity increments.
//
// The numeric accessors all overlay the same four bytes, so writing one
// variant and reading another reinterprets the bits, exactly like the raw
// union it replaces:
//
//	var d fsm.Data
//	d.SetI32(-1)
//	d.U32()    // 0xFFFFFFFF
//	d.Bytes4() // [0xFF, 0xFF, 0xFF, 0xFF]
//
// The reference variant is a separate slot: Go pointers cannot live in raw
// bytes, so SetRef does not disturb the numeric bits and vice versa.
type Data struct {
	bits [4]byte
	ref  any
}

// U32 reads the payload as an unsigned 32-bit value.
func (d Data) U32() uint32 { return binary.LittleEndian.Uint32(d.bits[:]) }

// SetU32 stores an unsigned 32-bit value.
func (d *Data) SetU32(v uint32) { binary.LittleEndian.PutUint32(d.bits[:], v) }

// I32 reads the payload as a signed 32-bit value.
func (d Data) I32() int32 { return int32(d.U32()) }

// SetI32 stores a signed 32-bit value.
func (d *Data) SetI32(v int32) { d.SetU32(uint32(v)) }

// Bytes4 reads the payload as four packed bytes.
func (d Data) Bytes4() [4]byte { return d.bits }

// SetBytes4 stores four packed bytes.
func (d *Data) SetBytes4(b [4]byte) { d.bits = b }

// Ref reads the reference variant of the payload.
func (d Data) Ref() any { return d.ref }

// SetRef stores a reference. The numeric bits are left untouched.
func (d *Data) SetRef(v any) { d.ref = v }
