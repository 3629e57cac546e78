package fragments

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// ByteOrder describes the multi-byte scalar encoding used by a DBus
// message, plus the wire byte that identifies it in a message header.
type ByteOrder interface {
	byteOrder
	dbusFlag() byte
}

type byteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

type wrapStd struct {
	byteOrder
}

func (w wrapStd) dbusFlag() byte {
	switch w.byteOrder {
	case binary.BigEndian:
		return 'B'
	case binary.LittleEndian:
		return 'l'
	case binary.NativeEndian:
		if cpu.IsBigEndian {
			return 'B'
		}
		return 'l'
	default:
		panic("unknown ByteOrder, how did you manage to make one of those?")
	}
}

var (
	// BigEndian is the DBus 'B' byte order.
	BigEndian = wrapStd{binary.BigEndian}
	// LittleEndian is the DBus 'l' byte order.
	LittleEndian = wrapStd{binary.LittleEndian}
	// NativeEndian resolves to BigEndian or LittleEndian according to
	// the host's actual byte order.
	NativeEndian = wrapStd{binary.NativeEndian}
)

// Flag returns the DBus wire byte ('l' or 'B') identifying order.
func Flag(order ByteOrder) byte {
	return order.dbusFlag()
}

// OrderForFlag returns the ByteOrder corresponding to a message's
// byte-order-flag byte, and reports whether the flag was recognized.
func OrderForFlag(flag byte) (ByteOrder, bool) {
	switch flag {
	case 'l':
		return LittleEndian, true
	case 'B':
		return BigEndian, true
	default:
		return nil, false
	}
}
