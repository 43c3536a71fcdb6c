package ihex

// AddressContext carries the addressing state of one scan. A fresh context is
// required per scan; it must not be shared across files or reused.
type AddressContext struct {
	// Base holds the raw address of the most recently seen Data record.
	Base uint32
}

// NewAddressContext returns a context in its initial state.
func NewAddressContext() *AddressContext {
	return &AddressContext{}
}

// Resolution is the resolver's output for one record: the display fields the
// presentation layer needs, plus the absolute address when the record type
// yields one.
type Resolution struct {
	Type     RecordType
	Base     uint32 // base address in effect when the record was resolved
	Absolute uint32
	HasAbs   bool
	Terminal bool
}

// Resolve consumes one validated record, updating the context and computing
// the record's absolute address where applicable.
//
// Data records set the base address to their raw address field. Extended
// Segment Address records yield base + data[0]*0x1000 + data[1]*0x10, and
// Extended Linear Address records base + data[0]*0x1000000 + data[1]*0x10000;
// neither mutates the base address. Every other valid type is a terminal
// marker with no address computation.
func Resolve(r *Record, ctx *AddressContext) Resolution {
	res := Resolution{Type: r.Type}
	switch r.Type {
	case DataRecord:
		ctx.Base = uint32(r.Address)
		res.Base = ctx.Base
	case ExtSegmentAddrRecord:
		d0, d1 := offsetBytes(r.Data)
		res.Base = ctx.Base
		res.Absolute = ctx.Base + d0*0x1000 + d1*0x10
		res.HasAbs = true
	case ExtLinearAddrRecord:
		d0, d1 := offsetBytes(r.Data)
		res.Base = ctx.Base
		res.Absolute = ctx.Base + d0*0x1000000 + d1*0x10000
		res.HasAbs = true
	default:
		res.Base = ctx.Base
		res.Terminal = true
	}
	return res
}

// offsetBytes reads the two offset bytes of an extended address record.
// A record declaring fewer than two data bytes contributes zeros.
func offsetBytes(data []byte) (uint32, uint32) {
	var d0, d1 uint32
	if len(data) > 0 {
		d0 = uint32(data[0])
	}
	if len(data) > 1 {
		d1 = uint32(data[1])
	}
	return d0, d1
}
