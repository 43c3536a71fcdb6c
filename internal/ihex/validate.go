package ihex

// ComputeChecksum returns the checksum the record's fields call for: the
// two's complement of the byte sum of count, address halves, type and data.
func (r *Record) ComputeChecksum() byte {
	sum := r.ByteCount + int(r.Address>>8) + int(r.Address&0xFF) + int(r.Type)
	for _, b := range r.Data {
		sum += int(b)
	}
	return byte(-sum & 0xFF)
}

// Validate confirms the record's trailing checksum field. The record must
// already have passed Decode; the only remaining failure is ChecksumMismatch.
func (r *Record) Validate() error {
	if r.ComputeChecksum() != r.Checksum {
		return newFault(ChecksumMismatch)
	}
	return nil
}

// CheckLine runs Decode then Validate on one line, surfacing exactly one
// fault for an invalid record, whichever check triggers first.
func CheckLine(line string) error {
	r, err := Decode(line)
	if err != nil {
		return err
	}
	return r.Validate()
}
