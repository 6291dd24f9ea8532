package contract

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"

	"nostromo_launchpad/sdk"
)

// Storage records are serialized with a compact deterministic binary layout:
// big-endian fixed-width numbers, varint-prefixed strings. The same bytes in
// always produce the same bytes out, which keeps state diffs reviewable.

type binWriter struct {
	buf bytes.Buffer
}

func newWriter() *binWriter { return &binWriter{} }

func (w *binWriter) bytes() []byte { return w.buf.Bytes() }

func (w *binWriter) writeByte(b byte) {
	w.buf.WriteByte(b)
}

func (w *binWriter) writeUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

func (w *binWriter) writeInt64(v int64) {
	w.writeUint64(uint64(v))
}

func (w *binWriter) writeFloat64(v float64) {
	w.writeUint64(math.Float64bits(v))
}

func (w *binWriter) writeVarUint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

func (w *binWriter) writeString(s string) {
	w.writeVarUint(uint64(len(s)))
	w.buf.WriteString(s)
}

func (w *binWriter) writeAddress(a sdk.Address) {
	w.writeString(a.String())
}

// ------------------------------------------------------------------
// Decoder helpers
// ------------------------------------------------------------------

type binReader struct {
	data []byte
	pos  int
}

func newReader(data []byte) *binReader {
	return &binReader{data: data}
}

var errShortRecord = errors.New("unexpected EOF")

func (r *binReader) readByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, errShortRecord
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

func (r *binReader) readUint64() (uint64, error) {
	if r.pos+8 > len(r.data) {
		return 0, errShortRecord
	}
	val := binary.BigEndian.Uint64(r.data[r.pos : r.pos+8])
	r.pos += 8
	return val, nil
}

func (r *binReader) readInt64() (int64, error) {
	v, err := r.readUint64()
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

func (r *binReader) readFloat64() (float64, error) {
	v, err := r.readUint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

func (r *binReader) readVarUint() (uint64, error) {
	val, n := binary.Uvarint(r.data[r.pos:])
	if n <= 0 {
		return 0, errors.New("invalid varuint")
	}
	r.pos += n
	return val, nil
}

func (r *binReader) readString() (string, error) {
	l, err := r.readVarUint()
	if err != nil {
		return "", err
	}
	if r.pos+int(l) > len(r.data) {
		return "", errShortRecord
	}
	s := string(r.data[r.pos : r.pos+int(l)])
	r.pos += int(l)
	return s, nil
}

func (r *binReader) readAddress() (sdk.Address, error) {
	s, err := r.readString()
	if err != nil {
		return sdk.ZeroAddress, err
	}
	return sdk.Address(s), nil
}

// ------------------------------------------------------------------
// Record codecs
// ------------------------------------------------------------------

func encodeConfig(cfg *Config) []byte {
	w := newWriter()
	w.writeAddress(cfg.Admin)
	w.writeInt64(cfg.TransactionFee)
	w.writeInt64(cfg.ProjectFee)
	w.writeByte(cfg.PhaseOneEpochs)
	w.writeByte(cfg.PhaseTwoEpochs)
	w.writeByte(cfg.PhaseThreeEpochs)
	return w.bytes()
}

func decodeConfig(data []byte) (*Config, error) {
	r := newReader(data)
	var cfg Config
	var err error
	if cfg.Admin, err = r.readAddress(); err != nil {
		return nil, err
	}
	if cfg.TransactionFee, err = r.readInt64(); err != nil {
		return nil, err
	}
	if cfg.ProjectFee, err = r.readInt64(); err != nil {
		return nil, err
	}
	if cfg.PhaseOneEpochs, err = r.readByte(); err != nil {
		return nil, err
	}
	if cfg.PhaseTwoEpochs, err = r.readByte(); err != nil {
		return nil, err
	}
	if cfg.PhaseThreeEpochs, err = r.readByte(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func encodeTier(t *Tier) []byte {
	w := newWriter()
	w.writeInt64(t.StakeRequirement)
	w.writeFloat64(t.PoolWeight)
	return w.bytes()
}

func decodeTier(data []byte) (*Tier, error) {
	r := newReader(data)
	var t Tier
	var err error
	if t.StakeRequirement, err = r.readInt64(); err != nil {
		return nil, err
	}
	if t.PoolWeight, err = r.readFloat64(); err != nil {
		return nil, err
	}
	return &t, nil
}

func encodeProjectMeta(m *ProjectMeta) []byte {
	w := newWriter()
	w.writeAddress(m.Owner)
	w.writeByte(byte(m.State))
	w.writeUint64(m.YesVotes)
	w.writeUint64(m.NoVotes)
	w.writeByte(m.InvestOne)
	w.writeByte(m.InvestTwo)
	w.writeByte(m.InvestThree)
	return w.bytes()
}

func decodeProjectMeta(data []byte) (*ProjectMeta, error) {
	r := newReader(data)
	var m ProjectMeta
	var err error
	if m.Owner, err = r.readAddress(); err != nil {
		return nil, err
	}
	b, err := r.readByte()
	if err != nil {
		return nil, err
	}
	m.State = ProjectState(b)
	if m.YesVotes, err = r.readUint64(); err != nil {
		return nil, err
	}
	if m.NoVotes, err = r.readUint64(); err != nil {
		return nil, err
	}
	if m.InvestOne, err = r.readByte(); err != nil {
		return nil, err
	}
	if m.InvestTwo, err = r.readByte(); err != nil {
		return nil, err
	}
	if m.InvestThree, err = r.readByte(); err != nil {
		return nil, err
	}
	return &m, nil
}

func encodeProjectFinance(f *ProjectFinance) []byte {
	w := newWriter()
	w.writeFloat64(f.TotalAmount)
	w.writeFloat64(f.Threshold)
	w.writeUint64(f.TokenPrice)
	w.writeUint64(f.RaisedAmount)
	w.writeUint64(f.RaiseInQubics)
	w.writeUint64(f.TokensInSale)
	return w.bytes()
}

func decodeProjectFinance(data []byte) (*ProjectFinance, error) {
	r := newReader(data)
	var f ProjectFinance
	var err error
	if f.TotalAmount, err = r.readFloat64(); err != nil {
		return nil, err
	}
	if f.Threshold, err = r.readFloat64(); err != nil {
		return nil, err
	}
	if f.TokenPrice, err = r.readUint64(); err != nil {
		return nil, err
	}
	if f.RaisedAmount, err = r.readUint64(); err != nil {
		return nil, err
	}
	if f.RaiseInQubics, err = r.readUint64(); err != nil {
		return nil, err
	}
	if f.TokensInSale, err = r.readUint64(); err != nil {
		return nil, err
	}
	return &f, nil
}
