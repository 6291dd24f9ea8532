package contract

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// -----------------------------------------------------------------------------
// Procedure dispatch
// -----------------------------------------------------------------------------

// ProcID is the wire-level number of a mutating procedure. The numbering is
// the deployed contract's registration table; internal naming is decoupled
// from it, so renaming a handler never shifts the wire surface.
type ProcID uint16

const (
	ProcAddUserTier         ProcID = 1
	ProcRemoveUserTier      ProcID = 2
	ProcCreateProject       ProcID = 3
	ProcGetProject          ProcID = 4
	ProcChangeProjectState  ProcID = 5
	ProcRegisterForProject  ProcID = 6
	ProcUnregisterProject   ProcID = 7
	ProcVoteProject         ProcID = 8
	ProcCheckProjectVote    ProcID = 9
	ProcSetPhaseOneEpochs   ProcID = 10
	ProcSetPhaseTwoEpochs   ProcID = 11
	ProcSetPhaseThreeEpochs ProcID = 12
	ProcInvestInProject     ProcID = 13
)

// FuncID numbers the read-only query functions. Queries carry no payment
// and never mutate; they live in their own numbering space.
type FuncID uint16

const (
	FuncGetProject       FuncID = 1
	FuncCheckProjectVote FuncID = 2
	FuncProjectCaps      FuncID = 3
	FuncTotalStakeWeight FuncID = 4
)

// ErrUnknownProcedure is returned for numbers outside the dispatch tables.
var ErrUnknownProcedure = errors.New("unknown procedure")

// ErrBadInput is returned when a wire record cannot be decoded. Malformed
// input is a host/transport fault, not a ledger rejection, so it surfaces
// as an error rather than a status.
var ErrBadInput = errors.New("malformed input record")

type procHandler func(c *Contract, r *wireReader, w *wireWriter) error

var procTable = map[ProcID]procHandler{
	ProcAddUserTier:         invokeAddUserTier,
	ProcRemoveUserTier:      invokeRemoveUserTier,
	ProcCreateProject:       invokeCreateProject,
	ProcGetProject:          invokeGetProject,
	ProcChangeProjectState:  invokeChangeProjectState,
	ProcRegisterForProject:  invokeRegisterForProject,
	ProcUnregisterProject:   invokeUnregisterForProject,
	ProcVoteProject:         invokeVoteProject,
	ProcCheckProjectVote:    invokeCheckProjectVote,
	ProcSetPhaseOneEpochs:   invokeSetPhaseOneEpochs,
	ProcSetPhaseTwoEpochs:   invokeSetPhaseTwoEpochs,
	ProcSetPhaseThreeEpochs: invokeSetPhaseThreeEpochs,
	ProcInvestInProject:     invokeInvestInProject,
}

var funcTable = map[FuncID]procHandler{
	FuncGetProject:       invokeGetProject,
	FuncCheckProjectVote: invokeCheckProjectVote,
	FuncProjectCaps:      invokeProjectCaps,
	FuncTotalStakeWeight: invokeTotalStakeWeight,
}

// Invoke decodes the little-endian input record for proc, runs the handler
// and returns the encoded output record, status first.
func (c *Contract) Invoke(proc ProcID, input []byte) ([]byte, error) {
	if !c.Initialized() {
		return nil, ErrNotInitialized
	}
	handler, ok := procTable[proc]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownProcedure, proc)
	}
	r := newWireReader(input)
	w := &wireWriter{}
	if err := handler(c, r, w); err != nil {
		return nil, err
	}
	return w.bytes(), nil
}

// Query runs a read-only function. Same wire shape as Invoke, no payment.
func (c *Contract) Query(fn FuncID, input []byte) ([]byte, error) {
	if !c.Initialized() {
		return nil, ErrNotInitialized
	}
	handler, ok := funcTable[fn]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownProcedure, fn)
	}
	r := newWireReader(input)
	w := &wireWriter{}
	if err := handler(c, r, w); err != nil {
		return nil, err
	}
	return w.bytes(), nil
}

// -----------------------------------------------------------------------------
// Wire codec: little-endian fixed-width numbers, u16-length-prefixed strings
// -----------------------------------------------------------------------------

type wireWriter struct {
	buf bytes.Buffer
}

func (w *wireWriter) bytes() []byte { return w.buf.Bytes() }

func (w *wireWriter) u8(v uint8) {
	w.buf.WriteByte(v)
}

func (w *wireWriter) u32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf.Write(b[:])
}

func (w *wireWriter) u64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

func (w *wireWriter) f64(v float64) {
	w.u64(math.Float64bits(v))
}

func (w *wireWriter) str(s string) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], uint16(len(s)))
	w.buf.Write(b[:])
	w.buf.WriteString(s)
}

func (w *wireWriter) status(s Status) {
	w.u32(uint32(s))
}

type wireReader struct {
	data []byte
	pos  int
	err  error
}

func newWireReader(data []byte) *wireReader {
	return &wireReader{data: data}
}

func (r *wireReader) fail() {
	if r.err == nil {
		r.err = ErrBadInput
	}
}

func (r *wireReader) u8() uint8 {
	if r.err != nil || r.pos+1 > len(r.data) {
		r.fail()
		return 0
	}
	v := r.data[r.pos]
	r.pos++
	return v
}

func (r *wireReader) u32() uint32 {
	if r.err != nil || r.pos+4 > len(r.data) {
		r.fail()
		return 0
	}
	v := binary.LittleEndian.Uint32(r.data[r.pos : r.pos+4])
	r.pos += 4
	return v
}

func (r *wireReader) u64() uint64 {
	if r.err != nil || r.pos+8 > len(r.data) {
		r.fail()
		return 0
	}
	v := binary.LittleEndian.Uint64(r.data[r.pos : r.pos+8])
	r.pos += 8
	return v
}

func (r *wireReader) f64() float64 {
	return math.Float64frombits(r.u64())
}

// -----------------------------------------------------------------------------
// Handlers
// -----------------------------------------------------------------------------

func invokeAddUserTier(c *Contract, r *wireReader, w *wireWriter) error {
	in := AddUserTierInput{Tier: TierLevel(r.u32())}
	if r.err != nil {
		return r.err
	}
	out := c.AddUserTier(in)
	w.status(out.Status)
	return nil
}

func invokeRemoveUserTier(c *Contract, _ *wireReader, w *wireWriter) error {
	out := c.RemoveUserTier()
	w.status(out.Status)
	return nil
}

func invokeCreateProject(c *Contract, r *wireReader, w *wireWriter) error {
	in := CreateProjectInput{Finance: ProjectFinance{
		TotalAmount:   r.f64(),
		Threshold:     r.f64(),
		TokenPrice:    r.u64(),
		RaisedAmount:  r.u64(),
		RaiseInQubics: r.u64(),
		TokensInSale:  r.u64(),
	}}
	if r.err != nil {
		return r.err
	}
	out := c.CreateProject(in)
	w.status(out.Status)
	w.u64(out.ProjectID)
	return nil
}

func invokeGetProject(c *Contract, r *wireReader, w *wireWriter) error {
	in := GetProjectInput{ProjectID: r.u64()}
	if r.err != nil {
		return r.err
	}
	out := c.GetProject(in)
	w.status(out.Status)
	if out.Status != StatusSuccess {
		return nil
	}
	w.str(out.Meta.Owner.String())
	w.u32(uint32(out.Meta.State))
	w.u64(out.Meta.YesVotes)
	w.u64(out.Meta.NoVotes)
	w.u8(out.Meta.InvestOne)
	w.u8(out.Meta.InvestTwo)
	w.u8(out.Meta.InvestThree)
	w.f64(out.Finance.TotalAmount)
	w.f64(out.Finance.Threshold)
	w.u64(out.Finance.TokenPrice)
	w.u64(out.Finance.RaisedAmount)
	w.u64(out.Finance.RaiseInQubics)
	w.u64(out.Finance.TokensInSale)
	return nil
}

func invokeChangeProjectState(c *Contract, r *wireReader, w *wireWriter) error {
	in := ChangeProjectStateInput{
		ProjectID: r.u64(),
		NewState:  ProjectState(r.u32()),
	}
	if r.err != nil {
		return r.err
	}
	out := c.ChangeProjectState(in)
	w.status(out.Status)
	return nil
}

func invokeRegisterForProject(c *Contract, r *wireReader, w *wireWriter) error {
	in := RegisterInput{ProjectID: r.u64()}
	if r.err != nil {
		return r.err
	}
	out := c.RegisterForProject(in)
	w.status(out.Status)
	return nil
}

func invokeUnregisterForProject(c *Contract, r *wireReader, w *wireWriter) error {
	in := UnregisterInput{ProjectID: r.u64()}
	if r.err != nil {
		return r.err
	}
	out := c.UnregisterForProject(in)
	w.status(out.Status)
	return nil
}

func invokeVoteProject(c *Contract, r *wireReader, w *wireWriter) error {
	in := VoteProjectInput{
		ProjectID: r.u64(),
		Vote:      VoteValue(r.u32()),
	}
	if r.err != nil {
		return r.err
	}
	out := c.VoteProject(in)
	w.status(out.Status)
	return nil
}

func invokeCheckProjectVote(c *Contract, r *wireReader, w *wireWriter) error {
	in := CheckProjectVoteInput{ProjectID: r.u64()}
	if r.err != nil {
		return r.err
	}
	out := c.CheckProjectVote(in)
	w.status(out.Status)
	w.u64(out.YesVotes)
	w.u64(out.NoVotes)
	return nil
}

func invokeSetPhaseOneEpochs(c *Contract, r *wireReader, w *wireWriter) error {
	return invokeSetPhase(c.SetPhaseOneEpochs, r, w)
}

func invokeSetPhaseTwoEpochs(c *Contract, r *wireReader, w *wireWriter) error {
	return invokeSetPhase(c.SetPhaseTwoEpochs, r, w)
}

func invokeSetPhaseThreeEpochs(c *Contract, r *wireReader, w *wireWriter) error {
	return invokeSetPhase(c.SetPhaseThreeEpochs, r, w)
}

func invokeSetPhase(set func(SetPhaseEpochsInput) SetPhaseEpochsOutput, r *wireReader, w *wireWriter) error {
	in := SetPhaseEpochsInput{Epochs: r.u8()}
	if r.err != nil {
		return r.err
	}
	out := set(in)
	w.status(out.Status)
	return nil
}

func invokeInvestInProject(c *Contract, r *wireReader, w *wireWriter) error {
	in := InvestInProjectInput{
		ProjectID: r.u64(),
		Amount:    r.u64(),
	}
	if r.err != nil {
		return r.err
	}
	out := c.InvestInProject(in)
	w.status(out.Status)
	return nil
}

func invokeProjectCaps(c *Contract, r *wireReader, w *wireWriter) error {
	in := ProjectCapsInput{ProjectID: r.u64()}
	if r.err != nil {
		return r.err
	}
	out := c.ProjectCaps(in)
	w.status(out.Status)
	w.f64(out.Caps.MinCap)
	w.f64(out.Caps.MaxCap)
	return nil
}

func invokeTotalStakeWeight(c *Contract, r *wireReader, w *wireWriter) error {
	in := TotalStakeWeightInput{ProjectID: r.u64()}
	if r.err != nil {
		return r.err
	}
	out := c.TotalStakeWeight(in)
	w.status(out.Status)
	w.f64(out.Total)
	return nil
}
