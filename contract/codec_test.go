package contract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nostromo_launchpad/sdk"
)

var testAddr = sdk.Address("TESTER" + strings.Repeat("E", 54))

// TestConfigCodecRoundtrip tests that a config record survives the storage
// codec unchanged.
func TestConfigCodecRoundtrip(t *testing.T) {
	in := Config{
		Admin:            testAddr,
		TransactionFee:   1000,
		ProjectFee:       10000,
		PhaseOneEpochs:   2,
		PhaseTwoEpochs:   4,
		PhaseThreeEpochs: 6,
	}

	out, err := decodeConfig(encodeConfig(&in))

	require.NoError(t, err)
	assert.Equal(t, in, *out)
}

// TestTierCodecRoundtrip tests the tier record codec.
func TestTierCodecRoundtrip(t *testing.T) {
	in := Tier{StakeRequirement: 30, PoolWeight: 305.0}

	out, err := decodeTier(encodeTier(&in))

	require.NoError(t, err)
	assert.Equal(t, in, *out)
}

// TestProjectMetaCodecRoundtrip tests the mutable project record codec.
func TestProjectMetaCodecRoundtrip(t *testing.T) {
	in := ProjectMeta{
		Owner:       testAddr,
		State:       StatePrepareVote,
		YesVotes:    17,
		NoVotes:     3,
		InvestOne:   1,
		InvestTwo:   2,
		InvestThree: 3,
	}

	out, err := decodeProjectMeta(encodeProjectMeta(&in))

	require.NoError(t, err)
	assert.Equal(t, in, *out)
}

// TestProjectFinanceCodecRoundtrip tests the finance record codec.
func TestProjectFinanceCodecRoundtrip(t *testing.T) {
	in := ProjectFinance{
		TotalAmount:   250_000,
		Threshold:     0.1,
		TokenPrice:    5,
		RaisedAmount:  123,
		RaiseInQubics: 1_250_000,
		TokensInSale:  50_000,
	}

	out, err := decodeProjectFinance(encodeProjectFinance(&in))

	require.NoError(t, err)
	assert.Equal(t, in, *out)
}

// TestDecodeTruncatedRecords tests that every codec rejects short input
// instead of fabricating zero values.
func TestDecodeTruncatedRecords(t *testing.T) {
	meta := encodeProjectMeta(&ProjectMeta{Owner: testAddr, State: StateDraft})
	_, err := decodeProjectMeta(meta[:len(meta)-1])
	assert.Error(t, err)

	fin := encodeProjectFinance(&ProjectFinance{TotalAmount: 1})
	_, err = decodeProjectFinance(fin[:7])
	assert.Error(t, err)

	_, err = decodeTier(nil)
	assert.Error(t, err)

	cfg := encodeConfig(&Config{Admin: testAddr})
	_, err = decodeConfig(cfg[:4])
	assert.Error(t, err)
}

// TestEncodingIsDeterministic tests byte-for-byte stability across repeated
// encodes of the same record.
func TestEncodingIsDeterministic(t *testing.T) {
	m := ProjectMeta{Owner: testAddr, State: StateVote, YesVotes: 9}

	assert.Equal(t, encodeProjectMeta(&m), encodeProjectMeta(&m))
}
