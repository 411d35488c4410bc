package bindings

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/assert"
)

// The ABI is maintained by hand from the deployed registry contract, so the
// method surface is pinned to the selectors the chain actually serves.
func TestWhitelistMetaData(t *testing.T) {
	t.Parallel()

	parsed, err := WhitelistMetaData.GetAbi()
	require.NoError(t, err)

	wantSelectors := map[string]string{
		"numAddressesWhitelisted": "4011d7cd",
		"maxWhitelistedAddresses": "31a72188",
		"whitelistedAddresses":    "06c933d8",
		"addAddressToWhitelist":   "8e7314d9",
	}

	assert.Equal(t, len(wantSelectors), len(parsed.Methods))

	for name, want := range wantSelectors {
		method, ok := parsed.Methods[name]
		assert.Assert(t, ok, "method %s is missing", name)
		assert.Equal(t, want, common.Bytes2Hex(method.ID))
	}
}

func TestNewWhitelist(t *testing.T) {
	t.Parallel()

	contract, err := NewWhitelist(common.HexToAddress("0x2222222222222222222222222222222222222222"), nil)
	require.NoError(t, err)
	assert.Assert(t, contract != nil)
}
