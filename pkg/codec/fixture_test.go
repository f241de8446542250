package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wolimst/secs2-hsms-core/internal/fixture"
	"github.com/wolimst/secs2-hsms-core/pkg/codec"
	"github.com/wolimst/secs2-hsms-core/pkg/parser"
)

// Testing Strategy:
//
// Partitions:
// - every fixture message with a non-nil data tree root round-trips
//   Encode -> Decode byte-exactly

func TestCodec_FixtureMessagesRoundTrip(t *testing.T) {
	for i, f := range fixture.Messages {
		t.Logf("Test #%d: %s", i, f.Label)
		sf, err := parser.Parse(f.SML)
		assert.NoError(t, err, f.Label)
		if sf.Root == nil {
			continue
		}

		wire, err := codec.Encode(sf.Root)
		assert.NoError(t, err, f.Label)

		decoded, n, err := codec.Decode(wire)
		assert.NoError(t, err, f.Label)
		assert.Equal(t, len(wire), n, f.Label)
		assert.True(t, sf.Root.Equal(decoded), "round trip mismatch for %s", f.Label)
	}
}
