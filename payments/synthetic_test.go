package payments

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var cardFormat = regexp.MustCompile(`^4242 \d{4} \d{4} \d{4}$`)

func TestSyntheticCardShape(t *testing.T) {
	for i := 0; i < 50; i++ {
		card := SyntheticCard()
		assert.Regexp(t, cardFormat, card.Number)
		assert.Regexp(t, `^12/\d{2}$`, card.Expiry)
		assert.Regexp(t, `^\d{3}$`, card.Cvv)
		assert.True(t, card.Synthetic)
		assert.Empty(t, card.CardholderID)
		assert.Empty(t, card.CardID)
	}
}
