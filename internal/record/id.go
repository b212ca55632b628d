package record

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/pautaops/pauta/internal/catalog"
)

// keyAttempts bounds how often NewKey retries the short random suffix
// before falling back to a collision-resistant one.
const keyAttempts = 50

// NewKey generates an identity key like "PI-2025-042". The exists callback
// is consulted so a key already present in the live collection is never
// handed out; after too many collisions the suffix switches to a uuid
// fragment instead of looping forever.
func NewKey(prefix string, exists func(string) bool) string {
	year := time.Now().Year()
	for i := 0; i < keyAttempts; i++ {
		key := fmt.Sprintf("%s-%d-%03d", prefix, year, rand.Intn(1000))
		if exists == nil || !exists(key) {
			return key
		}
	}
	return fmt.Sprintf("%s-%d-%s", prefix, year, uuid.NewString()[:8])
}

// DeriveGross fills VALOR_BRUTO with net plus commission when the caller
// left it unset. This runs once at creation; edits never recompute the
// stored gross value. Catalogs without the net/commission pair (PC) are
// left alone.
func DeriveGross(cat *catalog.Catalog, rec Record) {
	if _, ok := cat.ByKey("VALOR_LIQUIDO"); !ok {
		return
	}
	if _, ok := cat.ByKey("VALOR_COMISSAO"); !ok {
		return
	}
	if rec.Number("VALOR_BRUTO") != 0 {
		return
	}
	rec["VALOR_BRUTO"] = rec.Number("VALOR_LIQUIDO") + rec.Number("VALOR_COMISSAO")
}
