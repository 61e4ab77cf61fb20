package outcome

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_Icon(t *testing.T) {
	assert.Equal(t, "✅", Delivered.Icon())
	assert.Equal(t, "♻️", Replaced.Icon())
	assert.Equal(t, "⏩", Unchanged.Icon())
	assert.Equal(t, "⏩", Excluded.Icon())
	assert.Equal(t, "⚠️", NotAvailable.Icon())
	assert.Equal(t, "❌", Failed.Icon())
}

func TestOutcome_String(t *testing.T) {
	o := New(Delivered, "%s | %s updated in %s", "Heat (1995)", "Poster", "Movies").In("Movies")
	assert.Equal(t, "✅ Heat (1995) | Poster updated in Movies", o.String())
	assert.Equal(t, "Movies", o.Library)
}

func TestSummary(t *testing.T) {
	s := NewSummary()

	var wg sync.WaitGroup
	for _, st := range []Status{Delivered, Replaced, Unchanged, Failed, Delivered} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Record()
			s.Add(Outcome{Status: st})
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, s.Processed)
	assert.Equal(t, 3, s.Updated)
	assert.Equal(t, 2, s.Counts[Delivered])
	assert.Len(t, s.Outcomes, 5)
	assert.Equal(t, "✔️ Finished processing. 5 records processed, 3 assets updated.", s.Line())
}
