package id

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	gen := NewGenerator()

	id1 := gen.Generate()
	id2 := gen.Generate()

	assert.NotEqual(t, id1.String(), id2.String())
	assert.Len(t, gen.GenerateString(), 26)
}

func TestGenerateWithPrefix(t *testing.T) {
	gen := NewGenerator()

	for _, prefix := range []string{RequestPrefix, TracePrefix, EnquiryPrefix} {
		t.Run(prefix, func(t *testing.T) {
			id := gen.GenerateWithPrefix(prefix)
			require.True(t, strings.HasPrefix(id, prefix+"_"))

			parts := strings.Split(id, "_")
			require.Len(t, parts, 2)
			assert.True(t, IsValid(parts[1]))
		})
	}
}

func TestTypedIDs(t *testing.T) {
	assert.True(t, strings.HasPrefix(NewRequestID().String(), "req_"))
	assert.True(t, strings.HasPrefix(NewTraceID().String(), "trace_"))
	assert.True(t, strings.HasPrefix(NewSpanID().String(), "span_"))
	assert.True(t, strings.HasPrefix(NewEnquiryID().String(), "enq_"))
}

func TestTimestamp(t *testing.T) {
	before := time.Now().Add(-time.Second)
	raw := NewGenerator().GenerateString()

	ts, err := Timestamp(raw)
	require.NoError(t, err)
	assert.True(t, ts.After(before))

	_, err = Timestamp("not-a-ulid")
	assert.Error(t, err)
}

func TestConcurrentGeneration(t *testing.T) {
	gen := NewGenerator()
	const n = 200

	var (
		mu   sync.Mutex
		seen = make(map[string]struct{}, n)
		wg   sync.WaitGroup
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := gen.GenerateString()
			mu.Lock()
			seen[s] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, n)
}
