package proving_test

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/pow/proving"
	"github.com/spacemeshos/pow/shared"
)

// TestGenerateProof_Rounds runs one search per power-of-two difficulty and reports the cost of each round.
func TestGenerateProof_Rounds(t *testing.T) {
	rounds := 14
	if testing.Short() {
		rounds = 8
	}

	ch := randomChallenge(t)
	data := make([][]string, 0, rounds)
	for i := 0; i < rounds; i++ {
		difficulty := uint64(1) << i

		start := time.Now()
		proof, err := proving.Search(context.Background(), ch, difficulty)
		elapsed := time.Since(start)
		require.NoError(t, err)
		require.True(t, verify(t, ch, difficulty, proof.String()))

		data = append(data, []string{
			strconv.Itoa(i),
			strconv.FormatUint(difficulty, 10),
			proof.String(),
			strconv.FormatUint(proof.Iterations, 10),
			elapsed.Round(time.Microsecond).String(),
		})
	}

	var out strings.Builder
	table := tablewriter.NewWriter(&out)
	table.SetHeader([]string{"round", "difficulty", "nonce", "iterations", "time"})
	table.SetBorder(true)
	table.AppendBulk(data)
	table.Render()
	t.Logf("\n%s", out.String())
}

func BenchmarkComputeDigest(b *testing.B) {
	var buf shared.WorkBuffer
	var out shared.Digest

	b.ReportAllocs()
	b.SetBytes(shared.WorkBufferSize)
	for i := 0; i < b.N; i++ {
		buf[0] = byte(i)
		proving.ComputeDigest(&buf, &out)
	}
}

func BenchmarkSearch(b *testing.B) {
	ch := randomChallenge(b)
	for _, difficulty := range []uint64{1 << 8, 1 << 12, 1 << 16} {
		b.Run(fmt.Sprintf("difficulty=%d", difficulty), func(b *testing.B) {
			var iterations uint64
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				proof, err := proving.Search(context.Background(), ch, difficulty)
				if err != nil {
					b.Fatal(err)
				}
				iterations += proof.Iterations
			}
			b.ReportMetric(float64(iterations)/float64(b.N), "iterations/op")
		})
	}
}
