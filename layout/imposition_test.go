package layout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveSlotFiveQuotes(t *testing.T) {
	idx, err := ComputeIndex(5, 4)
	require.NoError(t, err)

	require.Equal(t, Slot{Kind: FrontCover}, ResolveSlot(0, idx))
	for n := 1; n <= 5; n++ {
		require.Equal(t, Slot{Kind: QuotePage, Quote: n - 1}, ResolveSlot(n, idx))
	}
	require.Equal(t, Slot{Kind: AnswerKey}, ResolveSlot(6, idx))
	require.Equal(t, Slot{Kind: BackMatter}, ResolveSlot(7, idx))
}

func TestResolveSlotIsExhaustive(t *testing.T) {
	for _, k := range []Kind{FourUp, TwoUp} {
		sub := k.Profile().SubpagePerSide
		for q := 0; q <= 60; q++ {
			idx, err := ComputeIndex(q, sub)
			require.NoError(t, err)

			counts := map[SlotKind]int{}
			seenQuote := make([]bool, q)
			for n := 0; n < idx.Total; n++ {
				slot := ResolveSlot(n, idx)
				counts[slot.Kind]++
				switch slot.Kind {
				case FrontCover:
					require.Equal(t, 0, n)
				case BackMatter:
					require.Equal(t, idx.Total-1, n)
				case AnswerKey:
					require.Equal(t, idx.Total-2, n)
				case QuotePage:
					require.Equal(t, n-1, slot.Quote)
					require.False(t, seenQuote[slot.Quote])
					seenQuote[slot.Quote] = true
				}
			}
			require.Equal(t, 1, counts[FrontCover])
			require.Equal(t, 1, counts[BackMatter])
			require.Equal(t, 1, counts[AnswerKey])
			require.Equal(t, q, counts[QuotePage], "%s quotes=%d", k, q)
			require.Equal(t, idx.Blank, counts[Blank], "%s quotes=%d", k, q)
		}
	}
}

func TestImposeFourUpEightPages(t *testing.T) {
	idx, err := ComputeIndex(5, 4)
	require.NoError(t, err)
	sides := Impose(FourUp, idx)
	require.Equal(t, []SheetSide{
		{Iteration: 0, Sheet: 1, Side: Front, Indices: []int{0, 7, 4, 3}},
		{Iteration: 1, Sheet: 1, Side: Back, Indices: []int{1, 6, 5, 2}},
	}, sides)
	require.Equal(t, "proverbs-1-f", sides[0].Name("proverbs"))
	require.Equal(t, "proverbs-1-b", sides[1].Name("proverbs"))
}

func TestImposeTwoUpEightPages(t *testing.T) {
	idx, err := ComputeIndex(5, 2)
	require.NoError(t, err)
	require.Equal(t, 8, idx.Total)
	sides := Impose(TwoUp, idx)
	require.Len(t, sides, 4)
	want := [][]int{{0, 7}, {1, 6}, {2, 5}, {3, 4}}
	for i, side := range sides {
		require.Equal(t, want[i], side.Indices)
		require.Equal(t, i/2+1, side.Sheet)
	}
	require.Equal(t, Front, sides[2].Side)
	require.Equal(t, Back, sides[3].Side)
}

// 每个逻辑页恰好出现一次，且每面的子页数与版式位置数一致。
func TestImposeCoversEveryPageOnce(t *testing.T) {
	for _, k := range []Kind{FourUp, TwoUp} {
		profile := k.Profile()
		for q := 0; q <= 80; q++ {
			idx, err := ComputeIndex(q, profile.SubpagePerSide)
			require.NoError(t, err)
			sides := Impose(k, idx)
			require.Len(t, sides, idx.Sheets)

			seen := make([]int, idx.Total)
			for n, side := range sides {
				require.Len(t, side.Indices, len(profile.Positions))
				require.Equal(t, n/2+1, side.Sheet)
				if n%2 == 0 {
					require.Equal(t, Front, side.Side)
				} else {
					require.Equal(t, Back, side.Side)
				}
				for _, i := range side.Indices {
					require.GreaterOrEqual(t, i, 0)
					require.Less(t, i, idx.Total)
					seen[i]++
				}
			}
			for i, c := range seen {
				require.Equal(t, 1, c, "%s quotes=%d page %d", k, q, i)
			}
		}
	}
}

// 对折后相邻的两页在同一面上左右相邻，页码之和恒为 total-1（四联版的上下两半各自成立）。
func TestImposeFoldPairs(t *testing.T) {
	idx, err := ComputeIndex(21, 4)
	require.NoError(t, err)
	for _, side := range Impose(FourUp, idx) {
		a, b, c, d := side.Indices[0], side.Indices[1], side.Indices[2], side.Indices[3]
		require.Equal(t, idx.Total-1, a+b)
		require.Equal(t, idx.Total-1, c+d)
	}

	idx, err = ComputeIndex(21, 2)
	require.NoError(t, err)
	for _, side := range Impose(TwoUp, idx) {
		require.Equal(t, idx.Total-1, side.Indices[0]+side.Indices[1])
	}
}

func TestSlotString(t *testing.T) {
	require.Equal(t, "quote(3)", Slot{Kind: QuotePage, Quote: 3}.String())
	require.Equal(t, "blank", Slot{}.String())
	require.Equal(t, "answer", AnswerKey.String())
}
