package layout

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeIndexFiveQuotesFourUp(t *testing.T) {
	idx, err := ComputeIndex(5, 4)
	require.NoError(t, err)
	require.Equal(t, BookletIndex{Quotes: 5, TextPages: 8, Blank: 0, Total: 8, Sheets: 2, Subpages: 4}, idx)
}

func TestComputeIndexOddSheetCorrection(t *testing.T) {
	idx, err := ComputeIndex(1, 4)
	require.NoError(t, err)
	require.Equal(t, 4, idx.TextPages)
	require.Equal(t, 4, idx.Blank)
	require.Equal(t, 8, idx.Total)
	require.Equal(t, 2, idx.Sheets)
}

func TestComputeIndexTwoPassPadding(t *testing.T) {
	// 6 条引文：9 页 → 补 3 页到 12 → 3 面为奇数 → 再补 4 页
	idx, err := ComputeIndex(6, 4)
	require.NoError(t, err)
	require.Equal(t, 7, idx.Blank)
	require.Equal(t, 16, idx.Total)
	require.Equal(t, 4, idx.Sheets)

	// two_up：0 条引文：3 页 → 补 1 页到 4 → 2 面，无需修正
	idx, err = ComputeIndex(0, 2)
	require.NoError(t, err)
	require.Equal(t, 1, idx.Blank)
	require.Equal(t, 4, idx.Total)
	require.Equal(t, 2, idx.Sheets)
}

func TestComputeIndexInvariants(t *testing.T) {
	for _, k := range []Kind{FourUp, TwoUp} {
		sub := k.Profile().SubpagePerSide
		for q := 0; q <= 200; q++ {
			idx, err := ComputeIndex(q, sub)
			require.NoError(t, err, "%s quotes=%d", k, q)
			require.Zero(t, idx.Total%sub, "%s quotes=%d", k, q)
			require.Zero(t, idx.Sheets%2, "%s quotes=%d", k, q)
			require.Equal(t, idx.TextPages+idx.Blank, idx.Total)
			require.Equal(t, q+CoverPages+AnswerPages, idx.TextPages)
			require.Less(t, idx.Blank, 2*sub)
		}
	}
}

func TestComputeIndexRejectsBadInput(t *testing.T) {
	_, err := ComputeIndex(3, 0)
	require.True(t, errors.Is(err, ErrPaginationInvariant))
	_, err = ComputeIndex(-1, 4)
	require.ErrorIs(t, err, ErrPaginationInvariant)
}

func TestBookletIndexCheck(t *testing.T) {
	require.ErrorIs(t, BookletIndex{Total: 10, Sheets: 2, Subpages: 4}.check(), ErrPaginationInvariant)
	require.ErrorIs(t, BookletIndex{Total: 12, Sheets: 3, Subpages: 4}.check(), ErrPaginationInvariant)
	require.NoError(t, BookletIndex{Total: 16, Sheets: 4, Subpages: 4}.check())
}
