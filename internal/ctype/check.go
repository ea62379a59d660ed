package ctype

import (
	"declc/internal/dialect"
)

// Check returns the set of dialects in which the full type combination is
// legal. dialect.All means legal everywhere; dialect.None means legal
// nowhere. Check is pure: every dialect sensitivity lives in the tables.
func Check(t Type) dialect.ID {
	langs := checkCombo(t.Base|tidTagBase, baseInfo, okBaseLangs)
	langs &= checkLegal(t.Store|tidTagStore, qualInfo)
	langs &= checkCombo(t.Store|tidTagStore, qualInfo, okQualLangs)
	langs &= checkLegal(t.Store|tidTagStore, storeInfo)
	langs &= checkCombo(t.Store|tidTagStore, storeInfo, okStoreLangs)
	langs &= checkLegal(t.Attr|tidTagAttr, attrInfo)
	return langs
}

// CheckTID returns the set of dialects in which a single part's bits are
// legal, including their pairwise combinations.
func CheckTID(tid TID) dialect.ID {
	switch PartOf(tid) {
	case PartStore:
		return checkCombo(tid, qualInfo, okQualLangs) &
			checkCombo(tid, storeInfo, okStoreLangs)
	case PartAttr:
		return checkLegal(tid, attrInfo)
	default:
		return checkCombo(tid, baseInfo, okBaseLangs)
	}
}

// checkCombo intersects the legality of every pair of set bits, using the
// lower triangle of the combination matrix. The diagonal restates per-bit
// legality, so a lone illegal bit is caught too.
func checkCombo(tid TID, infos []typeInfo, matrix [][]dialect.ID) dialect.ID {
	langs := dialect.All
	for row := range infos {
		if !tid.Intersects(infos[row].tid) {
			continue
		}
		for col := 0; col <= row; col++ {
			if tid.Intersects(infos[col].tid) {
				langs &= matrix[row][col]
			}
		}
	}
	return langs
}

// checkLegal intersects per-bit legality only; used for parts where all
// combinations are legal.
func checkLegal(tid TID, infos []typeInfo) dialect.ID {
	langs := dialect.All
	for i := range infos {
		if tid.Intersects(infos[i].tid) {
			langs &= infos[i].langs
		}
	}
	return langs
}
