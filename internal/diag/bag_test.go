package diag

import (
	"testing"

	"declc/internal/source"
)

func TestBagLimitAndErrors(t *testing.T) {
	bag := NewBag(2)
	sp := source.Span{File: 0, Start: 0, End: 1}

	if !bag.Add(New(SevWarning, WrnRegisterDeprecated, sp, "register is deprecated")) {
		t.Fatal("first Add rejected")
	}
	if bag.HasErrors() {
		t.Error("HasErrors true with only a warning")
	}
	if !bag.Add(NewError(SemArrayOfVoid, sp, "array of void")) {
		t.Fatal("second Add rejected")
	}
	if bag.Add(NewError(SemArrayOfVoid, sp, "dropped")) {
		t.Error("Add beyond capacity succeeded")
	}
	if !bag.HasErrors() {
		t.Error("HasErrors false after adding an error")
	}
	if bag.Len() != 2 {
		t.Errorf("Len = %d, want 2", bag.Len())
	}
}

func TestBagSortAndDedup(t *testing.T) {
	bag := NewBag(8)
	late := source.Span{File: 0, Start: 10, End: 12}
	early := source.Span{File: 0, Start: 2, End: 4}

	bag.Add(NewError(SemReturnArray, late, "function returning array"))
	bag.Add(NewError(SemArrayOfVoid, early, "array of void"))
	bag.Add(NewError(SemArrayOfVoid, early, "array of void"))

	bag.Sort()
	bag.Dedup()

	if bag.Len() != 2 {
		t.Fatalf("Len after dedup = %d, want 2", bag.Len())
	}
	if bag.Items()[0].Code != SemArrayOfVoid {
		t.Errorf("first diagnostic = %v, want SemArrayOfVoid", bag.Items()[0].Code)
	}
}

func TestReportBuilderHint(t *testing.T) {
	bag := NewBag(4)
	sp := source.Span{File: 0, Start: 0, End: 4}
	ReportError(BagReporter{Bag: bag}, SemArrayOfVoid, sp, "array of void").
		WithHint(`"array of pointer to void"`).
		Emit()

	if bag.Len() != 1 {
		t.Fatalf("Len = %d, want 1", bag.Len())
	}
	d := bag.Items()[0]
	if len(d.Notes) != 1 {
		t.Fatalf("Notes = %d, want 1", len(d.Notes))
	}
	want := `did you mean "array of pointer to void"?`
	if d.Notes[0].Msg != want {
		t.Errorf("hint = %q, want %q", d.Notes[0].Msg, want)
	}
}

func TestCodeID(t *testing.T) {
	cases := []struct {
		code Code
		id   string
	}{
		{SemArrayOfVoid, "SEM3001"},
		{TypIllegalType, "TYP4001"},
		{WrnRegisterDeprecated, "WRN5001"},
		{SynUnexpectedToken, "SYN2001"},
	}
	for _, c := range cases {
		if got := c.code.ID(); got != c.id {
			t.Errorf("ID(%d) = %q, want %q", c.code, got, c.id)
		}
	}
}
