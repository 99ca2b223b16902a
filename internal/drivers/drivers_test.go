package drivers

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/san-kum/algolab/internal/frame"
)

func drain(d Driver, data frame.Dataset, target int) []Emission {
	d.Start(data, target)
	var out []Emission
	for {
		em, ok := d.Next()
		if !ok {
			return out
		}
		out = append(out, em)
		if len(out) > 100000 {
			panic("driver does not terminate")
		}
	}
}

func sorters() []Driver {
	return []Driver{NewBubble(frame.LangID), NewSelection(frame.LangID), NewInsertion(frame.LangID)}
}

func TestSorters_Scenario(t *testing.T) {
	for _, d := range sorters() {
		t.Run(d.Name(), func(t *testing.T) {
			data := frame.Dataset{5, 3, 8, 1}
			ems := drain(d, data, 0)

			want := frame.Dataset{1, 3, 5, 8}
			if !slices.Equal(data, want) {
				t.Errorf("final dataset %v, want %v", data, want)
			}
			last := ems[len(ems)-1].Frame
			if last.Kind != frame.KindDone {
				t.Errorf("last frame kind %s, want done", last.Kind)
			}
			if !last.Tags.All(frame.TagSorted) {
				t.Errorf("last highlight %v, want all sorted", last.Tags)
			}
			if d.Outcome().Status != StatusSorted {
				t.Errorf("outcome %s, want sorted", d.Outcome().Status)
			}
		})
	}
}

func TestSorters_RandomInputs(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		n := frame.MinSize + rng.Intn(frame.MaxSize-frame.MinSize+1)
		base, err := frame.Generate(rng, n)
		if err != nil {
			t.Fatal(err)
		}
		for _, d := range sorters() {
			data := base.Clone()
			ems := drain(d, data, 0)
			if !data.IsSorted() {
				t.Fatalf("%s: not sorted: %v", d.Name(), data)
			}
			for _, em := range ems {
				if em.Frame.Len() != n || len(em.Frame.Tags) != n {
					t.Fatalf("%s: frame length changed", d.Name())
				}
			}
			if !ems[len(ems)-1].Frame.Tags.All(frame.TagSorted) {
				t.Fatalf("%s: terminal highlight not all sorted", d.Name())
			}
		}
	}
}

func TestBubble_FrameSequence(t *testing.T) {
	ems := drain(NewBubble(frame.LangID), frame.Dataset{2, 1, 3}, 0)

	kinds := make([]frame.Kind, len(ems))
	for i, em := range ems {
		kinds[i] = em.Frame.Kind
	}
	want := []frame.Kind{frame.KindCompare, frame.KindSwap, frame.KindCompare, frame.KindCompare, frame.KindDone}
	if !slices.Equal(kinds, want) {
		t.Fatalf("kinds %v, want %v", kinds, want)
	}

	first := ems[0].Frame
	if first.Status != "Cek 2 & 1" {
		t.Errorf("status %q", first.Status)
	}
	if first.Tags[0] != frame.TagCompare || first.Tags[1] != frame.TagCompare || first.Tags[2] != frame.TagDefault {
		t.Errorf("compare tags %v", first.Tags)
	}
	swap := ems[1].Frame
	if swap.Values[0] != 1 || swap.Tags[0] != frame.TagSwap {
		t.Errorf("swap frame %v %v", swap.Values, swap.Tags)
	}
	// second pass: index 2 is in the sorted suffix
	third := ems[3].Frame
	if third.Tags[2] != frame.TagSorted {
		t.Errorf("sorted suffix not tagged: %v", third.Tags)
	}
	if ems[len(ems)-1].Pause != PauseNone {
		t.Error("terminal frame should not pause")
	}
}

func TestSelection_PivotAndCompare(t *testing.T) {
	ems := drain(NewSelection(frame.LangID), frame.Dataset{4, 2, 9, 1, 7}, 0)

	first := ems[0].Frame
	if first.Tags[0] != frame.TagPivot || first.Tags[1] != frame.TagCompare {
		t.Errorf("first frame tags %v", first.Tags)
	}
	// after index 1 becomes the running min it is tagged pivot
	second := ems[1].Frame
	if second.Tags[1] != frame.TagPivot || second.Tags[2] != frame.TagCompare {
		t.Errorf("second frame tags %v", second.Tags)
	}

	var swaps int
	for _, em := range ems {
		if em.Frame.Kind == frame.KindSwap {
			swaps++
		}
	}
	if swaps == 0 {
		t.Error("expected at least one swap frame")
	}
}

func TestInsertion_ShiftFrames(t *testing.T) {
	ems := drain(NewInsertion(frame.LangID), frame.Dataset{3, 1}, 0)

	kinds := make([]frame.Kind, len(ems))
	for i, em := range ems {
		kinds[i] = em.Frame.Kind
	}
	want := []frame.Kind{frame.KindPick, frame.KindShift, frame.KindPlace, frame.KindDone}
	if !slices.Equal(kinds, want) {
		t.Fatalf("kinds %v, want %v", kinds, want)
	}
	shift := ems[1].Frame
	if shift.Values[1] != 3 || shift.Tags[0] != frame.TagCompare || shift.Tags[1] != frame.TagSwap {
		t.Errorf("shift frame %v %v", shift.Values, shift.Tags)
	}
	place := ems[2].Frame
	if place.Values[0] != 1 || place.Tags[0] != frame.TagSorted {
		t.Errorf("place frame %v %v", place.Values, place.Tags)
	}
}

func TestLinear_Found(t *testing.T) {
	data := frame.Dataset{4, 2, 9, 1, 7}
	d := NewLinear(frame.LangID)
	ems := drain(d, data, 9)

	out := d.Outcome()
	if out.Status != StatusFound || out.Index != 2 {
		t.Fatalf("outcome %+v, want found at 2", out)
	}
	last := ems[len(ems)-1].Frame
	if last.Kind != frame.KindFound || last.Tags[2] != frame.TagSorted {
		t.Errorf("last frame %s %v", last.Kind, last.Tags)
	}
	if last.Status != "Ketemu! 9 ada di indeks 2" {
		t.Errorf("status %q", last.Status)
	}
	if !slices.Equal(data, frame.Dataset{4, 2, 9, 1, 7}) {
		t.Errorf("linear search reordered data: %v", data)
	}
	// three checks plus the found frame
	if len(ems) != 4 {
		t.Errorf("expected 4 frames, got %d", len(ems))
	}
}

func TestLinear_FirstMatch(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 100; trial++ {
		data, _ := frame.Generate(rng, 10)
		target := rng.Intn(frame.MaxValue) + 1
		d := NewLinear(frame.LangEN)
		drain(d, data.Clone(), target)

		want := data.IndexOf(target)
		out := d.Outcome()
		if want < 0 {
			if out.Status != StatusNotFound {
				t.Fatalf("target %d absent, got %+v", target, out)
			}
			continue
		}
		if out.Status != StatusFound || out.Index != want {
			t.Fatalf("target %d: got %+v, want index %d", target, out, want)
		}
	}
}

func TestBinary_Found(t *testing.T) {
	data := frame.Dataset{4, 2, 9, 1, 7}
	d := NewBinary(frame.LangID)
	ems := drain(d, data, 9)

	presort := ems[0]
	if presort.Frame.Kind != frame.KindPresort || presort.Pause != PauseFixed {
		t.Fatalf("first emission %s pause %d", presort.Frame.Kind, presort.Pause)
	}
	if !slices.Equal(presort.Frame.Values, frame.Dataset{1, 2, 4, 7, 9}) {
		t.Errorf("presort values %v", presort.Frame.Values)
	}
	out := d.Outcome()
	if out.Status != StatusFound || out.Index != 4 {
		t.Fatalf("outcome %+v, want found at 4", out)
	}
	last := ems[len(ems)-1].Frame
	if last.Tags[4] != frame.TagSorted {
		t.Errorf("found index not tagged sorted: %v", last.Tags)
	}
}

func TestBinary_ProbeTags(t *testing.T) {
	ems := drain(NewBinary(frame.LangID), frame.Dataset{1, 2, 4, 7, 9}, 9)
	probe := ems[1].Frame
	want := frame.Highlight{frame.TagCompare, frame.TagCompare, frame.TagPivot, frame.TagCompare, frame.TagCompare}
	if !slices.Equal(probe.Tags, want) {
		t.Errorf("probe tags %v, want %v", probe.Tags, want)
	}
	if probe.Status != "Cari range 0-4. Tengah: 2 (4)" {
		t.Errorf("status %q", probe.Status)
	}
}

func TestBinary_Presence(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 100; trial++ {
		data, _ := frame.Generate(rng, 5+rng.Intn(46))
		target := rng.Intn(frame.MaxValue) + 1
		present := data.IndexOf(target) >= 0

		d := NewBinary(frame.LangID)
		work := data.Clone()
		drain(d, work, target)
		out := d.Outcome()

		if present {
			if out.Status != StatusFound || work[out.Index] != target {
				t.Fatalf("target %d present, got %+v", target, out)
			}
		} else if out.Status != StatusNotFound {
			t.Fatalf("target %d absent, got %+v", target, out)
		}
	}
}

func TestSearch_NotFound(t *testing.T) {
	for _, d := range []Driver{NewLinear(frame.LangID), NewBinary(frame.LangID)} {
		t.Run(d.Name(), func(t *testing.T) {
			data := frame.Dataset{10, 20, 30}
			ems := drain(d, data, 99)
			if d.Outcome().Status != StatusNotFound {
				t.Fatalf("outcome %+v", d.Outcome())
			}
			if !slices.Equal(data, frame.Dataset{10, 20, 30}) {
				t.Errorf("dataset changed: %v", data)
			}
			last := ems[len(ems)-1].Frame
			if last.Kind != frame.KindNotFound || last.Status != "Nilai 99 tidak ditemukan." {
				t.Errorf("last frame %s %q", last.Kind, last.Status)
			}
			if last.Tags.Count(frame.TagSorted) != 0 {
				t.Error("not-found frame carries sorted tags")
			}
		})
	}
}

func TestParseCategory(t *testing.T) {
	if c, err := ParseCategory("searching"); err != nil || c != Searching {
		t.Errorf("got %v, %v", c, err)
	}
	if _, err := ParseCategory("hashing"); err == nil {
		t.Error("expected error")
	}
}
