package breaks

import (
	"testing"

	"github.com/waraq/waraq/geometry"
	"github.com/waraq/waraq/measure"
	"github.com/waraq/waraq/model"
	"github.com/waraq/waraq/paginate"
)

// measureDoc runs the reference measurer over a document for break tests
func measureDoc(t *testing.T, doc *model.Document) (measure.Measurement, geometry.ContentDimensions) {
	t.Helper()
	layout := geometry.DefaultPageLayout()
	pd := geometry.ResolvePageDimensions(layout)
	cd := geometry.ResolveContentDimensions(pd, layout.Margins, 1.0)

	m, err := measure.NewBlockMeasurer().Measure(doc, cd)
	if err != nil {
		t.Fatalf("measure failed: %v", err)
	}
	return m, cd
}

// longDoc builds a document tall enough to overflow several pages
func longDoc(paragraphs int) *model.Document {
	doc := model.NewDocument()
	for i := 0; i < paragraphs; i++ {
		doc.Append(&model.Paragraph{Text: "نص فقرة تجريبية تمتد على عدة أسطر لاختبار تدفق الصفحات في المحرر وتكرارها مرة بعد مرة حتى يفيض المحتوى"})
	}
	return doc
}

// TestStateTransitions tests Unpaginated -> SinglePage <-> MultiPage
func TestStateTransitions(t *testing.T) {
	bm := NewModel()
	if bm.State() != Unpaginated {
		t.Fatalf("initial state = %v, want Unpaginated", bm.State())
	}

	// Short document: single page.
	doc := model.NewDocument()
	doc.Append(&model.Paragraph{Text: "قصير"})
	meas, cd := measureDoc(t, doc)
	info := paginate.Compute(meas.Height, cd)
	bm.Update(doc, info, meas.Blocks)
	if bm.State() != SinglePage {
		t.Errorf("state = %v, want SinglePage", bm.State())
	}
	if bm.PageCount() != 1 {
		t.Errorf("page count = %d, want 1", bm.PageCount())
	}

	// Insert a manual break: multi-page even without overflow.
	pb, err := bm.InsertBreak(doc, 1)
	if err != nil {
		t.Fatalf("InsertBreak failed: %v", err)
	}
	doc.Append(&model.Paragraph{Text: "صفحة ثانية"})
	meas, cd = measureDoc(t, doc)
	info = paginate.Compute(meas.Height, cd)
	bm.Update(doc, info, meas.Blocks)
	if bm.State() != MultiPage {
		t.Errorf("state = %v, want MultiPage", bm.State())
	}
	if bm.PageCount() != 2 {
		t.Errorf("page count = %d, want 2", bm.PageCount())
	}

	// Remove the break: back to single page.
	if !bm.RemoveBreak(doc, pb.ID) {
		t.Fatal("RemoveBreak failed")
	}
	meas, cd = measureDoc(t, doc)
	info = paginate.Compute(meas.Height, cd)
	bm.Update(doc, info, meas.Blocks)
	if bm.State() != SinglePage {
		t.Errorf("state after removal = %v, want SinglePage", bm.State())
	}
}

// TestAutomaticOverflowMultiPage tests state driven purely by overflow
func TestAutomaticOverflowMultiPage(t *testing.T) {
	bm := NewModel()
	doc := longDoc(40)
	meas, cd := measureDoc(t, doc)
	info := paginate.Compute(meas.Height, cd)
	info = paginate.Refine(info, meas.Blocks, paginate.DefaultSnapConfig())

	bm.Update(doc, info, meas.Blocks)
	if bm.State() != MultiPage {
		t.Errorf("state = %v, want MultiPage", bm.State())
	}
	if bm.PageCount() < 2 {
		t.Errorf("page count = %d, want >= 2", bm.PageCount())
	}
	positions := bm.Positions()
	if len(positions) != bm.PageCount()-1 {
		t.Errorf("%d positions for %d pages", len(positions), bm.PageCount())
	}
	for i := 1; i < len(positions); i++ {
		if positions[i] <= positions[i-1] {
			t.Errorf("positions not ascending: %v", positions)
		}
	}
}

// TestReconcileNoDoubleCount tests a manual break coinciding with an
// automatic boundary producing a single page boundary
func TestReconcileNoDoubleCount(t *testing.T) {
	manual := []float64{1000}
	auto := []float64{1004, 2000}

	merged := reconcile(manual, auto, 12, 3000)
	if len(merged) != 2 {
		t.Fatalf("merged = %v, want 2 boundaries", merged)
	}
	if merged[0] != 1000 || merged[1] != 2000 {
		t.Errorf("merged = %v, want [1000 2000]", merged)
	}
}

// TestOrphanPruning tests that deleting the content around a manual
// marker drops it on the next reconciliation
func TestOrphanPruning(t *testing.T) {
	bm := NewModel()
	doc := model.NewDocument()
	doc.Append(&model.Paragraph{Text: "أ"})
	pb, _ := bm.InsertBreak(doc, 1)
	doc.Append(&model.Paragraph{Text: "ب"})

	meas, cd := measureDoc(t, doc)
	info := paginate.Compute(meas.Height, cd)
	bm.Update(doc, info, meas.Blocks)
	if bm.State() != MultiPage {
		t.Fatalf("expected MultiPage with manual break")
	}

	// Delete the region containing the marker, bypassing RemoveBreak:
	// the model only learns on the next pass.
	doc.Nodes = []model.Node{&model.Paragraph{Text: "جديد"}}

	meas, cd = measureDoc(t, doc)
	info = paginate.Compute(meas.Height, cd)
	bm.Update(doc, info, meas.Blocks)

	pruned := bm.LastPruned()
	if len(pruned) != 1 || pruned[0] != pb.ID {
		t.Errorf("pruned = %v, want [%v]", pruned, pb.ID)
	}
	if bm.State() != SinglePage {
		t.Errorf("state = %v, want SinglePage after pruning", bm.State())
	}
	if bm.PageCount() != 1 {
		t.Errorf("page count = %d, want 1 from automatic overflow alone", bm.PageCount())
	}
}

// TestAdoptEmbeddedBreaks tests markers present in a loaded document being
// adopted rather than pruned
func TestAdoptEmbeddedBreaks(t *testing.T) {
	doc := model.NewDocument()
	doc.Append(&model.Paragraph{Text: "أول"})
	doc.Append(model.NewPageBreak())
	doc.Append(&model.Paragraph{Text: "ثان"})

	bm := NewModel()
	meas, cd := measureDoc(t, doc)
	info := paginate.Compute(meas.Height, cd)
	bm.Update(doc, info, meas.Blocks)

	if bm.State() != MultiPage {
		t.Errorf("state = %v, want MultiPage for embedded break", bm.State())
	}
	if len(bm.LastPruned()) != 0 {
		t.Errorf("embedded break was pruned: %v", bm.LastPruned())
	}
}

// TestRenumber tests PageNumber stamping on manual markers
func TestRenumber(t *testing.T) {
	doc := model.NewDocument()
	doc.Append(&model.Paragraph{Text: "a"})
	first := model.NewPageBreak()
	doc.Append(first)
	doc.Append(&model.Paragraph{Text: "b"})
	second := model.NewPageBreak()
	doc.Append(second)
	doc.Append(&model.Paragraph{Text: "c"})

	bm := NewModel()
	meas, cd := measureDoc(t, doc)
	info := paginate.Compute(meas.Height, cd)
	bm.Update(doc, info, meas.Blocks)

	if first.PageNumber != 1 || second.PageNumber != 2 {
		t.Errorf("page numbers = %d, %d, want 1, 2", first.PageNumber, second.PageNumber)
	}
	if bm.PageCount() != 3 {
		t.Errorf("page count = %d, want 3", bm.PageCount())
	}
}
