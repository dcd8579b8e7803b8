package telemetry

import "testing"

func hasBookmark(bookmarks []Bookmark, typ BookmarkType) bool {
	for _, bm := range bookmarks {
		if bm.Type == typ {
			return true
		}
	}
	return false
}

func TestBookmarkDetector_FirstVisit(t *testing.T) {
	bd := NewBookmarkDetector(10)

	if bms := bd.Check(WindowStats{WindowEndTick: 60, ScrollTravel: 10}); hasBookmark(bms, BookmarkFirstVisit) {
		t.Error("expected no first_visit while in the hero")
	}

	bms := bd.Check(WindowStats{WindowEndTick: 120, Active: "multiverse", ScrollTravel: 10})
	if !hasBookmark(bms, BookmarkFirstVisit) {
		t.Fatal("expected first_visit bookmark")
	}
	if bms[0].Section != "multiverse" {
		t.Errorf("expected section multiverse, got %q", bms[0].Section)
	}

	if bms := bd.Check(WindowStats{WindowEndTick: 180, Active: "multiverse", ScrollTravel: 10}); hasBookmark(bms, BookmarkFirstVisit) {
		t.Error("expected first_visit only once per section")
	}
}

func TestBookmarkDetector_ScrollBurst(t *testing.T) {
	bd := NewBookmarkDetector(10)

	for i := 0; i < 5; i++ {
		bd.Check(WindowStats{WindowEndTick: int64(i * 600), ScrollTravel: 150})
	}

	bms := bd.Check(WindowStats{WindowEndTick: 3000, ScrollTravel: 900})
	if !hasBookmark(bms, BookmarkScrollBurst) {
		t.Error("expected scroll_burst bookmark")
	}
}

func TestBookmarkDetector_LinkSurge(t *testing.T) {
	bd := NewBookmarkDetector(10)

	for i := 0; i < 5; i++ {
		bd.Check(WindowStats{WindowEndTick: int64(i * 600), Links: 20, ScrollTravel: 1})
	}

	if bms := bd.Check(WindowStats{WindowEndTick: 3000, Links: 30, ScrollTravel: 1}); hasBookmark(bms, BookmarkLinkSurge) {
		t.Error("expected no link_surge at 1.5x average")
	}
	if bms := bd.Check(WindowStats{WindowEndTick: 3600, Links: 80, ScrollTravel: 1}); !hasBookmark(bms, BookmarkLinkSurge) {
		t.Error("expected link_surge bookmark")
	}
}

func TestBookmarkDetector_IdleOncePerStreak(t *testing.T) {
	bd := NewBookmarkDetector(10)

	count := 0
	for i := 0; i < 8; i++ {
		if hasBookmark(bd.Check(WindowStats{WindowEndTick: int64(i * 600)}), BookmarkIdle) {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected 1 idle bookmark, got %d", count)
	}

	// Input breaks the streak; a new streak triggers again
	bd.Check(WindowStats{PointerMoves: 3})
	for i := 0; i < idleWindows; i++ {
		if hasBookmark(bd.Check(WindowStats{}), BookmarkIdle) {
			count++
		}
	}
	if count != 2 {
		t.Errorf("expected 2 idle bookmarks, got %d", count)
	}
}

func TestBookmarkDetector_ViewportShift(t *testing.T) {
	bd := NewBookmarkDetector(10)
	if !hasBookmark(bd.Check(WindowStats{Resizes: 1, Particles: 14}), BookmarkViewportShift) {
		t.Error("expected viewport_shift bookmark")
	}
}
