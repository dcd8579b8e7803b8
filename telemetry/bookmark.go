package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkFirstVisit    BookmarkType = "first_visit"
	BookmarkScrollBurst   BookmarkType = "scroll_burst"
	BookmarkLinkSurge     BookmarkType = "link_surge"
	BookmarkIdle          BookmarkType = "idle"
	BookmarkViewportShift BookmarkType = "viewport_shift"
)

// idleWindows is how many quiet windows in a row make an idle bookmark.
const idleWindows = 3

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	Tick        int64        `csv:"tick"`
	Section     string       `csv:"section"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"section", b.Section,
		"description", b.Description,
	)
}

// BookmarkDetector detects notable moments in a scroll session.
type BookmarkDetector struct {
	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	visited    map[string]bool
	quietCount int // consecutive windows with no scroll or pointer input
}

// NewBookmarkDetector creates a detector with the given history size.
func NewBookmarkDetector(historySize int) *BookmarkDetector {
	if historySize < 3 {
		historySize = 3
	}
	return &BookmarkDetector{
		history:     make([]WindowStats, historySize),
		historySize: historySize,
		visited:     make(map[string]bool),
	}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	if b := bd.checkFirstVisit(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkViewportShift(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkIdle(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	if bd.historyFull || bd.historyIdx > 0 {
		// Scroll burst: travel > 2x rolling average
		if b := bd.checkScrollBurst(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}

		// Link surge: links > 2x rolling average
		if b := bd.checkLinkSurge(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}
	}

	bd.addToHistory(stats)
	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

func (bd *BookmarkDetector) getHistory() []WindowStats {
	if bd.historyFull {
		return bd.history
	}
	return bd.history[:bd.historyIdx]
}

func (bd *BookmarkDetector) checkFirstVisit(stats WindowStats) *Bookmark {
	if stats.Active == "" || bd.visited[stats.Active] {
		return nil
	}
	bd.visited[stats.Active] = true
	return &Bookmark{
		Type:        BookmarkFirstVisit,
		Tick:        stats.WindowEndTick,
		Section:     stats.Active,
		Description: fmt.Sprintf("Reached %s at scroll %.0f after %.1fs", stats.Active, stats.ScrollY, stats.SimTimeSec),
	}
}

func (bd *BookmarkDetector) checkViewportShift(stats WindowStats) *Bookmark {
	if stats.Resizes == 0 {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkViewportShift,
		Tick:        stats.WindowEndTick,
		Section:     stats.Active,
		Description: fmt.Sprintf("%d resize(s), field now has %d particles", stats.Resizes, stats.Particles),
	}
}

func (bd *BookmarkDetector) checkIdle(stats WindowStats) *Bookmark {
	if stats.ScrollTravel > 0 || stats.PointerMoves > 0 || stats.NavClicks > 0 {
		bd.quietCount = 0
		return nil
	}
	bd.quietCount++
	if bd.quietCount != idleWindows { // trigger once per quiet streak
		return nil
	}
	return &Bookmark{
		Type:        BookmarkIdle,
		Tick:        stats.WindowEndTick,
		Section:     stats.Active,
		Description: fmt.Sprintf("No input for %d windows at scroll %.0f", idleWindows, stats.ScrollY),
	}
}

func (bd *BookmarkDetector) checkScrollBurst(stats WindowStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 3 {
		return nil
	}

	var total float64
	for _, h := range history {
		total += h.ScrollTravel
	}
	avg := total / float64(len(history))
	if avg == 0 {
		return nil
	}

	if stats.ScrollTravel > avg*2.0 && stats.ScrollTravel >= 200 {
		return &Bookmark{
			Type:        BookmarkScrollBurst,
			Tick:        stats.WindowEndTick,
			Section:     stats.Active,
			Description: fmt.Sprintf("Scrolled %.0fpx, %.1fx average (%.0f)", stats.ScrollTravel, stats.ScrollTravel/avg, avg),
		}
	}
	return nil
}

func (bd *BookmarkDetector) checkLinkSurge(stats WindowStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 3 {
		return nil
	}

	var total int
	for _, h := range history {
		total += h.Links
	}
	avg := float64(total) / float64(len(history))
	if avg == 0 {
		return nil
	}

	if float64(stats.Links) > avg*2.0 && stats.Links >= 10 {
		return &Bookmark{
			Type:        BookmarkLinkSurge,
			Tick:        stats.WindowEndTick,
			Section:     stats.Active,
			Description: fmt.Sprintf("%d links, %.1fx average (%.1f)", stats.Links, float64(stats.Links)/avg, avg),
		}
	}
	return nil
}
