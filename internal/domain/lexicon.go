package domain

import "time"

// LexiconStats describes the currently loaded lexicon table.
type LexiconStats struct {
	Path            string
	Entries         int
	MaxPhraseLength int
	Skipped         int
	SourceMissing   bool
	LoadedAt        time.Time
}
